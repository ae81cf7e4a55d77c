package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"sharezip"}, args...))
	return out.String(), err
}

func TestArchiveWorkingDir(t *testing.T) {
	dir := t.TempDir()
	for path, content := range map[string]string{
		"a.txt":               "alpha",
		"b.txt":               "bravo",
		"src/util/helper.txt": "helper",
	} {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	chdirForTest(t, dir)

	out, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t,
		"Zip file 'reminderApp - share.zip' created successfully!\n",
		out,
	)

	zr, err := zip.OpenReader(filepath.Join(dir, archiveName))
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t,
		[]string{"a.txt", "b.txt", "src/util/helper.txt"},
		names,
	)
}

func TestArchiveRejectsArgs(t *testing.T) {
	chdirForTest(t, t.TempDir())
	_, err := runApp(t, "somewhere")
	assert.Error(t, err)
	assert.NoFileExists(t, archiveName)
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Equal(t, appVersion+"\n", out)
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.5 KB", humanBytes(1536))
	assert.Equal(t, "2.0 MB", humanBytes(2<<20))
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
