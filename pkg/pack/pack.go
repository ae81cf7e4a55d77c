package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reminderapp/sharezip/pkg/paths"
)

// PackZip writes entries to w as a deflate-compressed zip, in order.
// It returns the number of entries written.
func PackZip(entries []Entry, w io.Writer) (n int, err error) {
	zw := zip.NewWriter(w)
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("close zip: %w", cerr)
		}
	}()

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := paths.ValidateEntryName(e.Name); err != nil {
			return n, fmt.Errorf("invalid name %s: %w", e.Name, err)
		}
		if seen[e.Name] {
			return n, fmt.Errorf("duplicate entry: %s", e.Name)
		}
		seen[e.Name] = true

		if err := addFileToZip(zw, e); err != nil {
			return n, err
		}
		slog.Debug("added", "name", e.Name, "size", e.Size)
		n++
	}
	return n, nil
}

func addFileToZip(zw *zip.Writer, e Entry) error {
	name := e.Name
	f, err := os.Open(e.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("header %s: %w", name, err)
	}
	hdr.Name = name
	hdr.Method = zip.Deflate
	hdr.SetMode(os.FileMode(e.Mode))

	fw, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header %s: %w", name, err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return fmt.Errorf("write body %s: %w", name, err)
	}
	return nil
}
