package pack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Archive writes rootDir/archiveName containing the regular files
// directly in rootDir, stored under their bare names, followed by every
// file below rootDir/subdir, stored relative to rootDir.
//
// The archive is excluded by absolute path, so a previous run's output
// is never picked up regardless of the caller's working directory.
// Any I/O failure aborts the run; partial output is left in place.
func Archive(
	rootDir, subdir, archiveName string,
) (res Result, err error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return Result{}, fmt.Errorf("resolve %s: %w", rootDir, err)
	}
	if archiveName == "" || filepath.Base(archiveName) != archiveName {
		return Result{}, fmt.Errorf(
			"invalid archive name %q", archiveName,
		)
	}
	dest := filepath.Join(root, archiveName)

	f, err := os.Create(dest)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", archiveName, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			res, err = Result{}, fmt.Errorf(
				"close %s: %w", archiveName, cerr,
			)
		}
	}()

	rootEntries, err := CollectRoot(root, dest)
	if err != nil {
		return Result{}, err
	}
	subEntries, err := WalkSubdir(root, subdir)
	if err != nil {
		return Result{}, err
	}
	slog.Debug("collected",
		"root", len(rootEntries),
		"subdir", subdir,
		"nested", len(subEntries),
	)

	entries := append(rootEntries, subEntries...)
	count, err := PackZip(entries, f)
	if err != nil {
		return Result{}, fmt.Errorf("pack %s: %w", archiveName, err)
	}

	var size int64
	for _, e := range entries {
		size += e.Size
	}
	slog.Debug("archive written",
		"path", dest,
		"count", count,
		"bytes", size,
	)
	return Result{Path: dest, Count: count, Size: size}, nil
}
