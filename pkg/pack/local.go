package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/reminderapp/sharezip/pkg/paths"
)

// CollectRoot lists the regular files directly inside root, skipping
// the file at skipPath. Directories are not descended.
func CollectRoot(root, skipPath string) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", root, err)
	}

	var entries []Entry
	for _, d := range dirents {
		abs := filepath.Join(root, d.Name())
		if skipPath != "" && abs == skipPath {
			continue
		}
		info, ok, err := regularFile(abs, d)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		name, err := paths.EntryName(d.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid name %s: %w", d.Name(), err)
		}
		entries = append(entries, newEntry(name, abs, info))
	}
	return entries, nil
}

// WalkSubdir lists every regular file under root/subdir at any depth,
// named relative to root. A missing subdir yields no entries.
func WalkSubdir(root, subdir string) ([]Entry, error) {
	rel := paths.CleanRelPath(filepath.ToSlash(subdir))
	if err := paths.ValidateEntryName(rel); err != nil {
		return nil, fmt.Errorf("invalid subdir %s: %w", subdir, err)
	}
	dir := filepath.Join(root, filepath.FromSlash(rel))
	if !paths.IsWithinDir(root, dir) {
		return nil, fmt.Errorf("subdir escapes root: %s", subdir)
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", rel, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	// WalkDir does not descend a symlinked root, so walk its target
	// and name entries under rel.
	walkDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rel, err)
	}

	var entries []Entry
	err = filepath.WalkDir(
		walkDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			info, ok, err := regularFile(p, d)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			sub, err := filepath.Rel(walkDir, p)
			if err != nil {
				return err
			}
			name, err := paths.EntryName(
				path.Join(rel, filepath.ToSlash(sub)),
			)
			if err != nil {
				return fmt.Errorf("invalid name %s: %w", sub, err)
			}
			entries = append(entries, newEntry(name, p, info))
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", rel, err)
	}
	return entries, nil
}

// regularFile reports whether p is a regular file, following
// symlinks. Dangling links are skipped.
func regularFile(
	p string, d fs.DirEntry,
) (fs.FileInfo, bool, error) {
	if d.Type()&fs.ModeSymlink == 0 && !d.Type().IsRegular() {
		return nil, false, nil
	}
	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) && d.Type()&fs.ModeSymlink != 0 {
		slog.Debug("skipping dangling symlink", "path", p)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", p, err)
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}
	return info, true, nil
}

func newEntry(name, abs string, info fs.FileInfo) Entry {
	return Entry{
		Name: name,
		Path: abs,
		Mode: int(info.Mode().Perm()),
		Size: info.Size(),
	}
}
