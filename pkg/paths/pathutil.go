package paths

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ValidateEntryName checks a slash-separated name before it is
// stored in an archive.
func ValidateEntryName(name string) error {
	if name == "" {
		return fmt.Errorf("empty entry name")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("entry name contains null byte")
	}
	if path.IsAbs(name) {
		return fmt.Errorf("absolute entry name: %s", name)
	}
	cleaned := path.Clean(name)
	if cleaned == "." {
		return fmt.Errorf("entry name resolves to current directory")
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("entry name escapes root: %s", name)
	}
	if cleaned != name {
		return fmt.Errorf("entry name not clean: %s", name)
	}
	return nil
}

// EntryName turns a path relative to the archive root into the name
// stored in the archive.
func EntryName(rel string) (string, error) {
	name := CleanRelPath(filepath.ToSlash(rel))
	if err := ValidateEntryName(name); err != nil {
		return "", err
	}
	return name, nil
}

func CleanRelPath(p string) string {
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "./")
	return p
}

func IsWithinDir(dir, full string) bool {
	rel, err := filepath.Rel(dir, full)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return rel != ".." &&
		!strings.HasPrefix(rel, "../") &&
		!filepath.IsAbs(rel)
}
