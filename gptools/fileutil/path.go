package fileutil

import (
	"path/filepath"
)

// MakeAbsolute resolves a file name found in a document living in dir.
// Absolute names and names with no dir to resolve against are returned unchanged.
func MakeAbsolute(name, dir string) string {
	if name == "" || dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Clean(filepath.Join(dir, name))
}

// RelativeTo returns name expressed relative to dir. The second result is false
// when no relative form exists, e.g. for relative inputs or different volumes.
func RelativeTo(dir, name string) (string, bool) {
	if dir == "" || !filepath.IsAbs(name) || !filepath.IsAbs(dir) {
		return "", false
	}
	rel, err := filepath.Rel(dir, name)
	if err != nil {
		return "", false
	}
	return rel, true
}
