package gpspoint

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile parses the gpspoint file at path into store, resolving relative
// image paths against the file's directory
func ReadFile(path string, store Store) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening gpspoint file %q: %w", path, err)
	}
	defer f.Close()

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		dir = filepath.Dir(path)
	}
	return NewReader(store, WithDir(dir)).Read(f)
}

// WriteFile writes src to path, creating or truncating it. With relative set,
// image paths are written relative to the file's directory.
func WriteFile(path string, src Source, relative bool) error {
	var opts []WriteOption
	if relative {
		dir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return fmt.Errorf("resolving directory of %q: %w", path, err)
		}
		opts = append(opts, WithRelativeTo(dir))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating gpspoint file %q: %w", path, err)
	}
	if err := NewWriter(f, opts...).Write(src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
