package source

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Reader is the file I/O collaborator used to load module sources.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads files from the host file system.
type OSReader struct{}

// ReadFile implements Reader.
func (OSReader) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is provided by the caller
	return os.ReadFile(filepath.FromSlash(path))
}

// MapReader serves files from memory, keyed by slash-separated path.
// Used by tests and by callers that already hold sources in memory.
type MapReader map[string]string

// ReadFile implements Reader.
func (m MapReader) ReadFile(path string) ([]byte, error) {
	content, ok := m[normalizePath(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}
