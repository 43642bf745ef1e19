package source

import (
	"path/filepath"
	"strings"
)

// AbsolutePath returns the absolute form of a slash path.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// RelativePath returns p relative to baseDir using forward slashes.
func RelativePath(p, baseDir string) (string, error) {
	absP, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(filepath.FromSlash(baseDir))
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absP)
	if err != nil {
		return "", err
	}
	// вне baseDir показываем абсолютный путь
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(absP), nil
	}
	return filepath.ToSlash(rel), nil
}

// BaseName returns the last element of a path.
func BaseName(p string) string {
	return filepath.Base(filepath.FromSlash(p))
}
