// Package resolve turns import specifiers into module identifiers.
//
// Resolution is lexical: the specifier is joined onto the directory of the
// importing file and cleaned. The file system and the working directory
// are never consulted, so the same inputs always give the same identifier.
package resolve

import (
	"path"
	"strings"
)

// Resolve returns the identifier of the module that requester imports
// with spec. Both are slash separated; backslashes in spec are treated as
// separators too.
func Resolve(requester, spec string) string {
	dir := path.Dir(ToSlash(requester))
	return path.Clean(path.Join(dir, ToSlash(spec)))
}

// IsRelative reports whether spec starts with ./ or ../ (or is . or ..).
func IsRelative(spec string) bool {
	spec = ToSlash(spec)
	return spec == "." || spec == ".." || strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}

// ToSlash replaces backslashes with forward slashes on every platform,
// so identifiers never depend on the host OS.
func ToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
