package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scaffolded lists what Scaffold created; existing sources are left alone.
type Scaffolded struct {
	Root     string
	Name     string
	Manifest string
	Created  []string
	Existing []string
}

var scaffoldSources = []struct {
	path    string
	content string
}{
	{"src/index.js", `import greet from './greet.js';
import { shout } from './shout.js';

console.log(greet('world'));
console.log(shout('bundled'));
`},
	{"src/greet.js", `export default function greet(name) {
  return 'Hello, ' + name + '!';
}
`},
	{"src/shout.js", `export const shout = text => text.toUpperCase() + '!';
`},
}

// Scaffold creates jsbundle.toml and a small three-module program in
// target. The directory is created when missing. An existing manifest
// is an error.
func Scaffold(target string) (*Scaffolded, error) {
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	name := projectName(target)
	if err := os.WriteFile(manifestPath, []byte(defaultManifest(name)), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	res := &Scaffolded{Root: target, Name: name, Manifest: manifestPath}
	for _, src := range scaffoldSources {
		path := filepath.Join(target, filepath.FromSlash(src.path))
		if _, err := os.Stat(path); err == nil {
			res.Existing = append(res.Existing, src.path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(src.content), 0o600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", src.path, err)
		}
		res.Created = append(res.Created, src.path)
	}
	return res, nil
}

func projectName(dir string) string {
	name := strings.TrimSpace(filepath.Base(dir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "jsbundle-project"
	}
	return name
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`# jsbundle project manifest
[package]
name = %q

[build]
entry = "src/index.js"
out_dir = "%s"
out_file = "%s"
`, name, DefaultOutDir, DefaultOutFile)
}
