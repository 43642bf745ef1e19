package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jsbundle/internal/errs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "demo"
[build]
entry = "src/index.js"
metafile = "dist/meta.json"
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if m.Root != root || m.Config.Package.Name != "demo" {
		t.Fatalf("manifest = %+v", m)
	}
	b := m.Config.Build
	if b.OutDir != DefaultOutDir || b.OutFile != DefaultOutFile || !b.Dedupe || b.Verify {
		t.Errorf("defaults not applied: %+v", b)
	}
	if got := m.EntryPath(); got != filepath.Join(root, "src", "index.js") {
		t.Errorf("entry = %s", got)
	}
	if got := m.OutDir(); got != filepath.Join(root, "dist") {
		t.Errorf("out dir = %s", got)
	}
	if got := m.MetafilePath(); got != filepath.Join(root, "dist", "meta.json") {
		t.Errorf("metafile = %s", got)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := LoadManifest(dir)
	// выше TempDir манифеста быть не должно
	if err != nil || ok || m != nil {
		t.Fatalf("expected no manifest, got %v %v %v", m, ok, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bad toml", content: "[build\nentry=", want: "failed to parse TOML"},
		{name: "no build", content: "[package]\nname = \"x\"\n", want: "missing [build]"},
		{name: "no entry", content: "[build]\nout_dir = \"out\"\n", want: "missing [build].entry"},
		{name: "bad cycles", content: "[build]\nentry = \"a.js\"\ncycles = \"sometimes\"\n", want: "invalid [build].cycles"},
		{name: "unknown key", content: "[build]\nentry = \"a.js\"\nminify = true\n", want: "unknown keys: build.minify"},
		{name: "out file with dir", content: "[build]\nentry = \"a.js\"\nout_file = \"x/b.js\"\n", want: "must be a file name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errs.ErrConfig) {
				t.Errorf("error kind: %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigExplicitValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, `
[build]
entry = "main.js"
out_dir = "build"
out_file = "app.js"
loader = "boot"
dedupe = false
cycles = "error"
verify = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := BuildConfig{Entry: "main.js", OutDir: "build", OutFile: "app.js", Loader: "boot", Cycles: "error", Verify: true}
	if cfg.Build != want {
		t.Fatalf("build = %+v, want %+v", cfg.Build, want)
	}
}

func TestScaffold(t *testing.T) {
	target := filepath.Join(t.TempDir(), "hello")
	res, err := Scaffold(target)
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "hello" || len(res.Created) != 3 {
		t.Fatalf("scaffold = %+v", res)
	}
	m, ok, err := LoadManifest(target)
	if err != nil || !ok {
		t.Fatalf("scaffolded manifest does not load: %v", err)
	}
	if _, err := os.Stat(m.EntryPath()); err != nil {
		t.Fatalf("entry missing: %v", err)
	}
	if _, err := Scaffold(target); err == nil {
		t.Fatal("second scaffold must fail")
	}
}
