package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"jsbundle/internal/errs"
	"jsbundle/internal/graph"
)

const (
	DefaultOutDir  = "dist"
	DefaultOutFile = "bundle.js"
)

// Manifest is a loaded jsbundle.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig is the [build] table. Paths are relative to the manifest.
type BuildConfig struct {
	Entry    string `toml:"entry"`
	OutDir   string `toml:"out_dir"`
	OutFile  string `toml:"out_file"`
	Loader   string `toml:"loader"`
	Dedupe   bool   `toml:"dedupe"`
	Cycles   string `toml:"cycles"`
	Verify   bool   `toml:"verify"`
	Metafile string `toml:"metafile"`
}

// LoadManifest finds and parses jsbundle.toml starting at startDir.
// ok is false when no manifest exists up to the file system root.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig parses a manifest file, applies defaults and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Build: BuildConfig{Dedupe: true}}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errs.Config(path, "failed to parse TOML", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.Config(path, "unknown keys: "+strings.Join(keys, ", "), nil)
	}
	if !meta.IsDefined("build") {
		return Config{}, errs.Config(path, "missing [build]", nil)
	}
	cfg.Build.Entry = strings.TrimSpace(cfg.Build.Entry)
	if !meta.IsDefined("build", "entry") || cfg.Build.Entry == "" {
		return Config{}, errs.Config(path, "missing [build].entry", nil)
	}
	if cfg.Build.OutDir == "" {
		cfg.Build.OutDir = DefaultOutDir
	}
	if cfg.Build.OutFile == "" {
		cfg.Build.OutFile = DefaultOutFile
	}
	if strings.ContainsAny(cfg.Build.OutFile, `/\`) {
		return Config{}, errs.Config(path, fmt.Sprintf("[build].out_file must be a file name, got %q", cfg.Build.OutFile), nil)
	}
	if _, err := graph.ParseCyclePolicy(cfg.Build.Cycles); err != nil {
		return Config{}, errs.Config(path, "invalid [build].cycles", err)
	}
	return cfg, nil
}

// EntryPath is the absolute entry file.
func (m *Manifest) EntryPath() string {
	return m.abs(m.Config.Build.Entry)
}

// OutDir is the absolute output folder.
func (m *Manifest) OutDir() string {
	return m.abs(m.Config.Build.OutDir)
}

// MetafilePath is the absolute metafile path, or "" when not requested.
func (m *Manifest) MetafilePath() string {
	if m.Config.Build.Metafile == "" {
		return ""
	}
	return m.abs(m.Config.Build.Metafile)
}

func (m *Manifest) abs(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(m.Root, p)
}
