package buildpipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"jsbundle/internal/bundler"
	"jsbundle/internal/graph"
	"jsbundle/internal/observ"
	"jsbundle/internal/source"
)

// BuildRequest configures one build. EntryFile and OutputFolder are
// absolute paths.
type BuildRequest struct {
	EntryFile    string
	OutputFolder string
	// OutputName defaults to bundle.js.
	OutputName string
	// Loader is the runtime loader function name; empty means the default.
	Loader string
	Graph  graph.Options
	// Verify compiles every module body with goja before writing.
	Verify bool
	// Metafile is written when non-empty; the extension picks the format.
	Metafile string
	// BaseDir shortens paths in progress events and the metafile.
	BaseDir string
	// FileSet is created on demand; tests pass one backed by a MapReader.
	FileSet  *source.FileSet
	Progress ProgressSink
	Timer    *observ.Timer
}

// Validate checks the request before any file is touched.
func (req *BuildRequest) Validate(needOutput bool) error {
	if req == nil {
		return fmt.Errorf("missing build request")
	}
	if strings.TrimSpace(req.EntryFile) == "" {
		return fmt.Errorf("missing entry file")
	}
	if !isAbs(req.EntryFile) {
		return fmt.Errorf("entry file must be an absolute path, got %q", req.EntryFile)
	}
	if needOutput {
		if strings.TrimSpace(req.OutputFolder) == "" {
			return fmt.Errorf("missing output folder")
		}
		if !filepath.IsAbs(req.OutputFolder) {
			return fmt.Errorf("output folder must be an absolute path, got %q", req.OutputFolder)
		}
	}
	if strings.ContainsAny(req.OutputName, `/\`) {
		return fmt.Errorf("output name must be a file name, got %q", req.OutputName)
	}
	if req.Loader != "" {
		if err := bundler.ValidateLoader(req.Loader); err != nil {
			return err
		}
	}
	return nil
}

// isAbs accepts both OS paths and slash-separated identifiers, so
// MapReader fixtures like /p/src/index.js work on every platform.
func isAbs(p string) bool {
	return filepath.IsAbs(p) || strings.HasPrefix(p, "/")
}

func (req *BuildRequest) outputName() string {
	if req.OutputName == "" {
		return bundler.DefaultName
	}
	return req.OutputName
}

// displayPath makes p relative to BaseDir for progress output.
func (req *BuildRequest) displayPath(p string) string {
	if req.BaseDir == "" {
		return p
	}
	rel, err := filepath.Rel(req.BaseDir, filepath.FromSlash(p))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}
