package buildpipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"jsbundle/internal/diag"
	"jsbundle/internal/errs"
	"jsbundle/internal/graph"
	"jsbundle/internal/jsrun"
	"jsbundle/internal/metafile"
	"jsbundle/internal/observ"
	"jsbundle/internal/source"
)

var squareCircle = source.MapReader{
	"/p/src/index.js": "import square from './square.js';\nimport { area } from './circle.js';\nconsole.log(square(3), area(1) > 3);\n",
	"/p/src/square.js": "export default function square(x) { return x * x; }\n",
	"/p/src/circle.js": "const PI = 3.14;\nexport function area(r) { return PI * r * r; }\n",
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) has(file string, stage Stage, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range s.events {
		if ev.File == file && ev.Stage == stage && ev.Status == status {
			return true
		}
	}
	return false
}

func TestBuildWritesOneFile(t *testing.T) {
	out := t.TempDir()
	sink := &recordingSink{}
	timer := observ.NewTimer()
	metaPath := filepath.Join(t.TempDir(), "meta.json")

	res, err := Build(context.Background(), &BuildRequest{
		EntryFile:    "/p/src/index.js",
		OutputFolder: out,
		Graph:        graph.DefaultOptions(),
		Verify:       true,
		Metafile:     metaPath,
		BaseDir:      "/p",
		FileSet:      source.NewFileSetWithReader(squareCircle),
		Progress:     sink,
		Timer:        timer,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "bundle.js" {
		t.Fatalf("output folder holds %v", entries)
	}
	content, err := os.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != res.Bundle.Content {
		t.Error("written bundle differs from the rendered one")
	}

	var stdout bytes.Buffer
	if err := jsrun.Run(context.Background(), "bundle.js", string(content), jsrun.Options{Stdout: &stdout}); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "9 true\n" {
		t.Errorf("stdout = %q", stdout.String())
	}

	wantFiles := []string{"src/index.js", "src/square.js", "src/circle.js"}
	if strings.Join(res.Files, ",") != strings.Join(wantFiles, ",") {
		t.Errorf("files = %v", res.Files)
	}
	for _, f := range wantFiles {
		if !sink.has(f, StageGraph, StatusDone) || !sink.has(f, StageWrite, StatusDone) {
			t.Errorf("missing progress for %s", f)
		}
	}

	var names []string
	for _, p := range timer.Phases() {
		names = append(names, p.Name)
	}
	if got := strings.Join(names, ","); got != "graph,transform,verify,write" {
		t.Errorf("phases = %s", got)
	}

	mf, err := metafile.ReadFile(metaPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(mf.Inputs) != 3 || res.MetafilePath != metaPath {
		t.Errorf("metafile inputs = %v", mf.Inputs)
	}
}

func TestBuildOutputName(t *testing.T) {
	out := t.TempDir()
	res, err := Build(context.Background(), &BuildRequest{
		EntryFile:    "/p/src/index.js",
		OutputFolder: out,
		OutputName:   "app.js",
		Loader:       "start",
		Graph:        graph.DefaultOptions(),
		FileSet:      source.NewFileSetWithReader(squareCircle),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.OutputPath != filepath.Join(out, "app.js") {
		t.Errorf("output = %s", res.OutputPath)
	}
	if !strings.Contains(res.Bundle.Content, "start(") {
		t.Errorf("loader name not applied")
	}
	if !strings.Contains(res.Summary(), "3 modules") {
		t.Errorf("summary = %q", res.Summary())
	}
}

func TestBuildFailureLeavesNoOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	files := source.MapReader{
		"/p/index.js": "import { x } from './missing.js';\n",
	}
	_, err := Build(context.Background(), &BuildRequest{
		EntryFile:    "/p/index.js",
		OutputFolder: out,
		Graph:        graph.DefaultOptions(),
		FileSet:      source.NewFileSetWithReader(files),
	})
	if !errors.Is(err, errs.ErrFileRead) {
		t.Fatalf("err = %v, want FileReadError", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output folder created on failure: %v", statErr)
	}
}

func TestMetafileFailureLeavesNoBundle(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "dist")
	_, err := Build(context.Background(), &BuildRequest{
		EntryFile:    "/p/src/index.js",
		OutputFolder: out,
		Metafile:     filepath.Join(blocker, "meta.json"),
		Graph:        graph.DefaultOptions(),
		FileSet:      source.NewFileSetWithReader(squareCircle),
	})
	if !errors.Is(err, errs.ErrFileWrite) {
		t.Fatalf("err = %v, want FileWriteError", err)
	}
	if _, statErr := os.Stat(filepath.Join(out, "bundle.js")); !os.IsNotExist(statErr) {
		t.Errorf("bundle written for a failed build: %v", statErr)
	}
}

func TestVerifyRejectsBrokenBody(t *testing.T) {
	files := source.MapReader{
		"/p/index.js": "import './bad.js';\n",
		"/p/bad.js":   "x = = 1;\n",
	}
	_, err := Compile(context.Background(), &BuildRequest{
		EntryFile: "/p/index.js",
		Graph:     graph.DefaultOptions(),
		Verify:    true,
		FileSet:   source.NewFileSetWithReader(files),
	})
	var be *errs.Error
	if !errors.As(err, &be) {
		t.Fatalf("err = %v", err)
	}
	if be.Path != "/p/bad.js" || len(be.Diagnostics) != 1 || be.Diagnostics[0].Code != diag.PrjVerifyFailed {
		t.Fatalf("error = %+v", be)
	}
}

func TestRunExecutesBundle(t *testing.T) {
	var stdout bytes.Buffer
	sink := &recordingSink{}
	_, err := Run(context.Background(), &BuildRequest{
		EntryFile: "/p/src/index.js",
		Graph:     graph.DefaultOptions(),
		FileSet:   source.NewFileSetWithReader(squareCircle),
		Progress:  sink,
	}, jsrun.Options{Stdout: &stdout})
	if err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "9 true\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !sink.has("", StageRun, StatusDone) {
		t.Error("run stage not reported")
	}
}

func TestValidate(t *testing.T) {
	abs, err := filepath.Abs("out")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		req  BuildRequest
		ok   bool
	}{
		{"ok", BuildRequest{EntryFile: "/p/index.js", OutputFolder: abs}, true},
		{"no entry", BuildRequest{OutputFolder: abs}, false},
		{"relative entry", BuildRequest{EntryFile: "index.js", OutputFolder: abs}, false},
		{"relative output", BuildRequest{EntryFile: "/p/index.js", OutputFolder: "out"}, false},
		{"nested name", BuildRequest{EntryFile: "/p/index.js", OutputFolder: abs, OutputName: "a/b.js"}, false},
		{"bad loader", BuildRequest{EntryFile: "/p/index.js", OutputFolder: abs, Loader: "1x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(true)
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestCompileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compile(ctx, &BuildRequest{
		EntryFile: "/p/src/index.js",
		Graph:     graph.DefaultOptions(),
		FileSet:   source.NewFileSetWithReader(squareCircle),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
