package graph

import (
	"context"
	"errors"
	"io/fs"
	"slices"
	"strings"
	"testing"

	"jsbundle/internal/errs"
	"jsbundle/internal/source"
)

func build(t *testing.T, files source.MapReader, entry string, opts Options) (*Graph, error) {
	t.Helper()
	return NewBuilder(source.NewFileSetWithReader(files), opts).Build(context.Background(), entry)
}

func mustBuild(t *testing.T, files source.MapReader, entry string, opts Options) *Graph {
	t.Helper()
	g, err := build(t, files, entry, opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

func TestOrderIsDepthFirstPreOrder(t *testing.T) {
	files := source.MapReader{
		"/src/index.js":  "import a from './a.js';\nimport c from './c.js';\n",
		"/src/a.js":      "import b from './lib/b.js';\nexport default 1;\n",
		"/src/lib/b.js":  "export default 2;\n",
		"/src/c.js":      "import b from './lib/b.js';\nexport default 3;\n",
		"/src/unused.js": "export default 4;\n",
	}
	g := mustBuild(t, files, "/src/index.js", DefaultOptions())
	want := []string{"/src/index.js", "/src/a.js", "/src/lib/b.js", "/src/c.js"}
	if got := g.Paths(); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if len(g.Modules) != 4 {
		t.Errorf("diamond dependency built %d modules, want 4", len(g.Modules))
	}
	if _, ok := g.Lookup("/src/unused.js"); ok {
		t.Errorf("unreachable file must not be in the graph")
	}
	// повторная сборка даёт тот же порядок
	again := mustBuild(t, files, "/src/index.js", DefaultOptions())
	if !slices.Equal(again.Paths(), want) || again.Fingerprint() != g.Fingerprint() {
		t.Errorf("second build differs")
	}
}

func TestDepsPerImportStatement(t *testing.T) {
	files := source.MapReader{
		"/m/index.js": "import './x.js';\nimport { a } from './x.js';\nimport y from './y.js';\n",
		"/m/x.js":     "export const a = 1;\n",
		"/m/y.js":     "export default 2;\n",
	}
	g := mustBuild(t, files, "/m/index.js", DefaultOptions())
	entry := g.Module(g.Entry)
	if len(entry.Deps) != 3 || entry.Deps[0] != entry.Deps[1] {
		t.Fatalf("deps = %v, want one entry per import with the repeat kept", entry.Deps)
	}
	if len(entry.UniqueDeps()) != 2 {
		t.Errorf("unique deps = %v", entry.UniqueDeps())
	}
	if entry.Imports[2].Target != "/m/y.js" || entry.Imports[2].Specifier != "./y.js" {
		t.Errorf("import record = %+v", entry.Imports[2])
	}
}

func TestNoDedupeBuildsTree(t *testing.T) {
	files := source.MapReader{
		"/p/index.js":  "import a from './a.js';\nimport b from './b.js';\n",
		"/p/a.js":      "import s from './shared.js';\n",
		"/p/b.js":      "import s from './shared.js';\n",
		"/p/shared.js": "export default 0;\n",
	}
	g := mustBuild(t, files, "/p/index.js", Options{Dedupe: false})
	want := []string{"/p/index.js", "/p/a.js", "/p/shared.js", "/p/b.js", "/p/shared.js"}
	if got := g.Paths(); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestCyclesAllowed(t *testing.T) {
	files := source.MapReader{
		"/c/a.js": "import b from './b.js';\nexport default 'a';\n",
		"/c/b.js": "import a from './a.js';\nexport default 'b';\n",
	}
	g := mustBuild(t, files, "/c/a.js", DefaultOptions())
	if got := g.Paths(); !slices.Equal(got, []string{"/c/a.js", "/c/b.js"}) {
		t.Fatalf("order = %v", got)
	}
	b, _ := g.Lookup("/c/b.js")
	if b.Deps[0] != g.Entry {
		t.Errorf("cycle must reuse the in-flight module")
	}
	topo := g.Topo()
	if !topo.Cyclic || len(topo.Cycles) != 2 {
		t.Errorf("topo = %+v, want both modules in a cycle", topo)
	}
}

func TestCyclesError(t *testing.T) {
	files := source.MapReader{
		"/c/a.js": "import b from './b.js';\n",
		"/c/b.js": "import c from './c.js';\n",
		"/c/c.js": "import b from './b.js';\n",
	}
	for _, opts := range []Options{{Dedupe: true, Cycles: CyclesError}, {Dedupe: false}} {
		_, err := build(t, files, "/c/a.js", opts)
		if !errors.Is(err, errs.ErrCyclicDependency) {
			t.Fatalf("err = %v, want CyclicDependencyError", err)
		}
		var be *errs.Error
		errors.As(err, &be)
		if got := strings.Join(be.Chain, " -> "); got != "/c/b.js -> /c/c.js -> /c/b.js" {
			t.Errorf("chain = %s", got)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		files source.MapReader
		kind  *errs.Error
		path  string
	}{
		{
			name:  "missing entry",
			files: source.MapReader{},
			kind:  errs.ErrFileRead,
			path:  "/e/index.js",
		},
		{
			name:  "missing dependency",
			files: source.MapReader{"/e/index.js": "import x from './nope.js';"},
			kind:  errs.ErrFileRead,
			path:  "/e/nope.js",
		},
		{
			name:  "bare specifier",
			files: source.MapReader{"/e/index.js": "import React from 'react';"},
			kind:  errs.ErrFileRead,
			path:  "/e/index.js",
		},
		{
			name: "syntax error in dependency",
			files: source.MapReader{
				"/e/index.js": "import x from './bad.js';",
				"/e/bad.js":   "export default (1 + ;\n",
			},
			kind: errs.ErrSyntax,
			path: "/e/bad.js",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, tt.files, "/e/index.js", DefaultOptions())
			if !errors.Is(err, tt.kind) {
				t.Fatalf("err = %v, want %s", err, tt.kind.Kind)
			}
			var be *errs.Error
			if !errors.As(err, &be) || be.Path != tt.path {
				t.Errorf("error path = %q, want %q", be.Path, tt.path)
			}
		})
	}
}

func TestMissingFileKeepsCause(t *testing.T) {
	_, err := build(t, source.MapReader{}, "/x.js", DefaultOptions())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestTopoLevels(t *testing.T) {
	files := source.MapReader{
		"/t/index.js": "import './a.js'; import './b.js';",
		"/t/a.js":     "import './b.js';",
		"/t/b.js":     "",
	}
	g := mustBuild(t, files, "/t/index.js", DefaultOptions())
	topo := g.Topo()
	if topo.Cyclic {
		t.Fatalf("unexpected cycle")
	}
	var levels [][]string
	for _, batch := range topo.Batches {
		var names []string
		for _, id := range batch {
			names = append(names, g.Module(id).Path)
		}
		levels = append(levels, names)
	}
	want := [][]string{{"/t/b.js"}, {"/t/a.js"}, {"/t/index.js"}}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v, want %v", levels, want)
	}
	for i := range want {
		if !slices.Equal(levels[i], want[i]) {
			t.Errorf("level %d = %v, want %v", i, levels[i], want[i])
		}
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical(`C:\a\..\b\c.js`); got != "C:/b/c.js" {
		t.Errorf("Canonical = %q", got)
	}
	if got := Canonical("/a/./b//c.js"); got != "/a/b/c.js" {
		t.Errorf("Canonical = %q", got)
	}
}

func TestOnModuleCallback(t *testing.T) {
	files := source.MapReader{"/o/a.js": "import './b.js';", "/o/b.js": ""}
	var seen []string
	opts := DefaultOptions()
	opts.OnModule = func(m *Module) { seen = append(seen, m.Path) }
	mustBuild(t, files, "/o/a.js", opts)
	if !slices.Equal(seen, []string{"/o/a.js", "/o/b.js"}) {
		t.Errorf("callbacks = %v", seen)
	}
}

func TestSyntaxDiagnosticsRespectLimit(t *testing.T) {
	files := source.MapReader{"/e/index.js": "const a = 1;\n)\n)\n)\n"}
	for _, limit := range []uint16{0, 1, 2} {
		opts := DefaultOptions()
		opts.MaxDiagnostics = limit
		_, err := build(t, files, "/e/index.js", opts)
		var be *errs.Error
		if !errors.As(err, &be) || be.Kind != errs.KindSyntax {
			t.Fatalf("limit %d: err = %v", limit, err)
		}
		got := len(be.Diagnostics)
		switch {
		case limit == 0 && got < 3:
			t.Errorf("unlimited: %d diagnostics, want all 3", got)
		case limit > 0 && got != int(limit):
			t.Errorf("limit %d: %d diagnostics", limit, got)
		}
	}
}
