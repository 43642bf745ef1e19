// Package metafile describes a finished build in the esbuild metafile
// shape: every input with its imports and every output with the share of
// bytes each input contributed. It is written as JSON or msgpack.
package metafile

import (
	"encoding/hex"
	"path/filepath"
	"strings"

	"jsbundle/internal/ast"
	"jsbundle/internal/bundler"
	"jsbundle/internal/graph"
)

// Metafile is the root document.
type Metafile struct {
	Inputs  map[string]Input  `json:"inputs" msgpack:"inputs"`
	Outputs map[string]Output `json:"outputs" msgpack:"outputs"`
}

// Input is one module of the graph.
type Input struct {
	Bytes   int      `json:"bytes" msgpack:"bytes"`
	Hash    string   `json:"hash" msgpack:"hash"`
	Imports []Import `json:"imports" msgpack:"imports"`
	Format  string   `json:"format,omitempty" msgpack:"format,omitempty"` // "esm" если есть import/export
}

// Import is one import statement of an input.
type Import struct {
	Path     string `json:"path" msgpack:"path"`
	Kind     string `json:"kind" msgpack:"kind"`
	Original string `json:"original,omitempty" msgpack:"original,omitempty"`
}

// Output is one emitted file.
type Output struct {
	Bytes      int                     `json:"bytes" msgpack:"bytes"`
	Inputs     map[string]Contribution `json:"inputs" msgpack:"inputs"`
	Imports    []Import                `json:"imports" msgpack:"imports"`
	Exports    []string                `json:"exports" msgpack:"exports"`
	EntryPoint string                  `json:"entryPoint,omitempty" msgpack:"entryPoint,omitempty"`
}

// Contribution is the size of an input's module map entry in an output.
type Contribution struct {
	BytesInOutput int `json:"bytesInOutput" msgpack:"bytesInOutput"`
}

// ImportKind is the esbuild kind of a static import statement.
const ImportKind = "import-statement"

// Options controls how paths are written.
type Options struct {
	// BaseDir makes paths relative; empty keeps module identifiers as is.
	BaseDir string
	// OutputPath is the key of the bundle in Outputs.
	OutputPath string
}

// Build describes g and the bundle emitted from it.
func Build(g *graph.Graph, b bundler.Bundle, opts Options) *Metafile {
	mf := &Metafile{
		Inputs:  make(map[string]Input, len(g.Modules)),
		Outputs: make(map[string]Output, 1),
	}
	for _, m := range g.Order() {
		in := Input{
			Bytes:   len(m.File.Content),
			Hash:    hex.EncodeToString(m.File.Hash[:]),
			Imports: make([]Import, 0, len(m.Imports)),
		}
		if isESM(m) {
			in.Format = "esm"
		}
		for _, imp := range m.Imports {
			in.Imports = append(in.Imports, Import{
				Path:     rel(opts.BaseDir, imp.Target),
				Kind:     ImportKind,
				Original: imp.Specifier,
			})
		}
		mf.Inputs[rel(opts.BaseDir, m.Path)] = in
	}

	out := Output{
		Bytes:      len(b.Content),
		Inputs:     make(map[string]Contribution, len(b.Modules)),
		Imports:    []Import{},
		Exports:    []string{},
		EntryPoint: rel(opts.BaseDir, b.Entry),
	}
	for i, id := range b.Modules {
		if i < len(b.Bytes) {
			out.Inputs[rel(opts.BaseDir, id)] = Contribution{BytesInOutput: b.Bytes[i]}
		}
	}
	key := opts.OutputPath
	if key == "" {
		key = b.Name
	}
	mf.Outputs[rel(opts.BaseDir, key)] = out
	return mf
}

// isESM reports whether the module used import/export syntax, before or
// after the interface rewrite.
func isESM(m *graph.Module) bool {
	for _, id := range m.Structure().Stmts {
		switch m.AST.Stmts.Get(id).Kind {
		case ast.StmtImport, ast.StmtExportDefault, ast.StmtExportNamed, ast.StmtRequire, ast.StmtExportAssign:
			return true
		case ast.StmtOther:
		}
	}
	return false
}

func rel(base, p string) string {
	if base == "" {
		return p
	}
	r, err := filepath.Rel(filepath.FromSlash(base), filepath.FromSlash(p))
	if err != nil || strings.HasPrefix(r, "..") {
		return p
	}
	return filepath.ToSlash(r)
}
