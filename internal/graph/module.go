package graph

import (
	"jsbundle/internal/ast"
	"jsbundle/internal/source"
)

// ModuleID indexes Graph.Modules.
type ModuleID uint32

// Import is one import statement of a module and the identifier it
// resolved to.
type Import struct {
	Stmt      ast.StmtID
	Specifier string
	Target    string
	Span      source.Span
}

// Module is one source file with its parsed structure and direct
// dependencies. Path is the module identifier (absolute, slash separated).
type Module struct {
	ID   ModuleID
	Path string
	File *source.File
	// AST owns the parsed statements; Root is the file node inside it.
	AST  *ast.Builder
	Root ast.FileID
	// Deps has one entry per import statement in source order; entries may repeat.
	Deps    []ModuleID
	Imports []Import

	transformed bool
}

// Structure returns the top-level statement list of the module.
func (m *Module) Structure() *ast.File {
	return m.AST.Files.Get(m.Root)
}

// Transformed reports whether the module interface was already rewritten.
func (m *Module) Transformed() bool {
	return m.transformed
}

// MarkTransformed flags the module as rewritten; it returns false if the
// flag was already set.
func (m *Module) MarkTransformed() bool {
	if m.transformed {
		return false
	}
	m.transformed = true
	return true
}
