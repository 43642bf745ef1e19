package ast

import (
	"jsbundle/internal/source"
)

type Hints struct{ Files, Stmts uint }

// Builder owns the arenas of one or more parsed files.
type Builder struct {
	Files    *Files
	Stmts    *Stmts
	Imports  *Arena[ImportDecl]
	Defaults *Arena[ExportDefault]
	Named    *Arena[ExportNamed]
	Requires *Arena[RequireStmt]
	Assigns  *Arena[AssignStmt]
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	return &Builder{
		Files:    NewFiles(hints.Files),
		Stmts:    NewStmts(hints.Stmts),
		Imports:  NewArena[ImportDecl](8),
		Defaults: NewArena[ExportDefault](1),
		Named:    NewArena[ExportNamed](8),
		Requires: NewArena[RequireStmt](8),
		Assigns:  NewArena[AssignStmt](8),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) NewStmt(kind StmtKind, sp source.Span) StmtID {
	return b.Stmts.New(kind, sp, NoPayloadID)
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}

// ReplaceStmts swaps the statement list of a file.
func (b *Builder) ReplaceStmts(file FileID, stmts []StmtID) {
	b.Files.Get(file).Stmts = stmts
}

// ImportStmts lists the import statements of a file in source order.
func (b *Builder) ImportStmts(file FileID) []StmtID {
	var out []StmtID
	for _, id := range b.Files.Get(file).Stmts {
		if b.Stmts.Get(id).Kind == StmtImport {
			out = append(out, id)
		}
	}
	return out
}
