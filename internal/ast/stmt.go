package ast

import (
	"jsbundle/internal/source"
)

// StmtKind is the closed set of top-level statement variants.
type StmtKind uint8

const (
	// StmtOther is any statement outside the module interface; printed verbatim.
	StmtOther StmtKind = iota
	StmtImport
	StmtExportDefault
	StmtExportNamed
	// StmtRequire replaces an import: const { ... } = require("...");
	StmtRequire
	// StmtExportAssign publishes a value: exports.name = value;
	StmtExportAssign
)

var stmtKindNames = [...]string{
	StmtOther:         "Other",
	StmtImport:        "Import",
	StmtExportDefault: "ExportDefault",
	StmtExportNamed:   "ExportNamed",
	StmtRequire:       "Require",
	StmtExportAssign:  "ExportAssign",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Unknown"
}

// IsInterface reports whether the kind is an import or export statement.
func (k StmtKind) IsInterface() bool {
	return k == StmtImport || k == StmtExportDefault || k == StmtExportNamed
}

// Stmt is one top-level statement. Span always points at the original
// source range; statements produced by a rewrite share the span of the
// statement they replaced and are marked Synthetic.
type Stmt struct {
	Kind      StmtKind
	Span      source.Span
	Payload   PayloadID
	Synthetic bool
	// Text holds the output text of a synthetic StmtOther (a declaration kept by a rewrite).
	Text string
}

type Stmts struct {
	Arena *Arena[Stmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}
