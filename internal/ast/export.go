package ast

import "jsbundle/internal/source"

// DefaultForm classifies what follows `export default`.
type DefaultForm uint8

const (
	DefaultExpr DefaultForm = iota
	DefaultIdent
	DefaultFunction
	DefaultClass
)

// ExportDefault is `export default <body>`.
// Name is the declared name of a function/class (empty when anonymous)
// or the identifier for DefaultIdent.
type ExportDefault struct {
	Form DefaultForm
	Name string
	Body source.Span // всё после "default", без завершающей ';'
}

// NamedForm classifies `export` statements other than default.
type NamedForm uint8

const (
	// NamedDecl: export function f() {} / export const a = 1, b = 2
	NamedDecl NamedForm = iota
	// NamedList: export { a, b as c }
	NamedList
	// NamedFrom: export { a } from "./x"
	NamedFrom
	// NamedAll: export * from "./x", export * as ns from "./x"
	NamedAll
)

// DeclKind is the declaration keyword of NamedDecl.
type DeclKind uint8

const (
	DeclNone DeclKind = iota
	DeclFunction
	DeclClass
	DeclVar
	DeclLet
	DeclConst
)

var declKindNames = [...]string{
	DeclNone:     "",
	DeclFunction: "function",
	DeclClass:    "class",
	DeclVar:      "var",
	DeclLet:      "let",
	DeclConst:    "const",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "?"
}

// ExportBinding publishes Local under Exported.
// Destructured marks a declarator with an object/array pattern; Local is
// then the pattern text.
type ExportBinding struct {
	Local        string
	Exported     string
	Span         source.Span
	Destructured bool
}

// ExportNamed is any export other than default.
type ExportNamed struct {
	Form      NamedForm
	Decl      DeclKind
	DeclSpan  source.Span // объявление без "export"
	Bindings  []ExportBinding
	Specifier string // для NamedFrom / NamedAll
}

// ExportDefault returns the payload of a default export statement.
func (b *Builder) ExportDefault(id StmtID) (*ExportDefault, bool) {
	st := b.Stmts.Get(id)
	if st == nil || st.Kind != StmtExportDefault {
		return nil, false
	}
	return b.Defaults.Get(uint32(st.Payload)), true
}

// ExportNamed returns the payload of a named export statement.
func (b *Builder) ExportNamed(id StmtID) (*ExportNamed, bool) {
	st := b.Stmts.Get(id)
	if st == nil || st.Kind != StmtExportNamed {
		return nil, false
	}
	return b.Named.Get(uint32(st.Payload)), true
}

func (b *Builder) NewExportDefault(span source.Span, decl ExportDefault) StmtID {
	payload := PayloadID(b.Defaults.Allocate(decl))
	return b.Stmts.New(StmtExportDefault, span, payload)
}

func (b *Builder) NewExportNamed(span source.Span, decl ExportNamed) StmtID {
	decl.Bindings = append([]ExportBinding(nil), decl.Bindings...)
	payload := PayloadID(b.Named.Allocate(decl))
	return b.Stmts.New(StmtExportNamed, span, payload)
}
