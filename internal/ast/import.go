package ast

import "jsbundle/internal/source"

// ImportDecl is `import <clause> from "<specifier>"` or `import "<specifier>"`.
type ImportDecl struct {
	Specifier     string // значение строки без кавычек
	SpecifierSpan source.Span
	Default       *ImportBinding // import a from ...
	Named         []ImportBinding
	Namespace     *ImportBinding // import * as ns from ... (разбирается, но не поддерживается)
	HasClause     bool
}

// ImportBinding binds Local to the remote key Imported.
// For a default binding Imported is "default".
type ImportBinding struct {
	Imported string
	Local    string
	Span     source.Span
}

// Bindings returns default then named bindings in source order.
func (d *ImportDecl) Bindings() []ImportBinding {
	out := make([]ImportBinding, 0, len(d.Named)+1)
	if d.Default != nil {
		out = append(out, *d.Default)
	}
	return append(out, d.Named...)
}

// Import returns the ImportDecl for the given statement, or nil/false if invalid.
func (b *Builder) Import(id StmtID) (*ImportDecl, bool) {
	st := b.Stmts.Get(id)
	if st == nil || st.Kind != StmtImport {
		return nil, false
	}
	return b.Imports.Get(uint32(st.Payload)), true
}

// NewImport appends an import statement payload.
func (b *Builder) NewImport(span source.Span, decl ImportDecl) StmtID {
	decl.Named = append([]ImportBinding(nil), decl.Named...)
	payload := PayloadID(b.Imports.Allocate(decl))
	return b.Stmts.New(StmtImport, span, payload)
}
