package ast

import "jsbundle/internal/source"

// RequireStmt binds locals from the exports of Target:
// const { default: a, b: c } = require("<Target>");
// Without bindings it is a bare require("<Target>");
type RequireStmt struct {
	Target   string
	Bindings []ImportBinding
}

// AssignStmt is exports.<Name> = <Value>;
type AssignStmt struct {
	Name  string
	Value string
}

func (b *Builder) Require(id StmtID) (*RequireStmt, bool) {
	st := b.Stmts.Get(id)
	if st == nil || st.Kind != StmtRequire {
		return nil, false
	}
	return b.Requires.Get(uint32(st.Payload)), true
}

func (b *Builder) Assign(id StmtID) (*AssignStmt, bool) {
	st := b.Stmts.Get(id)
	if st == nil || st.Kind != StmtExportAssign {
		return nil, false
	}
	return b.Assigns.Get(uint32(st.Payload)), true
}

// NewRequire creates a synthetic require statement replacing origin.
func (b *Builder) NewRequire(origin source.Span, req RequireStmt) StmtID {
	req.Bindings = append([]ImportBinding(nil), req.Bindings...)
	id := b.Stmts.New(StmtRequire, origin, PayloadID(b.Requires.Allocate(req)))
	b.Stmts.Get(id).Synthetic = true
	return id
}

// NewAssign creates a synthetic exports assignment replacing origin.
func (b *Builder) NewAssign(origin source.Span, name, value string) StmtID {
	id := b.Stmts.New(StmtExportAssign, origin, PayloadID(b.Assigns.Allocate(AssignStmt{Name: name, Value: value})))
	b.Stmts.Get(id).Synthetic = true
	return id
}

// NewVerbatim creates a synthetic StmtOther that prints text as is.
func (b *Builder) NewVerbatim(origin source.Span, text string) StmtID {
	id := b.Stmts.New(StmtOther, origin, NoPayloadID)
	st := b.Stmts.Get(id)
	st.Synthetic = true
	st.Text = text
	return id
}
