package ast

import (
	"jsbundle/internal/source"
)

// BindingKind says how a top-level name was introduced.
type BindingKind uint8

const (
	BindVar BindingKind = iota
	BindLet
	BindConst
	BindFunction
	BindClass
	BindImport
)

var bindingKindNames = [...]string{
	BindVar:      "var",
	BindLet:      "let",
	BindConst:    "const",
	BindFunction: "function",
	BindClass:    "class",
	BindImport:   "import",
}

func (k BindingKind) String() string {
	if int(k) < len(bindingKindNames) {
		return bindingKindNames[k]
	}
	return "?"
}

// Binding is a name declared at module top level.
// Pattern marks names bound by an object or array destructuring pattern.
type Binding struct {
	Name    string
	Kind    BindingKind
	Span    source.Span
	Pattern bool
}

type File struct {
	Span     source.Span
	Source   source.FileID
	Stmts    []StmtID
	Bindings []Binding
	byName   map[string]int
}

// Lookup finds a top-level binding by name.
func (f *File) Lookup(name string) (Binding, bool) {
	if i, ok := f.byName[name]; ok {
		return f.Bindings[i], true
	}
	return Binding{}, false
}

// Declare records a top-level binding; the first declaration wins.
func (f *File) Declare(b Binding) {
	if f.byName == nil {
		f.byName = make(map[string]int)
	}
	if _, ok := f.byName[b.Name]; ok {
		return
	}
	f.byName[b.Name] = len(f.Bindings)
	f.Bindings = append(f.Bindings, b)
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:   sp,
		Source: sp.File,
		Stmts:  make([]StmtID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
