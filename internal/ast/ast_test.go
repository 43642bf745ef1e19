package ast

import (
	"testing"

	"jsbundle/internal/source"
)

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatalf("empty arena must return nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 || a.Len() != 1 {
		t.Fatalf("unexpected arena state: id=%d len=%d", id, a.Len())
	}
}

func TestBuilderPayloadAccessors(t *testing.T) {
	b := NewBuilder(Hints{})
	file := b.NewFile(source.Span{File: 3, End: 40})

	imp := b.NewImport(source.Span{File: 3, Start: 0, End: 10}, ImportDecl{
		Specifier: "./a.js",
		HasClause: true,
		Default:   &ImportBinding{Imported: "default", Local: "a"},
		Named:     []ImportBinding{{Imported: "b", Local: "c"}},
	})
	other := b.NewStmt(StmtOther, source.Span{File: 3, Start: 11, End: 20})
	def := b.NewExportDefault(source.Span{File: 3, Start: 21, End: 40}, ExportDefault{Form: DefaultIdent, Name: "a"})
	for _, id := range []StmtID{imp, other, def} {
		b.PushStmt(file, id)
	}

	decl, ok := b.Import(imp)
	if !ok || decl.Specifier != "./a.js" {
		t.Fatalf("Import accessor failed")
	}
	if got := decl.Bindings(); len(got) != 2 || got[0].Imported != "default" || got[1].Local != "c" {
		t.Fatalf("unexpected bindings %+v", got)
	}
	if _, ok := b.Import(other); ok {
		t.Fatalf("Import accessor must reject other kinds")
	}
	if d, ok := b.ExportDefault(def); !ok || d.Name != "a" {
		t.Fatalf("ExportDefault accessor failed")
	}
	if got := b.ImportStmts(file); len(got) != 1 || got[0] != imp {
		t.Fatalf("ImportStmts: %v", got)
	}
	if b.Files.Get(file).Source != 3 {
		t.Fatalf("file must remember its source file")
	}
}

func TestSyntheticStatements(t *testing.T) {
	b := NewBuilder(Hints{})
	origin := source.Span{Start: 5, End: 30}

	req := b.NewRequire(origin, RequireStmt{Target: "/src/x.js"})
	asg := b.NewAssign(origin, "default", "f")
	txt := b.NewVerbatim(origin, "function f() {}")

	for _, id := range []StmtID{req, asg, txt} {
		st := b.Stmts.Get(id)
		if !st.Synthetic || st.Span != origin {
			t.Fatalf("statement %d must be synthetic with the origin span", id)
		}
	}
	if r, ok := b.Require(req); !ok || r.Target != "/src/x.js" {
		t.Fatalf("Require accessor failed")
	}
	if a, ok := b.Assign(asg); !ok || a.Name != "default" || a.Value != "f" {
		t.Fatalf("Assign accessor failed")
	}
	if b.Stmts.Get(txt).Text != "function f() {}" || b.Stmts.Get(txt).Kind != StmtOther {
		t.Fatalf("verbatim statement lost its text")
	}
}

func TestFileBindingsFirstWins(t *testing.T) {
	var f File
	f.Declare(Binding{Name: "x", Kind: BindVar})
	f.Declare(Binding{Name: "x", Kind: BindFunction})
	f.Declare(Binding{Name: "y", Kind: BindImport})

	if b, ok := f.Lookup("x"); !ok || b.Kind != BindVar {
		t.Fatalf("first declaration must win, got %+v", b)
	}
	if _, ok := f.Lookup("z"); ok {
		t.Fatalf("unknown names must not resolve")
	}
	if len(f.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(f.Bindings))
	}
	if StmtExportNamed.String() != "ExportNamed" || !StmtImport.IsInterface() || StmtRequire.IsInterface() {
		t.Fatalf("StmtKind helpers are wrong")
	}
}
