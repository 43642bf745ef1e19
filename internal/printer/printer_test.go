package printer_test

import (
	"context"
	"testing"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/parser"
	"jsbundle/internal/printer"
	"jsbundle/internal/source"
)

func parse(t *testing.T, input string) (*ast.Builder, ast.FileID, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	bag := diag.NewBag(10)
	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(context.Background(), file, arenas, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %d", bag.Len())
	}
	return arenas, res.File, file
}

func TestPrintUnchangedIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"// only a comment\n",
		"const a = 1;\n\n/* block */\nfunction f() {\n  return a;\n}\n\nf()  // trailing\n",
		"#!/usr/bin/env node\nconsole.log(`x${1}y`);\r\n",
		"import a from './a.js';\nexport default a;\n",
	}
	for _, in := range inputs {
		arenas, id, src := parse(t, in)
		if got := printer.Print(arenas, id, src); got != string(src.Content) {
			t.Errorf("Print changed text:\n got %q\nwant %q", got, src.Content)
		}
	}
}

func TestPrintSyntheticGroups(t *testing.T) {
	in := "import a, { b as c } from './m.js';\n// keep me\nexport const x = 1, y = 2;\nlog(a);\n"
	arenas, id, src := parse(t, in)
	file := arenas.Files.Get(id)

	imp := arenas.Stmts.Get(file.Stmts[0])
	exp := arenas.Stmts.Get(file.Stmts[1])
	req := arenas.NewRequire(imp.Span, ast.RequireStmt{
		Target: "/abs/m.js",
		Bindings: []ast.ImportBinding{
			{Imported: "default", Local: "a"},
			{Imported: "b", Local: "c"},
		},
	})
	decl := arenas.NewVerbatim(exp.Span, "const x = 1, y = 2;")
	ax := arenas.NewAssign(exp.Span, "x", "x")
	ay := arenas.NewAssign(exp.Span, "y", "y")
	arenas.ReplaceStmts(id, []ast.StmtID{req, decl, ax, ay, file.Stmts[2]})

	want := "const { default: a, b: c } = require(\"/abs/m.js\");\n// keep me\n" +
		"const x = 1, y = 2;\nexports.x = x;\nexports.y = y;\nlog(a);\n"
	if got := printer.Print(arenas, id, src); got != want {
		t.Fatalf("Print:\n got %q\nwant %q", got, want)
	}
}

func TestPrintBareRequireAndQuotedKeys(t *testing.T) {
	arenas, id, src := parse(t, "import './side.js'\nimport { 'x-y' as z } from './q.js'\n")
	file := arenas.Files.Get(id)
	r1 := arenas.NewRequire(arenas.Stmts.Get(file.Stmts[0]).Span, ast.RequireStmt{Target: `C:\dir\side.js`})
	r2 := arenas.NewRequire(arenas.Stmts.Get(file.Stmts[1]).Span, ast.RequireStmt{
		Target:   "/q.js",
		Bindings: []ast.ImportBinding{{Imported: "x-y", Local: "z"}},
	})
	arenas.ReplaceStmts(id, []ast.StmtID{r1, r2})

	want := "require(\"C:\\\\dir\\\\side.js\");\nconst { \"x-y\": z } = require(\"/q.js\");\n"
	if got := printer.Print(arenas, id, src); got != want {
		t.Fatalf("Print:\n got %q\nwant %q", got, want)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in    string
		quote byte
		want  string
	}{
		{"/a/b.js", '"', `"/a/b.js"`},
		{`C:\x\y.js`, '"', `"C:\\x\\y.js"`},
		{`it's`, '\'', `'it\'s'`},
		{`say "hi"`, '\'', `'say "hi"'`},
		{"a\nb\u2028", '"', `"a\nb\u2028"`},
		{"\x01", '"', `"\u0001"`},
		{"юникод.js", '"', `"юникод.js"`},
	}
	for _, tt := range tests {
		if got := printer.Quote(tt.in, tt.quote); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMember(t *testing.T) {
	tests := map[string]string{
		"a":       "exports.a",
		"default": "exports.default",
		"$x_1":    "exports.$x_1",
		"e-f":     `exports["e-f"]`,
		"1st":     `exports["1st"]`,
	}
	for name, want := range tests {
		if got := printer.Member("exports", name); got != want {
			t.Errorf("Member(%q) = %s, want %s", name, got, want)
		}
	}
}
