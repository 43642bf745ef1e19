package parser

import (
	"testing"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
)

func onlyStmt(t *testing.T, input string) (*ast.Builder, ast.StmtID, *ast.File) {
	t.Helper()
	arenas, file, _ := mustParse(t, input)
	if len(file.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %v", stmtKinds(arenas, file))
	}
	return arenas, file.Stmts[0], file
}

func TestExportDefaultForms(t *testing.T) {
	tests := []struct {
		input string
		form  ast.DefaultForm
		name  string
		body  string
	}{
		{"export default 42;", ast.DefaultExpr, "", "42"},
		{"export default a + b\n", ast.DefaultExpr, "", "a + b"},
		{"export default square;", ast.DefaultIdent, "square", "square"},
		{"export default function area(r) { return r * r; }", ast.DefaultFunction, "area", "function area(r) { return r * r; }"},
		{"export default function (r) { return r; }", ast.DefaultFunction, "", "function (r) { return r; }"},
		{"export default async function load() {}", ast.DefaultFunction, "load", "async function load() {}"},
		{"export default class Shape extends Base { area() {} }", ast.DefaultClass, "Shape", "class Shape extends Base { area() {} }"},
		{"export default class {}", ast.DefaultClass, "", "class {}"},
		{"export default {\n  a: 1,\n};", ast.DefaultExpr, "", "{\n  a: 1,\n}"},
		{"export default (x) => x * 2;", ast.DefaultExpr, "", "(x) => x * 2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			arenas, id, _ := onlyStmt(t, tt.input)
			decl, ok := arenas.ExportDefault(id)
			if !ok {
				t.Fatalf("not an export default")
			}
			if decl.Form != tt.form {
				t.Errorf("form = %d, want %d", decl.Form, tt.form)
			}
			if decl.Name != tt.name {
				t.Errorf("name = %q, want %q", decl.Name, tt.name)
			}
			if got := sliceOf(t, tt.input, decl.Body.Start, decl.Body.End); got != tt.body {
				t.Errorf("body = %q, want %q", got, tt.body)
			}
		})
	}
}

func sliceOf(t *testing.T, input string, start, end uint32) string {
	t.Helper()
	if end < start || int(end) > len(input) {
		t.Fatalf("span [%d,%d) out of range", start, end)
	}
	return input[start:end]
}

func TestExportNamedDecl(t *testing.T) {
	arenas, id, file := onlyStmt(t, "export const a = 1, b = [2, 3], c = { d: 4 };")
	decl, ok := arenas.ExportNamed(id)
	if !ok || decl.Form != ast.NamedDecl || decl.Decl != ast.DeclConst {
		t.Fatalf("unexpected export %+v", decl)
	}
	var names []string
	for _, b := range decl.Bindings {
		names = append(names, b.Exported)
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("exported names = %v", names)
	}
	for _, n := range names {
		if b, ok := file.Lookup(n); !ok || b.Kind != ast.BindConst {
			t.Errorf("%s not declared as const", n)
		}
	}
}

func TestExportFunctionAndClass(t *testing.T) {
	arenas, file, _ := mustParse(t, "export function area(r) { return r }\nexport async function* gen() {}\nexport class Circle {}\n")
	if len(file.Stmts) != 3 {
		t.Fatalf("kinds = %v", stmtKinds(arenas, file))
	}
	wantDecl := []ast.DeclKind{ast.DeclFunction, ast.DeclFunction, ast.DeclClass}
	wantName := []string{"area", "gen", "Circle"}
	for i, id := range file.Stmts {
		decl, ok := arenas.ExportNamed(id)
		if !ok {
			t.Fatalf("stmt %d is not a named export", i)
		}
		if decl.Decl != wantDecl[i] || decl.Bindings[0].Local != wantName[i] {
			t.Errorf("stmt %d = %v %s, want %v %s", i, decl.Decl, decl.Bindings[0].Local, wantDecl[i], wantName[i])
		}
	}
}

func TestExportList(t *testing.T) {
	arenas, id, _ := onlyStmt(t, `export { a, b as c, d as "e-f", e as default };`)
	decl, _ := arenas.ExportNamed(id)
	if decl.Form != ast.NamedList {
		t.Fatalf("form = %d, want list", decl.Form)
	}
	want := [][2]string{{"a", "a"}, {"b", "c"}, {"d", "e-f"}, {"e", "default"}}
	if len(decl.Bindings) != len(want) {
		t.Fatalf("bindings = %+v", decl.Bindings)
	}
	for i, b := range decl.Bindings {
		if b.Local != want[i][0] || b.Exported != want[i][1] {
			t.Errorf("binding %d = %s as %s, want %s as %s", i, b.Local, b.Exported, want[i][0], want[i][1])
		}
	}
}

func TestExportFromAndAll(t *testing.T) {
	arenas, file, _ := mustParse(t, "export { x } from './x.js';\nexport * from './y.js';\nexport * as z from './z.js';\n")
	forms := []ast.NamedForm{ast.NamedFrom, ast.NamedAll, ast.NamedAll}
	specs := []string{"./x.js", "./y.js", "./z.js"}
	for i, id := range file.Stmts {
		decl, ok := arenas.ExportNamed(id)
		if !ok {
			t.Fatalf("stmt %d is not a named export", i)
		}
		if decl.Form != forms[i] || decl.Specifier != specs[i] {
			t.Errorf("stmt %d = form %d %q", i, decl.Form, decl.Specifier)
		}
	}
}

func TestExportDestructured(t *testing.T) {
	arenas, id, file := onlyStmt(t, "export const { a, b: [c, ...d], e = 1 } = obj;")
	decl, _ := arenas.ExportNamed(id)
	if len(decl.Bindings) == 0 || !decl.Bindings[0].Destructured {
		t.Fatalf("expected destructured binding, got %+v", decl.Bindings)
	}
	for _, n := range []string{"a", "c", "d", "e"} {
		b, ok := file.Lookup(n)
		if !ok {
			t.Errorf("pattern name %s not declared", n)
			continue
		}
		if !b.Pattern {
			t.Errorf("%s must be marked as a pattern binding", n)
		}
	}
	if _, ok := file.Lookup("b"); ok {
		t.Errorf("property key b must not be declared")
	}
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"duplicate", "export const a = 1;\nexport { a };", diag.SynDuplicateExport},
		{"duplicate default", "export default 1;\nexport default 2;", diag.SynDuplicateExport},
		{"anonymous function", "export function () {}", diag.SynExpectIdentifier},
		{"dangling export", "export 42;", diag.SynMalformedExport},
		{"empty default", "export default;", diag.SynMalformedExport},
		{"string local", `export { "a" };`, diag.SynMalformedExport},
		{"star without from", "export * ;", diag.SynExpectFrom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag, _ := parseString(t, tt.input)
			if !hasCode(bag, tt.code) {
				t.Fatalf("expected %s, got %d diagnostics", tt.code.ID(), bag.Len())
			}
		})
	}
}

func TestDuplicateExportPointsAtFirst(t *testing.T) {
	_, _, bag, fs := parseString(t, "const a = 1;\nexport { a };\nexport { a };\n")
	for _, d := range bag.Items() {
		if d.Code != diag.SynDuplicateExport {
			continue
		}
		if len(d.Notes) != 1 {
			t.Fatalf("expected a note, got %+v", d.Notes)
		}
		if pos := fs.Get(d.Notes[0].Span.File).Position(d.Notes[0].Span.Start); pos.Line != 2 {
			t.Fatalf("note at line %d, want 2", pos.Line)
		}
		return
	}
	t.Fatal("duplicate export not reported")
}
