package parser

// Тесты для import-деклараций.
//
// Покрытие:
//   - import "x"; import a from "x"; import a, { b } from "x"
//   - { b as c, default as d, "x-y" as e } и висячая запятая
//   - import * as ns (разбирается, отказ на трансформации)
//   - import() и import.meta не являются декларациями
//   - ошибки: нет from, нет строки, незакрытый список

import (
	"testing"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
)

func parseSingleImport(t *testing.T, input string) *ast.ImportDecl {
	t.Helper()
	arenas, fileID, bag, _ := parseString(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	imports := arenas.ImportStmts(fileID)
	if len(imports) != 1 {
		t.Fatalf("expected exactly one import, got kinds %v", stmtKinds(arenas, arenas.Files.Get(fileID)))
	}
	decl, ok := arenas.Import(imports[0])
	if !ok {
		t.Fatalf("statement is not an import")
	}
	return decl
}

func TestImportForms(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		specifier string
		bindings  []ast.ImportBinding
		clause    bool
	}{
		{
			name:      "bare",
			input:     `import "./side.js";`,
			specifier: "./side.js",
		},
		{
			name:      "default",
			input:     `import square from './square.js';`,
			specifier: "./square.js",
			bindings:  []ast.ImportBinding{{Imported: "default", Local: "square"}},
			clause:    true,
		},
		{
			name:      "named with alias",
			input:     `import { a, b as c } from "./m.js"`,
			specifier: "./m.js",
			bindings:  []ast.ImportBinding{{Imported: "a", Local: "a"}, {Imported: "b", Local: "c"}},
			clause:    true,
		},
		{
			name:      "default and named",
			input:     "import d, { x, } from \"../up/m.js\"\n",
			specifier: "../up/m.js",
			bindings:  []ast.ImportBinding{{Imported: "default", Local: "d"}, {Imported: "x", Local: "x"}},
			clause:    true,
		},
		{
			name:      "keyword and string names",
			input:     `import { default as d, "kebab-name" as k } from "./m.js";`,
			specifier: "./m.js",
			bindings:  []ast.ImportBinding{{Imported: "default", Local: "d"}, {Imported: "kebab-name", Local: "k"}},
			clause:    true,
		},
		{
			name:      "escaped specifier",
			input:     `import "./\x61\u{62}.js";`,
			specifier: "./ab.js",
		},
		{
			name:      "import attributes",
			input:     `import data from "./data.js" with { type: "json" };`,
			specifier: "./data.js",
			bindings:  []ast.ImportBinding{{Imported: "default", Local: "data"}},
			clause:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := parseSingleImport(t, tt.input)
			if decl.Specifier != tt.specifier {
				t.Errorf("specifier = %q, want %q", decl.Specifier, tt.specifier)
			}
			if decl.HasClause != tt.clause {
				t.Errorf("HasClause = %v, want %v", decl.HasClause, tt.clause)
			}
			got := decl.Bindings()
			if len(got) != len(tt.bindings) {
				t.Fatalf("bindings = %+v, want %+v", got, tt.bindings)
			}
			for i := range got {
				if got[i].Imported != tt.bindings[i].Imported || got[i].Local != tt.bindings[i].Local {
					t.Errorf("binding %d = %s as %s, want %s as %s",
						i, got[i].Imported, got[i].Local, tt.bindings[i].Imported, tt.bindings[i].Local)
				}
			}
		})
	}
}

func TestImportNamespaceIsParsed(t *testing.T) {
	decl := parseSingleImport(t, `import * as ns from "./m.js";`)
	if decl.Namespace == nil || decl.Namespace.Local != "ns" {
		t.Fatalf("namespace = %+v, want ns", decl.Namespace)
	}
	if len(decl.Bindings()) != 0 {
		t.Errorf("namespace import must not produce named bindings")
	}
}

func TestImportDeclaresBindings(t *testing.T) {
	_, file, _ := mustParse(t, "import a, { b as c } from './m.js';\nimport * as ns from './n.js';\n")
	for _, name := range []string{"a", "c", "ns"} {
		b, ok := file.Lookup(name)
		if !ok {
			t.Errorf("binding %q not declared", name)
			continue
		}
		if b.Kind != ast.BindImport {
			t.Errorf("binding %q kind = %v, want import", name, b.Kind)
		}
	}
	if _, ok := file.Lookup("b"); ok {
		t.Errorf("imported name b must not be a local binding")
	}
}

func TestDynamicImportIsNotDeclaration(t *testing.T) {
	arenas, file, _ := mustParse(t, "const m = import('./m.js');\nimport.meta.url;\nimport('./x.js').then(f);\n")
	for _, k := range stmtKinds(arenas, file) {
		if k != ast.StmtOther {
			t.Fatalf("kinds = %v, want only Other", stmtKinds(arenas, file))
		}
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing from", `import a "./m.js";`, diag.SynExpectFrom},
		{"missing specifier", `import a from x;`, diag.SynExpectString},
		{"unclosed list", `import { a, b from "./m.js";`, diag.SynMalformedImport},
		{"string needs alias", `import { "a-b" } from "./m.js";`, diag.SynMalformedImport},
		{"bad clause", `import 42 from "./m.js";`, diag.SynMalformedImport},
		{"star without as", `import * from "./m.js";`, diag.SynMalformedImport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag, _ := parseString(t, tt.input)
			if !hasCode(bag, tt.code) {
				var got []string
				for _, d := range bag.Items() {
					got = append(got, d.Code.ID()+" "+d.Message)
				}
				t.Fatalf("expected %s, got %v", tt.code.ID(), got)
			}
		})
	}
}

func TestImportMissingSemicolonSameLine(t *testing.T) {
	_, _, bag, _ := parseString(t, `import a from "./a.js" foo();`)
	if !hasCode(bag, diag.SynMalformedImport) {
		t.Fatalf("expected %s for trailing tokens", diag.SynMalformedImport.ID())
	}
}
