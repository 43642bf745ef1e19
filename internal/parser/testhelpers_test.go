package parser

import (
	"context"
	"testing"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/source"
)

// parseString — хелпер: разбирает input как test.js.
func parseString(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	bag := diag.NewBag(100)
	arenas := ast.NewBuilder(ast.Hints{})
	res := Parse(context.Background(), fs.Get(fileID), arenas, Options{
		MaxErrors: 100,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	return arenas, res.File, bag, fs
}

// mustParse падает при любых диагностиках.
func mustParse(t *testing.T, input string) (*ast.Builder, *ast.File, *source.FileSet) {
	t.Helper()
	arenas, fileID, bag, fs := parseString(t, input)
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Errorf("unexpected diagnostic: %s %s", d.Code.ID(), d.Message)
		}
		t.FailNow()
	}
	return arenas, arenas.Files.Get(fileID), fs
}

func stmtKinds(arenas *ast.Builder, file *ast.File) []ast.StmtKind {
	out := make([]ast.StmtKind, 0, len(file.Stmts))
	for _, id := range file.Stmts {
		out = append(out, arenas.Stmts.Get(id).Kind)
	}
	return out
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
