// Package transform rewrites the module interface of a parsed file into
// the require/exports form understood by the runtime loader.
//
// Every top-level statement is matched by kind:
//
//	import                 -> const { default: a, b: c } = require("<id>");
//	export default <expr>  -> exports.default = <expr>;
//	export <declaration>   -> <declaration> + exports.<name> = <name>;
//	export { a, b as c }   -> exports.a = a; exports.c = b;
//
// Anything else is left as is. Shapes outside this table fail with a
// TransformError instead of being guessed.
package transform

import (
	"strings"

	"go.uber.org/zap"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/errs"
	"jsbundle/internal/graph"
	"jsbundle/internal/printer"
	"jsbundle/internal/resolve"
	"jsbundle/internal/source"
)

// Module rewrites m in place. A module may be transformed only once.
func Module(m *graph.Module) error {
	if !m.MarkTransformed() {
		return failure(m, source.Span{}, diag.TrnAlreadyTransformed, "module already transformed", "")
	}

	t := transformer{m: m, arenas: m.AST, file: m.Structure()}
	out := make([]ast.StmtID, 0, len(t.file.Stmts))
	for _, id := range t.file.Stmts {
		repl, err := t.stmt(id)
		if err != nil {
			return err
		}
		if len(repl) == 0 {
			// пустая замена всё равно закрывает исходный спан
			repl = []ast.StmtID{t.arenas.NewVerbatim(t.arenas.Stmts.Get(id).Span, "")}
		}
		out = append(out, repl...)
	}
	t.arenas.ReplaceStmts(m.Root, out)
	Logger().Debug("module transformed",
		zap.String("path", m.Path),
		zap.Int("requires", t.requires),
		zap.Int("exports", t.exports))
	return nil
}

// Text renders the current structure of m.
func Text(m *graph.Module) string {
	return printer.Print(m.AST, m.Root, m.File)
}

type transformer struct {
	m        *graph.Module
	arenas   *ast.Builder
	file     *ast.File
	requires int
	exports  int
}

func (t *transformer) stmt(id ast.StmtID) ([]ast.StmtID, error) {
	st := t.arenas.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtOther:
		return []ast.StmtID{id}, nil
	case ast.StmtImport:
		decl, _ := t.arenas.Import(id)
		return t.importDecl(st, decl)
	case ast.StmtExportDefault:
		decl, _ := t.arenas.ExportDefault(id)
		return t.exportDefault(st, decl)
	case ast.StmtExportNamed:
		decl, _ := t.arenas.ExportNamed(id)
		return t.exportNamed(st, decl)
	case ast.StmtRequire, ast.StmtExportAssign:
		return nil, t.fail(st.Span, diag.TrnAlreadyTransformed, "statement was already rewritten")
	}
	return nil, t.fail(st.Span, diag.TrnUnsupportedExport, "unknown statement kind "+st.Kind.String())
}

func (t *transformer) importDecl(st *ast.Stmt, decl *ast.ImportDecl) ([]ast.StmtID, error) {
	if decl.Namespace != nil {
		return nil, t.fail(decl.Namespace.Span, diag.TrnNamespaceImport,
			"namespace import '* as "+decl.Namespace.Local+"' is not supported")
	}
	t.requires++
	req := ast.RequireStmt{
		Target:   resolve.Resolve(t.m.Path, decl.Specifier),
		Bindings: decl.Bindings(),
	}
	return []ast.StmtID{t.arenas.NewRequire(st.Span, req)}, nil
}

func (t *transformer) exportDefault(st *ast.Stmt, decl *ast.ExportDefault) ([]ast.StmtID, error) {
	body := t.m.File.Slice(decl.Body)
	t.exports++
	switch decl.Form {
	case ast.DefaultFunction, ast.DefaultClass:
		if decl.Name != "" {
			// объявление сохраняет локальное имя
			return []ast.StmtID{
				t.arenas.NewVerbatim(st.Span, body),
				t.arenas.NewAssign(st.Span, "default", decl.Name),
			}, nil
		}
	case ast.DefaultIdent:
		if err := t.checkLocal(decl.Name, decl.Body); err != nil {
			return nil, err
		}
	case ast.DefaultExpr:
	}
	return []ast.StmtID{t.arenas.NewAssign(st.Span, "default", body)}, nil
}

func (t *transformer) exportNamed(st *ast.Stmt, decl *ast.ExportNamed) ([]ast.StmtID, error) {
	switch decl.Form {
	case ast.NamedFrom:
		return nil, t.fail(st.Span, diag.TrnReexport, "re-export from '"+decl.Specifier+"' is not supported")
	case ast.NamedAll:
		return nil, t.fail(st.Span, diag.TrnReexport, "'export *' from '"+decl.Specifier+"' is not supported")
	case ast.NamedList:
		out := make([]ast.StmtID, 0, len(decl.Bindings))
		for _, b := range decl.Bindings {
			if err := t.checkLocal(b.Local, b.Span); err != nil {
				return nil, err
			}
			out = append(out, t.arenas.NewAssign(st.Span, b.Exported, b.Local))
		}
		t.exports += len(out)
		return out, nil
	case ast.NamedDecl:
		return t.exportDecl(st, decl)
	}
	return nil, t.fail(st.Span, diag.TrnUnsupportedExport, "unsupported export form")
}

func (t *transformer) exportDecl(st *ast.Stmt, decl *ast.ExportNamed) ([]ast.StmtID, error) {
	if decl.Decl == ast.DeclClass {
		return nil, t.fail(st.Span, diag.TrnUnsupportedExport,
			"'export class' is not supported; declare the class and use 'export { Name }'")
	}
	for _, b := range decl.Bindings {
		if b.Destructured {
			return nil, t.fail(b.Span, diag.TrnDestructuredExport,
				"destructured export '"+b.Local+"' is not supported")
		}
	}

	text := t.m.File.Slice(decl.DeclSpan)
	if decl.Decl != ast.DeclFunction && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	out := make([]ast.StmtID, 0, len(decl.Bindings)+1)
	out = append(out, t.arenas.NewVerbatim(st.Span, text))
	for _, b := range decl.Bindings {
		out = append(out, t.arenas.NewAssign(st.Span, b.Exported, b.Local))
	}
	t.exports += len(decl.Bindings)
	return out, nil
}

// checkLocal: экспортировать можно только простое имя верхнего уровня.
func (t *transformer) checkLocal(name string, sp source.Span) error {
	b, ok := t.file.Lookup(name)
	if !ok {
		return t.fail(sp, diag.TrnUndeclaredBinding, "'"+name+"' is not declared at module top level")
	}
	if b.Pattern {
		return t.fail(sp, diag.TrnDestructuredExport,
			"'"+name+"' is bound by a destructuring pattern and cannot be exported by name")
	}
	return nil
}

func (t *transformer) fail(sp source.Span, code diag.Code, msg string) error {
	stmt := ""
	for _, id := range t.file.Stmts {
		st := t.arenas.Stmts.Get(id)
		if !st.Synthetic && st.Span.Start <= sp.Start && sp.End <= st.Span.End {
			stmt = t.m.File.Slice(st.Span)
			break
		}
	}
	return failure(t.m, sp, code, msg, stmt)
}

func failure(m *graph.Module, sp source.Span, code diag.Code, msg, stmt string) error {
	d := diag.Diagnostic{Severity: diag.SevError, Code: code, Message: msg, Primary: sp}
	b := errs.New(errs.KindTransform).Path(m.Path).Detail("%s", msg).Stmt(stmt).Diagnostics([]diag.Diagnostic{d})
	if sp != (source.Span{}) {
		b = b.At(m.File, sp)
	}
	return b.Build()
}
