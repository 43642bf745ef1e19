package parser

import (
	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/source"
	"jsbundle/internal/token"
)

// parseExport разбирает все формы export. Неподдерживаемые загрузчиком
// формы (export * / export ... from) разбираются полностью, а отказ
// происходит на этапе трансформации.
func (p *Parser) parseExport() ast.StmtID {
	start := p.pos
	p.advance() // export

	var id ast.StmtID
	switch {
	case p.at(token.KwDefault):
		id = p.parseExportDefault(start)
	case p.at(token.Star):
		id = p.parseExportAll(start)
	case p.at(token.LBrace):
		id = p.parseExportList(start)
	default:
		id = p.parseExportDecl(start)
	}
	if !id.IsValid() {
		p.resync(start)
	}
	return id
}

func (p *Parser) parseExportDefault(start int) ast.StmtID {
	kwTok := p.advance() // default
	bodyStart := p.pos
	if p.at(token.EOF) || p.at(token.Semicolon) {
		p.errAt(diag.SynMalformedExport, p.diagSpan(), "expected expression after 'export default'")
		return ast.NoStmtID
	}
	p.markExported("default", kwTok.Span)

	var decl ast.ExportDefault
	if end, ok := p.declEnd(bodyStart); ok {
		name, kind, named := p.declName(bodyStart)
		decl.Form = ast.DefaultFunction
		if kind == ast.DeclClass {
			decl.Form = ast.DefaultClass
		}
		if named {
			decl.Name = name.Text
			p.declare(name.Text, bindingKindOf(kind), name.Span)
		}
		decl.Body = p.spanOf(bodyStart, end)
		p.pos = end
		p.eat(token.Semicolon)
		return p.arenas.NewExportDefault(p.spanOf(start, p.pos), decl)
	}

	end := p.stmtEnd(bodyStart)
	exprEnd := p.trimSemi(bodyStart, end)
	if exprEnd == bodyStart {
		p.errAt(diag.SynMalformedExport, p.diagSpan(), "expected expression after 'export default'")
		return ast.NoStmtID
	}
	decl.Form = ast.DefaultExpr
	if exprEnd-bodyStart == 1 && p.toks[bodyStart].Kind == token.Ident {
		decl.Form = ast.DefaultIdent
		decl.Name = p.toks[bodyStart].Text
	}
	decl.Body = p.spanOf(bodyStart, exprEnd)
	p.pos = end
	return p.arenas.NewExportDefault(p.spanOf(start, end), decl)
}

// export * from "x" / export * as ns from "x"
func (p *Parser) parseExportAll(start int) ast.StmtID {
	p.advance() // *
	decl := ast.ExportNamed{Form: ast.NamedAll}
	if p.eatWord("as") {
		from := p.pos
		name, ok := p.moduleExportName()
		if !ok {
			return ast.NoStmtID
		}
		sp := p.spanOf(from, p.pos)
		if !p.markExported(name, sp) {
			return ast.NoStmtID
		}
		decl.Bindings = []ast.ExportBinding{{Local: "*", Exported: name, Span: sp}}
	}
	if !p.eatWord("from") {
		p.errAt(diag.SynExpectFrom, p.diagSpan(), "expected 'from' after 'export *'")
		return ast.NoStmtID
	}
	var sp source.Span
	if !p.parseSpecifier(&decl.Specifier, &sp) {
		return ast.NoStmtID
	}
	p.skipAttributes()
	p.finishStmt(diag.SynMalformedExport)
	return p.arenas.NewExportNamed(p.spanOf(start, p.pos), decl)
}

// export { a, b as c, d as "e-f" } [from "x"]
func (p *Parser) parseExportList(start int) ast.StmtID {
	p.advance() // {
	decl := ast.ExportNamed{Form: ast.NamedList}
	var localStrings []token.Token
	for !p.at(token.RBrace) {
		from := p.pos
		localTok := p.toks[p.pos]
		local, ok := p.moduleExportName()
		if !ok {
			return ast.NoStmtID
		}
		if localTok.Kind != token.Ident {
			localStrings = append(localStrings, localTok)
		}
		exported := local
		if p.eatWord("as") {
			if exported, ok = p.moduleExportName(); !ok {
				return ast.NoStmtID
			}
		}
		sp := p.spanOf(from, p.pos)
		if !p.markExported(exported, sp) {
			return ast.NoStmtID
		}
		decl.Bindings = append(decl.Bindings, ast.ExportBinding{Local: local, Exported: exported, Span: sp})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynMalformedExport, "expected '}' in export list"); !ok {
		return ast.NoStmtID
	}
	if p.eatWord("from") {
		decl.Form = ast.NamedFrom
		var sp source.Span
		if !p.parseSpecifier(&decl.Specifier, &sp) {
			return ast.NoStmtID
		}
		p.skipAttributes()
	} else if len(localStrings) > 0 {
		// строковые и зарезервированные имена допустимы только в реэкспорте
		tok := localStrings[0]
		p.errAt(diag.SynMalformedExport, tok.Span, "'"+tok.Text+"' is not a local binding")
		return ast.NoStmtID
	}
	p.finishStmt(diag.SynMalformedExport)
	return p.arenas.NewExportNamed(p.spanOf(start, p.pos), decl)
}

// export function f() {} / export class C {} / export const a = 1, b = 2
func (p *Parser) parseExportDecl(start int) ast.StmtID {
	declStart := p.pos
	tok := p.toks[declStart]

	if kind, ok := declKindOf(tok); ok {
		end := p.stmtEnd(declStart)
		list := p.declarators(declStart+1, p.trimSemi(declStart, end))
		if len(list) == 0 {
			p.errAt(diag.SynMalformedExport, p.diagSpan(), "expected declaration after '"+tok.Text+"'")
			return ast.NoStmtID
		}
		decl := ast.ExportNamed{Form: ast.NamedDecl, Decl: kind, DeclSpan: p.spanOf(declStart, end)}
		for _, d := range list {
			sp := p.spanOf(d.from, d.to)
			if d.destructured {
				// имена шаблона экспортируются по отдельности, но форму
				// помечаем для трансформации
				decl.Bindings = append(decl.Bindings, ast.ExportBinding{
					Local: p.text(d.from, p.cutDefault(d.from, d.to)), Span: sp, Destructured: true,
				})
			}
			for _, n := range d.names {
				if !p.markExported(n.Text, n.Span) {
					return ast.NoStmtID
				}
				p.declarePattern(n.Text, bindingKindOf(kind), n.Span, d.destructured)
				if !d.destructured {
					decl.Bindings = append(decl.Bindings, ast.ExportBinding{Local: n.Text, Exported: n.Text, Span: sp})
				}
			}
		}
		p.pos = end
		return p.arenas.NewExportNamed(p.spanOf(start, end), decl)
	}

	end, ok := p.declEnd(declStart)
	if !ok {
		p.errAt(diag.SynMalformedExport, tok.Span, "unexpected '"+tok.Text+"' after 'export'")
		return ast.NoStmtID
	}
	name, kind, named := p.declName(declStart)
	if !named {
		p.errAt(diag.SynExpectIdentifier, tok.Span, "exported "+kind.String()+" declaration must have a name")
		return ast.NoStmtID
	}
	if !p.markExported(name.Text, name.Span) {
		return ast.NoStmtID
	}
	p.declare(name.Text, bindingKindOf(kind), name.Span)
	p.pos = end
	p.eat(token.Semicolon)
	return p.arenas.NewExportNamed(p.spanOf(start, p.pos), ast.ExportNamed{
		Form:     ast.NamedDecl,
		Decl:     kind,
		DeclSpan: p.spanOf(declStart, end),
		Bindings: []ast.ExportBinding{{Local: name.Text, Exported: name.Text, Span: name.Span}},
	})
}

// markExported проверяет уникальность экспортируемого имени.
func (p *Parser) markExported(name string, sp source.Span) bool {
	if prev, dup := p.exported[name]; dup {
		pos := p.src.Position(prev.Start)
		p.build(diag.SynDuplicateExport, diag.SevError, sp, "duplicate export '"+name+"' (first exported at line "+uitoa(pos.Line)+")").
			WithNote(prev, "'"+name+"' first exported here").
			Emit()
		return false
	}
	p.exported[name] = sp
	return true
}
