package parser

import (
	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/source"
	"jsbundle/internal/token"
)

// parseImport разбирает
//
//	import "x"
//	import a from "x"
//	import a, { b, c as d } from "x"
//	import * as ns from "x"
//
// Атрибуты импорта (with { ... } / assert { ... }) пропускаются.
func (p *Parser) parseImport() ast.StmtID {
	start := p.pos
	p.advance() // import

	var decl ast.ImportDecl
	ok := true
	if !p.at(token.StringLit) {
		decl.HasClause = true
		ok = p.parseImportClause(&decl)
		if ok {
			if !p.eatWord("from") {
				p.errAt(diag.SynExpectFrom, p.diagSpan(), "expected 'from' after import clause, got '"+p.toks[p.pos].Text+"'")
				ok = false
			}
		}
	}
	if ok {
		ok = p.parseSpecifier(&decl.Specifier, &decl.SpecifierSpan)
	}
	if !ok {
		p.resync(start)
		return ast.NoStmtID
	}
	p.skipAttributes()
	p.finishStmt(diag.SynMalformedImport)

	for _, b := range decl.Bindings() {
		p.declare(b.Local, ast.BindImport, b.Span)
	}
	if decl.Namespace != nil {
		p.declare(decl.Namespace.Local, ast.BindImport, decl.Namespace.Span)
	}
	return p.arenas.NewImport(p.spanOf(start, p.pos), decl)
}

func (p *Parser) parseImportClause(decl *ast.ImportDecl) bool {
	if p.at(token.Ident) {
		tok := p.advance()
		decl.Default = &ast.ImportBinding{Imported: "default", Local: tok.Text, Span: tok.Span}
		if !p.eat(token.Comma) {
			return true
		}
	}
	switch {
	case p.at(token.Star):
		from := p.pos
		p.advance()
		if !p.eatWord("as") {
			p.errAt(diag.SynMalformedImport, p.diagSpan(), "expected 'as' after '*' in import")
			return false
		}
		local, ok := p.expectBinding("namespace import")
		if !ok {
			return false
		}
		decl.Namespace = &ast.ImportBinding{Imported: "*", Local: local.Text, Span: p.spanOf(from, p.pos)}
		return true
	case p.at(token.LBrace):
		return p.parseNamedImports(decl)
	}
	p.errAt(diag.SynMalformedImport, p.diagSpan(), "unexpected '"+p.toks[p.pos].Text+"' in import clause")
	return false
}

// parseNamedImports: { a, b as c, default as d, "x-y" as e, }
func (p *Parser) parseNamedImports(decl *ast.ImportDecl) bool {
	p.advance() // {
	for !p.at(token.RBrace) {
		from := p.pos
		imported, ok := p.moduleExportName()
		if !ok {
			return false
		}
		local := imported
		if p.eatWord("as") {
			tok, ok := p.expectBinding("import alias")
			if !ok {
				return false
			}
			local = tok.Text
		} else if p.toks[from].Kind != token.Ident {
			p.errAt(diag.SynMalformedImport, p.toks[from].Span, "'"+p.toks[from].Text+"' must be renamed with 'as'")
			return false
		}
		decl.Named = append(decl.Named, ast.ImportBinding{Imported: imported, Local: local, Span: p.spanOf(from, p.pos)})
		if !p.eat(token.Comma) {
			break
		}
	}
	_, ok := p.expect(token.RBrace, diag.SynMalformedImport, "expected '}' in import list")
	return ok
}

// moduleExportName — идентификатор, ключевое слово или строка.
func (p *Parser) moduleExportName() (string, bool) {
	tok := p.toks[p.pos]
	switch {
	case tok.IsIdentName():
		p.advance()
		return tok.Text, true
	case tok.Kind == token.StringLit:
		s, ok := Unquote(tok.Text)
		if !ok {
			p.errAt(diag.SynExpectString, tok.Span, "invalid string literal")
			return "", false
		}
		p.advance()
		return s, true
	}
	p.errAt(diag.SynExpectIdentifier, p.diagSpan(), "expected name, got '"+tok.Text+"'")
	return "", false
}

func (p *Parser) parseSpecifier(out *string, sp *source.Span) bool {
	tok, ok := p.expect(token.StringLit, diag.SynExpectString, "expected module specifier string")
	if !ok {
		return false
	}
	s, ok := Unquote(tok.Text)
	if !ok {
		p.errAt(diag.SynExpectString, tok.Span, "invalid module specifier "+tok.Text)
		return false
	}
	*out, *sp = s, tok.Span
	return true
}

func (p *Parser) skipAttributes() {
	t := p.toks[p.pos]
	if (t.Kind == token.KwWith || t.IsWord("assert")) && !t.NewlineBefore() && p.peekAt(1).Kind == token.LBrace {
		p.advance()
		p.pos = p.skip(p.pos)
	}
}

func (p *Parser) declare(name string, kind ast.BindingKind, sp source.Span) {
	p.declarePattern(name, kind, sp, false)
}

func (p *Parser) declarePattern(name string, kind ast.BindingKind, sp source.Span, pattern bool) {
	p.arenas.Files.Get(p.file).Declare(ast.Binding{Name: name, Kind: kind, Span: sp, Pattern: pattern})
}
