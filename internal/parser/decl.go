package parser

import (
	"jsbundle/internal/ast"
	"jsbundle/internal/token"
)

// declarator — один элемент списка var/let/const.
type declarator struct {
	from, to     int // токены [from, to) без завершающей запятой
	names        []token.Token
	destructured bool
}

func declKindOf(tok token.Token) (ast.DeclKind, bool) {
	switch tok.Kind {
	case token.KwVar:
		return ast.DeclVar, true
	case token.KwConst:
		return ast.DeclConst, true
	case token.Ident:
		if tok.Text == "let" {
			return ast.DeclLet, true
		}
	}
	return ast.DeclNone, false
}

func bindingKindOf(k ast.DeclKind) ast.BindingKind {
	switch k {
	case ast.DeclLet:
		return ast.BindLet
	case ast.DeclConst:
		return ast.BindConst
	case ast.DeclFunction:
		return ast.BindFunction
	case ast.DeclClass:
		return ast.BindClass
	default:
		return ast.BindVar
	}
}

// trimSemi отбрасывает завершающую ';' диапазона.
func (p *Parser) trimSemi(from, to int) int {
	if to > from && p.toks[to-1].Kind == token.Semicolon {
		return to - 1
	}
	return to
}

// cutDefault возвращает индекс '=' верхнего уровня или to.
func (p *Parser) cutDefault(from, to int) int {
	for j := from; j < to; j = p.skipTo(j, to) {
		if p.toks[j].Kind == token.Assign {
			return j
		}
	}
	return to
}

// declarators разбирает список объявлений в [from, to).
func (p *Parser) declarators(from, to int) []declarator {
	var out []declarator
	for _, r := range p.splitTop(from, to) {
		d := declarator{from: r[0], to: r[1]}
		if r[0] >= r[1] {
			continue
		}
		head := p.toks[r[0]].Kind
		d.destructured = head == token.LBrace || head == token.LBracket
		d.names = p.patternNames(r[0], p.cutDefault(r[0], r[1]), nil)
		out = append(out, d)
	}
	return out
}

// patternNames собирает имена, связываемые шаблоном в [from, to).
func (p *Parser) patternNames(from, to int, acc []token.Token) []token.Token {
	if from >= to {
		return acc
	}
	tok := p.toks[from]
	switch tok.Kind {
	case token.Ident:
		return append(acc, tok)
	case token.LBrace, token.LBracket:
		end := p.match[from]
		if end < 0 || end > to {
			end = to
		}
		for _, el := range p.splitTop(from+1, end) {
			s, e := el[0], el[1]
			if s < e && p.toks[s].Kind == token.Ellipsis {
				acc = p.patternNames(s+1, p.cutDefault(s+1, e), acc)
				continue
			}
			if tok.Kind == token.LBrace {
				if c := p.findTop(s, e, token.Colon); c >= 0 {
					acc = p.patternNames(c+1, p.cutDefault(c+1, e), acc)
					continue
				}
			}
			acc = p.patternNames(s, p.cutDefault(s, e), acc)
		}
	}
	return acc
}

// collectBindings регистрирует имена, объявленные инструкцией верхнего
// уровня. Вложенные var внутри блоков не учитываются.
func (p *Parser) collectBindings(start, end int) {
	tok := p.toks[start]
	if kind, ok := declKindOf(tok); ok {
		next := p.toks[min(start+1, end)]
		if kind == ast.DeclLet && next.Kind != token.Ident && next.Kind != token.LBrace && next.Kind != token.LBracket {
			return // let как обычный идентификатор
		}
		for _, d := range p.declarators(start+1, p.trimSemi(start, end)) {
			for _, n := range d.names {
				p.declarePattern(n.Text, bindingKindOf(kind), n.Span, d.destructured)
			}
		}
		return
	}
	if name, kind, ok := p.declName(start); ok {
		p.declare(name.Text, bindingKindOf(kind), name.Span)
	}
}

// declName возвращает имя function/class объявления, начатого в i.
func (p *Parser) declName(i int) (token.Token, ast.DeclKind, bool) {
	if p.toks[i].IsWord("async") && p.peekFrom(i, 1).Kind == token.KwFunction {
		i++
	}
	switch p.toks[i].Kind {
	case token.KwFunction:
		j := i + 1
		if p.toks[j].Kind == token.Star {
			j++
		}
		if p.toks[j].Kind == token.Ident {
			return p.toks[j], ast.DeclFunction, true
		}
		return token.Token{}, ast.DeclFunction, false
	case token.KwClass:
		next := p.toks[i+1]
		if next.Kind == token.Ident {
			return next, ast.DeclClass, true
		}
		return token.Token{}, ast.DeclClass, false
	}
	return token.Token{}, ast.DeclNone, false
}

func (p *Parser) peekFrom(i, n int) token.Token {
	return p.toks[min(i+n, len(p.toks)-1)]
}
