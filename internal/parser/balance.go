package parser

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/source"
	"jsbundle/internal/token"
)

func closerFor(open token.Kind) string {
	switch open {
	case token.LParen:
		return ")"
	case token.LBracket:
		return "]"
	case token.LBrace:
		return "}"
	default:
		return "}`"
	}
}

func pairs(open, closer token.Kind) bool {
	switch closer {
	case token.RParen:
		return open == token.LParen
	case token.RBracket:
		return open == token.LBracket
	case token.RBrace:
		return open == token.LBrace
	case token.TemplateMiddle, token.TemplateTail:
		return open == token.TemplateHead || open == token.TemplateMiddle
	}
	return false
}

// matchBrackets сопоставляет скобки и части шаблонов одним проходом.
// TemplateMiddle закрывает предыдущую подстановку и открывает следующую.
func (p *Parser) matchBrackets() {
	p.match = make([]int, len(p.toks))
	for i := range p.match {
		p.match[i] = -1
	}

	var stack []int
	for i, tok := range p.toks {
		if tok.IsClose() {
			if len(stack) == 0 || !pairs(p.toks[stack[len(stack)-1]].Kind, tok.Kind) {
				p.build(diag.SynUnmatchedCloser, diag.SevError, tok.Span, "unexpected '"+tok.Text+"'").
					WithFix("remove '"+tok.Text+"'", diag.FixEdit{Span: tok.Span}).
					Emit()
				continue
			}
			p.match[stack[len(stack)-1]] = i
			stack = stack[:len(stack)-1]
		}
		if tok.IsOpen() {
			stack = append(stack, i)
		}
	}
	for _, i := range stack {
		tok := p.toks[i]
		eof := p.toks[len(p.toks)-1].Span
		p.build(diag.SynUnclosedDelimiter, diag.SevError, tok.Span, "unclosed '"+tok.Text+"', expected '"+closerFor(tok.Kind)+"'").
			WithNote(source.Span{File: eof.File, Start: eof.Start, End: eof.Start}, "file ends here").
			Emit()
	}
}

// skip возвращает индекс токена после i; группа в скобках пропускается целиком.
// Незакрытая группа тянется до EOF.
func (p *Parser) skip(i int) int {
	if !p.toks[i].IsOpen() {
		return min(i+1, len(p.toks)-1)
	}
	j := p.match[i]
	for j >= 0 && p.toks[j].Kind == token.TemplateMiddle {
		j = p.match[j]
	}
	if j < 0 {
		return len(p.toks) - 1
	}
	return j + 1
}

// skipTo — skip, ограниченный правой границей диапазона.
func (p *Parser) skipTo(i, limit int) int {
	return min(p.skip(i), limit)
}
