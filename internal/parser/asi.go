package parser

import (
	"jsbundle/internal/token"
)

// endsExpr — может ли токен завершать выражение или инструкцию.
// Для return/break/continue действует ограниченное правило ASI.
func endsExpr(k token.Kind) bool {
	switch k {
	case token.Ident, token.PrivateName, token.NumberLit, token.BigIntLit, token.StringLit,
		token.TemplateNoSubst, token.TemplateTail, token.RegexLit,
		token.RParen, token.RBracket, token.RBrace, token.PlusPlus, token.MinusMinus,
		token.KwThis, token.KwSuper, token.KwNull, token.KwTrue, token.KwFalse,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwDebugger:
		return true
	}
	return false
}

var binaryOps = map[token.Kind]bool{
	token.Lt: true, token.Gt: true, token.LtEq: true, token.GtEq: true,
	token.EqEq: true, token.BangEq: true, token.EqEqEq: true, token.BangEqEq: true,
	token.Plus: true, token.Minus: true, token.Star: true, token.Slash: true,
	token.Percent: true, token.StarStar: true, token.Shl: true, token.Shr: true,
	token.UShr: true, token.Amp: true, token.Pipe: true, token.Caret: true,
	token.AndAnd: true, token.OrOr: true, token.QuestionQuestion: true,
	token.Assign: true, token.PlusAssign: true, token.MinusAssign: true,
	token.StarAssign: true, token.SlashAssign: true, token.PercentAssign: true,
	token.StarStarAssign: true, token.ShlAssign: true, token.ShrAssign: true,
	token.UShrAssign: true, token.AmpAssign: true, token.PipeAssign: true,
	token.CaretAssign: true, token.AndAndAssign: true, token.OrOrAssign: true,
	token.QQAssign: true,
}

// continuesExpr — продолжает ли tok после перевода строки начатую инструкцию.
// first — первый токен инструкции (для do ... while), prev — предыдущий.
func continuesExpr(tok, prev token.Token, first token.Kind) bool {
	switch tok.Kind {
	case token.Dot, token.QuestionDot, token.LParen, token.LBracket, token.Comma,
		token.Question, token.Colon, token.Arrow, token.TemplateNoSubst, token.TemplateHead,
		token.KwIn, token.KwInstanceof, token.KwElse, token.KwCatch, token.KwFinally:
		return true
	case token.KwWhile:
		return first == token.KwDo
	case token.LBrace:
		// function f()\n{ ... } и if (x)\n{ ... }
		return prev.Kind == token.RParen
	}
	return binaryOps[tok.Kind]
}

// stmtEnd возвращает индекс токена сразу после инструкции, начатой в i.
// Граница: ';', перевод строки там, где применима вставка точки с запятой,
// начало import/export или EOF. Скобочные группы пропускаются целиком.
func (p *Parser) stmtEnd(i int) int {
	if end, ok := p.declEnd(i); ok {
		return end
	}
	first := p.toks[i].Kind
	for j := i; ; {
		tok := p.toks[j]
		if tok.Kind == token.EOF {
			return j
		}
		if j > i {
			prev := p.toks[j-1]
			if p.isInterfaceStart(j) {
				return j
			}
			if tok.NewlineBefore() && endsExpr(prev.Kind) && !continuesExpr(tok, prev, first) {
				return j
			}
		}
		if tok.Kind == token.Semicolon {
			return j + 1
		}
		j = p.skip(j)
	}
}

// declEnd распознаёт объявления function/async function/class и возвращает
// индекс после закрывающей '}' тела.
func (p *Parser) declEnd(i int) (int, bool) {
	j := i
	if p.toks[j].IsWord("async") && p.toks[min(j+1, len(p.toks)-1)].Kind == token.KwFunction &&
		!p.toks[j+1].NewlineBefore() {
		j++
	}
	switch p.toks[j].Kind {
	case token.KwFunction:
		k := j + 1
		if p.toks[k].Kind == token.Star {
			k++
		}
		if p.toks[k].Kind == token.Ident {
			k++
		}
		if p.toks[k].Kind != token.LParen {
			return 0, false
		}
		k = p.skip(k)
		if p.toks[k].Kind != token.LBrace {
			return 0, false
		}
		return p.skip(k), true

	case token.KwClass:
		for k := j + 1; p.toks[k].Kind != token.EOF; k = p.skip(k) {
			if p.toks[k].Kind == token.LBrace {
				return p.skip(k), true
			}
		}
	}
	return 0, false
}

// findTop ищет токен kind на верхнем уровне диапазона [from, to).
// Поиск останавливается на '=' (начало значения по умолчанию).
func (p *Parser) findTop(from, to int, kind token.Kind) int {
	for j := from; j < to; j = p.skipTo(j, to) {
		switch p.toks[j].Kind {
		case kind:
			return j
		case token.Assign:
			return -1
		}
	}
	return -1
}

// splitTop делит [from, to) по запятым верхнего уровня.
func (p *Parser) splitTop(from, to int) [][2]int {
	var out [][2]int
	s := from
	for j := from; j < to; {
		if p.toks[j].Kind == token.Comma {
			out = append(out, [2]int{s, j})
			j++
			s = j
			continue
		}
		j = p.skipTo(j, to)
	}
	if s < to {
		out = append(out, [2]int{s, to})
	}
	return out
}
