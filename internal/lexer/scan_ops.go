package lexer

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/token"
)

// Жадность: сначала 4-символьные, затем 3, 2 и 1.
var punctByLen = [...][]struct {
	text string
	kind token.Kind
}{
	4: {{">>>=", token.UShrAssign}},
	3: {
		{"...", token.Ellipsis}, {"===", token.EqEqEq}, {"!==", token.BangEqEq},
		{"**=", token.StarStarAssign}, {"<<=", token.ShlAssign}, {">>=", token.ShrAssign},
		{">>>", token.UShr}, {"&&=", token.AndAndAssign}, {"||=", token.OrOrAssign},
		{"??=", token.QQAssign},
	},
	2: {
		{"=>", token.Arrow}, {"==", token.EqEq}, {"!=", token.BangEq}, {"<=", token.LtEq},
		{">=", token.GtEq}, {"&&", token.AndAnd}, {"||", token.OrOr}, {"??", token.QuestionQuestion},
		{"**", token.StarStar}, {"++", token.PlusPlus}, {"--", token.MinusMinus},
		{"<<", token.Shl}, {">>", token.Shr}, {"+=", token.PlusAssign}, {"-=", token.MinusAssign},
		{"*=", token.StarAssign}, {"/=", token.SlashAssign}, {"%=", token.PercentAssign},
		{"&=", token.AmpAssign}, {"|=", token.PipeAssign}, {"^=", token.CaretAssign},
	},
}

var singlePunct = [128]token.Kind{
	'{': token.LBrace, '}': token.RBrace, '(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket, '.': token.Dot, ';': token.Semicolon,
	',': token.Comma, '<': token.Lt, '>': token.Gt, '+': token.Plus, '-': token.Minus,
	'*': token.Star, '/': token.Slash, '%': token.Percent, '&': token.Amp, '|': token.Pipe,
	'^': token.Caret, '!': token.Bang, '~': token.Tilde, '?': token.Question,
	':': token.Colon, '=': token.Assign, '@': token.At,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	// "?." не должен съедать "?.5" (тернарный оператор с числом)
	if lx.cursor.HasPrefix("?.") && !isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.Advance(2)
		return lx.emit(token.QuestionDot, start)
	}

	for n := len(punctByLen) - 1; n >= 2; n-- {
		for _, p := range punctByLen[n] {
			if lx.cursor.EatString(p.text) {
				return lx.emit(p.kind, start)
			}
		}
	}

	ch := lx.cursor.Peek()
	if ch < utf8RuneSelf && singlePunct[ch] != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(singlePunct[ch], start)
	}

	// неизвестный символ
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
}
