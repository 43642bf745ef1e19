package lexer

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Escape-последовательности \uXXXX и \u{...} допускаются внутри имени,
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	escaped := false

	first := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			if !lx.scanIdentEscape() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexUnknownChar, sp, "invalid escape in identifier")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
			}
			escaped = true
		case b < utf8RuneSelf:
			if !(isIdentContinueByte(b) && (!first || isIdentStartByte(b))) {
				goto done
			}
			lx.cursor.Bump()
		default:
			r, _ := lx.peekRune()
			if !(isIdentContinueRune(r) && (!first || isIdentStartRune(r))) {
				goto done
			}
			lx.bumpRune()
		}
		first = false
	}

done:
	if lx.cursor.Off == uint32(start) {
		// ни одного символа имени — неизвестный символ
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
	}

	tok := lx.emit(token.Ident, start)
	// ключевые слова регистрозависимые и без escape-последовательностей
	if !escaped {
		if k, ok := token.LookupKeyword(tok.Text); ok {
			tok.Kind = k
		}
	}
	return tok
}

// scanIdentEscape съедает \uXXXX или \u{X...}.
func (lx *Lexer) scanIdentEscape() bool {
	if !lx.cursor.EatString("\\u") {
		return false
	}
	if lx.cursor.Eat('{') {
		n := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		return n > 0 && lx.cursor.Eat('}')
	}
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return false
		}
		lx.cursor.Bump()
	}
	return true
}

// scanPrivateName сканирует #name внутри классов.
func (lx *Lexer) scanPrivateName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	name := lx.scanIdentOrKeyword()
	sp := lx.cursor.SpanFrom(start)
	if name.Kind == token.Invalid {
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
	}
	return token.Token{Kind: token.PrivateName, Span: sp, Text: lx.cursor.TextFrom(start)}
}
