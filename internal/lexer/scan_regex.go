package lexer

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/token"
)

// scanRegex сканирует /body/flags. Внутри класса [...] '/' не завершает литерал.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\n' || b == '\r':
			return lx.unterminatedRegex(start)
		case b == '\\':
			lx.cursor.Bump()
			if c := lx.cursor.Peek(); c == '\n' || c == '\r' {
				return lx.unterminatedRegex(start)
			}
			lx.cursor.Bump()
		case b == '[':
			inClass = true
			lx.cursor.Bump()
		case b == ']':
			inClass = false
			lx.cursor.Bump()
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.RegexLit, start)
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminatedRegex(start)
}

func (lx *Lexer) unterminatedRegex(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
}
