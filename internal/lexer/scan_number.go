package lexer

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 017, 1.0, .5, 1., 1e-3, 10n.
// Сразу за числом не может идти начало идентификатора или цифра ("3in" — ошибка).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumberLit
	decimal := true

	switch {
	case lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1)|0x20 == 'x'):
		lx.cursor.Advance(2)
		lx.eatDigits(isHex)
		decimal = false
	case lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1)|0x20 == 'o'):
		lx.cursor.Advance(2)
		lx.eatDigits(func(b byte) bool { return b >= '0' && b <= '7' })
		decimal = false
	case lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1)|0x20 == 'b'):
		lx.cursor.Advance(2)
		lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' })
		decimal = false
	default:
		lx.eatDigits(isDec)
	}

	if decimal {
		fraction := false
		if lx.cursor.Eat('.') {
			fraction = true
			lx.eatDigits(isDec)
		}
		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			fraction = true
			lx.cursor.Bump()
			if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected digit after exponent")
			}
			lx.eatDigits(isDec)
		}
		if !fraction && lx.cursor.Eat('n') {
			kind = token.BigIntLit
		}
	} else if lx.cursor.Eat('n') {
		kind = token.BigIntLit
	}

	if b := lx.cursor.Peek(); isIdentContinueByte(b) || b == '\\' {
		lx.scanIdentOrKeyword()
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDigits(ok func(byte) bool) {
	for b := lx.cursor.Peek(); ok(b) || b == '_'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
}
