package lexer

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/token"
)

// scanString сканирует '...' или "...". Escape-последовательности не
// декодируются, только пропускаются; '\' + перевод строки — продолжение строки.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '\n', '\r':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
}

// scanTemplate продолжает шаблонную строку после '`' (head=true) или после
// '}', закрывшей подстановку. Останавливается на '`' или "${".
func (lx *Lexer) scanTemplate(start Mark, head bool) token.Token {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '`':
			lx.cursor.Bump()
			if head {
				return lx.emit(token.TemplateNoSubst, start)
			}
			return lx.emit(token.TemplateTail, start)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '$':
			if lx.cursor.EatString("${") {
				if head {
					return lx.emit(token.TemplateHead, start)
				}
				return lx.emit(token.TemplateMiddle, start)
			}
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
}
