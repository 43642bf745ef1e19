package lexer

import (
	"jsbundle/internal/diag"
	"jsbundle/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\v', '\f' и Unicode-пробелы коалесцируются в один TriviaSpace
// - последовательные '\n'/'\r' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (без вложенности; если не закрыт — репорт и обрезаем на EOF)
// - #!... в самом начале файла -> TriviaHashbang
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	if lx.cursor.Off == 0 && lx.cursor.HasPrefix("#!") {
		start := lx.cursor.Mark()
		lx.skipLine()
		lx.pushTrivia(token.TriviaHashbang, start)
	}
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f' || lx.atSpaceRune():
			for {
				b2 := lx.cursor.Peek()
				if b2 == ' ' || b2 == '\t' || b2 == '\v' || b2 == '\f' {
					lx.cursor.Bump()
					continue
				}
				if lx.atSpaceRune() {
					lx.bumpRune()
					continue
				}
				break
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '\n' || b == '\r' || lx.atLineSepRune():
			for {
				if b2 := lx.cursor.Peek(); b2 == '\n' || b2 == '\r' {
					lx.cursor.Bump()
					continue
				}
				if lx.atLineSepRune() {
					lx.bumpRune()
					continue
				}
				break
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == '/' && lx.cursor.PeekAt(1) == '/':
			lx.skipLine()
			lx.pushTrivia(token.TriviaLineComment, start)

		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Advance(2)
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.EatString("*/") {
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			if !closed {
				lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
			}
			lx.pushTrivia(token.TriviaBlockComment, start)

		default:
			// нет больше trivia
			return
		}
	}
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) atSpaceRune() bool {
	if lx.cursor.Peek() < utf8RuneSelf {
		return false
	}
	r, sz := lx.peekRune()
	return sz > 0 && isSpaceRune(r)
}

func (lx *Lexer) atLineSepRune() bool {
	if lx.cursor.Peek() < utf8RuneSelf {
		return false
	}
	r, sz := lx.peekRune()
	return sz > 0 && isLineSepRune(r)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	})
}
