package lexer

import (
	"jsbundle/internal/source"
	"jsbundle/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia

	// prev — последний значимый токен; решает, '/' это деление или regex
	prev token.Token
	// braces: true для '{', открытого подстановкой шаблона "${"
	braces []bool
	// parens: true для '(', открывающей заголовок if/while/for/with
	parens []bool
	// headClosed: последняя ')' закрыла такой заголовок, дальше идёт инструкция
	headClosed bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Token{Kind: token.Invalid},
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		// EOF забирает хвостовые trivia, чтобы печать файла была без потерь
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.hold}
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch == '\\':
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор; иначе неизвестный символ
		tok = lx.scanIdentOrKeyword()

	case ch == '#':
		tok = lx.scanPrivateName()

	case isDec(ch), ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)

	case ch == '`':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.scanTemplate(start, true)

	case ch == '}' && len(lx.braces) > 0 && lx.braces[len(lx.braces)-1]:
		// конец подстановки "${ ... }" — продолжаем шаблон
		lx.braces = lx.braces[:len(lx.braces)-1]
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.scanTemplate(start, false)

	case ch == '/' && lx.regexAllowed():
		tok = lx.scanRegex()

	default:
		tok = lx.scanOperatorOrPunct()
		switch tok.Kind {
		case token.LBrace:
			lx.braces = append(lx.braces, false)
		case token.RBrace:
			if len(lx.braces) > 0 {
				lx.braces = lx.braces[:len(lx.braces)-1]
			}
		case token.LParen:
			lx.parens = append(lx.parens, isStmtHead(lx.prev.Kind))
		case token.RParen:
			lx.headClosed = false
			if n := len(lx.parens); n > 0 {
				lx.headClosed = lx.parens[n-1]
				lx.parens = lx.parens[:n-1]
			}
		}
	}

	if tok.Kind == token.TemplateHead || tok.Kind == token.TemplateMiddle {
		lx.braces = append(lx.braces, true)
	}

	tok.Leading = lx.hold
	lx.hold = nil
	lx.prev = tok
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the whole file, EOF included.
func (lx *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}

// regexAllowed решает неоднозначность '/' по предыдущему значимому токену:
// после выражения это деление, в начале выражения — регулярное выражение.
func (lx *Lexer) regexAllowed() bool {
	switch k := lx.prev.Kind; {
	case k == token.Invalid:
		return true
	case k == token.Ident:
		// yield /re/ и await /re/ встречаются, остальное — деление
		return lx.prev.Text == "yield" || lx.prev.Text == "await" || lx.prev.Text == "of"
	case k == token.PrivateName, k == token.NumberLit, k == token.BigIntLit, k == token.StringLit,
		k == token.TemplateNoSubst, k == token.TemplateTail, k == token.RegexLit:
		return false
	case k == token.KwThis, k == token.KwSuper, k == token.KwNull, k == token.KwTrue, k == token.KwFalse:
		return false
	case k.IsKeyword():
		return true
	case k == token.RParen:
		return lx.headClosed
	case k == token.RBracket, k == token.PlusPlus, k == token.MinusMinus:
		return false
	default:
		// включая '}': после блока начинается новая инструкция
		return true
	}
}

func isStmtHead(k token.Kind) bool {
	return k == token.KwIf || k == token.KwWhile || k == token.KwFor || k == token.KwWith
}

// File returns the source file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }
