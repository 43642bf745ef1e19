package token

import (
	"jsbundle/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// NewlineBefore reports whether a line terminator separates the token from
// the previous one. Automatic semicolon insertion depends on it.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.HasNewline() {
			return true
		}
	}
	return false
}

// IsLiteral reports whether the token is a numeric, string, template or regex literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, BigIntLit, StringLit, TemplateNoSubst, TemplateHead, RegexLit:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsWord reports whether the token is an identifier with the given text.
// Used for contextual keywords such as from, as and let.
func (t Token) IsWord(word string) bool { return t.Kind == Ident && t.Text == word }

// IsIdentName reports whether the token may be used as a property or
// export name: identifiers and reserved words both qualify.
func (t Token) IsIdentName() bool { return t.Kind == Ident || t.Kind.IsKeyword() }

// IsOpen reports whether the token opens a bracket pair.
// TemplateHead and TemplateMiddle open a substitution.
func (t Token) IsOpen() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace, TemplateHead, TemplateMiddle:
		return true
	}
	return false
}

// IsClose reports whether the token closes a bracket pair.
// TemplateMiddle and TemplateTail close a substitution.
func (t Token) IsClose() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace, TemplateMiddle, TemplateTail:
		return true
	}
	return false
}
