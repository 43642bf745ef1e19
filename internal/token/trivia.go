package token

import "jsbundle/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaHashbang // #!... только в начале файла
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaHashbang:     "Hashbang",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "Trivia?"
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether the trivia contains a line terminator.
// A multi-line block comment counts as a line break for ASI.
func (t Trivia) HasNewline() bool {
	switch t.Kind {
	case TriviaNewline:
		return true
	case TriviaBlockComment:
		for i := 0; i < len(t.Text); i++ {
			if t.Text[i] == '\n' || t.Text[i] == '\r' {
				return true
			}
		}
	}
	return false
}
