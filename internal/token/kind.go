package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token, including contextual keywords
	// (as, from, of, let, async, await, yield, get, set, static).
	Ident
	// PrivateName represents a class private name such as #count.
	PrivateName

	// NumberLit represents a numeric literal.
	NumberLit
	// BigIntLit represents a numeric literal with the n suffix.
	BigIntLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// TemplateNoSubst represents a template literal without substitutions.
	TemplateNoSubst // `text`
	// TemplateHead represents the part of a template literal before the first substitution.
	TemplateHead // `text${
	// TemplateMiddle represents a template part between two substitutions.
	TemplateMiddle // }text${
	// TemplateTail represents the closing part of a template literal.
	TemplateTail // }text`
	// RegexLit represents a regular expression literal.
	RegexLit // /re/flags

	keywordBeg
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDebugger represents the 'debugger' keyword.
	KwDebugger // debugger
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	keywordEnd

	punctBeg
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Dot represents the dot token.
	Dot // .
	// Ellipsis represents the spread/rest token.
	Ellipsis // ...
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Lt represents the less-than token.
	Lt // <
	// Gt represents the greater-than token.
	Gt // >
	// LtEq represents the less-or-equal token.
	LtEq // <=
	// GtEq represents the greater-or-equal token.
	GtEq // >=
	// EqEq represents the loose equality token.
	EqEq // ==
	// BangEq represents the loose inequality token.
	BangEq // !=
	// EqEqEq represents the strict equality token.
	EqEqEq // ===
	// BangEqEq represents the strict inequality token.
	BangEqEq // !==
	// Plus represents the plus token.
	Plus // +
	// Minus represents the minus token.
	Minus // -
	// Star represents the star token.
	Star // *
	// Slash represents the slash token.
	Slash // /
	// Percent represents the percent token.
	Percent // %
	// StarStar represents the exponent token.
	StarStar // **
	// PlusPlus represents the increment token.
	PlusPlus // ++
	// MinusMinus represents the decrement token.
	MinusMinus // --
	// Shl represents the left shift token.
	Shl // <<
	// Shr represents the right shift token.
	Shr // >>
	// UShr represents the unsigned right shift token.
	UShr // >>>
	// Amp represents the bitwise and token.
	Amp // &
	// Pipe represents the bitwise or token.
	Pipe // |
	// Caret represents the bitwise xor token.
	Caret // ^
	// Bang represents the logical not token.
	Bang // !
	// Tilde represents the bitwise not token.
	Tilde // ~
	// AndAnd represents the logical and token.
	AndAnd // &&
	// OrOr represents the logical or token.
	OrOr // ||
	// QuestionQuestion represents the nullish coalescing token.
	QuestionQuestion // ??
	// Question represents the conditional token.
	Question // ?
	// QuestionDot represents the optional chaining token.
	QuestionDot // ?.
	// Colon represents the colon token.
	Colon // :
	// Assign represents the assignment token.
	Assign // =
	// PlusAssign represents the '+=' compound assignment token.
	PlusAssign // +=
	// MinusAssign represents the '-=' compound assignment token.
	MinusAssign // -=
	// StarAssign represents the '*=' compound assignment token.
	StarAssign // *=
	// SlashAssign represents the '/=' compound assignment token.
	SlashAssign // /=
	// PercentAssign represents the '%=' compound assignment token.
	PercentAssign // %=
	// StarStarAssign represents the '**=' compound assignment token.
	StarStarAssign // **=
	// ShlAssign represents the '<<=' compound assignment token.
	ShlAssign // <<=
	// ShrAssign represents the '>>=' compound assignment token.
	ShrAssign // >>=
	// UShrAssign represents the '>>>=' compound assignment token.
	UShrAssign // >>>=
	// AmpAssign represents the '&=' compound assignment token.
	AmpAssign // &=
	// PipeAssign represents the '|=' compound assignment token.
	PipeAssign // |=
	// CaretAssign represents the '^=' compound assignment token.
	CaretAssign // ^=
	// AndAndAssign represents the '&&=' compound assignment token.
	AndAndAssign // &&=
	// OrOrAssign represents the '||=' compound assignment token.
	OrOrAssign // ||=
	// QQAssign represents the '??=' compound assignment token.
	QQAssign // ??=
	// Arrow represents the arrow token.
	Arrow // =>
	// At represents the decorator token.
	At // @
	punctEnd
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	PrivateName:     "PrivateName",
	NumberLit:       "NumberLit",
	BigIntLit:       "BigIntLit",
	StringLit:       "StringLit",
	TemplateNoSubst: "TemplateNoSubst",
	TemplateHead:    "TemplateHead",
	TemplateMiddle:  "TemplateMiddle",
	TemplateTail:    "TemplateTail",
	RegexLit:        "RegexLit",
}

// String returns the source spelling for keywords and punctuators and the
// kind name otherwise.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	if s, ok := spelling[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordBeg && k < keywordEnd }

// IsPunct reports whether k is a punctuator or operator.
func (k Kind) IsPunct() bool { return k > punctBeg && k < punctEnd }
