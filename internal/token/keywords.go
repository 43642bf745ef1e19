package token

var keywords = map[string]Kind{
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"debugger":   KwDebugger,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"export":     KwExport,
	"extends":    KwExtends,
	"false":      KwFalse,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"new":        KwNew,
	"null":       KwNull,
	"return":     KwReturn,
	"super":      KwSuper,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"true":       KwTrue,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"with":       KwWith,
}

var spelling = map[Kind]string{
	KwBreak:      "break",
	KwCase:       "case",
	KwCatch:      "catch",
	KwClass:      "class",
	KwConst:      "const",
	KwContinue:   "continue",
	KwDebugger:   "debugger",
	KwDefault:    "default",
	KwDelete:     "delete",
	KwDo:         "do",
	KwElse:       "else",
	KwExport:     "export",
	KwExtends:    "extends",
	KwFalse:      "false",
	KwFinally:    "finally",
	KwFor:        "for",
	KwFunction:   "function",
	KwIf:         "if",
	KwImport:     "import",
	KwIn:         "in",
	KwInstanceof: "instanceof",
	KwNew:        "new",
	KwNull:       "null",
	KwReturn:     "return",
	KwSuper:      "super",
	KwSwitch:     "switch",
	KwThis:       "this",
	KwThrow:      "throw",
	KwTrue:       "true",
	KwTry:        "try",
	KwTypeof:     "typeof",
	KwVar:        "var",
	KwVoid:       "void",
	KwWhile:      "while",
	KwWith:       "with",
}

var punctSpelling = map[Kind]string{
	LBrace:           "{",
	RBrace:           "}",
	LParen:           "(",
	RParen:           ")",
	LBracket:         "[",
	RBracket:         "]",
	Dot:              ".",
	Ellipsis:         "...",
	Semicolon:        ";",
	Comma:            ",",
	Lt:               "<",
	Gt:               ">",
	LtEq:             "<=",
	GtEq:             ">=",
	EqEq:             "==",
	BangEq:           "!=",
	EqEqEq:           "===",
	BangEqEq:         "!==",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	StarStar:         "**",
	PlusPlus:         "++",
	MinusMinus:       "--",
	Shl:              "<<",
	Shr:              ">>",
	UShr:             ">>>",
	Amp:              "&",
	Pipe:             "|",
	Caret:            "^",
	Bang:             "!",
	Tilde:            "~",
	AndAnd:           "&&",
	OrOr:             "||",
	QuestionQuestion: "??",
	Question:         "?",
	QuestionDot:      "?.",
	Colon:            ":",
	Assign:           "=",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	StarStarAssign:   "**=",
	ShlAssign:        "<<=",
	ShrAssign:        ">>=",
	UShrAssign:       ">>>=",
	AmpAssign:        "&=",
	PipeAssign:       "|=",
	CaretAssign:      "^=",
	AndAndAssign:     "&&=",
	OrOrAssign:       "||=",
	QQAssign:         "??=",
	Arrow:            "=>",
	At:               "@",
}

func init() {
	for k, s := range punctSpelling {
		spelling[k] = s
	}
}

// LookupKeyword возвращает тип и bool если это зарезервированное слово.
// Контекстные слова (from, as, let, async, ...) остаются Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Spelling returns the fixed source text of a keyword or punctuator.
func Spelling(k Kind) (string, bool) {
	s, ok := spelling[k]
	return s, ok
}
