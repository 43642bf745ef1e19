package printer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote renders s as a JavaScript string literal delimited by quote
// (' or "). Backslashes, the delimiter, control characters and the line
// separators U+2028/U+2029 are escaped; everything else is kept as is.
func Quote(s string, quote byte) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteByte(quote)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\u2028' || r == '\u2029' || r < 0x20 || r == 0x7f:
			sb.WriteString(`\u`)
			h := strconv.FormatInt(int64(r), 16)
			sb.WriteString(strings.Repeat("0", 4-len(h)))
			sb.WriteString(h)
		case r == utf8.RuneError:
			sb.WriteString(`\ufffd`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// IsIdentName reports whether s may appear after '.' or as an unquoted
// object key. Reserved words qualify.
func IsIdentName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '$' || r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '\u200c' || r == '\u200d' || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)):
		default:
			return false
		}
	}
	return true
}

// PropertyKey renders an object key: bare when possible, quoted otherwise.
func PropertyKey(name string) string {
	if IsIdentName(name) {
		return name
	}
	return Quote(name, '"')
}

// Member renders obj.name or obj["name"].
func Member(obj, name string) string {
	if IsIdentName(name) {
		return obj + "." + name
	}
	return obj + "[" + Quote(name, '"') + "]"
}
