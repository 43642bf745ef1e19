package parser

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote декодирует строковый литерал JS вместе с кавычками.
// ok=false для некорректных escape-последовательностей.
func Unquote(lit string) (string, bool) {
	if len(lit) < 2 || (lit[0] != '"' && lit[0] != '\'') || lit[len(lit)-1] != lit[0] {
		return "", false
	}
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, true
	}

	var sb strings.Builder
	sb.Grow(len(body))
	var pendingHigh rune = -1
	flush := func() {
		if pendingHigh >= 0 {
			sb.WriteRune(utf8.RuneError)
			pendingHigh = -1
		}
	}
	writeUnit := func(r rune) {
		switch {
		case utf16.IsSurrogate(r) && r < 0xDC00:
			flush()
			pendingHigh = r
		case utf16.IsSurrogate(r) && pendingHigh >= 0:
			sb.WriteRune(utf16.DecodeRune(pendingHigh, r))
			pendingHigh = -1
		default:
			flush()
			sb.WriteRune(r)
		}
	}

	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			flush()
			r, size := utf8.DecodeRuneInString(body[i:])
			sb.WriteRune(r)
			i += size
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		c = body[i]
		i++
		switch c {
		case 'n':
			writeUnit('\n')
		case 't':
			writeUnit('\t')
		case 'r':
			writeUnit('\r')
		case 'b':
			writeUnit('\b')
		case 'f':
			writeUnit('\f')
		case 'v':
			writeUnit('\v')
		case '0':
			if i < len(body) && body[i] >= '0' && body[i] <= '9' {
				return "", false // восьмеричные escape не поддерживаются
			}
			writeUnit(0)
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n':
			// продолжение строки
		case 'x':
			if i+2 > len(body) {
				return "", false
			}
			v, err := strconv.ParseUint(body[i:i+2], 16, 8)
			if err != nil {
				return "", false
			}
			writeUnit(rune(v))
			i += 2
		case 'u':
			if i < len(body) && body[i] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end < 2 {
					return "", false
				}
				v, err := strconv.ParseUint(body[i+1:i+end], 16, 32)
				if err != nil || v > utf8.MaxRune {
					return "", false
				}
				writeUnit(rune(v))
				i += end + 1
				continue
			}
			if i+4 > len(body) {
				return "", false
			}
			v, err := strconv.ParseUint(body[i:i+4], 16, 16)
			if err != nil {
				return "", false
			}
			writeUnit(rune(v))
			i += 4
		default:
			if c >= '1' && c <= '9' {
				return "", false
			}
			// \' \" \\ и любой другой символ означают сам себя
			r, size := utf8.DecodeRuneInString(body[i-1:])
			writeUnit(r)
			i += size - 1
		}
	}
	flush()
	return sb.String(), true
}
