package token

import (
	"testing"
)

func TestLookupKeyword(t *testing.T) {
	for word, want := range map[string]Kind{
		"import":     KwImport,
		"export":     KwExport,
		"default":    KwDefault,
		"instanceof": KwInstanceof,
		"typeof":     KwTypeof,
	} {
		got, ok := LookupKeyword(word)
		if !ok || got != want {
			t.Errorf("%s: want %v, got %v (ok=%v)", word, want, got, ok)
		}
	}

	// контекстные слова не являются ключевыми
	for _, word := range []string{"from", "as", "let", "async", "await", "of", "Import"} {
		if _, ok := LookupKeyword(word); ok {
			t.Errorf("%q must stay an identifier", word)
		}
	}
}

func TestEveryKeywordHasSpelling(t *testing.T) {
	for k := keywordBeg + 1; k < keywordEnd; k++ {
		s, ok := Spelling(k)
		if !ok {
			t.Fatalf("keyword kind %d has no spelling", k)
		}
		if back, ok := LookupKeyword(s); !ok || back != k {
			t.Fatalf("round trip failed for %q", s)
		}
	}
	for k := punctBeg + 1; k < punctEnd; k++ {
		if _, ok := Spelling(k); !ok {
			t.Fatalf("punctuator kind %d has no spelling", k)
		}
	}
}
