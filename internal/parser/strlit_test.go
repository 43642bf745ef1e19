package parser

import "testing"

func TestUnquote(t *testing.T) {
	tests := []struct {
		lit  string
		want string
		ok   bool
	}{
		{`"./a.js"`, "./a.js", true},
		{`'./a.js'`, "./a.js", true},
		{`"a\"b"`, `a"b`, true},
		{`'it\'s'`, "it's", true},
		{`"\x41B\u{43}"`, "ABC", true},
		{`"\uD83D\uDE00"`, "\U0001F600", true},
		{`"tab\tnl\n"`, "tab\tnl\n", true},
		{`"\q"`, "q", true},
		{`"\01"`, "", false},
		{`"\xZZ"`, "", false},
		{`"\u{110000}"`, "", false},
		{`"unterminated`, "", false},
		{`'mixed"`, "", false},
	}
	for _, tt := range tests {
		got, ok := Unquote(tt.lit)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Unquote(%s) = %q, %v; want %q, %v", tt.lit, got, ok, tt.want, tt.ok)
		}
	}
}
