package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"jsbundle/internal/diag"
	"jsbundle/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28},
		"Unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "Absolute path", mode: PathModeAbsolute, contains: "/home/user/project/src/test.js:1:9"},
		{name: "Relative path", mode: PathModeRelative, contains: "src/test.js:1:9"},
		{name: "Basename only", mode: PathModeBasename, contains: "test.js:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: Unterminated string literal") {
				t.Errorf("Expected header in output, got:\n%s", output)
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
		absent   string
	}{
		{name: "Short path - as is", path: "lib/test.js", expected: "lib/test.js"},
		{
			name:     "Long absolute path - basename",
			path:     "/very/long/absolute/path/to/some/nested/directory/file.js",
			expected: "file.js:1:9",
			absent:   "/very/long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual(tt.path, []byte("let x = 42\n"))

			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 10}, "Test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
			if tt.absent != "" && strings.Contains(output, tt.absent) {
				t.Errorf("Expected output without %q, got:\n%s", tt.absent, output)
			}
		})
	}
}

func TestPrettyUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("const a = 1;\nexport { a as };\nfoo();\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Span{File: fileID, Start: 27, End: 28}, "expected identifier"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})

	want := strings.Join([]string{
		"a.js:2:15: ERROR SYN2006: expected identifier",
		"1 | const a = 1;",
		"2 | export { a as };",
		"  |               ^",
		"3 | foo();",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyUnderlineWideAndTabs(t *testing.T) {
	fs := source.NewFileSet()
	// "日本" занимает 4 колонки, таб раскрывается в 4 пробела
	content := "\tlet s = '日本' + @;\n"
	fileID := fs.AddVirtual("w.js", []byte(content))
	at := uint32(strings.IndexByte(content, '@')) // #nosec G115 -- short literal

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: at, End: at + 1}, "unknown character"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if lines[1] != "1 |     let s = '日本' + @;" {
		t.Fatalf("tabs not expanded: %q", lines[1])
	}
	// 4 (таб) + "let s = '" (9) + 4 (日本) + "' + " (4)
	want := "  | " + strings.Repeat(" ", 21) + "^"
	if lines[2] != want {
		t.Fatalf("caret misplaced:\n%q\n%q", lines[2], want)
	}
}

func TestPrettyMultilineSpanStopsAtLineEnd(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.js", []byte("foo(\n  1,\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnclosedDelimiter, source.Span{File: fileID, Start: 0, End: 9}, "unclosed"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.Contains(buf.String(), "  | ^~~~\n") {
		t.Fatalf("expected underline up to the end of line, got:\n%s", buf.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("import a from './a.js')\n")
	fileID := fs.AddVirtual("test.js", content)

	bag := diag.NewBag(4)
	primary := source.Span{File: fileID, Start: 22, End: 23}
	d := diag.New(diag.SevError, diag.SynUnmatchedCloser, primary, "unexpected ')'")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 6}, "statement starts here")
	d = d.WithFix("remove ')'", diag.FixEdit{Span: primary})
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})
	output := buf.String()

	for _, want := range []string{
		"note: test.js:1:1: statement starts here",
		"fix #1: remove ')'",
		"edit test.js:1:23 apply=\"\"",
		"preview:",
		"- import a from './a.js')",
		"+ import a from './a.js'",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestPrettyHidesNotesAndFixesByDefault(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte("x;\n"))

	bag := diag.NewBag(1)
	sp := source.Span{File: fileID, Start: 0, End: 1}
	bag.Add(diag.NewError(diag.SynUnexpectedToken, sp, "boom").WithNote(sp, "hidden note").WithFix("hidden fix"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("notes and fixes must be opt-in, got:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.js", []byte("x;\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 1}, "boom"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	Pretty(&colored, bag, fs, PrettyOpts{PathMode: PathModeBasename, Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escape codes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escape codes: %q", colored.String())
	}
}

func TestPrettyWidthTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.js", []byte("const veryLongName = someFunctionCall(argumentOne, argumentTwo);\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 5}, "boom"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Width: 20})
	if !strings.Contains(buf.String(), "1 | const veryLongNam...\n") {
		t.Fatalf("expected truncated line, got:\n%s", buf.String())
	}
}

func TestParsePathMode(t *testing.T) {
	for _, s := range []string{"auto", "absolute", "relative", "basename"} {
		m, ok := ParsePathMode(s)
		if !ok || m.String() != s {
			t.Errorf("ParsePathMode(%q) = %v, %v", s, m, ok)
		}
	}
	if _, ok := ParsePathMode("weird"); ok {
		t.Error("unknown mode accepted")
	}
}
