package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"jsbundle/internal/diag"
	"jsbundle/internal/source"
)

func decodeJSON(t *testing.T, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	t.Helper()
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	return out
}

func TestJSONNamespaceImport(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/p")
	src := "// entry\nimport * as m from './m.js';\n"
	id := fs.AddVirtual("/p/src/a.js", []byte(src))

	bag := diag.NewBag(10)
	sp := source.Span{File: id, Start: 16, End: 22}
	bag.Add(diag.NewError(diag.TrnNamespaceImport, sp, "namespace imports are not supported").
		WithNote(source.Span{File: id, Start: 9, End: 37}, "in this import"))

	out := decodeJSON(t, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeRelative,
		IncludeNotes:     true,
	})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "TRN3001" {
		t.Errorf("severity=%s code=%s", d.Severity, d.Code)
	}
	loc := d.Location
	if loc.File != "src/a.js" || loc.StartByte != 16 || loc.EndByte != 22 {
		t.Errorf("location = %+v", loc)
	}
	if loc.StartLine != 2 || loc.StartCol != 8 {
		t.Errorf("start = %d:%d, want 2:8", loc.StartLine, loc.StartCol)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "in this import" || d.Notes[0].Location.StartLine != 2 {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 0 {
		t.Errorf("fixes without IncludeFixes: %+v", d.Fixes)
	}
}

func TestJSONFixes(t *testing.T) {
	fs := source.NewFileSet()
	src := "const a = 1;\n)\n"
	id := fs.AddVirtual("stray.js", []byte(src))

	bag := diag.NewBag(10)
	sp := source.Span{File: id, Start: 13, End: 14}
	bag.Add(diag.NewError(diag.SynUnmatchedCloser, sp, "unmatched ')'").
		WithFix("remove ')'", diag.FixEdit{Span: sp, NewText: ""}))

	out := decodeJSON(t, bag, fs, JSONOpts{PathMode: PathModeBasename, IncludeFixes: true})
	fixes := out.Diagnostics[0].Fixes
	if len(fixes) != 1 || fixes[0].Title != "remove ')'" || len(fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", fixes)
	}
	edit := fixes[0].Edits[0]
	if edit.OldText != ")" || edit.NewText != "" || edit.Location.File != "stray.js" {
		t.Errorf("edit = %+v", edit)
	}
	if edit.Location.StartLine != 0 {
		t.Errorf("positions written without IncludePositions: %+v", edit.Location)
	}
}

func TestJSONFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.js", []byte("import a from './a.js'\nlet b = a\n"))

	bag := diag.NewBag(2)
	at := source.Span{File: id, Start: 22, End: 22}
	bag.Add(diag.New(diag.SevWarning, diag.SynMalformedImport, at, "missing semicolon").
		WithFix("insert semicolon", diag.FixEdit{Span: at, NewText: ";"}))

	out := decodeJSON(t, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeFixes:     true,
		IncludePreviews:  true,
	})
	edits := out.Diagnostics[0].Fixes[0].Edits
	if len(edits) != 1 {
		t.Fatalf("edits = %+v", edits)
	}
	e := edits[0]
	if len(e.BeforeLines) != 1 || e.BeforeLines[0] != "import a from './a.js'" {
		t.Errorf("before = %q", e.BeforeLines)
	}
	if len(e.AfterLines) != 1 || e.AfterLines[0] != "import a from './a.js';" {
		t.Errorf("after = %q", e.AfterLines)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("many.js", []byte("@@@@@"))

	bag := diag.NewBag(10)
	for i := uint32(0); i < 5; i++ {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: i, End: i + 1}, "unknown character '@'"))
	}

	out := decodeJSON(t, bag, fs, JSONOpts{PathMode: PathModeBasename, Max: 3})
	if out.Count != 3 || len(out.Diagnostics) != 3 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
}

func TestJSONPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	id := fs.AddVirtual("/home/user/project/src/main.js", []byte("#"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 0, End: 1}, "unknown character '#'"))

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/main.js"},
		{PathModeRelative, "src/main.js"},
		{PathModeBasename, "main.js"},
	}
	for _, tt := range tests {
		out := decodeJSON(t, bag, fs, JSONOpts{PathMode: tt.mode})
		if got := out.Diagnostics[0].Location.File; got != tt.want {
			t.Errorf("mode %v: file = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
