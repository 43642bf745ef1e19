package metafile

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"jsbundle/internal/bundler"
	"jsbundle/internal/graph"
	"jsbundle/internal/source"
)

func buildFixture(t *testing.T) (*graph.Graph, bundler.Bundle) {
	t.Helper()
	files := source.MapReader{
		"/p/src/index.js": "import sq from './lib/square.js';\nimport './side.js';\nconsole.log(sq(2));\n",
		"/p/src/lib/square.js": "export default x => x * x;\n",
		"/p/src/side.js":       "console.log('side');\n",
	}
	g, err := graph.NewBuilder(source.NewFileSetWithReader(files), graph.DefaultOptions()).Build(context.Background(), "/p/src/index.js")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	b, err := bundler.Build(g, bundler.Options{})
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	return g, b
}

func TestBuildDescribesInputsAndOutput(t *testing.T) {
	g, b := buildFixture(t)
	mf := Build(g, b, Options{BaseDir: "/p", OutputPath: "/p/dist/bundle.js"})

	if len(mf.Inputs) != 3 {
		t.Fatalf("inputs = %v", mf.Inputs)
	}
	index, ok := mf.Inputs["src/index.js"]
	if !ok {
		t.Fatalf("entry missing from inputs: %v", mf.Inputs)
	}
	wantImports := []Import{
		{Path: "src/lib/square.js", Kind: ImportKind, Original: "./lib/square.js"},
		{Path: "src/side.js", Kind: ImportKind, Original: "./side.js"},
	}
	if !reflect.DeepEqual(index.Imports, wantImports) {
		t.Errorf("imports = %+v", index.Imports)
	}
	if index.Format != "esm" || mf.Inputs["src/side.js"].Format != "" {
		t.Errorf("formats: index=%q side=%q", index.Format, mf.Inputs["src/side.js"].Format)
	}
	if index.Bytes != len(g.Module(g.Entry).File.Content) || len(index.Hash) != 64 {
		t.Errorf("index bytes=%d hash=%q", index.Bytes, index.Hash)
	}

	out, ok := mf.Outputs["dist/bundle.js"]
	if !ok {
		t.Fatalf("outputs = %v", mf.Outputs)
	}
	if out.Bytes != len(b.Content) || out.EntryPoint != "src/index.js" {
		t.Errorf("output = %+v", out)
	}
	sum := 0
	for _, c := range out.Inputs {
		sum += c.BytesInOutput
	}
	if sum == 0 || sum >= out.Bytes {
		t.Errorf("contributions %d out of %d bytes", sum, out.Bytes)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	g, b := buildFixture(t)
	mf := Build(g, b, Options{})

	for _, f := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := mf.Encode(&buf, f); err != nil {
				t.Fatal(err)
			}
			got, err := Decode(&buf, f)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, mf) {
				t.Fatalf("round trip mismatch:\n%+v\n%+v", got, mf)
			}
		})
	}
}

func TestWriteFileByExtension(t *testing.T) {
	g, b := buildFixture(t)
	mf := Build(g, b, Options{})
	dir := t.TempDir()

	for _, name := range []string{"meta.json", "meta.mp"} {
		path := filepath.Join(dir, "out", name)
		if err := mf.WriteFile(path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got.Inputs) != len(mf.Inputs) {
			t.Errorf("%s: inputs = %d", name, len(got.Inputs))
		}
	}
	if FormatFor("x.MSGPACK") != FormatMsgpack || FormatFor("x.json") != FormatJSON {
		t.Error("FormatFor ignores extensions")
	}
}
