// Package bundler emits a single JavaScript file holding every module of
// a graph plus the runtime loader that wires them together.
package bundler

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"jsbundle/internal/errs"
	"jsbundle/internal/graph"
	"jsbundle/internal/printer"
	"jsbundle/internal/token"
	"jsbundle/internal/transform"
)

const (
	// DefaultName is the file name of the emitted bundle.
	DefaultName = "bundle.js"
	// DefaultLoader is the name of the emitted loader function.
	DefaultLoader = "jsbundleStart"
)

//go:embed loader.js.tmpl
var loaderSource string

var loaderTemplate = template.Must(template.New("loader").Parse(loaderSource))

type Options struct {
	Name   string
	Loader string
}

// Bundle is the single output artifact of a build.
type Bundle struct {
	Name    string
	Content string
	// Modules lists identifiers in module map order; Entry is the first one.
	Modules []string
	Entry   string
	// Bodies and Bytes run parallel to Modules: the transformed module
	// text and the size of its map entry in Content.
	Bodies []string
	Bytes  []int
}

// Build transforms every module of g in depth-first order and renders the
// bundle. Each module is transformed exactly once.
func Build(g *graph.Graph, opts Options) (Bundle, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Loader == "" {
		opts.Loader = DefaultLoader
	}
	if err := ValidateLoader(opts.Loader); err != nil {
		return Bundle{}, err
	}

	order := g.Order()
	if len(order) == 0 {
		return Bundle{}, errs.New(errs.KindTransform).Detail("empty module graph").Build()
	}
	var mm ModuleMap
	for _, m := range order {
		if err := transform.Module(m); err != nil {
			return Bundle{}, err
		}
		mm.Add(m.Path, wrapBody(transform.Text(m)))
	}

	entry := g.Module(g.Entry).Path
	content, err := Render(&mm, entry, opts.Loader)
	if err != nil {
		return Bundle{}, err
	}
	Logger().Debug("bundle rendered",
		zap.String("name", opts.Name),
		zap.Int("modules", mm.Len()),
		zap.Int("bytes", len(content)))
	return Bundle{
		Name:    opts.Name,
		Content: content,
		Modules: mm.IDs(),
		Entry:   entry,
		Bodies:  mm.Bodies(),
		Bytes:   mm.EntryBytes(),
	}, nil
}

// Render substitutes the module map, the entry and the loader name into
// the loader template and appends the bootstrap call.
func Render(mm *ModuleMap, entry, loader string) (string, error) {
	var sb strings.Builder
	err := loaderTemplate.Execute(&sb, struct {
		Modules string
		Entry   string
		Loader  string
	}{
		Modules: mm.Literal(),
		Entry:   quoteEntry(entry),
		Loader:  loader,
	})
	if err != nil {
		return "", fmt.Errorf("render loader: %w", err)
	}
	return sb.String(), nil
}

// ValidateLoader checks that name can be used as a function name.
func ValidateLoader(name string) error {
	_, reserved := token.LookupKeyword(name)
	if reserved || !printer.IsIdentName(name) || name == "modules" || name == "entry" {
		return errs.Config("", fmt.Sprintf("invalid loader name %q", name), nil)
	}
	return nil
}
