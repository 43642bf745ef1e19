package driver

import (
	"context"

	"fortio.org/safecast"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/graph"
	"jsbundle/internal/parser"
	"jsbundle/internal/source"
	"jsbundle/internal/transform"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// ParseOptions: Transform additionally rewrites the module interface, so
// the dump shows the require/exports statements that end up in a bundle.
type ParseOptions struct {
	MaxDiagnostics int
	Transform      bool
}

func Parse(ctx context.Context, filePath string, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	res, err := parseFile(ctx, file, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	res.FileSet = fs
	if opts.Transform && !res.Bag.HasErrors() {
		checkInterface(file, res.Builder, res.FileID, res.Bag)
	}
	return res, nil
}

func parseFile(ctx context.Context, file *source.File, maxDiagnostics int) (*ParseResult, error) {
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{})
	result := parser.Parse(ctx, file, builder, parser.Options{
		Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		MaxErrors: maxErrors,
	})
	return &ParseResult{
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}

// checkInterface runs the interface rewrite on a parsed file and moves a
// transform failure into bag. The AST is rewritten in place on success.
func checkInterface(file *source.File, builder *ast.Builder, root ast.FileID, bag *diag.Bag) {
	m := &graph.Module{
		Path: file.Path,
		File: file,
		AST:  builder,
		Root: root,
	}
	err := transform.Module(m)
	if err == nil {
		return
	}
	if diags := diagnosticsOf(err); len(diags) > 0 {
		for _, d := range diags {
			bag.Add(d)
		}
		return
	}
	bag.Add(diag.NewError(diag.TrnInfo, source.Span{File: file.ID}, err.Error()))
}
