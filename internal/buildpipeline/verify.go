package buildpipeline

import (
	"fmt"

	"jsbundle/internal/bundler"
	"jsbundle/internal/diag"
	"jsbundle/internal/errs"
	"jsbundle/internal/graph"
	"jsbundle/internal/jsrun"
	"jsbundle/internal/source"
)

// verifyBundle compiles every transformed body as a module function. The
// bundle itself is only parsed by goja when it runs, so a body broken by
// the rewrite would otherwise surface at runtime.
func verifyBundle(g *graph.Graph, b bundler.Bundle) error {
	for i, id := range b.Modules {
		if i >= len(b.Bodies) {
			break
		}
		err := jsrun.CheckFunctionBody(id, b.Bodies[i])
		if err == nil {
			continue
		}
		builder := errs.New(errs.KindTransform).
			Path(id).
			Cause(err).
			Detail("transformed module does not compile")
		if m, ok := g.Lookup(id); ok && m.File != nil {
			sp := source.Span{File: m.File.ID}
			builder.At(m.File, sp).Diagnostics([]diag.Diagnostic{
				diag.NewError(diag.PrjVerifyFailed, sp, fmt.Sprintf("module body does not compile: %v", err)),
			})
		}
		return builder.Build()
	}
	return nil
}
