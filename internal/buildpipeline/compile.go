package buildpipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jsbundle/internal/bundler"
	"jsbundle/internal/graph"
	"jsbundle/internal/source"
)

// CompileResult holds the in-memory artefacts of a build.
type CompileResult struct {
	FileSet *source.FileSet
	Graph   *graph.Graph
	Bundle  bundler.Bundle
	// Files are the display paths of the modules, in discovery order.
	Files []string
}

// Compile builds the graph, transforms every module and renders the
// bundle without writing anything. Cancellation is checked between stages.
func Compile(ctx context.Context, req *BuildRequest) (CompileResult, error) {
	var result CompileResult
	if ctx == nil {
		ctx = context.Background()
	}
	if err := req.Validate(false); err != nil {
		return result, err
	}

	fs := req.FileSet
	if fs == nil {
		fs = source.NewFileSetWithBase(req.BaseDir)
	}
	result.FileSet = fs

	gopts := req.Graph
	userHook := gopts.OnModule
	gopts.OnModule = func(m *graph.Module) {
		file := req.displayPath(m.Path)
		result.Files = append(result.Files, file)
		emitFile(req.Progress, file, StageGraph, StatusDone, nil)
		if userHook != nil {
			userHook(m)
		}
	}

	emitStage(req.Progress, nil, StageGraph, StatusWorking, nil, 0)
	err := req.Timer.Measure(string(StageGraph), func() (string, error) {
		g, err := graph.NewBuilder(fs, gopts).Build(ctx, req.EntryFile)
		if err != nil {
			return "", err
		}
		result.Graph = g
		return fmt.Sprintf("%d modules", len(g.Modules)), nil
	})
	if err != nil {
		emitStage(req.Progress, nil, StageGraph, StatusError, err, 0)
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	emitStage(req.Progress, result.Files, StageTransform, StatusWorking, nil, 0)
	err = req.Timer.Measure(string(StageTransform), func() (string, error) {
		b, err := bundler.Build(result.Graph, bundler.Options{Name: req.outputName(), Loader: req.Loader})
		if err != nil {
			return "", err
		}
		result.Bundle = b
		return fmt.Sprintf("%d bytes", len(b.Content)), nil
	})
	if err != nil {
		emitStage(req.Progress, result.Files, StageTransform, StatusError, err, 0)
		return result, err
	}

	if req.Verify {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		emitStage(req.Progress, result.Files, StageVerify, StatusWorking, nil, 0)
		err = req.Timer.Measure(string(StageVerify), func() (string, error) {
			return "", verifyBundle(result.Graph, result.Bundle)
		})
		if err != nil {
			emitStage(req.Progress, result.Files, StageVerify, StatusError, err, 0)
			return result, err
		}
	}

	Logger().Debug("compiled",
		zap.String("entry", result.Bundle.Entry),
		zap.Int("modules", len(result.Bundle.Modules)),
		zap.Bool("verified", req.Verify))
	return result, nil
}
