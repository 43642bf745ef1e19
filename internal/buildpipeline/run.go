package buildpipeline

import (
	"context"
	"time"

	"jsbundle/internal/jsrun"
)

// Run compiles the entry in memory and executes the bundle in the
// embedded runtime. Nothing is written to disk.
func Run(ctx context.Context, req *BuildRequest, opts jsrun.Options) (CompileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := Compile(ctx, req)
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	start := time.Now()
	emitStage(req.Progress, nil, StageRun, StatusWorking, nil, 0)
	err = req.Timer.Measure(string(StageRun), func() (string, error) {
		return "", jsrun.Run(ctx, result.Bundle.Name, result.Bundle.Content, opts)
	})
	if err != nil {
		emitStage(req.Progress, nil, StageRun, StatusError, err, time.Since(start))
		return result, err
	}
	emitStage(req.Progress, nil, StageRun, StatusDone, nil, time.Since(start))
	return result, nil
}
