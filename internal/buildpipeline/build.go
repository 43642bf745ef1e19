// Package buildpipeline orchestrates a build: graph, transform, optional
// verification, then the single output write.
package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"jsbundle/internal/errs"
	"jsbundle/internal/metafile"
)

// BuildResult captures build artefacts.
type BuildResult struct {
	CompileResult
	OutputPath   string
	MetafilePath string
}

// Build compiles the entry and writes exactly one bundle into
// OutputFolder, plus the metafile when one is requested.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if ctx == nil {
		ctx = context.Background()
	}
	if err := req.Validate(true); err != nil {
		return result, err
	}

	compileRes, err := Compile(ctx, req)
	result.CompileResult = compileRes
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	outputPath := filepath.Join(req.OutputFolder, compileRes.Bundle.Name)
	result.OutputPath = outputPath

	writeStart := time.Now()
	emitStage(req.Progress, result.Files, StageWrite, StatusWorking, nil, 0)
	err = req.Timer.Measure(string(StageWrite), func() (string, error) {
		// метафайл пишется первым: при его ошибке бандла на диске нет
		note := ""
		if req.Metafile != "" {
			mf := metafile.Build(compileRes.Graph, compileRes.Bundle, metafile.Options{
				BaseDir:    req.BaseDir,
				OutputPath: filepath.ToSlash(outputPath),
			})
			if err := mf.WriteFile(req.Metafile); err != nil {
				return "", errs.FileWrite(req.Metafile, err)
			}
			note = "with metafile"
		}
		if err := writeAtomic(outputPath, []byte(compileRes.Bundle.Content)); err != nil {
			if req.Metafile != "" {
				_ = os.Remove(req.Metafile)
			}
			return "", err
		}
		result.MetafilePath = req.Metafile
		return note, nil
	})
	if err != nil {
		emitStage(req.Progress, result.Files, StageWrite, StatusError, err, 0)
		return result, err
	}

	elapsed := time.Since(writeStart)
	emitStage(req.Progress, result.Files, StageWrite, StatusDone, nil, elapsed)
	Logger().Info("bundle written",
		zap.String("path", outputPath),
		zap.Int("bytes", len(compileRes.Bundle.Content)),
		zap.Int("modules", len(compileRes.Bundle.Modules)))
	return result, nil
}

// Summary is the one-line report printed after a successful build.
func (r BuildResult) Summary() string {
	return fmt.Sprintf("%s: %d modules, %d bytes", r.OutputPath, len(r.Bundle.Modules), len(r.Bundle.Content))
}
