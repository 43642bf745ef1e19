package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jsbundle/internal/diag"
	"jsbundle/internal/errs"
	"jsbundle/internal/source"
)

// CheckResult is the outcome for one file of CheckDir.
type CheckResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// LoadErr is set when the file could not be read; Bag is then empty.
	LoadErr error
}

type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int
	// Interface also runs the import/export rewrite on every file that parsed.
	Interface bool
}

// sourceExts — расширения, которые считаются модулями.
var sourceExts = map[string]bool{".js": true, ".mjs": true}

// listSources returns every .js/.mjs file under dir, sorted. Hidden
// directories and node_modules are skipped.
func listSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if sourceExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir parses every source file under dir in parallel. Results are in
// path order; a file that fails to load does not stop the others.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	files, err := listSources(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Загрузка последовательная: FileSet не потокобезопасен на запись
	results := make([]CheckResult, len(files))
	for i, path := range files {
		results[i] = CheckResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
		fileID, err := fileSet.Load(path)
		if err != nil {
			results[i].LoadErr = err
			continue
		}
		results[i].FileID = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range results {
		if results[i].LoadErr != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file := fileSet.Get(results[i].FileID)
			res, err := parseFile(gctx, file, opts.MaxDiagnostics)
			if err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i].Bag = res.Bag
			if opts.Interface && !res.Bag.HasErrors() {
				checkInterface(file, res.Builder, res.FileID, res.Bag)
			}
			res.Bag.Sort()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	Logger().Debug("check finished", zap.String("dir", dir), zap.Int("files", len(files)))
	return fileSet, results, nil
}

// diagnosticsOf extracts diagnostics carried by a build error.
func diagnosticsOf(err error) []diag.Diagnostic {
	var be *errs.Error
	if errors.As(err, &be) {
		return be.Diagnostics
	}
	return nil
}
