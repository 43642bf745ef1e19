package graph

import (
	"context"
	"fmt"
	"path"

	"fortio.org/safecast"
	"go.uber.org/zap"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/errs"
	"jsbundle/internal/parser"
	"jsbundle/internal/resolve"
	"jsbundle/internal/source"
)

// CyclePolicy decides what happens when an import reaches a module that
// is still being built.
type CyclePolicy string

const (
	// CyclesAllow reuses the in-flight module; the runtime loader copes with the cycle.
	CyclesAllow CyclePolicy = "allow"
	// CyclesError fails the build with a CyclicDependencyError.
	CyclesError CyclePolicy = "error"
)

// ParseCyclePolicy validates a policy name; empty means allow.
func ParseCyclePolicy(s string) (CyclePolicy, error) {
	switch CyclePolicy(s) {
	case "", CyclesAllow:
		return CyclesAllow, nil
	case CyclesError:
		return CyclesError, nil
	}
	return "", fmt.Errorf("unknown cycle policy %q (want allow or error)", s)
}

type Options struct {
	// Dedupe materializes every identifier once. Without it every import
	// edge creates a new Module and cycles are always an error.
	Dedupe bool
	Cycles CyclePolicy
	// MaxDiagnostics caps the diagnostics collected per file (0 = bag default).
	MaxDiagnostics uint16
	// OnModule is called after a module is parsed, before its imports are followed.
	OnModule func(m *Module)
}

// DefaultOptions: dedupe on, cycles allowed.
func DefaultOptions() Options {
	return Options{Dedupe: true, Cycles: CyclesAllow}
}

// Builder discovers the dependency graph of an entry file.
type Builder struct {
	fs   *source.FileSet
	opts Options

	g *Graph
	// пути модулей на текущей ветке DFS и число их вхождений
	stack   []string
	onStack map[string]int
}

func NewBuilder(fs *source.FileSet, opts Options) *Builder {
	if opts.Cycles == "" {
		opts.Cycles = CyclesAllow
	}
	if !opts.Dedupe {
		opts.Cycles = CyclesError
	}
	return &Builder{fs: fs, opts: opts}
}

// Build reads and parses entry and everything it transitively imports,
// depth first in import order. The first failure aborts the build.
func (b *Builder) Build(ctx context.Context, entry string) (*Graph, error) {
	b.g = &Graph{byPath: make(map[string]ModuleID)}
	b.stack = b.stack[:0]
	b.onStack = make(map[string]int)

	id, err := b.createModule(ctx, Canonical(entry))
	if err != nil {
		return nil, err
	}
	b.g.Entry = id
	Logger().Debug("graph built",
		zap.String("entry", b.g.Modules[id].Path),
		zap.Int("modules", len(b.g.Modules)))
	return b.g, nil
}

// Canonical converts a file path into a module identifier.
func Canonical(p string) string {
	return path.Clean(resolve.ToSlash(p))
}

func (b *Builder) createModule(ctx context.Context, modPath string) (ModuleID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fileID, err := b.fs.Load(modPath)
	if err != nil {
		return 0, errs.FileRead(modPath, err)
	}
	file := b.fs.Get(fileID)

	bag := diag.NewBag(int(b.opts.MaxDiagnostics))
	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(ctx, file, arenas, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		bag.Sort()
		return 0, errs.Syntax(file, bag.Items())
	}

	n, err := safecast.Conv[uint32](len(b.g.Modules))
	if err != nil {
		panic(fmt.Errorf("module count overflow: %w", err))
	}
	m := &Module{
		ID:   ModuleID(n),
		Path: modPath,
		File: file,
		AST:  arenas,
		Root: res.File,
	}
	b.g.Modules = append(b.g.Modules, m)
	if _, seen := b.g.byPath[modPath]; !seen {
		b.g.byPath[modPath] = m.ID
	}
	Logger().Debug("module loaded", zap.String("path", modPath), zap.Int("bytes", len(file.Content)))
	if b.opts.OnModule != nil {
		b.opts.OnModule(m)
	}

	b.push(modPath)
	defer b.pop()

	for _, stmtID := range arenas.ImportStmts(res.File) {
		decl, _ := arenas.Import(stmtID)
		if !resolve.IsRelative(decl.Specifier) {
			st := arenas.Stmts.Get(stmtID)
			return 0, errs.New(errs.KindFileRead).At(file, decl.SpecifierSpan).
				Detail("unsupported import specifier %q: only relative paths (./, ../) are bundled", decl.Specifier).
				Stmt(file.Slice(st.Span)).Build()
		}
		target := resolve.Resolve(modPath, decl.Specifier)
		dep, err := b.follow(ctx, target)
		if err != nil {
			return 0, err
		}
		m.Deps = append(m.Deps, dep)
		m.Imports = append(m.Imports, Import{
			Stmt:      stmtID,
			Specifier: decl.Specifier,
			Target:    target,
			Span:      decl.SpecifierSpan,
		})
	}
	return m.ID, nil
}

// follow returns the module for target, building it if needed.
func (b *Builder) follow(ctx context.Context, target string) (ModuleID, error) {
	if b.onStack[target] > 0 && b.opts.Cycles == CyclesError {
		return 0, errs.Cyclic(b.chainTo(target))
	}
	if b.opts.Dedupe {
		if id, ok := b.g.byPath[target]; ok {
			return id, nil
		}
	}
	return b.createModule(ctx, target)
}

// chainTo: a.js -> b.js -> a.js, начиная с первого вхождения target.
func (b *Builder) chainTo(target string) []string {
	start := 0
	for i, p := range b.stack {
		if p == target {
			start = i
			break
		}
	}
	chain := append([]string(nil), b.stack[start:]...)
	return append(chain, target)
}

func (b *Builder) push(p string) {
	b.stack = append(b.stack, p)
	b.onStack[p]++
}

func (b *Builder) pop() {
	p := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.onStack[p]--
}
