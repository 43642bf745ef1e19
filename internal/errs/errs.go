package errs

import (
	"fmt"
	"strconv"
	"strings"

	"jsbundle/internal/diag"
	"jsbundle/internal/source"
)

// Kind categorizes a build error.
type Kind string

const (
	KindFileRead         Kind = "FileReadError"
	KindSyntax           Kind = "SyntaxError"
	KindTransform        Kind = "TransformError"
	KindCyclicDependency Kind = "CyclicDependencyError"
	KindFileWrite        Kind = "FileWriteError"
	KindConfig           Kind = "ConfigError"
	KindRuntime          Kind = "RuntimeError"
)

// Error is the structured error returned by every build stage.
// Any build error aborts the whole build; nothing is retried.
type Error struct {
	Cause error
	Kind  Kind
	// Path is the offending file.
	Path string
	// Pos is 0:0 when the position is unknown.
	Pos  source.LineCol
	Span source.Span
	// Stmt is the statement text for syntax and transform errors.
	Stmt   string
	Detail string
	// Chain is the import chain of a CyclicDependencyError.
	Chain       []string
	Diagnostics []diag.Diagnostic
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
		if e.Pos.Line > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(e.Pos.Line), 10))
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(e.Pos.Col), 10))
		}
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if len(e.Chain) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Chain, " -> "))
	}
	if e.Stmt != "" {
		b.WriteString("\n  in: ")
		b.WriteString(firstLine(e.Stmt))
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
// A target with an empty Kind matches any build error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == "" || e.Kind == t.Kind
	}
	return false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(kind Kind) *Builder {
	return &Builder{err: Error{Kind: kind}}
}

// Path sets the offending file.
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// At records the span and its resolved position inside file.
func (b *Builder) At(file *source.File, sp source.Span) *Builder {
	b.err.Span = sp
	if file != nil {
		b.err.Pos = file.Position(sp.Start)
		if b.err.Path == "" {
			b.err.Path = file.Path
		}
	}
	return b
}

// Stmt sets the statement text.
func (b *Builder) Stmt(text string) *Builder {
	b.err.Stmt = text
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Diagnostics attaches the diagnostics that caused the error.
func (b *Builder) Diagnostics(diags []diag.Diagnostic) *Builder {
	b.err.Diagnostics = diags
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors

// FileRead reports a missing or unreadable source file.
func FileRead(path string, cause error) *Error {
	return &Error{Kind: KindFileRead, Path: path, Cause: cause}
}

// FileWrite reports an output file that could not be written.
func FileWrite(path string, cause error) *Error {
	return &Error{Kind: KindFileWrite, Path: path, Cause: cause}
}

// Syntax reports an unparsable file. The first error diagnostic supplies
// the position.
func Syntax(file *source.File, diags []diag.Diagnostic) *Error {
	e := &Error{Kind: KindSyntax, Path: file.Path, Diagnostics: diags}
	for _, d := range diags {
		if d.Severity >= diag.SevError {
			e.Span = d.Primary
			e.Pos = file.Position(d.Primary.Start)
			e.Detail = d.Message
			e.Stmt = file.GetLine(e.Pos.Line)
			break
		}
	}
	if n := len(diags); n > 1 {
		e.Detail += fmt.Sprintf(" (and %d more)", n-1)
	}
	return e
}

// Cyclic reports an import cycle; chain starts and ends with the same file.
func Cyclic(chain []string) *Error {
	path := ""
	if len(chain) > 0 {
		path = chain[0]
	}
	return &Error{Kind: KindCyclicDependency, Path: path, Detail: "import cycle", Chain: chain}
}

// Config reports a manifest or option problem.
func Config(path, detail string, cause error) *Error {
	return &Error{Kind: KindConfig, Path: path, Detail: detail, Cause: cause}
}

// Runtime reports an exception thrown by an executed bundle.
func Runtime(detail string, cause error) *Error {
	return &Error{Kind: KindRuntime, Detail: detail, Cause: cause}
}

// Sentinels for errors.Is.
var (
	ErrFileRead         = &Error{Kind: KindFileRead}
	ErrSyntax           = &Error{Kind: KindSyntax}
	ErrTransform        = &Error{Kind: KindTransform}
	ErrCyclicDependency = &Error{Kind: KindCyclicDependency}
	ErrFileWrite        = &Error{Kind: KindFileWrite}
	ErrConfig           = &Error{Kind: KindConfig}
	ErrRuntime          = &Error{Kind: KindRuntime}
)
