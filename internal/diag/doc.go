// Package diag defines the diagnostic model shared by the lexer, parser,
// transformer and build pipeline.
//
// A Diagnostic carries a Severity, a stable numeric Code (rendered as
// LEX/SYN/TRN/IO/PRJ plus four digits), a message, a primary source span
// and optional notes and fixes.
//
// Producers emit through a Reporter (usually via ReportBuilder) and never
// format or print. BagReporter collects into a Bag that supports sorting,
// deduplication and limits. Rendering lives in internal/diagfmt; FormatShort
// is the one-line form used by tests and the quiet CLI mode.
package diag
