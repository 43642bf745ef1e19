// Package ast holds the top-level structure of a JavaScript module.
//
// Only the module interface is modelled: import and export statements get
// typed payloads, every other top-level statement is StmtOther and is kept
// as a source span. Nested code is never parsed into nodes; the printer
// reproduces it from the original text. Nodes live in 1-based arenas owned
// by a Builder, and 0 is the invalid ID.
package ast
