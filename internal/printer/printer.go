package printer

import (
	"strings"

	"jsbundle/internal/ast"
	"jsbundle/internal/source"
)

// Print renders a file back to text.
//
// Statements taken from the source are copied byte for byte, and so is
// everything between them (whitespace, comments). Statements produced by a
// rewrite share the span of the statement they replaced; each such run is
// printed in place of that span, one statement per line.
func Print(arenas *ast.Builder, fileID ast.FileID, src *source.File) string {
	file := arenas.Files.Get(fileID)
	var sb strings.Builder
	sb.Grow(len(src.Content) + len(file.Stmts)*16)

	cursor := file.Span.Start
	stmts := file.Stmts
	for i := 0; i < len(stmts); {
		st := arenas.Stmts.Get(stmts[i])
		origin := st.Span
		if origin.Start > cursor {
			sb.WriteString(src.Slice(source.Span{File: src.ID, Start: cursor, End: origin.Start}))
		}

		// группа синтетических инструкций с общим исходным спаном
		j := i + 1
		for j < len(stmts) && st.Synthetic {
			next := arenas.Stmts.Get(stmts[j])
			if !next.Synthetic || next.Span != origin {
				break
			}
			j++
		}
		for k := i; k < j; k++ {
			if k > i {
				sb.WriteByte('\n')
			}
			writeStmt(&sb, arenas, stmts[k], src)
		}

		cursor = max(cursor, origin.End)
		i = j
	}
	if int(cursor) < len(src.Content) {
		sb.Write(src.Content[cursor:])
	}
	return sb.String()
}

// Stmt renders a single statement without surrounding trivia.
func Stmt(arenas *ast.Builder, id ast.StmtID, src *source.File) string {
	var sb strings.Builder
	writeStmt(&sb, arenas, id, src)
	return sb.String()
}

func writeStmt(sb *strings.Builder, arenas *ast.Builder, id ast.StmtID, src *source.File) {
	st := arenas.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtRequire:
		req, _ := arenas.Require(id)
		writeRequire(sb, req)
	case ast.StmtExportAssign:
		as, _ := arenas.Assign(id)
		sb.WriteString(Member("exports", as.Name))
		sb.WriteString(" = ")
		sb.WriteString(as.Value)
		sb.WriteByte(';')
	case ast.StmtOther, ast.StmtImport, ast.StmtExportDefault, ast.StmtExportNamed:
		if st.Synthetic {
			sb.WriteString(st.Text)
			return
		}
		sb.WriteString(src.Slice(st.Span))
	}
}

// writeRequire: const { default: a, b: c } = require("./x.js");
func writeRequire(sb *strings.Builder, req *ast.RequireStmt) {
	call := "require(" + Quote(req.Target, '"') + ");"
	if len(req.Bindings) == 0 {
		sb.WriteString(call)
		return
	}
	sb.WriteString("const { ")
	for i, b := range req.Bindings {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(PropertyKey(b.Imported))
		sb.WriteString(": ")
		sb.WriteString(b.Local)
	}
	sb.WriteString(" } = ")
	sb.WriteString(call)
}
