package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"jsbundle/internal/ast"
	"jsbundle/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty печатает верхний уровень модуля деревом:
// инструкции с разбором import/export и таблица объявленных имён.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}

	header := "File"
	if fs != nil {
		if src := fs.Get(file.Source); src != nil {
			header = src.FormatPath("auto", fs.BaseDir())
		}
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, formatSpan(file.Span, fs))}
	for i, stmtID := range file.Stmts {
		root.children = append(root.children, stmtTreeNode(builder, stmtID, fs, i))
	}
	if len(file.Bindings) > 0 {
		bindings := &treeNode{label: "Bindings"}
		for _, b := range file.Bindings {
			label := fmt.Sprintf("%s %s", b.Kind, b.Name)
			if b.Pattern {
				label += " (pattern)"
			}
			bindings.children = append(bindings.children, &treeNode{label: label})
		}
		root.children = append(root.children, bindings)
	}

	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeTree(&sb, root.children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTree(sb *strings.Builder, nodes []*treeNode, prefix string) {
	for i, n := range nodes {
		branch, next := "├─ ", "│  "
		if i == len(nodes)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + n.label + "\n")
		writeTree(sb, n.children, prefix+next)
	}
}

func stmtTreeNode(builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet, idx int) *treeNode {
	st := builder.Stmts.Get(stmtID)
	if st == nil {
		return &treeNode{label: fmt.Sprintf("Stmt[%d]: <nil>", idx)}
	}
	node := &treeNode{label: fmt.Sprintf("Stmt[%d]: %s (span: %s)", idx, st.Kind, formatSpan(st.Span, fs))}
	fields := stmtFields(builder, stmtID, fs)
	for _, f := range fields {
		node.children = append(node.children, &treeNode{label: f.key + ": " + f.value})
	}
	return node
}

type field struct{ key, value string }

// stmtFields — содержимое инструкции в порядке вывода; общее для pretty и JSON.
func stmtFields(builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet) []field {
	st := builder.Stmts.Get(stmtID)
	var out []field
	switch st.Kind {
	case ast.StmtImport:
		decl, _ := builder.Import(stmtID)
		out = append(out, field{"Specifier", fmt.Sprintf("%q", decl.Specifier)})
		if decl.Default != nil {
			out = append(out, field{"Default", decl.Default.Local})
		}
		if decl.Namespace != nil {
			out = append(out, field{"Namespace", decl.Namespace.Local})
		}
		if len(decl.Named) > 0 {
			out = append(out, field{"Named", formatImportBindings(decl.Named)})
		}
	case ast.StmtExportDefault:
		decl, _ := builder.ExportDefault(stmtID)
		out = append(out, field{"Form", defaultFormName(decl.Form)})
		if decl.Name != "" {
			out = append(out, field{"Name", decl.Name})
		}
	case ast.StmtExportNamed:
		decl, _ := builder.ExportNamed(stmtID)
		out = append(out, field{"Form", namedFormName(decl.Form)})
		if decl.Decl != ast.DeclNone {
			out = append(out, field{"Decl", decl.Decl.String()})
		}
		if len(decl.Bindings) > 0 {
			out = append(out, field{"Bindings", formatExportBindings(decl.Bindings)})
		}
		if decl.Specifier != "" {
			out = append(out, field{"Specifier", fmt.Sprintf("%q", decl.Specifier)})
		}
	case ast.StmtRequire:
		req, _ := builder.Require(stmtID)
		out = append(out, field{"Target", fmt.Sprintf("%q", req.Target)})
		if len(req.Bindings) > 0 {
			out = append(out, field{"Bindings", formatImportBindings(req.Bindings)})
		}
	case ast.StmtExportAssign:
		as, _ := builder.Assign(stmtID)
		out = append(out, field{"Name", as.Name}, field{"Value", summarize(as.Value)})
	case ast.StmtOther:
		text := st.Text
		if !st.Synthetic && fs != nil {
			text = fs.Text(st.Span)
		}
		out = append(out, field{"Text", summarize(text)})
	}
	return out
}

// FormatASTJSON выводит то же дерево в JSON.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}

	output := ASTNodeOutput{Type: "File", Span: file.Span}
	for _, stmtID := range file.Stmts {
		st := builder.Stmts.Get(stmtID)
		node := ASTNodeOutput{Type: "Stmt", Kind: st.Kind.String(), Span: st.Span}
		if st.Synthetic {
			node.Text = st.Text
		}
		if fields := stmtFields(builder, stmtID, fs); len(fields) > 0 {
			node.Fields = make(map[string]any, len(fields))
			for _, f := range fields {
				node.Fields[f.key] = f.value
			}
		}
		output.Children = append(output.Children, node)
	}
	for _, b := range file.Bindings {
		output.Children = append(output.Children, ASTNodeOutput{
			Type:   "Binding",
			Kind:   b.Kind.String(),
			Span:   b.Span,
			Text:   b.Name,
			Fields: map[string]any{"pattern": b.Pattern},
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func formatImportBindings(bs []ast.ImportBinding) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		if b.Imported == b.Local {
			parts = append(parts, b.Local)
			continue
		}
		parts = append(parts, b.Imported+" as "+b.Local)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatExportBindings(bs []ast.ExportBinding) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		switch {
		case b.Destructured:
			parts = append(parts, summarize(b.Local)+" (pattern)")
		case b.Local == b.Exported:
			parts = append(parts, b.Local)
		default:
			parts = append(parts, b.Local+" as "+b.Exported)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func defaultFormName(f ast.DefaultForm) string {
	switch f {
	case ast.DefaultIdent:
		return "ident"
	case ast.DefaultFunction:
		return "function"
	case ast.DefaultClass:
		return "class"
	default:
		return "expr"
	}
}

func namedFormName(f ast.NamedForm) string {
	switch f {
	case ast.NamedList:
		return "list"
	case ast.NamedFrom:
		return "from"
	case ast.NamedAll:
		return "all"
	default:
		return "decl"
	}
}

// summarize — первая строка текста, не длиннее 60 символов.
func summarize(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i]) + " ..."
	}
	return truncate(text, 60)
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Get(span.File) == nil {
		return fmt.Sprintf("%d..%d", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
