package bundler

import (
	"strings"

	"jsbundle/internal/printer"
)

// ModuleMap is the ordered identifier -> module function table of a bundle.
// Entries are rendered in insertion order; a repeated identifier is kept
// and the later entry wins when the literal is evaluated.
type ModuleMap struct {
	ids    []string
	bodies []string
}

// Add appends a module body under id.
func (mm *ModuleMap) Add(id, body string) {
	mm.ids = append(mm.ids, id)
	mm.bodies = append(mm.bodies, body)
}

// Len returns the number of entries.
func (mm *ModuleMap) Len() int { return len(mm.ids) }

// IDs lists identifiers in insertion order.
func (mm *ModuleMap) IDs() []string { return append([]string(nil), mm.ids...) }

// Bodies lists module bodies in insertion order.
func (mm *ModuleMap) Bodies() []string { return append([]string(nil), mm.bodies...) }

// EntryBytes returns the rendered size of every entry of Literal.
func (mm *ModuleMap) EntryBytes() []int {
	out := make([]int, len(mm.ids))
	for i := range mm.ids {
		out[i] = len(QuoteJS(mm.ids[i])) + len(entryOpen) + len(mm.bodies[i]) + len(entryClose)
	}
	return out
}

const (
	entryOpen  = ": function(exports, require) { "
	entryClose = " },"
)

// Literal renders {"<id>": function(exports, require) { <body> },...}.
func (mm *ModuleMap) Literal() string {
	var sb strings.Builder
	n := 2
	for i := range mm.ids {
		n += len(mm.ids[i]) + len(mm.bodies[i]) + 48
	}
	sb.Grow(n)
	sb.WriteByte('{')
	for i := range mm.ids {
		sb.WriteString(QuoteJS(mm.ids[i]))
		sb.WriteString(entryOpen)
		sb.WriteString(mm.bodies[i])
		sb.WriteString(entryClose)
	}
	sb.WriteByte('}')
	return sb.String()
}

// QuoteJS renders an identifier as a double-quoted JavaScript string.
// Map keys and require() arguments go through the same escaper, so the
// loader looks up exactly the bytes stored as keys.
func QuoteJS(id string) string {
	return printer.Quote(id, '"')
}

// quoteEntry renders the entry identifier single-quoted.
func quoteEntry(id string) string {
	return printer.Quote(id, '\'')
}

// wrapBody makes module text safe to place between "{ " and " }":
// a leading hashbang becomes a comment and a trailing line comment gets
// its line closed.
func wrapBody(text string) string {
	if strings.HasPrefix(text, "#!") {
		text = "//" + text
	}
	last := text[strings.LastIndexByte(text, '\n')+1:]
	if strings.Contains(last, "//") {
		text += "\n"
	}
	return text
}
