package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsbundle/internal/diag"
	"jsbundle/internal/source"
)

const tabWidth = 4

// palette раскрашивает части вывода; при выключенном цвете все функции тождественны.
type palette struct {
	sev    map[diag.Severity]func(a ...any) string
	code   func(a ...any) string
	gutter func(a ...any) string
	caret  func(a ...any) string
	note   func(a ...any) string
	fix    func(a ...any) string
	added  func(a ...any) string
	remove func(a ...any) string
}

func newPalette(enabled bool) palette {
	paint := func(attrs ...color.Attribute) func(a ...any) string {
		if !enabled {
			return fmt.Sprint
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		sev: map[diag.Severity]func(a ...any) string{
			diag.SevError:   paint(color.FgRed, color.Bold),
			diag.SevWarning: paint(color.FgYellow, color.Bold),
			diag.SevInfo:    paint(color.FgCyan, color.Bold),
		},
		code:   paint(color.Bold),
		gutter: paint(color.FgBlue),
		caret:  paint(color.FgRed, color.Bold),
		note:   paint(color.FgCyan),
		fix:    paint(color.FgGreen),
		added:  paint(color.FgGreen),
		remove: paint(color.FgRed),
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	paintSev := pal.sev[d.Severity]
	if paintSev == nil {
		paintSev = fmt.Sprint
	}
	file := fs.Get(d.Primary.File)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n", paintSev(d.Severity.String()), pal.code(d.Code.ID()), d.Message)
		return
	}

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		location(file, fs, d.Primary, opts.PathMode),
		paintSev(d.Severity.String()),
		pal.code(d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, file, d.Primary, opts, pal)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			if nf == nil {
				fmt.Fprintf(w, "  %s %s\n", pal.note("note:"), note.Msg)
				continue
			}
			fmt.Fprintf(w, "  %s %s: %s\n", pal.note("note:"), location(nf, fs, note.Span, opts.PathMode), note.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix("fix #"+strconv.Itoa(i+1)+":"), fx.Title)
			for _, edit := range fx.Edits {
				ef := fs.Get(edit.Span.File)
				if ef == nil {
					continue
				}
				fmt.Fprintf(w, "    edit %s apply=%q\n", location(ef, fs, edit.Span, opts.PathMode), edit.NewText)
				if !opts.ShowPreview {
					continue
				}
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range preview.before {
					fmt.Fprintf(w, "      %s\n", pal.remove("- "+expandTabs(line)))
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      %s\n", pal.added("+ "+expandTabs(line)))
				}
			}
		}
	}
}

// writeSnippet печатает строку диагностики с Context строками вокруг и подчёркивает span.
func writeSnippet(w io.Writer, file *source.File, sp source.Span, opts PrettyOpts, pal palette) {
	pos := file.Position(sp.Start)
	lineCount := uint32(len(file.LineIdx)) + 1 // #nosec G115 -- bounded by content length
	ctx := uint32(max(opts.Context, 0))        // #nosec G115 -- non-negative int8

	first := uint32(1)
	if pos.Line > ctx {
		first = pos.Line - ctx
	}
	last := min(pos.Line+ctx, lineCount)
	gutterWidth := len(strconv.FormatUint(uint64(last), 10))

	for ln := first; ln <= last; ln++ {
		text := expandTabs(file.GetLine(ln))
		if opts.Width > 0 {
			text = truncate(text, int(opts.Width))
		}
		num := fmt.Sprintf("%*d", gutterWidth, ln)
		fmt.Fprintf(w, "%s %s\n", pal.gutter(num+" |"), text)
		if ln != pos.Line {
			continue
		}
		col, width := underline(file, sp, ln)
		pad := strings.Repeat(" ", gutterWidth)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter(pad+" |"), strings.Repeat(" ", col), pal.caret("^"+strings.Repeat("~", width-1)))
	}
}

// underline возвращает экранную колонку начала span и ширину подчёркивания
// в строке ln. Span, уходящий за конец строки, подчёркивается до её конца.
func underline(file *source.File, sp source.Span, ln uint32) (col, width int) {
	lineStart := lineStartOffset(file, ln)
	lineEnd := lineEndOffset(file, ln)
	start := min(max(sp.Start, lineStart), lineEnd)
	end := min(max(sp.End, start), lineEnd)

	col = runewidth.StringWidth(expandTabs(string(file.Content[lineStart:start])))
	width = runewidth.StringWidth(expandTabs(string(file.Content[start:end])))
	return col, max(width, 1)
}

func location(file *source.File, fs *source.FileSet, sp source.Span, mode PathMode) string {
	pos := file.Position(sp.Start)
	return fmt.Sprintf("%s:%d:%d", formatPath(file, fs, mode), pos.Line, pos.Col)
}

func formatPath(file *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", "")
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
