package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"jsbundle/internal/diag"
	"jsbundle/internal/source"
)

// fixEditPreview — строки, затронутые правкой, до и после её применения.
type fixEditPreview struct {
	before []string
	after  []string
}

func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if fs == nil {
		return fixEditPreview{}, fmt.Errorf("nil FileSet")
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}

	startPos, endPos := fs.Resolve(edit.Span)
	blockStart := lineStartOffset(file, startPos.Line)
	blockEnd := max(lineEndOffset(file, max(endPos.Line, startPos.Line)), blockStart)

	if edit.Span.Start < blockStart || edit.Span.End > blockEnd || edit.Span.End < edit.Span.Start {
		return fixEditPreview{}, fmt.Errorf("edit span %d..%d is outside of lines %d..%d",
			edit.Span.Start, edit.Span.End, startPos.Line, endPos.Line)
	}

	original := string(file.Content[blockStart:blockEnd])
	relStart, relEnd := edit.Span.Start-blockStart, edit.Span.End-blockStart
	after := original[:relStart] + edit.NewText + original[relEnd:]

	return fixEditPreview{
		before: previewLines(original),
		after:  previewLines(after),
	}, nil
}

// previewLines режет блок на строки; завершающий перевод строки не даёт пустой строки.
func previewLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// lineStartOffset — смещение первого байта строки line (1-based).
func lineStartOffset(f *source.File, line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	if idx := int(line) - 2; idx < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return contentLen(f)
}

// lineEndOffset — смещение перевода строки, завершающего line, или конец файла.
func lineEndOffset(f *source.File, line uint32) uint32 {
	if line == 0 {
		return 0
	}
	if idx := int(line) - 1; idx < len(f.LineIdx) {
		return f.LineIdx[idx]
	}
	return contentLen(f)
}

func contentLen(f *source.File) uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}
