// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jsbundle/internal/ast"
	"jsbundle/internal/source"
)

// CheckSpanInvariants runs the span invariants of a cleanly parsed file:
//  1. the file span lies within the content;
//  2. every source statement has a non-empty span inside the file span;
//  3. source statements are in order and do not overlap;
//  4. every top-level binding lies inside the file span.
//
// Synthetic statements produced by a rewrite are skipped.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	if f.Span.End > lenContent || f.Span.End < f.Span.Start {
		return fmt.Errorf("file span %v outside content of %d bytes", f.Span, lenContent)
	}

	var prevEnd uint32
	for i, id := range f.Stmts {
		st := b.Stmts.Get(id)
		if st == nil {
			return fmt.Errorf("nil stmt for id=%d", id)
		}
		if st.Synthetic {
			continue
		}
		sp := st.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("stmt %d has empty span %v", i, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("stmt %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("stmt %d span %v is outside file span %v", i, sp, f.Span)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("stmt %d span %v overlaps the previous statement ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End
	}

	for _, bnd := range f.Bindings {
		if bnd.Span.Start < f.Span.Start || bnd.Span.End > f.Span.End {
			return fmt.Errorf("binding %q span %v is outside file span %v", bnd.Name, bnd.Span, f.Span)
		}
	}
	return nil
}
