package source

import "testing"

func TestSpanCoverAndBetween(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 10, End: 12}

	if got := a.Cover(b); got != (Span{File: 1, Start: 4, End: 12}) {
		t.Fatalf("Cover: %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Fatalf("Cover across files must be a no-op, got %v", got)
	}
	if got := a.Between(b); got != (Span{File: 1, Start: 8, End: 10}) {
		t.Fatalf("Between: %v", got)
	}
	if got := b.Between(a); !got.Empty() {
		t.Fatalf("Between of overlapping spans must be empty, got %v", got)
	}
	if !a.Contains(4) || a.Contains(8) {
		t.Fatalf("Contains is half-open")
	}
}
