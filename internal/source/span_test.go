package source

import (
	"testing"
)

func TestSpanContains(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 10}

	if s.Contains(3) || s.Contains(10) {
		t.Fatalf("half-open span contained an outside offset")
	}
	if !s.Contains(4) || !s.Contains(9) {
		t.Fatalf("span missed an inside offset")
	}
	if !s.ContainsInclusive(10) {
		t.Fatalf("inclusive containment must accept the end offset")
	}
}

func TestSpanWithin(t *testing.T) {
	outer := Span{File: 1, Start: 0, End: 100}
	inner := Span{File: 1, Start: 10, End: 20}

	if !inner.Within(outer) {
		t.Fatalf("inner span not recognized as nested")
	}
	if outer.Within(inner) {
		t.Fatalf("outer span cannot be within inner")
	}
	other := Span{File: 2, Start: 10, End: 20}
	if other.Within(outer) {
		t.Fatalf("spans from different files are never nested")
	}
}
