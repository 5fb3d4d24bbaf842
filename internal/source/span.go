package source

import (
	"fmt"
)

// Span is a half-open byte range within a single file.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files
// are left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether the byte offset lies within the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// ContainsInclusive reports whether the offset lies within the span,
// counting the end position itself. Cursor containment uses this form:
// a cursor sitting right after the last declaration still belongs to
// the enclosing region.
func (s Span) ContainsInclusive(off uint32) bool {
	return off >= s.Start && off <= s.End
}

// Within reports whether s is nested inside outer (possibly equal).
func (s Span) Within(outer Span) bool {
	return s.File == outer.File && s.Start >= outer.Start && s.End <= outer.End
}
