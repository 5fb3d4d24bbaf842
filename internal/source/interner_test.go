package source

import (
	"testing"
)

func TestInternCaseInsensitive(t *testing.T) {
	in := NewInterner()

	a := in.Intern("std_logic_1164")
	b := in.Intern("STD_LOGIC_1164")
	c := in.Intern("Std_Logic_1164")

	if a != b || b != c {
		t.Fatalf("case variants interned to different IDs: %v %v %v", a, b, c)
	}

	spelling := in.MustLookup(a)
	if spelling != "std_logic_1164" {
		t.Fatalf("expected first-seen spelling, got %q", spelling)
	}
}

func TestInternExtendedIdentifier(t *testing.T) {
	in := NewInterner()

	a := in.Intern(`\Foo\`)
	b := in.Intern(`\foo\`)

	if a == b {
		t.Fatalf("extended identifiers must compare case-sensitively")
	}
}

func TestInternGetDoesNotInsert(t *testing.T) {
	in := NewInterner()
	before := in.Len()

	if _, ok := in.Get("missing"); ok {
		t.Fatalf("Get found a symbol that was never interned")
	}
	if in.Len() != before {
		t.Fatalf("Get must not intern")
	}
}

func TestNoStringIDIsEmpty(t *testing.T) {
	in := NewInterner()
	if s := in.MustLookup(NoStringID); s != "" {
		t.Fatalf("NoStringID resolved to %q", s)
	}
}
