package completion

import (
	"strings"
	"testing"

	"vhdlsem/internal/diag"
	"vhdlsem/internal/library"
	"vhdlsem/internal/parser"
	"vhdlsem/internal/source"
)

type testSetup struct {
	fset    *source.FileSet
	symbols *source.Interner
	root    *library.Root
	file    *source.File
}

func newSetup(t *testing.T, input string) *testSetup {
	t.Helper()
	fset := source.NewFileSet()
	symbols := source.NewInterner()
	root := library.NewRoot()

	pkgSrc := `
package std_logic_1164 is
  type std_ulogic is ('U', 'X', '0', '1', 'Z', 'W', 'L', 'H', '-');
  type std_ulogic_vector is array (natural range <>) of std_ulogic;
  function resolved(s : std_ulogic_vector) return std_ulogic;
  function "and"(l, r : std_ulogic) return std_ulogic;
  function "and"(l, r : std_ulogic_vector) return std_ulogic_vector;
  use work.helpers.all;
end package;
`
	pkgID := fset.AddVirtual("std_logic_1164.vhd", []byte(pkgSrc))
	bag := diag.NewBag(16)
	df := parser.ParseFile(fset.Get(pkgID), symbols, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("package parse failed: %v", bag.Items())
	}

	ieee := root.EnsureLibrary(symbols.Intern("ieee"))
	ieee.AddFile(df)
	root.EnsureLibrary(symbols.Intern("work"))

	id := fset.AddVirtual("input.vhd", []byte(input))
	return &testSetup{fset: fset, symbols: symbols, root: root, file: fset.Get(id)}
}

func (s *testSetup) complete(cursor uint32) []string {
	return ListCompletionOptions(s.file, s.symbols, s.root, cursor)
}

func joined(opts []string) string {
	return strings.Join(opts, ",")
}

func TestCompleteAfterLibraryAndUse(t *testing.T) {
	s := newSetup(t, "library ")
	if got := s.complete(8); joined(got) != "ieee,work" {
		t.Fatalf("library completions = %v", got)
	}

	s = newSetup(t, "use ")
	if got := s.complete(4); joined(got) != "ieee,work" {
		t.Fatalf("use completions = %v", got)
	}

	// A partial identifier after use still proposes library names.
	s = newSetup(t, "use ie")
	if got := s.complete(6); joined(got) != "ieee,work" {
		t.Fatalf("partial library completions = %v", got)
	}
}

func TestCompletePrimaryUnits(t *testing.T) {
	s := newSetup(t, "use ieee.")
	if got := s.complete(9); joined(got) != "std_logic_1164" {
		t.Fatalf("primary unit completions = %v", got)
	}

	s = newSetup(t, "use ieee.std_")
	if got := s.complete(13); joined(got) != "std_logic_1164" {
		t.Fatalf("partial unit completions = %v", got)
	}
}

func TestCompleteDeclarations(t *testing.T) {
	want := `std_ulogic,std_ulogic_vector,resolved,"and",all`

	// Cursor inside std_logic_1164: tail is use.ident.dot.ident, so the
	// proposer offers primary units of ieee.
	s := newSetup(t, "use ieee.std_logic_1164.all")
	if got := s.complete(21); joined(got) != "std_logic_1164" {
		t.Fatalf("cursor 21 = %v", got)
	}
	// Cursor at the very end of the unit name: same tail, same result.
	if got := s.complete(23); joined(got) != "std_logic_1164" {
		t.Fatalf("cursor 23 = %v", got)
	}
	// Cursor on the second dot: the package declarations plus "all".
	if got := s.complete(24); joined(got) != want {
		t.Fatalf("cursor 24 = %v", got)
	}
	// Cursor inside the trailing all.
	if got := s.complete(26); joined(got) != want {
		t.Fatalf("cursor 26 = %v", got)
	}
}

func TestCompleteDeduplicatesAndFilters(t *testing.T) {
	// The two "and" overloads collapse into one proposal; the use
	// clause inside the package contributes nothing.
	s := newSetup(t, "use ieee.std_logic_1164.")
	got := s.complete(24)
	count := 0
	for _, opt := range got {
		if opt == `"and"` {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("\"and\" proposed %d times: %v", count, got)
	}
	if got[len(got)-1] != "all" {
		t.Fatalf("missing trailing all: %v", got)
	}
}

func TestCompleteUnknownLibraryOrUnit(t *testing.T) {
	s := newSetup(t, "use nolib.")
	if got := s.complete(10); got != nil {
		t.Fatalf("unknown library = %v, want empty", got)
	}

	s = newSetup(t, "use ieee.nounit.")
	if got := s.complete(16); got != nil {
		t.Fatalf("unknown unit = %v, want empty", got)
	}
}

func TestCompleteEmptyAndUnmatched(t *testing.T) {
	s := newSetup(t, "")
	if got := s.complete(0); got != nil {
		t.Fatalf("empty source = %v, want empty", got)
	}

	s = newSetup(t, "entity e is end;")
	if got := s.complete(16); got != nil {
		t.Fatalf("unmatched tail = %v, want empty", got)
	}
}

func TestCompleteCursorAtTokenStart(t *testing.T) {
	// The cursor sits exactly where ieee starts; the identifier is not
	// yet part of the tail, so the proposer still offers libraries.
	s := newSetup(t, "use ieee.std_logic_1164.all")
	if got := s.complete(4); joined(got) != "ieee,work" {
		t.Fatalf("cursor at token start = %v", got)
	}
}

func TestCompleteCursorPastEnd(t *testing.T) {
	s := newSetup(t, "use ieee.std_logic_1164.all")
	want := `std_ulogic,std_ulogic_vector,resolved,"and",all`
	if got := s.complete(1000); joined(got) != want {
		t.Fatalf("cursor past end = %v", got)
	}
}

func TestCompleteLexError(t *testing.T) {
	s := newSetup(t, "use \"unterminated")
	if got := s.complete(17); got != nil {
		t.Fatalf("lex error = %v, want empty", got)
	}
}
