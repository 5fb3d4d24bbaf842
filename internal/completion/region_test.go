package completion

import (
	"strings"
	"testing"

	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/parser"
	"vhdlsem/internal/source"
)

const regionSrc = `
architecture rtl of ent is
  signal counter : integer := 0;
  procedure reset(signal s : out integer) is
    constant zero : integer := 0;
  begin
    s <= zero;
  end procedure;
begin
  main : process is
    variable tmp : integer;
  begin
    tmp := counter;
  end process;
  counter <= counter + 1;
end architecture;
`

func parseRegions(t *testing.T, src string) ([]*ast.DesignFile, *source.FileSet, source.FileID) {
	t.Helper()
	fset := source.NewFileSet()
	symbols := source.NewInterner()
	id := fset.AddVirtual("region.vhd", []byte(src))
	bag := diag.NewBag(16)
	df := parser.ParseFile(fset.Get(id), symbols, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	return []*ast.DesignFile{df}, fset, id
}

func cursorAt(t *testing.T, src, needle string) uint32 {
	t.Helper()
	idx := strings.Index(src, needle)
	if idx < 0 {
		t.Fatalf("needle %q not found", needle)
	}
	return uint32(idx)
}

func TestRegionAtCategories(t *testing.T) {
	files, _, id := parseRegions(t, regionSrc)

	cases := []struct {
		needle string
		want   ast.RegionCategory
	}{
		{"signal counter", ast.DeclarativeRegion},
		{"constant zero", ast.DeclarativeRegion},
		{"s <= zero", ast.SequentialStatements},
		{"variable tmp", ast.DeclarativeRegion},
		{"tmp := counter", ast.SequentialStatements},
		{"counter <= counter", ast.ConcurrentStatements},
	}
	for _, tc := range cases {
		cursor := cursorAt(t, regionSrc, tc.needle)
		got, span, ok := RegionAt(files, id, cursor)
		if !ok {
			t.Fatalf("%q: no region found", tc.needle)
		}
		if got != tc.want {
			t.Fatalf("%q: category = %v, want %v", tc.needle, got, tc.want)
		}
		if !span.ContainsInclusive(cursor) {
			t.Fatalf("%q: span %v does not contain cursor %d", tc.needle, span, cursor)
		}
	}
}

func TestRegionAtPicksMostSpecific(t *testing.T) {
	files, _, id := parseRegions(t, regionSrc)

	// The procedure declarative part nests inside the architecture
	// declarative part; the inner span must win.
	outer := cursorAt(t, regionSrc, "signal counter")
	inner := cursorAt(t, regionSrc, "constant zero")

	_, outerSpan, ok := RegionAt(files, id, outer)
	if !ok {
		t.Fatalf("outer cursor not located")
	}
	_, innerSpan, ok := RegionAt(files, id, inner)
	if !ok {
		t.Fatalf("inner cursor not located")
	}
	if !innerSpan.Within(outerSpan) || innerSpan == outerSpan {
		t.Fatalf("inner span %v is not strictly inside outer %v", innerSpan, outerSpan)
	}
}

func TestRegionAtOtherSource(t *testing.T) {
	files, fset, _ := parseRegions(t, regionSrc)
	other := fset.AddVirtual("other.vhd", []byte("-- nothing here"))

	if _, _, ok := RegionAt(files, other, 5); ok {
		t.Fatalf("found a region in an unrelated file")
	}
}

func TestRegionAtOutsideUnits(t *testing.T) {
	files, _, id := parseRegions(t, regionSrc)
	if _, _, ok := RegionAt(files, id, 0); ok {
		t.Fatalf("offset 0 precedes every region")
	}
}

func TestRegionStableUnderTrailingWhitespace(t *testing.T) {
	padded := regionSrc + "\n\n   \n"
	files, _, id := parseRegions(t, padded)
	filesPlain, _, idPlain := parseRegions(t, regionSrc)

	cursor := cursorAt(t, regionSrc, "tmp := counter")
	catPadded, _, ok1 := RegionAt(files, id, cursor)
	catPlain, _, ok2 := RegionAt(filesPlain, idPlain, cursor)
	if !ok1 || !ok2 || catPadded != catPlain {
		t.Fatalf("whitespace changed the result: %v/%v vs %v/%v", catPadded, ok1, catPlain, ok2)
	}
}
