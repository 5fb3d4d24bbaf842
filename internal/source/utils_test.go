package source

import "testing"

func TestToLineCol(t *testing.T) {
	content := []byte("entity e is\nend;\n\narchitecture a of e is\n")
	lineIdx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},   // 'e' of entity
		{7, LineCol{Line: 1, Col: 8}},   // 'e' of the entity name
		{11, LineCol{Line: 1, Col: 12}}, // the newline terminates line 1
		{12, LineCol{Line: 2, Col: 1}},  // 'e' of end
		{17, LineCol{Line: 3, Col: 1}},  // the blank line
		{18, LineCol{Line: 4, Col: 1}},  // 'a' of architecture
		{31, LineCol{Line: 4, Col: 14}}, // 'a' of the architecture name
	}
	for _, c := range cases {
		if got := toLineCol(lineIdx, c.off); got != c.want {
			t.Fatalf("offset %d: got %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{Line: 1, Col: 6}) {
		t.Fatalf("got %+v", got)
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.vhd", []byte("entity e is\nend;\n"))
	file := fs.Get(id)

	for _, off := range []uint32{0, 5, 11, 12, 16} {
		lc := toLineCol(file.LineIdx, off)
		if got := file.Offset(lc); got != off {
			t.Fatalf("offset %d -> %+v -> %d", off, lc, got)
		}
	}

	// Positions past the end clamp to the file length.
	if got := file.Offset(LineCol{Line: 99, Col: 1}); got != uint32(len(file.Content)) {
		t.Fatalf("clamp = %d", got)
	}
}

func TestOffsetClampsToLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.vhd", []byte("use ieee;\nsignal s : bit;\n"))
	file := fs.Get(id)

	if off := file.Offset(LineCol{Line: 1, Col: 5}); off != 4 {
		t.Fatalf("expected offset 4, got %d", off)
	}
	// The second line starts after the first newline at offset 9.
	if off := file.Offset(LineCol{Line: 2, Col: 1}); off != 10 {
		t.Fatalf("expected offset 10, got %d", off)
	}
	// A column past the end of a line clamps to the line end, not into
	// the next line.
	if off := file.Offset(LineCol{Line: 1, Col: 99}); off != 9 {
		t.Fatalf("expected clamp to 9, got %d", off)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed || string(out) != "a\nb\rc" {
		t.Fatalf("normalized to %q (changed=%v)", out, changed)
	}
	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("untouched input changed")
	}
}
