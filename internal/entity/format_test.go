package entity

import (
	"testing"

	"vhdlsem/internal/source"
)

func TestFormatProfile(t *testing.T) {
	symbols := source.NewInterner()
	a := NewArena()

	boolean := a.Explicit(IdentDesignator(symbols.Intern("BOOLEAN")), NewTypeKind(EnumType()), source.Span{})
	integer := a.Explicit(IdentDesignator(symbols.Intern("INTEGER")), NewTypeKind(IntegerType()), source.Span{})

	formals := NewParams()
	for _, name := range []string{"L", "R"} {
		formals.Add(a.Implicit(integer, IdentDesignator(symbols.Intern(name)),
			ObjectKind(Object{Mode: ModeIn, Subtype: NewSubtype(integer)}), source.Span{}))
	}
	eq := a.Implicit(integer, OperatorDesignator(OpEQ),
		FunctionDecl(formals, boolean), source.Span{})

	want := `function "="(L : INTEGER; R : INTEGER) return BOOLEAN`
	if got := FormatProfile(a, symbols, eq); got != want {
		t.Fatalf("profile = %q, want %q", got, want)
	}

	if got := FormatProfile(a, symbols, integer); got != "type INTEGER" {
		t.Fatalf("type profile = %q", got)
	}
}

func TestFormatProfileFileAndDefaults(t *testing.T) {
	symbols := source.NewInterner()
	a := NewArena()

	ft := a.Explicit(IdentDesignator(symbols.Intern("TEXT")), NewTypeKind(FileType(NoEntityID)), source.Span{})
	kind := a.Explicit(IdentDesignator(symbols.Intern("FILE_OPEN_KIND")), NewTypeKind(EnumType()), source.Span{})

	formals := NewParams()
	formals.Add(a.Implicit(ft, IdentDesignator(symbols.Intern("F")),
		InterfaceFileKind(ft), source.Span{}))
	formals.Add(a.Implicit(ft, IdentDesignator(symbols.Intern("Open_Kind")),
		ObjectKind(Object{Mode: ModeIn, Subtype: NewSubtype(kind), HasDefault: true}), source.Span{}))
	open := a.Implicit(ft, IdentDesignator(symbols.Intern("FILE_OPEN")),
		ProcedureDecl(formals), source.Span{})

	want := `procedure FILE_OPEN(file F : TEXT; Open_Kind : FILE_OPEN_KIND := <default>)`
	if got := FormatProfile(a, symbols, open); got != want {
		t.Fatalf("profile = %q, want %q", got, want)
	}
}
