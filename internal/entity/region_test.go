package entity

import (
	"testing"

	"vhdlsem/internal/source"
)

func TestArenaImplicitParent(t *testing.T) {
	arena := NewArena()
	symbols := source.NewInterner()

	typ := arena.Explicit(
		IdentDesignator(symbols.Intern("color")),
		NewTypeKind(EnumType()),
		source.Span{},
	)
	if typ == NoEntityID {
		t.Fatalf("explicit allocation returned the sentinel")
	}
	if arena.Get(typ).Implicit {
		t.Fatalf("explicit entity marked implicit")
	}

	fn := arena.Implicit(typ, OperatorDesignator(OpEQ), FunctionDecl(NewParams(), typ), source.Span{})
	ent := arena.Get(fn)
	if !ent.Implicit || ent.Parent != typ {
		t.Fatalf("implicit entity parent = %d, implicit = %v", ent.Parent, ent.Implicit)
	}
	if arena.Len() != 2 {
		t.Fatalf("arena length = %d, want 2", arena.Len())
	}
}

func TestImplicitsSlotPerVariant(t *testing.T) {
	hosting := []*TypeData{
		IntegerType(), RealType(), EnumType(), PhysicalType(), RecordType(),
		ArrayType(1, NoEntityID), AccessType(NoEntityID),
		UniversalIntegerType(), UniversalRealType(),
	}
	for _, td := range hosting {
		if !td.HostsImplicits() {
			t.Fatalf("%s should host implicits", td.Kind)
		}
		td.AddImplicit(EntityID(7))
		if len(td.Implicits()) != 1 {
			t.Fatalf("%s did not keep its implicit", td.Kind)
		}
	}

	bare := []*TypeData{
		SubtypeOf(NoEntityID), AliasOf(NoEntityID), InterfaceType(),
		IncompleteType(), ProtectedType(), FileType(NoEntityID),
	}
	for _, td := range bare {
		if td.HostsImplicits() {
			t.Fatalf("%s should not host implicits", td.Kind)
		}
		td.AddImplicit(EntityID(7))
		if td.Implicits() != nil {
			t.Fatalf("%s accepted an implicit", td.Kind)
		}
	}
}

func TestRegionOverloadSets(t *testing.T) {
	arena := NewArena()
	symbols := source.NewInterner()
	region := NewRegion()

	typ := arena.Explicit(IdentDesignator(symbols.Intern("t")), NewTypeKind(IntegerType()), source.Span{})
	region.Add(arena, typ)

	des := IdentDesignator(symbols.Intern("to_string"))
	f1 := arena.Explicit(des, FunctionDecl(NewParams(), typ), source.Span{})
	f2 := arena.Explicit(des, FunctionDecl(NewParams(), typ), source.Span{})
	region.Add(arena, f1)
	region.Add(arena, f2)

	set, ok := region.LookupImmediate(des)
	if !ok || !set.IsOverloaded() {
		t.Fatalf("expected overload set, got ok=%v set=%v", ok, set.All())
	}
	if len(set.All()) != 2 {
		t.Fatalf("overload set size = %d, want 2", len(set.All()))
	}

	// Same spelling through the case-folding interner resolves to the
	// same designator.
	again := IdentDesignator(symbols.Intern("TO_STRING"))
	if _, ok := region.LookupImmediate(again); !ok {
		t.Fatalf("case-insensitive lookup failed")
	}

	if region.Len() != 2 {
		t.Fatalf("region holds %d names, want 2", region.Len())
	}

	// Insertion order is stable: the type first, then the overload set.
	imms := region.Immediates()
	if got, _ := imms[0].Solitary(); got != typ {
		t.Fatalf("first immediate = %d, want type %d", got, typ)
	}
	if !imms[1].IsOverloaded() {
		t.Fatalf("second immediate should be the overload set")
	}
}

func TestRegionNonOverloadableReplaces(t *testing.T) {
	arena := NewArena()
	symbols := source.NewInterner()
	region := NewRegion()

	des := IdentDesignator(symbols.Intern("x"))
	first := arena.Explicit(des, NewTypeKind(IntegerType()), source.Span{})
	second := arena.Explicit(des, NewTypeKind(RealType()), source.Span{})
	region.Add(arena, first)
	region.Add(arena, second)

	set, ok := region.LookupImmediate(des)
	if !ok {
		t.Fatalf("lookup failed")
	}
	got, solo := set.Solitary()
	if !solo || got != second {
		t.Fatalf("expected latest entity %d, got %d (solo=%v)", second, got, solo)
	}
}

func TestDesignatorDisplay(t *testing.T) {
	symbols := source.NewInterner()
	id := symbols.Intern("std_logic")

	cases := []struct {
		des  Designator
		want string
	}{
		{IdentDesignator(id), "std_logic"},
		{OperatorDesignator(OpEQ), `"="`},
		{OperatorDesignator(OpNE), `"/="`},
		{OperatorDesignator(OpConcat), `"&"`},
		{OperatorDesignator(OpAnd), `"and"`},
		{CharDesignator('1'), "'1'"},
	}
	for _, tc := range cases {
		if got := tc.des.Display(symbols); got != tc.want {
			t.Fatalf("Display(%v) = %q, want %q", tc.des, got, tc.want)
		}
	}

	// A later intern in another case resolves to the same designator and
	// keeps the first-seen spelling.
	again := IdentDesignator(symbols.Intern("STD_LOGIC"))
	if again != IdentDesignator(id) {
		t.Fatalf("case-insensitive intern produced a new designator")
	}
	if got := again.Display(symbols); got != "std_logic" {
		t.Fatalf("Display = %q, want first-seen spelling", got)
	}
}
