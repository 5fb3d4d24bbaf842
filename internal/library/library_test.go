package library

import (
	"testing"

	"vhdlsem/internal/ast"
	"vhdlsem/internal/source"
)

func TestRootLibraries(t *testing.T) {
	symbols := source.NewInterner()
	root := NewRoot()

	work := root.EnsureLibrary(symbols.Intern("work"))
	ieee := root.EnsureLibrary(symbols.Intern("ieee"))
	if again := root.EnsureLibrary(symbols.Intern("WORK")); again != work {
		t.Fatalf("EnsureLibrary is not idempotent under case folding")
	}

	names := root.AvailableLibraries()
	if len(names) != 2 || names[0] != work.Name || names[1] != ieee.Name {
		t.Fatalf("libraries = %v", names)
	}

	if _, ok := root.GetLibraryUnits(symbols.Intern("missing")); ok {
		t.Fatalf("unknown library reported as present")
	}
}

func TestLibraryUnits(t *testing.T) {
	symbols := source.NewInterner()
	root := NewRoot()
	lib := root.EnsureLibrary(symbols.Intern("work"))

	pkgName := symbols.Intern("pkg")
	entName := symbols.Intern("ent")
	pkg := &ast.PackageDecl{Name: ast.Ident{Symbol: pkgName, Text: "pkg"}}
	ent := &ast.EntityDecl{Name: ast.Ident{Symbol: entName, Text: "ent"}}
	arch := &ast.ArchitectureBody{
		Name:   ast.Ident{Symbol: symbols.Intern("rtl"), Text: "rtl"},
		Entity: ast.Ident{Symbol: entName, Text: "ent"},
	}
	lib.AddFile(&ast.DesignFile{Units: []ast.DesignUnit{pkg, ent, arch}})

	if got, ok := lib.PrimaryUnit(pkgName); !ok || got != ast.DesignUnit(pkg) {
		t.Fatalf("primary lookup failed")
	}
	if _, ok := lib.Unit(ast.SecondaryKey(entName, symbols.Intern("rtl"))); !ok {
		t.Fatalf("secondary lookup failed")
	}
	if _, ok := lib.PrimaryUnit(symbols.Intern("rtl")); ok {
		t.Fatalf("architecture resolved as primary unit")
	}

	prims := lib.PrimaryUnits()
	if len(prims) != 2 {
		t.Fatalf("primary units = %d, want 2", len(prims))
	}

	// Re-registering a unit replaces it without duplicating the key.
	lib.AddUnit(&ast.PackageDecl{Name: ast.Ident{Symbol: pkgName, Text: "pkg"}})
	if lib.Len() != 3 {
		t.Fatalf("unit count = %d, want 3", lib.Len())
	}
}
