// Package std builds the predefined STANDARD package: its types, their
// implicit operators and subprograms, and the end-of-package closure.
package std

import (
	"vhdlsem/internal/entity"
	"vhdlsem/internal/source"
)

// Standard holds the region of the STANDARD package and synthesizes the
// implicit declarations the language attaches to each type.
type Standard struct {
	arena   *entity.Arena
	symbols *source.Interner
	region  *entity.Region

	Universal UniversalTypes
}

// NewStandard installs the universal types and every predefined type of
// the STANDARD package into a fresh region. Implicit subprograms are not
// yet attached; run EndOfPackageImplicits for the closure.
func NewStandard(arena *entity.Arena, symbols *source.Interner) *Standard {
	s := &Standard{
		arena:   arena,
		symbols: symbols,
		region:  entity.NewRegion(),
	}
	s.Universal = NewUniversalTypes(arena, symbols)

	s.addEnum("BOOLEAN", identLiterals("FALSE", "TRUE")...)
	s.addEnum("BIT", charLiterals('0', '1')...)
	s.addEnum("CHARACTER")
	s.addEnum("SEVERITY_LEVEL", identLiterals("NOTE", "WARNING", "ERROR", "FAILURE")...)

	integer := s.addType("INTEGER", entity.IntegerType())
	real := s.addType("REAL", entity.RealType())
	tim := s.addType("TIME", entity.PhysicalType())
	s.addType("DELAY_LENGTH", entity.SubtypeOf(tim))
	s.addType("NATURAL", entity.SubtypeOf(integer))
	s.addType("POSITIVE", entity.SubtypeOf(integer))

	s.addType("STRING", entity.ArrayType(1, s.lookupType("CHARACTER")))
	s.addType("BOOLEAN_VECTOR", entity.ArrayType(1, s.lookupType("BOOLEAN")))
	s.addType("BIT_VECTOR", entity.ArrayType(1, s.lookupType("BIT")))
	s.addType("INTEGER_VECTOR", entity.ArrayType(1, integer))
	s.addType("REAL_VECTOR", entity.ArrayType(1, real))
	s.addType("TIME_VECTOR", entity.ArrayType(1, tim))

	s.addEnum("FILE_OPEN_KIND", identLiterals("READ_MODE", "WRITE_MODE", "APPEND_MODE")...)
	s.addEnum("FILE_OPEN_STATUS", identLiterals("OPEN_OK", "STATUS_ERROR", "NAME_ERROR", "MODE_ERROR")...)

	return s
}

// Region exposes the STANDARD package scope.
func (s *Standard) Region() *entity.Region {
	return s.region
}

// Arena exposes the arena the standard entities live in.
func (s *Standard) Arena() *entity.Arena {
	return s.arena
}

func (s *Standard) symbol(name string) source.StringID {
	return s.symbols.Intern(name)
}

func (s *Standard) addType(name string, data *entity.TypeData) entity.EntityID {
	id := s.arena.Explicit(
		entity.IdentDesignator(s.symbol(name)),
		entity.NewTypeKind(data),
		source.Span{},
	)
	s.region.Add(s.arena, id)
	return id
}

type enumLiteral struct {
	ident string
	char  byte
}

func identLiterals(names ...string) []enumLiteral {
	lits := make([]enumLiteral, len(names))
	for i, n := range names {
		lits[i] = enumLiteral{ident: n}
	}
	return lits
}

func charLiterals(chars ...byte) []enumLiteral {
	lits := make([]enumLiteral, len(chars))
	for i, c := range chars {
		lits[i] = enumLiteral{char: c}
	}
	return lits
}

// addEnum creates an enumeration type and its literal entities. Literals
// are parameterless functions returning the type, visible in the region
// as overloadables.
func (s *Standard) addEnum(name string, literals ...enumLiteral) entity.EntityID {
	data := entity.EnumType()
	typ := s.addType(name, data)
	for _, lit := range literals {
		var des entity.Designator
		if lit.ident != "" {
			des = entity.IdentDesignator(s.symbol(lit.ident))
		} else {
			des = entity.CharDesignator(lit.char)
		}
		id := s.arena.Implicit(typ, des, entity.FunctionDecl(entity.NewParams(), typ), source.Span{})
		data.Literals = append(data.Literals, id)
		s.region.Add(s.arena, id)
	}
	return typ
}

// lookupType resolves a predefined type by name. The predefined types
// exist before any synthesis runs; failure is a programming bug.
func (s *Standard) lookupType(name string) entity.EntityID {
	named, ok := s.region.LookupImmediate(entity.IdentDesignator(s.symbol(name)))
	if !ok {
		panic("standard type " + name + " not installed")
	}
	id, ok := named.Solitary()
	if !ok {
		panic("standard type " + name + " is overloaded")
	}
	return id
}

func (s *Standard) stringType() entity.EntityID     { return s.lookupType("STRING") }
func (s *Standard) boolean() entity.EntityID        { return s.lookupType("BOOLEAN") }
func (s *Standard) natural() entity.EntityID        { return s.lookupType("NATURAL") }
func (s *Standard) real() entity.EntityID           { return s.lookupType("REAL") }
func (s *Standard) fileOpenKind() entity.EntityID   { return s.lookupType("FILE_OPEN_KIND") }
func (s *Standard) fileOpenStatus() entity.EntityID { return s.lookupType("FILE_OPEN_STATUS") }

// Time returns the predefined TIME type.
func (s *Standard) Time() entity.EntityID { return s.lookupType("TIME") }
