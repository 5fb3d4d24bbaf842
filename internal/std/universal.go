package std

import (
	"vhdlsem/internal/entity"
	"vhdlsem/internal/source"
)

// UniversalTypes are the anonymous numeric types of literals. They exist
// before the standard package is analyzed and never gain implicits.
type UniversalTypes struct {
	Integer entity.EntityID
	Real    entity.EntityID
}

func NewUniversalTypes(arena *entity.Arena, symbols *source.Interner) UniversalTypes {
	integer := arena.Explicit(
		entity.IdentDesignator(symbols.Intern("universal_integer")),
		entity.NewTypeKind(entity.UniversalIntegerType()),
		source.Span{},
	)
	real := arena.Explicit(
		entity.IdentDesignator(symbols.Intern("universal_real")),
		entity.NewTypeKind(entity.UniversalRealType()),
		source.Span{},
	)
	return UniversalTypes{Integer: integer, Real: real}
}
