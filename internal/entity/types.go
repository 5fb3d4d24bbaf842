package entity

// TypeKind tags the variant of a type.
type TypeKind uint8

const (
	TypeUniversalInteger TypeKind = iota
	TypeUniversalReal
	TypeInteger
	TypeReal
	TypeEnum
	TypePhysical
	TypeRecord
	TypeArray
	TypeAccess
	TypeFile
	TypeProtected
	TypeIncomplete
	TypeAlias
	TypeSubtype
	TypeInterface
)

func (k TypeKind) String() string {
	switch k {
	case TypeUniversalInteger:
		return "universal_integer"
	case TypeUniversalReal:
		return "universal_real"
	case TypeInteger:
		return "integer type"
	case TypeReal:
		return "real type"
	case TypeEnum:
		return "enumeration type"
	case TypePhysical:
		return "physical type"
	case TypeRecord:
		return "record type"
	case TypeArray:
		return "array type"
	case TypeAccess:
		return "access type"
	case TypeFile:
		return "file type"
	case TypeProtected:
		return "protected type"
	case TypeIncomplete:
		return "incomplete type"
	case TypeAlias:
		return "type alias"
	case TypeSubtype:
		return "subtype"
	case TypeInterface:
		return "interface type"
	default:
		return "invalid"
	}
}

// TypeData carries the structure of a type plus its implicits slot. Only
// the fields relevant to Kind are set.
type TypeData struct {
	Kind TypeKind

	Indexes    int        // TypeArray: number of index ranges
	Elem       EntityID   // TypeArray: element type
	Designated EntityID   // TypeAccess, TypeFile: designated type
	Base       EntityID   // TypeAlias, TypeSubtype: base type
	Literals   []EntityID // TypeEnum: literal entities in declaration order

	implicits []EntityID
}

func IntegerType() *TypeData  { return &TypeData{Kind: TypeInteger} }
func RealType() *TypeData     { return &TypeData{Kind: TypeReal} }
func EnumType() *TypeData     { return &TypeData{Kind: TypeEnum} }
func PhysicalType() *TypeData { return &TypeData{Kind: TypePhysical} }
func RecordType() *TypeData   { return &TypeData{Kind: TypeRecord} }

func ArrayType(indexes int, elem EntityID) *TypeData {
	return &TypeData{Kind: TypeArray, Indexes: indexes, Elem: elem}
}

func AccessType(designated EntityID) *TypeData {
	return &TypeData{Kind: TypeAccess, Designated: designated}
}

func FileType(designated EntityID) *TypeData {
	return &TypeData{Kind: TypeFile, Designated: designated}
}

func SubtypeOf(base EntityID) *TypeData {
	return &TypeData{Kind: TypeSubtype, Base: base}
}

func AliasOf(base EntityID) *TypeData {
	return &TypeData{Kind: TypeAlias, Base: base}
}

func UniversalIntegerType() *TypeData { return &TypeData{Kind: TypeUniversalInteger} }
func UniversalRealType() *TypeData    { return &TypeData{Kind: TypeUniversalReal} }
func ProtectedType() *TypeData        { return &TypeData{Kind: TypeProtected} }
func IncompleteType() *TypeData       { return &TypeData{Kind: TypeIncomplete} }
func InterfaceType() *TypeData        { return &TypeData{Kind: TypeInterface} }

// HostsImplicits reports whether the variant carries an implicits slot.
// Subtypes, aliases, interfaces, incomplete, protected and file types do
// not own general implicits.
func (t *TypeData) HostsImplicits() bool {
	switch t.Kind {
	case TypeSubtype, TypeAlias, TypeInterface, TypeIncomplete, TypeProtected, TypeFile:
		return false
	default:
		return true
	}
}

// AddImplicit appends an implicit entity to the slot when the variant
// hosts one. Append-only; callers run single-threaded per type.
func (t *TypeData) AddImplicit(id EntityID) {
	if t.HostsImplicits() {
		t.implicits = append(t.implicits, id)
	}
}

// Implicits returns the attached implicit entities, nil for variants
// without a slot.
func (t *TypeData) Implicits() []EntityID {
	return t.implicits
}
