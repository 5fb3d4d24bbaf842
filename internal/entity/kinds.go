package entity

import (
	"vhdlsem/internal/ast"
)

// Kind tags the variant of an entity kind.
type Kind uint8

const (
	KindType Kind = iota
	KindObject
	KindInterfaceFile
	KindFunction
	KindProcedure
	KindAlias
	KindComponent
	KindAttribute
	KindPackage
	KindFile
	KindLibrary
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindObject:
		return "object"
	case KindInterfaceFile:
		return "interface file"
	case KindFunction:
		return "function"
	case KindProcedure:
		return "procedure"
	case KindAlias:
		return "alias"
	case KindComponent:
		return "component"
	case KindAttribute:
		return "attribute"
	case KindPackage:
		return "package"
	case KindFile:
		return "file"
	case KindLibrary:
		return "library"
	default:
		return "invalid"
	}
}

// Mode is the direction of an interface object.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeIn
	ModeOut
	ModeInOut
	ModeBuffer
	ModeLinkage
)

func (m Mode) String() string {
	switch m {
	case ModeIn:
		return "in"
	case ModeOut:
		return "out"
	case ModeInOut:
		return "inout"
	case ModeBuffer:
		return "buffer"
	case ModeLinkage:
		return "linkage"
	default:
		return ""
	}
}

// Subtype wraps a base type entity. Constraints are not modeled.
type Subtype struct {
	Base EntityID
}

func NewSubtype(base EntityID) Subtype {
	return Subtype{Base: base}
}

// Object describes a constant, signal, variable or interface object.
type Object struct {
	Class      ast.ObjectClass
	Mode       Mode
	Subtype    Subtype
	HasDefault bool
}

// Signature is the callable profile of a subprogram: its ordered formals
// and, for functions, the return type.
type Signature struct {
	Formals *FormalRegion
	Return  EntityID // NoEntityID for procedures
}

// EntKind is the tagged classification of an entity. Exactly the payload
// matching Kind is set.
type EntKind struct {
	Kind Kind

	Type      *TypeData  // KindType
	Object    *Object    // KindObject
	FileType  EntityID   // KindInterfaceFile
	Signature *Signature // KindFunction, KindProcedure
}

func NewTypeKind(data *TypeData) EntKind {
	return EntKind{Kind: KindType, Type: data}
}

func ObjectKind(obj Object) EntKind {
	return EntKind{Kind: KindObject, Object: &obj}
}

func InterfaceFileKind(fileType EntityID) EntKind {
	return EntKind{Kind: KindInterfaceFile, FileType: fileType}
}

// FunctionDecl builds the kind of a function declaration.
func FunctionDecl(formals *FormalRegion, returnType EntityID) EntKind {
	return EntKind{Kind: KindFunction, Signature: &Signature{Formals: formals, Return: returnType}}
}

// ProcedureDecl builds the kind of a procedure declaration.
func ProcedureDecl(formals *FormalRegion) EntKind {
	return EntKind{Kind: KindProcedure, Signature: &Signature{Formals: formals}}
}

func AliasKind() EntKind     { return EntKind{Kind: KindAlias} }
func ComponentKind() EntKind { return EntKind{Kind: KindComponent} }
func AttributeKind() EntKind { return EntKind{Kind: KindAttribute} }
func PackageKind() EntKind   { return EntKind{Kind: KindPackage} }
func FileKind() EntKind      { return EntKind{Kind: KindFile} }
func LibraryKind() EntKind   { return EntKind{Kind: KindLibrary} }

// Overloadable reports whether entities of this kind share a designator
// through an overload set instead of shadowing each other.
func (k EntKind) Overloadable() bool {
	return k.Kind == KindFunction || k.Kind == KindProcedure
}
