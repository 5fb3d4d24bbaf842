package ast

import (
	"vhdlsem/internal/source"
)

// Ident is a declared name with its interned symbol and original spelling.
type Ident struct {
	Symbol source.StringID
	Text   string
	Span   source.Span
}

// DesignFile is one parsed VHDL source file.
type DesignFile struct {
	File  source.FileID
	Units []DesignUnit
}

// DesignUnit is a library unit: either a primary or a secondary unit.
type DesignUnit interface {
	unitNode()
	// Key returns the library unit key the unit registers under.
	Key() UnitKey
	// Span covers the whole unit.
	Span() source.Span
}

// EntityDecl is an entity declaration (primary unit).
type EntityDecl struct {
	Name Ident
	// DeclSpan covers the declarative part, StmtSpan the optional
	// statement part after begin.
	DeclSpan source.Span
	StmtSpan source.Span
	HasStmts bool
	Decls    []Declaration
	UnitSpan source.Span
}

// PackageDecl is a package declaration (primary unit). It doubles as the
// nested-package declaration variant.
type PackageDecl struct {
	Name     Ident
	DeclSpan source.Span
	Decls    []Declaration
	UnitSpan source.Span
}

// ConfigurationDecl is a configuration declaration (primary unit).
type ConfigurationDecl struct {
	Name     Ident
	Of       Ident
	UnitSpan source.Span
}

// ContextDecl is a context declaration (primary unit).
type ContextDecl struct {
	Name     Ident
	UnitSpan source.Span
}

// ArchitectureBody is an architecture body (secondary unit of an entity).
type ArchitectureBody struct {
	Name     Ident
	Entity   Ident
	DeclSpan source.Span
	StmtSpan source.Span
	Decls    []Declaration
	Stmts    []ConcurrentStatement
	UnitSpan source.Span
}

// PackageBody is a package body (secondary unit of a package).
type PackageBody struct {
	Name     Ident
	DeclSpan source.Span
	Decls    []Declaration
	UnitSpan source.Span
}

func (*EntityDecl) unitNode()        {}
func (*PackageDecl) unitNode()       {}
func (*ConfigurationDecl) unitNode() {}
func (*ContextDecl) unitNode()       {}
func (*ArchitectureBody) unitNode()  {}
func (*PackageBody) unitNode()       {}

func (u *EntityDecl) Key() UnitKey        { return PrimaryKey(u.Name.Symbol) }
func (u *PackageDecl) Key() UnitKey       { return PrimaryKey(u.Name.Symbol) }
func (u *ConfigurationDecl) Key() UnitKey { return PrimaryKey(u.Name.Symbol) }
func (u *ContextDecl) Key() UnitKey       { return PrimaryKey(u.Name.Symbol) }
func (u *ArchitectureBody) Key() UnitKey  { return SecondaryKey(u.Entity.Symbol, u.Name.Symbol) }
func (u *PackageBody) Key() UnitKey       { return SecondaryKey(u.Name.Symbol, u.Name.Symbol) }

func (u *EntityDecl) Span() source.Span        { return u.UnitSpan }
func (u *PackageDecl) Span() source.Span       { return u.UnitSpan }
func (u *ConfigurationDecl) Span() source.Span { return u.UnitSpan }
func (u *ContextDecl) Span() source.Span       { return u.UnitSpan }
func (u *ArchitectureBody) Span() source.Span  { return u.UnitSpan }
func (u *PackageBody) Span() source.Span       { return u.UnitSpan }

// ObjectClass distinguishes the object declaration classes.
type ObjectClass uint8

const (
	Constant ObjectClass = iota
	Signal
	Variable
	SharedVariable
)

func (c ObjectClass) String() string {
	switch c {
	case Constant:
		return "constant"
	case Signal:
		return "signal"
	case Variable:
		return "variable"
	case SharedVariable:
		return "shared variable"
	default:
		return "invalid"
	}
}

// Declaration is any declarative item of a declarative part.
type Declaration interface {
	declNode()
}

// ObjectDecl declares a constant, signal or (shared) variable.
type ObjectDecl struct {
	Class ObjectClass
	Name  Ident
}

// FileDecl declares a file object.
type FileDecl struct {
	Name Ident
}

// TypeDecl declares a type or subtype.
type TypeDecl struct {
	Name      Ident
	IsSubtype bool
}

// ComponentDecl declares a component.
type ComponentDecl struct {
	Name Ident
}

// AttributeDecl declares an attribute.
type AttributeDecl struct {
	Name Ident
}

// AttributeSpec attaches an attribute value to named entities.
type AttributeSpec struct {
	Name Ident
}

// AliasDecl declares an alias; the designator may be an identifier, a
// character literal or an operator symbol.
type AliasDecl struct {
	Designator Ident
}

// SubprogramDecl declares a function or procedure. The designator is an
// identifier or an operator symbol such as "+".
type SubprogramDecl struct {
	Designator Ident
	IsFunction bool
}

// SubprogramBody is a subprogram body with nested declarative and
// sequential parts.
type SubprogramBody struct {
	Decl     SubprogramDecl
	DeclSpan source.Span
	StmtSpan source.Span
	Decls    []Declaration
}

// UseClause is a use clause inside a declarative part.
type UseClause struct{}

// ConfigSpec is a configuration specification.
type ConfigSpec struct{}

func (*ObjectDecl) declNode()     {}
func (*FileDecl) declNode()       {}
func (*TypeDecl) declNode()       {}
func (*ComponentDecl) declNode()  {}
func (*AttributeDecl) declNode()  {}
func (*AttributeSpec) declNode()  {}
func (*AliasDecl) declNode()      {}
func (*SubprogramDecl) declNode() {}
func (*SubprogramBody) declNode() {}
func (*UseClause) declNode()      {}
func (*PackageDecl) declNode()    {}
func (*ConfigSpec) declNode()     {}

// ConcurrentStatement is a statement of an architecture statement part.
type ConcurrentStatement interface {
	stmtNode()
}

// ProcessStatement has its own declarative part and sequential body.
type ProcessStatement struct {
	Label    Ident
	DeclSpan source.Span
	StmtSpan source.Span
	Decls    []Declaration
}

// OtherConcurrent covers concurrent statements the frontend does not
// model further (assignments, instantiations, asserts).
type OtherConcurrent struct {
	StmtSpan source.Span
}

func (*ProcessStatement) stmtNode() {}
func (*OtherConcurrent) stmtNode()  {}
