package entity

import (
	"vhdlsem/internal/source"
)

// Operator enumerates the overloadable VHDL operator symbols.
type Operator uint8

const (
	OpNone Operator = iota

	OpAnd
	OpOr
	OpNand
	OpNor
	OpXor
	OpXnor
	OpNot

	OpEQ
	OpNE
	OpLT
	OpLTE
	OpGT
	OpGTE

	OpPlus
	OpMinus
	OpConcat
	OpMul
	OpDiv
	OpMod
	OpRem
	OpPow
	OpAbs

	OpSll
	OpSrl
	OpSla
	OpSra
	OpRol
	OpRor
)

var opSymbols = [...]string{
	OpNone:   "?",
	OpAnd:    "and",
	OpOr:     "or",
	OpNand:   "nand",
	OpNor:    "nor",
	OpXor:    "xor",
	OpXnor:   "xnor",
	OpNot:    "not",
	OpEQ:     "=",
	OpNE:     "/=",
	OpLT:     "<",
	OpLTE:    "<=",
	OpGT:     ">",
	OpGTE:    ">=",
	OpPlus:   "+",
	OpMinus:  "-",
	OpConcat: "&",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "mod",
	OpRem:    "rem",
	OpPow:    "**",
	OpAbs:    "abs",
	OpSll:    "sll",
	OpSrl:    "srl",
	OpSla:    "sla",
	OpSra:    "sra",
	OpRol:    "rol",
	OpRor:    "ror",
}

// Symbol returns the operator's source spelling without quotes.
func (op Operator) Symbol() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return "?"
}

// DesignatorKind tags the variant of a designator.
type DesignatorKind uint8

const (
	DesIdent DesignatorKind = iota
	DesOperator
	DesCharacter
	DesAnonymous
)

// Designator names an entity: an identifier symbol, an overloadable
// operator symbol, an enumeration character literal, or nothing.
// The struct is comparable and usable as a map key.
type Designator struct {
	Kind  DesignatorKind
	Ident source.StringID
	Op    Operator
	Char  byte
}

func IdentDesignator(id source.StringID) Designator {
	return Designator{Kind: DesIdent, Ident: id}
}

func OperatorDesignator(op Operator) Designator {
	return Designator{Kind: DesOperator, Op: op}
}

func CharDesignator(c byte) Designator {
	return Designator{Kind: DesCharacter, Char: c}
}

func AnonymousDesignator() Designator {
	return Designator{Kind: DesAnonymous}
}

// Display renders the designator the way it would appear in source:
// operators quoted, character literals in ticks. Identifiers come back
// in their first-seen spelling, so names interned by the standard
// package display in its upper case.
func (d Designator) Display(symbols *source.Interner) string {
	switch d.Kind {
	case DesIdent:
		return symbols.MustLookup(d.Ident)
	case DesOperator:
		return `"` + d.Op.Symbol() + `"`
	case DesCharacter:
		return "'" + string(d.Char) + "'"
	default:
		return "<anonymous>"
	}
}
