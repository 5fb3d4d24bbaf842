package token

import (
	"vhdlsem/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Symbol is the interned designator for Ident tokens and the interned
	// value for string literals; NoStringID otherwise.
	Symbol source.StringID
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, CharLit, StringLit, BitStringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAbs && t.Kind <= KwXor
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
