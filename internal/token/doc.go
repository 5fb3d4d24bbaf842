// Package token defines the lexical vocabulary of VHDL sources: token
// kinds for every reserved word, literal and delimiter, and the Token
// value produced by the lexer. Identifier tokens carry their interned
// symbol so later phases never re-intern designators.
package token
