package lexer

import (
	"testing"

	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vhd", []byte(input)))
	lx := New(file, source.NewInterner())

	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", input, err)
		}
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, input))
	if len(got) != len(want) {
		t.Fatalf("lex %q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lex %q: token %d is %v, want %v", input, i, got[i], want[i])
		}
	}
}

func TestUseClause(t *testing.T) {
	expectKinds(t, "use ieee.std_logic_1164.all;",
		token.KwUse, token.Ident, token.Dot, token.Ident, token.Dot, token.KwAll, token.Semicolon)
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	expectKinds(t, "LIBRARY Ieee;", token.KwLibrary, token.Ident, token.Semicolon)
}

func TestIdentifierSymbolsFoldCase(t *testing.T) {
	toks := lexAll(t, "ieee IEEE")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(toks))
	}
	if toks[0].Symbol != toks[1].Symbol {
		t.Fatalf("case variants of an identifier interned differently")
	}
}

func TestComments(t *testing.T) {
	expectKinds(t, "entity -- trailing comment\ne is", token.KwEntity, token.Ident, token.KwIs)
	expectKinds(t, "a /* delimited\ncomment */ b", token.Ident, token.Ident)
}

func TestNumericLiterals(t *testing.T) {
	expectKinds(t, "42", token.IntLit)
	expectKinds(t, "1_000", token.IntLit)
	expectKinds(t, "3.14", token.RealLit)
	expectKinds(t, "1.0e6", token.RealLit)
	expectKinds(t, "2e3", token.IntLit)
	expectKinds(t, "16#FF#", token.IntLit)
	expectKinds(t, "2#1.1#e1", token.RealLit)
}

func TestBitStringLiterals(t *testing.T) {
	expectKinds(t, `b"0101"`, token.BitStringLit)
	expectKinds(t, `x"FF"`, token.BitStringLit)
	expectKinds(t, `8x"FF"`, token.BitStringLit)
}

func TestCharLiteralVersusTick(t *testing.T) {
	expectKinds(t, "'0'", token.CharLit)
	expectKinds(t, "clk'event", token.Ident, token.Tick, token.Ident)
}

func TestStringLiteralEscape(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vhd", []byte(`"say ""hi"""`)))
	in := source.NewInterner()
	lx := New(file, in)

	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("lex string: %v", err)
	}
	if tok.Kind != token.StringLit {
		t.Fatalf("expected string literal, got %v", tok.Kind)
	}
	if got := in.MustLookup(tok.Symbol); got != `say "hi"` {
		t.Fatalf("string value = %q", got)
	}
}

func TestExtendedIdentifier(t *testing.T) {
	toks := lexAll(t, `\BUS\`)
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		t.Fatalf("extended identifier not lexed as identifier: %v", kinds(toks))
	}
}

func TestCompoundDelimiters(t *testing.T) {
	expectKinds(t, "<= => := /= ** <> ?=",
		token.LtEq, token.Arrow, token.ColonEq, token.NE, token.StarStar, token.Box, token.QuestionEq)
}

func TestUnterminatedStringIsError(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.vhd", []byte(`"oops`)))
	lx := New(file, source.NewInterner())
	if _, err := lx.Next(); err == nil {
		t.Fatalf("expected error for unterminated string")
	}
}

func TestEmptyInput(t *testing.T) {
	if toks := lexAll(t, ""); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", kinds(toks))
	}
}

func TestSpans(t *testing.T) {
	toks := lexAll(t, "use ieee")
	if toks[0].Span.Start != 0 || toks[0].Span.End != 3 {
		t.Fatalf("use span = %v", toks[0].Span)
	}
	if toks[1].Span.Start != 4 || toks[1].Span.End != 8 {
		t.Fatalf("ieee span = %v", toks[1].Span)
	}
}
