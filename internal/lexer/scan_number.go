package lexer

import (
	"fmt"

	"vhdlsem/internal/token"
)

// scanNumber scans abstract literals: decimal integers, reals with a
// fraction or exponent, and based literals such as 16#FF#. An integer
// immediately followed by a base specifier and a quote begins a sized bit
// string literal.
func (lx *Lexer) scanNumber() (token.Token, error) {
	mark := lx.cursor.Mark()
	lx.eatDigits()

	switch lx.cursor.Peek() {
	case '#':
		return lx.scanBasedLiteral(mark)
	case '.':
		if isDec(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			lx.eatDigits()
			if err := lx.eatExponent(); err != nil {
				return token.Token{}, err
			}
			return token.Token{Kind: token.RealLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
		}
	case 'e', 'E':
		if err := lx.eatExponent(); err != nil {
			return token.Token{}, err
		}
		return token.Token{Kind: token.IntLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
	}

	// Sized bit string: 8x"FF".
	if isLetter(lx.cursor.Peek()) {
		specMark := lx.cursor.Mark()
		for !lx.cursor.EOF() && isLetter(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '"' && isBaseSpecifier(foldLower(lx.cursor.Text(specMark))) {
			return lx.scanBitString(mark)
		}
		return token.Token{}, fmt.Errorf("letter directly follows number at offset %d", lx.cursor.Off)
	}

	return token.Token{Kind: token.IntLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
}

func (lx *Lexer) eatDigits() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDec(b) || b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
}

func (lx *Lexer) eatExponent() error {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return nil
	}
	lx.cursor.Bump()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		return fmt.Errorf("missing exponent digits at offset %d", lx.cursor.Off)
	}
	lx.eatDigits()
	return nil
}

// scanBasedLiteral continues after the base digits, consuming
// #extended_digits#[exponent].
func (lx *Lexer) scanBasedLiteral(mark Mark) (token.Token, error) {
	lx.cursor.Bump() // first '#'
	isReal := false
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return token.Token{}, fmt.Errorf("unterminated based literal at offset %d", uint32(mark))
		}
		b := lx.cursor.Bump()
		if b == '#' {
			break
		}
		if b == '.' {
			isReal = true
		}
	}
	if err := lx.eatExponent(); err != nil {
		return token.Token{}, err
	}
	kind := token.IntLit
	if isReal {
		kind = token.RealLit
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
}

// scanBitString continues at the opening quote of a bit string literal.
// The mark covers any size prefix and the base specifier.
func (lx *Lexer) scanBitString(mark Mark) (token.Token, error) {
	lx.cursor.Bump() // opening quote
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return token.Token{}, fmt.Errorf("unterminated bit string literal at offset %d", uint32(mark))
		}
		if lx.cursor.Bump() == '"' {
			break
		}
	}
	return token.Token{Kind: token.BitStringLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
}
