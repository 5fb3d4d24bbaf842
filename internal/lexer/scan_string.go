package lexer

import (
	"fmt"
	"strings"

	"vhdlsem/internal/token"
)

// scanString scans a string literal. A doubled quote stands for a single
// quote character; string literals do not span lines.
func (lx *Lexer) scanString() (token.Token, error) {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	var value strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return token.Token{}, fmt.Errorf("unterminated string literal at offset %d", uint32(mark))
		}
		b := lx.cursor.Bump()
		if b == '"' {
			if lx.cursor.Eat('"') {
				value.WriteByte('"')
				continue
			}
			break
		}
		value.WriteByte(b)
	}
	return token.Token{
		Kind:   token.StringLit,
		Span:   lx.cursor.SpanFrom(mark),
		Text:   lx.cursor.Text(mark),
		Symbol: lx.symbols.Intern(value.String()),
	}, nil
}

// scanCharOrTick distinguishes a character literal from the attribute
// tick: 'x' is a character literal exactly when a closing quote follows
// the single enclosed character.
func (lx *Lexer) scanCharOrTick() (token.Token, error) {
	mark := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) != 0 && lx.cursor.PeekAt(2) == '\'' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return token.Token{Kind: token.CharLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
	}
	lx.cursor.Bump()
	return token.Token{Kind: token.Tick, Span: lx.cursor.SpanFrom(mark), Text: "'"}, nil
}
