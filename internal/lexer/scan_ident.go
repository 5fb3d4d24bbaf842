package lexer

import (
	"fmt"

	"vhdlsem/internal/token"
)

// scanIdentOrKeyword scans a basic identifier and classifies reserved
// words. An identifier that spells a base specifier and is immediately
// followed by a double quote starts a bit string literal instead.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, error) {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.Text(mark)
	folded := foldLower(text)

	if lx.cursor.Peek() == '"' && isBaseSpecifier(folded) {
		return lx.scanBitString(mark)
	}

	if kind, ok := token.LookupKeyword(folded); ok {
		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: text}, nil
	}

	return token.Token{
		Kind:   token.Ident,
		Span:   lx.cursor.SpanFrom(mark),
		Text:   text,
		Symbol: lx.symbols.Intern(text),
	}, nil
}

// scanExtendedIdent scans a backslash-delimited extended identifier.
// Doubled backslashes inside stand for a single backslash.
func (lx *Lexer) scanExtendedIdent() (token.Token, error) {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // leading backslash
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return token.Token{}, fmt.Errorf("unterminated extended identifier at offset %d", uint32(mark))
		}
		if lx.cursor.Bump() == '\\' {
			if lx.cursor.Eat('\\') {
				continue // escaped backslash
			}
			break
		}
	}
	text := lx.cursor.Text(mark)
	return token.Token{
		Kind:   token.Ident,
		Span:   lx.cursor.SpanFrom(mark),
		Text:   text,
		Symbol: lx.symbols.Intern(text),
	}, nil
}
