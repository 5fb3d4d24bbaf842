package lexer

import (
	"fmt"

	"vhdlsem/internal/token"
)

// scanDelimiter scans compound and simple delimiters. Longest match wins.
func (lx *Lexer) scanDelimiter() (token.Token, error) {
	mark := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '.':
		kind = token.Dot
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
		if lx.cursor.Eat('=') {
			kind = token.ColonEq
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '|':
		kind = token.Bar
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
		if lx.cursor.Eat('*') {
			kind = token.StarStar
		}
	case '/':
		kind = token.Slash
		if lx.cursor.Eat('=') {
			kind = token.NE
		}
	case '=':
		kind = token.Eq
		if lx.cursor.Eat('>') {
			kind = token.Arrow
		}
	case '<':
		switch {
		case lx.cursor.Eat('='):
			kind = token.LtEq
		case lx.cursor.Eat('>'):
			kind = token.Box
		case lx.cursor.Eat('<'):
			kind = token.LtLt
		default:
			kind = token.Lt
		}
	case '>':
		switch {
		case lx.cursor.Eat('='):
			kind = token.GtEq
		case lx.cursor.Eat('>'):
			kind = token.GtGt
		default:
			kind = token.Gt
		}
	case '&':
		kind = token.Amp
	case '^':
		kind = token.Caret
	case '@':
		kind = token.At
	case '?':
		switch {
		case lx.cursor.Eat('='):
			kind = token.QuestionEq
		case lx.cursor.Eat('<'):
			kind = token.QuestionLt
			if lx.cursor.Eat('=') {
				kind = token.QuestionLtEq
			}
		case lx.cursor.Eat('>'):
			kind = token.QuestionGt
			if lx.cursor.Eat('=') {
				kind = token.QuestionGtEq
			}
		case lx.cursor.Peek() == '/':
			lx.cursor.Bump()
			if !lx.cursor.Eat('=') {
				return token.Token{}, fmt.Errorf("stray ?/ at offset %d", uint32(mark))
			}
			kind = token.QuestionNE
		default:
			kind = token.Question
		}
	default:
		return token.Token{}, fmt.Errorf("illegal character %q at offset %d", b, uint32(mark))
	}

	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.Text(mark)}, nil
}
