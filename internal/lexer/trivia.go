package lexer

import (
	"fmt"
)

// skipTrivia consumes whitespace, single line comments and delimited
// comments. An unterminated delimited comment is an error.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isSpace(ch):
			lx.cursor.Bump()

		case ch == '-':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '-' || b1 != '-' {
				return nil
			}
			// Line comment runs to the end of the line.
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '*' {
				return nil
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
					closed = true
					break
				}
			}
			if !closed {
				return fmt.Errorf("unterminated delimited comment at offset %d", lx.cursor.Off)
			}

		default:
			return nil
		}
	}
	return nil
}
