package lexer

import (
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

// Lexer produces VHDL tokens from a single source file. Identifiers and
// string literals are interned through the shared symbol interner.
type Lexer struct {
	file    *source.File
	symbols *source.Interner
	cursor  Cursor
	look    *token.Token
}

// New creates a lexer over the given file.
func New(file *source.File, symbols *source.Interner) *Lexer {
	return &Lexer{
		file:    file,
		symbols: symbols,
		cursor:  NewCursor(file),
	}
}

// Next returns the next significant token. At the end of input it returns
// a token with kind EOF. A non-nil error means the input could not be
// tokenized further (unterminated literal, illegal character); callers
// that feed completion treat any error as "no proposals".
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}

	if err := lx.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case isLetter(ch):
		return lx.scanIdentOrKeyword()

	case ch == '\\':
		return lx.scanExtendedIdent()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '\'':
		return lx.scanCharOrTick()

	default:
		return lx.scanDelimiter()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, error) {
	t, err := lx.Next()
	if err != nil {
		return t, err
	}
	lx.look = &t
	return t, nil
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
