// Package parser builds design files from VHDL sources. The parser is
// tolerant: it models design units, declarative parts and statement-part
// boundaries precisely and skips over everything else, so editor queries
// keep working on incomplete or slightly broken input.
package parser

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/lexer"
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	reporter diag.Reporter

	tok     token.Token
	lastEnd uint32 // end offset of the previously consumed token
}

// ParseFile parses one source file into a design file. Lexical and
// syntactic problems are reported through the reporter; the parse always
// produces a (possibly partial) design file.
func ParseFile(file *source.File, symbols *source.Interner, reporter diag.Reporter) *ast.DesignFile {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	p := &Parser{
		file:     file,
		lx:       lexer.New(file, symbols),
		reporter: reporter,
	}
	p.advance()
	return p.parseDesignFile()
}

// advance consumes the current token. Lexer errors degrade to EOF so the
// parser terminates with whatever it has.
func (p *Parser) advance() {
	p.lastEnd = p.tok.Span.End
	tok, err := p.lx.Next()
	if err != nil {
		p.reporter.Report(diag.LexUnknownChar, diag.SevError,
			source.Span{File: p.file.ID, Start: p.lastEnd, End: p.lastEnd}, err.Error())
		p.tok = token.Token{Kind: token.EOF, Span: source.Span{File: p.file.ID, Start: p.lastEnd, End: p.lastEnd}}
		return
	}
	p.tok = tok
}

func (p *Parser) at(kind token.Kind) bool { return p.tok.Kind == kind }

func (p *Parser) eat(kind token.Kind) bool {
	if p.tok.Kind == kind {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind, code diag.Code, what string) bool {
	if p.eat(kind) {
		return true
	}
	p.reporter.Report(code, diag.SevError, p.tok.Span, "expected "+what)
	return false
}

func (p *Parser) ident() (ast.Ident, bool) {
	if p.tok.Kind != token.Ident {
		p.reporter.Report(diag.SynExpectIdent, diag.SevError, p.tok.Span, "expected identifier")
		return ast.Ident{}, false
	}
	id := ast.Ident{Symbol: p.tok.Symbol, Text: p.tok.Text, Span: p.tok.Span}
	p.advance()
	return id, true
}

// designator accepts an identifier, an operator symbol (string literal)
// or a character literal.
func (p *Parser) designator() (ast.Ident, bool) {
	switch p.tok.Kind {
	case token.Ident, token.StringLit, token.CharLit:
		id := ast.Ident{Symbol: p.tok.Symbol, Text: p.tok.Text, Span: p.tok.Span}
		p.advance()
		return id, true
	default:
		p.reporter.Report(diag.SynExpectIdent, diag.SevError, p.tok.Span, "expected designator")
		return ast.Ident{}, false
	}
}

func (p *Parser) parseDesignFile() *ast.DesignFile {
	df := &ast.DesignFile{File: p.file.ID}
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.KwLibrary, token.KwUse:
			p.skipToSemicolon()

		case token.KwEntity:
			if u := p.parseEntity(); u != nil {
				df.Units = append(df.Units, u)
			}

		case token.KwArchitecture:
			if u := p.parseArchitecture(); u != nil {
				df.Units = append(df.Units, u)
			}

		case token.KwPackage:
			if u := p.parsePackageUnit(); u != nil {
				df.Units = append(df.Units, u)
			}

		case token.KwConfiguration:
			if u := p.parseConfiguration(); u != nil {
				df.Units = append(df.Units, u)
			}

		case token.KwContext:
			if u := p.parseContext(); u != nil {
				df.Units = append(df.Units, u)
			}

		default:
			p.reporter.Report(diag.SynUnexpectedToken, diag.SevError, p.tok.Span,
				"expected a design unit")
			p.skipToSemicolon()
		}
	}
	return df
}

// skipToSemicolon consumes tokens through the next semicolon at paren
// depth zero. Parameter and port lists keep their inner semicolons.
func (p *Parser) skipToSemicolon() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			if depth > 0 {
				depth--
			}
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// skipParens consumes a balanced parenthesized group if one starts here.
func (p *Parser) skipParens() {
	if !p.at(token.LParen) {
		return
	}
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// skipEndOfUnit consumes the closing "end ... ;" of a unit or block.
// The current token is the end keyword.
func (p *Parser) skipEndOfUnit() {
	p.advance() // end
	for !p.at(token.EOF) && !p.at(token.Semicolon) {
		p.advance()
	}
	p.eat(token.Semicolon)
}
