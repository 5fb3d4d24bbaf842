package parser

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

func (p *Parser) peekIs(kind token.Kind) bool {
	t, err := p.lx.Peek()
	return err == nil && t.Kind == kind
}

// parseConcurrentStatements parses the statement part of an architecture.
// Processes keep their declarative and sequential regions; every other
// statement is recorded with its span only.
func (p *Parser) parseConcurrentStatements() []ast.ConcurrentStatement {
	var stmts []ast.ConcurrentStatement
	for !p.at(token.EOF) && !p.at(token.KwEnd) {
		var label ast.Ident
		if p.at(token.Ident) && p.peekIs(token.Colon) {
			label = ast.Ident{Symbol: p.tok.Symbol, Text: p.tok.Text, Span: p.tok.Span}
			p.advance()
			p.advance()
		}
		p.eat(token.KwPostponed)

		switch p.tok.Kind {
		case token.KwProcess:
			stmts = append(stmts, p.parseProcess(label))

		case token.KwBlock:
			stmts = append(stmts, &ast.OtherConcurrent{StmtSpan: p.skipPaired(token.KwBlock)})

		// Generate statements: for, if and case schemes all close with
		// "end generate".
		case token.KwFor, token.KwIf, token.KwCase:
			stmts = append(stmts, &ast.OtherConcurrent{StmtSpan: p.skipPaired(token.KwGenerate)})

		default:
			start := p.tok.Span.Start
			p.skipToSemicolon()
			stmts = append(stmts, &ast.OtherConcurrent{
				StmtSpan: source.Span{File: p.file.ID, Start: start, End: p.lastEnd},
			})
		}
	}
	return stmts
}

func (p *Parser) parseProcess(label ast.Ident) *ast.ProcessStatement {
	p.advance() // process
	p.skipParens()
	p.eat(token.KwIs)

	declStart := p.lastEnd
	decls := p.parseDeclarativePart()
	ps := &ast.ProcessStatement{Label: label, Decls: decls}
	ps.DeclSpan = source.Span{File: p.file.ID, Start: declStart, End: p.tok.Span.Start}

	if p.expect(token.KwBegin, diag.SynExpectKeyword, "begin") {
		stmtStart := p.lastEnd
		p.skipSequentialPart()
		ps.StmtSpan = source.Span{File: p.file.ID, Start: stmtStart, End: p.tok.Span.Start}
	}
	if p.at(token.KwEnd) {
		p.skipEndOfUnit()
	} else {
		p.reporter.Report(diag.SynExpectEnd, diag.SevError, p.tok.Span,
			"expected end of process")
	}
	return ps
}

// skipPaired consumes a compound statement that closes with "end kw;".
// Occurrences of kw nest; other end keywords inside (end if, end process,
// plain end) pass through unpaired.
func (p *Parser) skipPaired(kw token.Kind) source.Span {
	start := p.tok.Span.Start
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case kw:
			depth++
			p.advance()

		case token.KwEnd:
			p.advance()
			if p.at(kw) {
				depth--
				p.skipToSemicolon()
				if depth <= 0 {
					return source.Span{File: p.file.ID, Start: start, End: p.lastEnd}
				}
			}

		default:
			p.advance()
		}
	}
	return source.Span{File: p.file.ID, Start: start, End: p.lastEnd}
}

// skipConcurrentPart consumes the optional statement part of an entity.
// Only passive processes matter for nesting; everything else is a single
// statement through its semicolon.
func (p *Parser) skipConcurrentPart() {
	for !p.at(token.EOF) && !p.at(token.KwEnd) {
		if p.at(token.Ident) && p.peekIs(token.Colon) {
			p.advance()
			p.advance()
		}
		p.eat(token.KwPostponed)
		if p.at(token.KwProcess) {
			p.skipPaired(token.KwProcess)
			continue
		}
		p.skipToSemicolon()
	}
}
