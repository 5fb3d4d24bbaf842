package parser

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

func (p *Parser) parseEntity() ast.DesignUnit {
	start := p.tok.Span.Start
	p.advance() // entity
	name, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	p.expect(token.KwIs, diag.SynExpectKeyword, "is")

	declStart := p.lastEnd
	decls := p.parseDeclarativePart()
	declEnd := p.tok.Span.Start

	u := &ast.EntityDecl{
		Name:     name,
		DeclSpan: source.Span{File: p.file.ID, Start: declStart, End: declEnd},
		Decls:    decls,
	}

	if p.at(token.KwBegin) {
		p.advance()
		stmtStart := p.lastEnd
		p.skipConcurrentPart()
		u.HasStmts = true
		u.StmtSpan = source.Span{File: p.file.ID, Start: stmtStart, End: p.tok.Span.Start}
	}

	if p.at(token.KwEnd) {
		p.skipEndOfUnit()
	} else {
		p.reporter.Report(diag.SynExpectEnd, diag.SevError, p.tok.Span, "expected end of entity")
	}
	u.UnitSpan = source.Span{File: p.file.ID, Start: start, End: p.lastEnd}
	return u
}

func (p *Parser) parseArchitecture() ast.DesignUnit {
	start := p.tok.Span.Start
	p.advance() // architecture
	name, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	p.expect(token.KwOf, diag.SynExpectKeyword, "of")
	entity, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	p.expect(token.KwIs, diag.SynExpectKeyword, "is")

	declStart := p.lastEnd
	decls := p.parseDeclarativePart()
	declEnd := p.tok.Span.Start

	u := &ast.ArchitectureBody{
		Name:     name,
		Entity:   entity,
		DeclSpan: source.Span{File: p.file.ID, Start: declStart, End: declEnd},
		Decls:    decls,
	}

	if p.expect(token.KwBegin, diag.SynExpectKeyword, "begin") {
		stmtStart := p.lastEnd
		u.Stmts = p.parseConcurrentStatements()
		u.StmtSpan = source.Span{File: p.file.ID, Start: stmtStart, End: p.tok.Span.Start}
	}

	if p.at(token.KwEnd) {
		p.skipEndOfUnit()
	} else {
		p.reporter.Report(diag.SynExpectEnd, diag.SevError, p.tok.Span, "expected end of architecture")
	}
	u.UnitSpan = source.Span{File: p.file.ID, Start: start, End: p.lastEnd}
	return u
}

// parsePackageUnit handles both package declarations and package bodies.
func (p *Parser) parsePackageUnit() ast.DesignUnit {
	start := p.tok.Span.Start
	p.advance() // package
	isBody := p.eat(token.KwBody)
	name, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	p.expect(token.KwIs, diag.SynExpectKeyword, "is")

	// Package instantiations have no declarative part of their own.
	if !isBody && p.at(token.KwNew) {
		p.skipToSemicolon()
		return &ast.PackageDecl{
			Name:     name,
			DeclSpan: source.Span{File: p.file.ID, Start: p.lastEnd, End: p.lastEnd},
			UnitSpan: source.Span{File: p.file.ID, Start: start, End: p.lastEnd},
		}
	}

	declStart := p.lastEnd
	decls := p.parseDeclarativePart()
	declEnd := p.tok.Span.Start

	if p.at(token.KwEnd) {
		p.skipEndOfUnit()
	} else {
		p.reporter.Report(diag.SynExpectEnd, diag.SevError, p.tok.Span, "expected end of package")
	}
	unitSpan := source.Span{File: p.file.ID, Start: start, End: p.lastEnd}
	declSpan := source.Span{File: p.file.ID, Start: declStart, End: declEnd}

	if isBody {
		return &ast.PackageBody{Name: name, DeclSpan: declSpan, Decls: decls, UnitSpan: unitSpan}
	}
	return &ast.PackageDecl{Name: name, DeclSpan: declSpan, Decls: decls, UnitSpan: unitSpan}
}

func (p *Parser) parseConfiguration() ast.DesignUnit {
	start := p.tok.Span.Start
	p.advance() // configuration
	name, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	p.expect(token.KwOf, diag.SynExpectKeyword, "of")
	of, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	// The block configuration is opaque to the frontend.
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.KwFor:
			depth++
			p.advance()
		case token.KwEnd:
			p.skipEndOfUnit()
			if depth == 0 {
				return &ast.ConfigurationDecl{
					Name: name, Of: of,
					UnitSpan: source.Span{File: p.file.ID, Start: start, End: p.lastEnd},
				}
			}
			depth--
		default:
			p.advance()
		}
	}
	return &ast.ConfigurationDecl{
		Name: name, Of: of,
		UnitSpan: source.Span{File: p.file.ID, Start: start, End: p.lastEnd},
	}
}

func (p *Parser) parseContext() ast.DesignUnit {
	start := p.tok.Span.Start
	p.advance() // context
	name, ok := p.ident()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	// A context reference ends at the first semicolon; a context
	// declaration runs to "end [context] [name];".
	if !p.at(token.KwIs) {
		p.skipToSemicolon()
		return nil
	}
	p.advance()
	for !p.at(token.EOF) && !p.at(token.KwEnd) {
		p.advance()
	}
	if p.at(token.KwEnd) {
		p.skipEndOfUnit()
	}
	return &ast.ContextDecl{
		Name:     name,
		UnitSpan: source.Span{File: p.file.ID, Start: start, End: p.lastEnd},
	}
}
