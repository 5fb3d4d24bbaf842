package parser

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

// parseDeclarativePart parses declarative items until begin, end or EOF.
// Items the frontend does not model keep their names; their definitions
// are skipped over.
func (p *Parser) parseDeclarativePart() []ast.Declaration {
	var decls []ast.Declaration
	for {
		switch p.tok.Kind {
		case token.KwBegin, token.KwEnd, token.EOF:
			return decls

		case token.KwConstant:
			p.advance()
			decls = p.parseObjectNames(decls, ast.Constant)

		case token.KwSignal:
			p.advance()
			decls = p.parseObjectNames(decls, ast.Signal)

		case token.KwVariable:
			p.advance()
			decls = p.parseObjectNames(decls, ast.Variable)

		case token.KwShared:
			p.advance()
			p.expect(token.KwVariable, diag.SynExpectKeyword, "variable")
			decls = p.parseObjectNames(decls, ast.SharedVariable)

		case token.KwFile:
			p.advance()
			for {
				name, ok := p.ident()
				if !ok {
					break
				}
				decls = append(decls, &ast.FileDecl{Name: name})
				if !p.eat(token.Comma) {
					break
				}
			}
			p.skipToSemicolon()

		case token.KwType:
			p.advance()
			name, ok := p.ident()
			if !ok {
				p.skipToSemicolon()
				continue
			}
			// Incomplete type declarations stop at the semicolon.
			if p.eat(token.Semicolon) {
				decls = append(decls, &ast.TypeDecl{Name: name})
				continue
			}
			p.expect(token.KwIs, diag.SynExpectKeyword, "is")
			p.skipTypeDef()
			decls = append(decls, &ast.TypeDecl{Name: name})

		case token.KwSubtype:
			p.advance()
			name, ok := p.ident()
			if ok {
				decls = append(decls, &ast.TypeDecl{Name: name, IsSubtype: true})
			}
			p.skipToSemicolon()

		case token.KwComponent:
			p.advance()
			name, ok := p.ident()
			if !ok {
				p.skipToSemicolon()
				continue
			}
			for !p.at(token.EOF) && !p.at(token.KwEnd) {
				p.advance()
			}
			if p.at(token.KwEnd) {
				p.skipEndOfUnit()
			}
			decls = append(decls, &ast.ComponentDecl{Name: name})

		case token.KwAttribute:
			p.advance()
			name, ok := p.ident()
			if !ok {
				p.skipToSemicolon()
				continue
			}
			if p.at(token.KwOf) {
				decls = append(decls, &ast.AttributeSpec{Name: name})
			} else {
				decls = append(decls, &ast.AttributeDecl{Name: name})
			}
			p.skipToSemicolon()

		case token.KwAlias:
			p.advance()
			des, ok := p.designator()
			if ok {
				decls = append(decls, &ast.AliasDecl{Designator: des})
			}
			p.skipToSemicolon()

		case token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure:
			if d := p.parseSubprogram(); d != nil {
				decls = append(decls, d)
			}

		case token.KwUse:
			p.skipToSemicolon()
			decls = append(decls, &ast.UseClause{})

		case token.KwFor:
			p.skipToSemicolon()
			decls = append(decls, &ast.ConfigSpec{})

		case token.KwPackage:
			if u := p.parsePackageUnit(); u != nil {
				if pd, ok := u.(*ast.PackageDecl); ok {
					decls = append(decls, pd)
				}
			}

		// Entity headers start their declarative part with generic and
		// port clauses; consume them without modeling.
		case token.KwGeneric, token.KwPort:
			p.advance()
			p.skipParens()
			p.eat(token.Semicolon)

		case token.KwDisconnect, token.KwGroup:
			p.skipToSemicolon()

		default:
			p.reporter.Report(diag.SynUnexpectedToken, diag.SevError, p.tok.Span,
				"expected a declaration")
			p.skipToSemicolon()
		}
	}
}

// parseObjectNames parses the identifier list of an object declaration and
// appends one declaration per name.
func (p *Parser) parseObjectNames(decls []ast.Declaration, class ast.ObjectClass) []ast.Declaration {
	for {
		name, ok := p.ident()
		if !ok {
			break
		}
		decls = append(decls, &ast.ObjectDecl{Class: class, Name: name})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.skipToSemicolon()
	return decls
}

// skipTypeDef consumes a type definition through its final semicolon.
// Record, protected and physical definitions nest blocks that close with
// their own "end ...;", as do statements inside protected bodies.
func (p *Parser) skipTypeDef() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.KwRecord, token.KwProtected, token.KwUnits,
			token.KwIf, token.KwCase, token.KwLoop, token.KwBegin:
			depth++
			p.advance()

		case token.KwEnd:
			if depth > 0 {
				depth--
			}
			p.advance()
			for !p.at(token.EOF) && !p.at(token.Semicolon) {
				p.advance()
			}
			p.eat(token.Semicolon)
			if depth == 0 {
				return
			}

		case token.Semicolon:
			p.advance()
			if depth == 0 {
				return
			}

		default:
			p.advance()
		}
	}
}

// parseSubprogram parses a subprogram declaration or body. The header is
// scanned up to the ";" that ends a declaration or the "is" that starts a
// body.
func (p *Parser) parseSubprogram() ast.Declaration {
	isFunc := false
	if p.at(token.KwPure) || p.at(token.KwImpure) {
		p.advance()
	}
	if p.at(token.KwFunction) {
		isFunc = true
	}
	p.advance()
	des, ok := p.designator()
	if !ok {
		p.skipToSemicolon()
		return nil
	}
	decl := ast.SubprogramDecl{Designator: des, IsFunction: isFunc}

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
				return &decl
			}
		case token.KwIs:
			if depth == 0 {
				p.advance()
				return p.parseSubprogramBody(decl)
			}
		}
		p.advance()
	}
	return &decl
}

func (p *Parser) parseSubprogramBody(decl ast.SubprogramDecl) ast.Declaration {
	declStart := p.lastEnd
	decls := p.parseDeclarativePart()
	body := &ast.SubprogramBody{Decl: decl, Decls: decls}
	body.DeclSpan = source.Span{File: p.file.ID, Start: declStart, End: p.tok.Span.Start}

	if p.expect(token.KwBegin, diag.SynExpectKeyword, "begin") {
		stmtStart := p.lastEnd
		p.skipSequentialPart()
		body.StmtSpan = source.Span{File: p.file.ID, Start: stmtStart, End: p.tok.Span.Start}
	}
	if p.at(token.KwEnd) {
		p.skipEndOfUnit()
	} else {
		p.reporter.Report(diag.SynExpectEnd, diag.SevError, p.tok.Span,
			"expected end of subprogram body")
	}
	return body
}

// skipSequentialPart consumes sequential statements up to the "end" that
// closes the enclosing body. The end keyword itself is left current.
func (p *Parser) skipSequentialPart() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.KwIf, token.KwCase, token.KwLoop:
			depth++
			p.advance()

		case token.KwEnd:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
			for !p.at(token.EOF) && !p.at(token.Semicolon) {
				p.advance()
			}
			p.eat(token.Semicolon)

		default:
			p.advance()
		}
	}
}
