package completion

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/lexer"
	"vhdlsem/internal/library"
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

// tokenizeInput lexes the file up to the cursor. A token starting at or
// past the cursor is excluded; one the cursor sits inside is included.
// Lexical errors yield nil, which surfaces as an empty completion list.
func tokenizeInput(file *source.File, symbols *source.Interner, cursor uint32) []token.Token {
	lx := lexer.New(file, symbols)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil
		}
		if tok.Kind == token.EOF || tok.Span.Start >= cursor {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// declarationString flattens one declaration into a proposable string.
// Subprogram bodies, use clauses and configuration specifications have
// no completion surface.
func declarationString(decl ast.Declaration) (string, bool) {
	switch d := decl.(type) {
	case *ast.ObjectDecl:
		return d.Name.Text, true
	case *ast.FileDecl:
		return d.Name.Text, true
	case *ast.TypeDecl:
		return d.Name.Text, true
	case *ast.ComponentDecl:
		return d.Name.Text, true
	case *ast.AttributeDecl:
		return d.Name.Text, true
	case *ast.AttributeSpec:
		return d.Name.Text, true
	case *ast.AliasDecl:
		return d.Designator.Text, true
	case *ast.SubprogramDecl:
		return d.Designator.Text, true
	case *ast.PackageDecl:
		return d.Name.Text, true
	default:
		return "", false
	}
}

// ListCompletionOptions proposes identifiers for the cursor position by
// matching the trailing tokens of the source so far. Unknown libraries
// and units give an empty result rather than an error.
func ListCompletionOptions(
	file *source.File,
	symbols *source.Interner,
	root *library.Root,
	cursor uint32,
) []string {
	tokens := tokenizeInput(file, symbols, cursor)
	n := len(tokens)
	at := func(back int) token.Token { return tokens[n-1-back] }

	switch {
	case n >= 1 && (at(0).Kind == token.KwLibrary || at(0).Kind == token.KwUse):
		return libraryNames(symbols, root)

	case n >= 2 && at(1).Kind == token.KwUse && at(0).Kind == token.Ident:
		return libraryNames(symbols, root)

	case n >= 3 && at(2).Kind == token.KwUse && at(1).Kind == token.Ident &&
		at(0).Kind == token.Dot:
		return primaryUnitNames(root, at(1).Symbol)

	case n >= 4 && at(3).Kind == token.KwUse && at(2).Kind == token.Ident &&
		at(1).Kind == token.Dot && at(0).Kind == token.Ident:
		return primaryUnitNames(root, at(2).Symbol)

	case n >= 5 && at(4).Kind == token.KwUse && at(3).Kind == token.Ident &&
		at(2).Kind == token.Dot && at(1).Kind == token.Ident &&
		at(0).Kind == token.Dot:
		return unitDeclarations(root, at(3).Symbol, at(1).Symbol)

	case n >= 6 && at(5).Kind == token.KwUse && at(4).Kind == token.Ident &&
		at(3).Kind == token.Dot && at(2).Kind == token.Ident &&
		at(1).Kind == token.Dot && isSelectedName(at(0).Kind):
		return unitDeclarations(root, at(4).Symbol, at(2).Symbol)

	default:
		return nil
	}
}

func isSelectedName(kind token.Kind) bool {
	return kind == token.Ident || kind == token.StringLit || kind == token.KwAll
}

func libraryNames(symbols *source.Interner, root *library.Root) []string {
	var names []string
	for _, id := range root.AvailableLibraries() {
		names = append(names, symbols.MustLookup(id))
	}
	return names
}

func primaryUnitNames(root *library.Root, libName source.StringID) []string {
	lib, ok := root.Library(libName)
	if !ok {
		return nil
	}
	var names []string
	for _, unit := range lib.PrimaryUnits() {
		switch u := unit.(type) {
		case *ast.EntityDecl:
			names = append(names, u.Name.Text)
		case *ast.PackageDecl:
			names = append(names, u.Name.Text)
		case *ast.ConfigurationDecl:
			names = append(names, u.Name.Text)
		case *ast.ContextDecl:
			names = append(names, u.Name.Text)
		}
	}
	return names
}

// unitDeclarations lists the declarations of a primary unit, deduplicated
// in first-seen order, with "all" appended.
func unitDeclarations(root *library.Root, libName, unitName source.StringID) []string {
	lib, ok := root.Library(libName)
	if !ok {
		return nil
	}
	unit, ok := lib.PrimaryUnit(unitName)
	if !ok {
		return nil
	}
	pkg, ok := unit.(*ast.PackageDecl)
	if !ok {
		return nil
	}

	var options []string
	seen := make(map[string]bool)
	for _, decl := range pkg.Decls {
		s, ok := declarationString(decl)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		options = append(options, s)
	}
	return append(options, "all")
}
