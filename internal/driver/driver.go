// Package driver wires the frontend phases together: loading files,
// tokenizing, parsing, library registration and standard-package setup.
package driver

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/lexer"
	"vhdlsem/internal/parser"
	"vhdlsem/internal/source"
	"vhdlsem/internal/token"
)

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads and tokenizes a single file. Lexical errors are turned
// into diagnostics; the token stream ends at the offending position.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	symbols := source.NewInterner()
	tokens := collectTokens(file, symbols, diag.BagReporter{Bag: bag})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

func collectTokens(file *source.File, symbols *source.Interner, reporter diag.Reporter) []token.Token {
	lx := lexer.New(file, symbols)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			reporter.Report(diag.LexUnknownChar, diag.SevError,
				source.Span{File: file.ID}, err.Error())
			return tokens
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// ParseResult is the outcome of parsing one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Symbols *source.Interner
	Design  *ast.DesignFile
	Bag     *diag.Bag
}

// Parse loads and parses a single file into a design file.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	symbols := source.NewInterner()
	design := parser.ParseFile(file, symbols, diag.BagReporter{Bag: bag})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Symbols: symbols,
		Design:  design,
		Bag:     bag,
	}, nil
}
