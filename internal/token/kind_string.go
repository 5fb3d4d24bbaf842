package token

import "fmt"

// kindNames covers every kind outside the keyword range.
var kindNames = map[Kind]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	IntLit:       "IntLit",
	RealLit:      "RealLit",
	CharLit:      "CharLit",
	StringLit:    "StringLit",
	BitStringLit: "BitStringLit",
	Dot:          "Dot",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Colon:        "Colon",
	ColonEq:      "ColonEq",
	Arrow:        "Arrow",
	LParen:       "LParen",
	RParen:       "RParen",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Tick:         "Tick",
	Bar:          "Bar",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	StarStar:     "StarStar",
	Slash:        "Slash",
	Eq:           "Eq",
	NE:           "NE",
	Lt:           "Lt",
	LtEq:         "LtEq",
	Gt:           "Gt",
	GtEq:         "GtEq",
	Amp:          "Amp",
	Box:          "Box",
	LtLt:         "LtLt",
	GtGt:         "GtGt",
	Question:     "Question",
	QuestionEq:   "QuestionEq",
	QuestionNE:   "QuestionNE",
	QuestionLt:   "QuestionLt",
	QuestionLtEq: "QuestionLtEq",
	QuestionGt:   "QuestionGt",
	QuestionGtEq: "QuestionGtEq",
	Caret:        "Caret",
	At:           "At",
}

// keywordSpellings is the reverse of the keywords table.
var keywordSpellings = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for spelling, kind := range keywords {
		m[kind] = spelling
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if spelling, ok := keywordSpellings[k]; ok {
		return "Kw(" + spelling + ")"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
