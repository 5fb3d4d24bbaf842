package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedIdent  Code = 1003
	LexBadNumber          Code = 1004

	// Syntactic.
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002
	SynExpectIdent     Code = 2003
	SynExpectKeyword   Code = 2004
	SynExpectEnd       Code = 2005

	// Design units.
	UnitDuplicate   Code = 3000
	UnitUnknownKind Code = 3001

	// I/O.
	IOLoadFileError Code = 9000
)

func (c Code) String() string {
	return fmt.Sprintf("V%04d", uint16(c))
}
