package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a basic or extended identifier.
	Ident

	// Reserved words. VHDL keywords are case-insensitive; the lexer folds
	// the spelling before classification.

	KwAbs           // abs
	KwAccess        // access
	KwAfter         // after
	KwAlias         // alias
	KwAll           // all
	KwAnd           // and
	KwArchitecture  // architecture
	KwArray         // array
	KwAssert        // assert
	KwAttribute     // attribute
	KwBegin         // begin
	KwBlock         // block
	KwBody          // body
	KwBuffer        // buffer
	KwBus           // bus
	KwCase          // case
	KwComponent     // component
	KwConfiguration // configuration
	KwConstant      // constant
	KwContext       // context
	KwDisconnect    // disconnect
	KwDownto        // downto
	KwElse          // else
	KwElsif         // elsif
	KwEnd           // end
	KwEntity        // entity
	KwExit          // exit
	KwFile          // file
	KwFor           // for
	KwFunction      // function
	KwGenerate      // generate
	KwGeneric       // generic
	KwGroup         // group
	KwGuarded       // guarded
	KwIf            // if
	KwImpure        // impure
	KwIn            // in
	KwInertial      // inertial
	KwInout         // inout
	KwIs            // is
	KwLabel         // label
	KwLibrary       // library
	KwLinkage       // linkage
	KwLiteral       // literal
	KwLoop          // loop
	KwMap           // map
	KwMod           // mod
	KwNand          // nand
	KwNew           // new
	KwNext          // next
	KwNor           // nor
	KwNot           // not
	KwNull          // null
	KwOf            // of
	KwOn            // on
	KwOpen          // open
	KwOr            // or
	KwOthers        // others
	KwOut           // out
	KwPackage       // package
	KwPort          // port
	KwPostponed     // postponed
	KwProcedure     // procedure
	KwProcess       // process
	KwProtected     // protected
	KwPure          // pure
	KwRange         // range
	KwRecord        // record
	KwRegister      // register
	KwReject        // reject
	KwRem           // rem
	KwReport        // report
	KwReturn        // return
	KwRol           // rol
	KwRor           // ror
	KwSelect        // select
	KwSeverity      // severity
	KwShared        // shared
	KwSignal        // signal
	KwSla           // sla
	KwSll           // sll
	KwSra           // sra
	KwSrl           // srl
	KwSubtype       // subtype
	KwThen          // then
	KwTo            // to
	KwTransport     // transport
	KwType          // type
	KwUnaffected    // unaffected
	KwUnits         // units
	KwUntil         // until
	KwUse           // use
	KwVariable      // variable
	KwWait          // wait
	KwWhen          // when
	KwWhile         // while
	KwWith          // with
	KwXnor          // xnor
	KwXor           // xor

	// Literals.

	// IntLit represents a decimal or based integer literal.
	IntLit
	// RealLit represents a real literal.
	RealLit
	// CharLit represents a character literal such as '0'.
	CharLit
	// StringLit represents a string literal.
	StringLit
	// BitStringLit represents a bit string literal such as x"FF".
	BitStringLit

	// Delimiters and operators.

	Dot          // .
	Comma        // ,
	Semicolon    // ;
	Colon        // :
	ColonEq      // :=
	Arrow        // =>
	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	Tick         // '
	Bar          // |
	Plus         // +
	Minus        // -
	Star         // *
	StarStar     // **
	Slash        // /
	Eq           // =
	NE           // /=
	Lt           // <
	LtEq         // <=
	Gt           // >
	GtEq         // >=
	Amp          // &
	Box          // <>
	LtLt         // <<
	GtGt         // >>
	Question     // ?
	QuestionEq   // ?=
	QuestionNE   // ?/=
	QuestionLt   // ?<
	QuestionLtEq // ?<=
	QuestionGt   // ?>
	QuestionGtEq // ?>=
	Caret        // ^
	At           // @
)
