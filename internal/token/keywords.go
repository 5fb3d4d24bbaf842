package token

// keywords maps the folded spelling of every reserved word to its kind.
var keywords = map[string]Kind{
	"abs":           KwAbs,
	"access":        KwAccess,
	"after":         KwAfter,
	"alias":         KwAlias,
	"all":           KwAll,
	"and":           KwAnd,
	"architecture":  KwArchitecture,
	"array":         KwArray,
	"assert":        KwAssert,
	"attribute":     KwAttribute,
	"begin":         KwBegin,
	"block":         KwBlock,
	"body":          KwBody,
	"buffer":        KwBuffer,
	"bus":           KwBus,
	"case":          KwCase,
	"component":     KwComponent,
	"configuration": KwConfiguration,
	"constant":      KwConstant,
	"context":       KwContext,
	"disconnect":    KwDisconnect,
	"downto":        KwDownto,
	"else":          KwElse,
	"elsif":         KwElsif,
	"end":           KwEnd,
	"entity":        KwEntity,
	"exit":          KwExit,
	"file":          KwFile,
	"for":           KwFor,
	"function":      KwFunction,
	"generate":      KwGenerate,
	"generic":       KwGeneric,
	"group":         KwGroup,
	"guarded":       KwGuarded,
	"if":            KwIf,
	"impure":        KwImpure,
	"in":            KwIn,
	"inertial":      KwInertial,
	"inout":         KwInout,
	"is":            KwIs,
	"label":         KwLabel,
	"library":       KwLibrary,
	"linkage":       KwLinkage,
	"literal":       KwLiteral,
	"loop":          KwLoop,
	"map":           KwMap,
	"mod":           KwMod,
	"nand":          KwNand,
	"new":           KwNew,
	"next":          KwNext,
	"nor":           KwNor,
	"not":           KwNot,
	"null":          KwNull,
	"of":            KwOf,
	"on":            KwOn,
	"open":          KwOpen,
	"or":            KwOr,
	"others":        KwOthers,
	"out":           KwOut,
	"package":       KwPackage,
	"port":          KwPort,
	"postponed":     KwPostponed,
	"procedure":     KwProcedure,
	"process":       KwProcess,
	"protected":     KwProtected,
	"pure":          KwPure,
	"range":         KwRange,
	"record":        KwRecord,
	"register":      KwRegister,
	"reject":        KwReject,
	"rem":           KwRem,
	"report":        KwReport,
	"return":        KwReturn,
	"rol":           KwRol,
	"ror":           KwRor,
	"select":        KwSelect,
	"severity":      KwSeverity,
	"shared":        KwShared,
	"signal":        KwSignal,
	"sla":           KwSla,
	"sll":           KwSll,
	"sra":           KwSra,
	"srl":           KwSrl,
	"subtype":       KwSubtype,
	"then":          KwThen,
	"to":            KwTo,
	"transport":     KwTransport,
	"type":          KwType,
	"unaffected":    KwUnaffected,
	"units":         KwUnits,
	"until":         KwUntil,
	"use":           KwUse,
	"variable":      KwVariable,
	"wait":          KwWait,
	"when":          KwWhen,
	"while":         KwWhile,
	"with":          KwWith,
	"xnor":          KwXnor,
	"xor":           KwXor,
}

// LookupKeyword classifies a folded identifier spelling. The second result
// reports whether the spelling is a reserved word.
func LookupKeyword(folded string) (Kind, bool) {
	k, ok := keywords[folded]
	return k, ok
}
