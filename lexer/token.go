package lexer

import "github.com/kbrandt/cparse/grammar"

// Token is one scanned lexeme: its terminal kind, the source text it
// matched, and its position (1-based row/column, matching the driver's
// error-reporting convention).
type Token struct {
	Kind   grammar.Symbol
	Lexeme string
	Row    int
	Col    int
}

var reserved = map[string]grammar.Symbol{
	"void": grammar.SymVoid, "char": grammar.SymChar, "short": grammar.SymShort,
	"int": grammar.SymInt, "long": grammar.SymLong, "float": grammar.SymFloat,
	"double": grammar.SymDouble, "signed": grammar.SymSigned, "unsigned": grammar.SymUnsigned,
	"goto": grammar.SymGoto, "continue": grammar.SymContinue, "break": grammar.SymBreak,
	"return": grammar.SymReturn, "for": grammar.SymFor, "do": grammar.SymDo,
	"while": grammar.SymWhile, "if": grammar.SymIf, "else": grammar.SymElse,
	"switch": grammar.SymSwitch, "case": grammar.SymCase, "default": grammar.SymDefault,
	"enum": grammar.SymEnum, "struct": grammar.SymStruct, "union": grammar.SymUnion,
	"const": grammar.SymConst, "volatile": grammar.SymVolatile, "auto": grammar.SymAuto,
	"register": grammar.SymRegister, "static": grammar.SymStatic, "extern": grammar.SymExtern,
	"typedef": grammar.SymTypedef, "sizeof": grammar.SymSizeof,
}
