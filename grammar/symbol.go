// Package grammar holds the static K&R C grammar (transcribed from the scc
// reference implementation) and the canonical LR(1) machinery built over it:
// FIRST sets, item-set closure, the state machine, and the projected parse
// table.
package grammar

import "fmt"

// Symbol is a single grammar vocabulary entry: either a terminal (a token
// kind the lexer produces) or a non-terminal (a production head). The two
// ranges are separated by the Invalid sentinel: a value less than Invalid is
// always a terminal, a value greater than Invalid is always a non-terminal.
type Symbol int

const (
	// Terminals. Order matches the reserved-word table and punctuator
	// handling in the scc scanner, with EOF appended as the last terminal
	// so lookahead sets never need a separate "end of input" idiom.
	SymVoid Symbol = iota
	SymChar
	SymShort
	SymInt
	SymLong
	SymFloat
	SymDouble
	SymSigned
	SymUnsigned
	SymGoto
	SymContinue
	SymBreak
	SymReturn
	SymFor
	SymDo
	SymWhile
	SymIf
	SymElse
	SymSwitch
	SymCase
	SymDefault
	SymEnum
	SymStruct
	SymUnion
	SymConst
	SymVolatile
	SymAuto
	SymRegister
	SymStatic
	SymExtern
	SymTypedef
	SymSizeof

	SymIdentifier
	SymIntegerConstant
	SymCharacterConstant
	SymStringLiteral
	SymTypedefName // never produced by the lexer (no typedef-name disambiguation); kept so the grammar table matches K&R Appendix A

	SymLBrace
	SymRBrace
	SymLBracket
	SymRBracket
	SymLParen
	SymRParen
	SymSemicolon
	SymColon
	SymComma
	SymDot
	SymEllipsis
	SymEqual
	SymQuestionMark
	SymArrow

	SymPlusPlus
	SymMinusMinus
	SymAmpersand
	SymAmpersandAmpersand
	SymAsterisk
	SymPlus
	SymMinus
	SymBang
	SymSlash
	SymPercent

	SymShiftLeft
	SymShiftRight
	SymLt
	SymGt
	SymLtEq
	SymGtEq
	SymEq
	SymNeq
	SymCaret
	SymVerticalBar
	SymVerticalBarVerticalBar

	SymAsteriskEqual
	SymSlashEqual
	SymPercentEqual
	SymPlusEqual
	SymMinusEqual
	SymShiftLeftEqual
	SymShiftRightEqual
	SymAmpersandEqual
	SymCaretEqual
	SymVerticalBarEqual

	SymEOF

	// Invalid is the partition sentinel. It is never a valid symbol value
	// on its own.
	Invalid

	// Non-terminals, grouped the way K&R Appendix A groups them.
	// SymAugmentedStart is the textbook S' symbol: it exists only so the
	// canonical automaton has a single, unambiguous accepting item, and
	// never appears in a token stream or an AST.
	SymAugmentedStart
	SymTranslationUnit
	SymExternalDeclaration
	SymFunctionDefinition
	SymDeclaration
	SymDeclarationList
	SymDeclarationSpecifiers
	SymStorageClassSpecifier
	SymTypeSpecifier
	SymTypeQualifier
	SymStructOrUnionSpecifier
	SymStructOrUnion
	SymStructDeclarationList
	SymStructDeclaratorList
	SymInitDeclaratorList
	SymInitDeclarator
	SymStructDeclaration
	SymSpecifierQualifierList
	SymStructDeclarator
	SymEnumSpecifier
	SymEnumeratorList
	SymEnumerator
	SymDeclarator
	SymDirectDeclarator
	SymPointer
	SymTypeQualifierList
	SymParameterTypeList
	SymParameterList
	SymParameterDeclaration
	SymIdentifierList
	SymInitializer
	SymInitializerList
	SymTypeName
	SymAbstractDeclarator
	SymDirectAbstractDeclarator
	SymStatement
	SymLabeledStatement
	SymExpressionStatement
	SymCompoundStatement
	SymStatementList
	SymSelectionStatement
	SymIterationStatement
	SymJumpStatement
	SymExpression
	SymAssignmentExpression
	SymConditionalExpression
	SymConstantExpression
	SymLogicalOrExpression
	SymLogicalAndExpression
	SymInclusiveOrExpression
	SymExclusiveOrExpression
	SymAndExpression
	SymEqualityExpression
	SymRelationalExpression
	SymShiftExpression
	SymAdditiveExpression
	SymMultiplicativeExpression
	SymCastExpression
	SymUnaryExpression
	SymPostfixExpression
	SymArgumentExpressionList
	SymPrimaryExpression
	SymConstant

	symbolCount
)

// IsTerminal reports whether sym is a terminal symbol.
func (sym Symbol) IsTerminal() bool {
	return sym < Invalid
}

// NumSymbols returns the number of distinct symbols in the grammar,
// including Invalid itself (so symbol values can index dense arrays
// directly).
func NumSymbols() int {
	return int(symbolCount)
}

var symbolNames = map[Symbol]string{
	SymVoid: "void", SymChar: "char", SymShort: "short", SymInt: "int",
	SymLong: "long", SymFloat: "float", SymDouble: "double", SymSigned: "signed",
	SymUnsigned: "unsigned", SymGoto: "goto", SymContinue: "continue",
	SymBreak: "break", SymReturn: "return", SymFor: "for", SymDo: "do",
	SymWhile: "while", SymIf: "if", SymElse: "else", SymSwitch: "switch",
	SymCase: "case", SymDefault: "default", SymEnum: "enum", SymStruct: "struct",
	SymUnion: "union", SymConst: "const", SymVolatile: "volatile", SymAuto: "auto",
	SymRegister: "register", SymStatic: "static", SymExtern: "extern",
	SymTypedef: "typedef", SymSizeof: "sizeof",

	SymIdentifier:        "identifier",
	SymIntegerConstant:   "integer-constant",
	SymCharacterConstant: "character-constant",
	SymStringLiteral:     "string-literal",
	SymTypedefName:       "typedef-name",

	SymLBrace: "{", SymRBrace: "}", SymLBracket: "[", SymRBracket: "]",
	SymLParen: "(", SymRParen: ")", SymSemicolon: ";", SymColon: ":",
	SymComma: ",", SymDot: ".", SymEllipsis: "...", SymEqual: "=",
	SymQuestionMark: "?", SymArrow: "->",

	SymPlusPlus: "++", SymMinusMinus: "--", SymAmpersand: "&",
	SymAmpersandAmpersand: "&&", SymAsterisk: "*", SymPlus: "+", SymMinus: "-",
	SymBang: "!", SymSlash: "/", SymPercent: "%",

	SymShiftLeft: "<<", SymShiftRight: ">>", SymLt: "<", SymGt: ">",
	SymLtEq: "<=", SymGtEq: ">=", SymEq: "==", SymNeq: "!=", SymCaret: "^",
	SymVerticalBar: "|", SymVerticalBarVerticalBar: "||",

	SymAsteriskEqual: "*=", SymSlashEqual: "/=", SymPercentEqual: "%=",
	SymPlusEqual: "+=", SymMinusEqual: "-=", SymShiftLeftEqual: "<<=",
	SymShiftRightEqual: ">>=", SymAmpersandEqual: "&=", SymCaretEqual: "^=",
	SymVerticalBarEqual: "|=",

	SymEOF: "$",

	SymAugmentedStart:           "$start",
	SymTranslationUnit:          "translation-unit",
	SymExternalDeclaration:      "external-declaration",
	SymFunctionDefinition:       "function-definition",
	SymDeclaration:              "declaration",
	SymDeclarationList:          "declaration-list",
	SymDeclarationSpecifiers:    "declaration-specifiers",
	SymStorageClassSpecifier:    "storage-class-specifier",
	SymTypeSpecifier:            "type-specifier",
	SymTypeQualifier:            "type-qualifier",
	SymStructOrUnionSpecifier:   "struct-or-union-specifier",
	SymStructOrUnion:            "struct-or-union",
	SymStructDeclarationList:    "struct-declaration-list",
	SymStructDeclaratorList:     "struct-declarator-list",
	SymInitDeclaratorList:       "init-declarator-list",
	SymInitDeclarator:           "init-declarator",
	SymStructDeclaration:        "struct-declaration",
	SymSpecifierQualifierList:   "specifier-qualifier-list",
	SymStructDeclarator:         "struct-declarator",
	SymEnumSpecifier:            "enum-specifier",
	SymEnumeratorList:           "enumerator-list",
	SymEnumerator:               "enumerator",
	SymDeclarator:               "declarator",
	SymDirectDeclarator:         "direct-declarator",
	SymPointer:                  "pointer",
	SymTypeQualifierList:        "type-qualifier-list",
	SymParameterTypeList:        "parameter-type-list",
	SymParameterList:            "parameter-list",
	SymParameterDeclaration:     "parameter-declaration",
	SymIdentifierList:           "identifier-list",
	SymInitializer:              "initializer",
	SymInitializerList:          "initializer-list",
	SymTypeName:                 "type-name",
	SymAbstractDeclarator:       "abstract-declarator",
	SymDirectAbstractDeclarator: "direct-abstract-declarator",
	SymStatement:                "statement",
	SymLabeledStatement:         "labeled-statement",
	SymExpressionStatement:      "expression-statement",
	SymCompoundStatement:        "compound-statement",
	SymStatementList:            "statement-list",
	SymSelectionStatement:       "selection-statement",
	SymIterationStatement:       "iteration-statement",
	SymJumpStatement:            "jump-statement",
	SymExpression:               "expression",
	SymAssignmentExpression:     "assignment-expression",
	SymConditionalExpression:    "conditional-expression",
	SymConstantExpression:       "constant-expression",
	SymLogicalOrExpression:      "logical-or-expression",
	SymLogicalAndExpression:     "logical-and-expression",
	SymInclusiveOrExpression:    "inclusive-or-expression",
	SymExclusiveOrExpression:    "exclusive-or-expression",
	SymAndExpression:            "and-expression",
	SymEqualityExpression:       "equality-expression",
	SymRelationalExpression:     "relational-expression",
	SymShiftExpression:          "shift-expression",
	SymAdditiveExpression:       "additive-expression",
	SymMultiplicativeExpression: "multiplicative-expression",
	SymCastExpression:           "cast-expression",
	SymUnaryExpression:          "unary-expression",
	SymPostfixExpression:        "postfix-expression",
	SymArgumentExpressionList:   "argument-expression-list",
	SymPrimaryExpression:        "primary-expression",
	SymConstant:                 "constant",
}

func (sym Symbol) String() string {
	if name, ok := symbolNames[sym]; ok {
		return name
	}
	return fmt.Sprintf("symbol(%d)", int(sym))
}
