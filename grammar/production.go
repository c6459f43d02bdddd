package grammar

// MaxRHSLen bounds the length of any production body in the grammar below;
// kept as an explicit constant (rather than derived) and checked against
// every rule by init at the bottom of this file.
const MaxRHSLen = 9

// Rule is one production: Head derives the ordered sequence Body.
type Rule struct {
	Head Symbol
	Body []Symbol
}

// RuleID identifies a Rule by its position in Rules(). Rule identity is
// positional, not content-hashed: the grammar below is a fixed compile-time
// table, so a dense integer index is simpler than the teacher's
// content-addressed productionID and just as stable.
type RuleID int

// rules is the K&R C grammar (K&R 2nd ed., Appendix A), transcribed from the
// scc reference parser's grammar table and corrected/extended per the gaps
// recorded in DESIGN.md:
//
//   - struct-declaration-list and struct-declarator-list are kept distinct
//     (the source table reused one AST tag for both).
//   - type-name's second production is given its own head instead of being
//     folded into abstract-declarator.
//   - assignment-expression carries the full eleven-operator set.
//   - cast-expression gains the parenthesized-type-name form.
//   - primary-expression gains string-literal and parenthesized-expression
//     alternatives.
//   - postfix-expression gains call, subscript, and member-access forms,
//     backed by a new argument-expression-list non-terminal.
var rules = []Rule{
	// rule 0: the augmented start production, in the same spirit as the
	// synthetic "$accept: start $end" rule yacc/bison always place first --
	// it gives the automaton a single, unambiguous accepting item and is
	// never reduced by the driver (see driver.Parse's accept check).
	{SymAugmentedStart, []Symbol{SymTranslationUnit}},

	// translation-unit
	{SymTranslationUnit, []Symbol{SymExternalDeclaration}},
	{SymTranslationUnit, []Symbol{SymTranslationUnit, SymExternalDeclaration}},

	// external-declaration
	{SymExternalDeclaration, []Symbol{SymFunctionDefinition}},
	{SymExternalDeclaration, []Symbol{SymDeclaration}},

	// function-definition
	{SymFunctionDefinition, []Symbol{SymDeclarator, SymCompoundStatement}},
	{SymFunctionDefinition, []Symbol{SymDeclarationSpecifiers, SymDeclarator, SymCompoundStatement}},
	{SymFunctionDefinition, []Symbol{SymDeclarator, SymDeclarationList, SymCompoundStatement}},
	{SymFunctionDefinition, []Symbol{SymDeclarationSpecifiers, SymDeclarator, SymDeclarationList, SymCompoundStatement}},

	// declaration
	{SymDeclaration, []Symbol{SymDeclarationSpecifiers, SymSemicolon}},
	{SymDeclaration, []Symbol{SymDeclarationSpecifiers, SymInitDeclaratorList, SymSemicolon}},

	// declaration-list
	{SymDeclarationList, []Symbol{SymDeclaration}},
	{SymDeclarationList, []Symbol{SymDeclarationList, SymDeclaration}},

	// declaration-specifiers
	{SymDeclarationSpecifiers, []Symbol{SymStorageClassSpecifier}},
	{SymDeclarationSpecifiers, []Symbol{SymStorageClassSpecifier, SymDeclarationSpecifiers}},
	{SymDeclarationSpecifiers, []Symbol{SymTypeSpecifier}},
	{SymDeclarationSpecifiers, []Symbol{SymTypeSpecifier, SymDeclarationSpecifiers}},
	{SymDeclarationSpecifiers, []Symbol{SymTypeQualifier}},
	{SymDeclarationSpecifiers, []Symbol{SymTypeQualifier, SymDeclarationSpecifiers}},

	// storage-class-specifier
	{SymStorageClassSpecifier, []Symbol{SymAuto}},
	{SymStorageClassSpecifier, []Symbol{SymRegister}},
	{SymStorageClassSpecifier, []Symbol{SymStatic}},
	{SymStorageClassSpecifier, []Symbol{SymExtern}},
	{SymStorageClassSpecifier, []Symbol{SymTypedef}},

	// type-specifier
	{SymTypeSpecifier, []Symbol{SymVoid}},
	{SymTypeSpecifier, []Symbol{SymChar}},
	{SymTypeSpecifier, []Symbol{SymShort}},
	{SymTypeSpecifier, []Symbol{SymInt}},
	{SymTypeSpecifier, []Symbol{SymLong}},
	{SymTypeSpecifier, []Symbol{SymFloat}},
	{SymTypeSpecifier, []Symbol{SymDouble}},
	{SymTypeSpecifier, []Symbol{SymSigned}},
	{SymTypeSpecifier, []Symbol{SymUnsigned}},
	{SymTypeSpecifier, []Symbol{SymStructOrUnionSpecifier}},
	{SymTypeSpecifier, []Symbol{SymEnumSpecifier}},
	{SymTypeSpecifier, []Symbol{SymTypedefName}},

	// type-qualifier
	{SymTypeQualifier, []Symbol{SymConst}},
	{SymTypeQualifier, []Symbol{SymVolatile}},

	// struct-or-union-specifier
	{SymStructOrUnionSpecifier, []Symbol{SymStructOrUnion, SymLBrace, SymStructDeclarationList, SymRBrace}},
	{SymStructOrUnionSpecifier, []Symbol{SymStructOrUnion, SymIdentifier, SymLBrace, SymStructDeclarationList, SymRBrace}},
	{SymStructOrUnionSpecifier, []Symbol{SymStructOrUnion, SymIdentifier}},

	// struct-or-union
	{SymStructOrUnion, []Symbol{SymStruct}},
	{SymStructOrUnion, []Symbol{SymUnion}},

	// struct-declaration-list
	{SymStructDeclarationList, []Symbol{SymStructDeclaration}},
	{SymStructDeclarationList, []Symbol{SymStructDeclarationList, SymStructDeclaration}},

	// init-declarator-list
	{SymInitDeclaratorList, []Symbol{SymInitDeclarator}},
	{SymInitDeclaratorList, []Symbol{SymInitDeclaratorList, SymComma, SymInitDeclarator}},

	// init-declarator
	{SymInitDeclarator, []Symbol{SymDeclarator}},
	{SymInitDeclarator, []Symbol{SymDeclarator, SymEqual, SymInitializer}},

	// struct-declaration
	{SymStructDeclaration, []Symbol{SymSpecifierQualifierList, SymStructDeclaratorList, SymSemicolon}},

	// specifier-qualifier-list
	{SymSpecifierQualifierList, []Symbol{SymTypeSpecifier}},
	{SymSpecifierQualifierList, []Symbol{SymTypeSpecifier, SymSpecifierQualifierList}},
	{SymSpecifierQualifierList, []Symbol{SymTypeQualifier}},
	{SymSpecifierQualifierList, []Symbol{SymTypeQualifier, SymSpecifierQualifierList}},

	// struct-declarator-list
	{SymStructDeclaratorList, []Symbol{SymStructDeclarator}},
	{SymStructDeclaratorList, []Symbol{SymStructDeclaratorList, SymComma, SymStructDeclarator}},

	// struct-declarator
	{SymStructDeclarator, []Symbol{SymDeclarator}},
	{SymStructDeclarator, []Symbol{SymColon, SymConstantExpression}},
	{SymStructDeclarator, []Symbol{SymDeclarator, SymColon, SymConstantExpression}},

	// enum-specifier
	{SymEnumSpecifier, []Symbol{SymEnum, SymIdentifier}},
	{SymEnumSpecifier, []Symbol{SymEnum, SymLBrace, SymEnumeratorList, SymRBrace}},
	{SymEnumSpecifier, []Symbol{SymEnum, SymIdentifier, SymLBrace, SymEnumeratorList, SymRBrace}},

	// enumerator-list
	{SymEnumeratorList, []Symbol{SymEnumerator}},
	{SymEnumeratorList, []Symbol{SymEnumeratorList, SymComma, SymEnumerator}},

	// enumerator
	{SymEnumerator, []Symbol{SymIdentifier}},
	{SymEnumerator, []Symbol{SymIdentifier, SymEqual, SymConstantExpression}},

	// declarator
	{SymDeclarator, []Symbol{SymDirectDeclarator}},
	{SymDeclarator, []Symbol{SymPointer, SymDirectDeclarator}},

	// direct-declarator
	{SymDirectDeclarator, []Symbol{SymIdentifier}},
	{SymDirectDeclarator, []Symbol{SymLParen, SymDeclarator, SymRParen}},
	{SymDirectDeclarator, []Symbol{SymDirectDeclarator, SymLBracket, SymRBracket}},
	{SymDirectDeclarator, []Symbol{SymDirectDeclarator, SymLBracket, SymConstantExpression, SymRBracket}},
	{SymDirectDeclarator, []Symbol{SymDirectDeclarator, SymLParen, SymRParen}},
	{SymDirectDeclarator, []Symbol{SymDirectDeclarator, SymLParen, SymParameterTypeList, SymRParen}},
	{SymDirectDeclarator, []Symbol{SymDirectDeclarator, SymLParen, SymIdentifierList, SymRParen}},

	// pointer
	{SymPointer, []Symbol{SymAsterisk}},
	{SymPointer, []Symbol{SymAsterisk, SymTypeQualifierList}},
	{SymPointer, []Symbol{SymAsterisk, SymPointer}},
	{SymPointer, []Symbol{SymAsterisk, SymTypeQualifierList, SymPointer}},

	// type-qualifier-list
	{SymTypeQualifierList, []Symbol{SymTypeQualifier}},
	{SymTypeQualifierList, []Symbol{SymTypeQualifierList, SymTypeQualifier}},

	// parameter-type-list
	{SymParameterTypeList, []Symbol{SymParameterList}},
	{SymParameterTypeList, []Symbol{SymParameterList, SymComma, SymEllipsis}},

	// parameter-list
	{SymParameterList, []Symbol{SymParameterDeclaration}},
	{SymParameterList, []Symbol{SymParameterList, SymComma, SymParameterDeclaration}},

	// parameter-declaration
	{SymParameterDeclaration, []Symbol{SymDeclarationSpecifiers, SymDeclarator}},
	{SymParameterDeclaration, []Symbol{SymDeclarationSpecifiers, SymAbstractDeclarator}},
	{SymParameterDeclaration, []Symbol{SymDeclarationSpecifiers}},

	// identifier-list
	{SymIdentifierList, []Symbol{SymIdentifier}},
	{SymIdentifierList, []Symbol{SymIdentifierList, SymComma, SymIdentifier}},

	// initializer
	{SymInitializer, []Symbol{SymAssignmentExpression}},
	{SymInitializer, []Symbol{SymLBrace, SymInitializerList, SymRBrace}},
	{SymInitializer, []Symbol{SymLBrace, SymInitializerList, SymComma, SymRBrace}},

	// initializer-list
	{SymInitializerList, []Symbol{SymInitializer}},
	{SymInitializerList, []Symbol{SymInitializerList, SymComma, SymInitializer}},

	// type-name
	{SymTypeName, []Symbol{SymSpecifierQualifierList}},
	{SymTypeName, []Symbol{SymSpecifierQualifierList, SymAbstractDeclarator}},

	// abstract-declarator
	{SymAbstractDeclarator, []Symbol{SymPointer}},
	{SymAbstractDeclarator, []Symbol{SymDirectAbstractDeclarator}},
	{SymAbstractDeclarator, []Symbol{SymPointer, SymDirectAbstractDeclarator}},

	// direct-abstract-declarator
	{SymDirectAbstractDeclarator, []Symbol{SymLParen, SymAbstractDeclarator, SymRParen}},
	{SymDirectAbstractDeclarator, []Symbol{SymLBracket, SymRBracket}},
	{SymDirectAbstractDeclarator, []Symbol{SymDirectAbstractDeclarator, SymLBracket, SymRBracket}},
	{SymDirectAbstractDeclarator, []Symbol{SymLBracket, SymConstantExpression, SymRBracket}},
	{SymDirectAbstractDeclarator, []Symbol{SymDirectAbstractDeclarator, SymLBracket, SymConstantExpression, SymRBracket}},
	{SymDirectAbstractDeclarator, []Symbol{SymLParen, SymRParen}},
	{SymDirectAbstractDeclarator, []Symbol{SymDirectAbstractDeclarator, SymLParen, SymRParen}},
	{SymDirectAbstractDeclarator, []Symbol{SymLParen, SymParameterTypeList, SymRParen}},
	{SymDirectAbstractDeclarator, []Symbol{SymDirectAbstractDeclarator, SymLParen, SymParameterTypeList, SymRParen}},

	// statement
	{SymStatement, []Symbol{SymLabeledStatement}},
	{SymStatement, []Symbol{SymExpressionStatement}},
	{SymStatement, []Symbol{SymCompoundStatement}},
	{SymStatement, []Symbol{SymSelectionStatement}},
	{SymStatement, []Symbol{SymIterationStatement}},
	{SymStatement, []Symbol{SymJumpStatement}},

	// labeled-statement
	{SymLabeledStatement, []Symbol{SymIdentifier, SymColon, SymStatement}},
	{SymLabeledStatement, []Symbol{SymCase, SymConstantExpression, SymColon, SymStatement}},
	{SymLabeledStatement, []Symbol{SymDefault, SymColon, SymStatement}},

	// expression-statement
	{SymExpressionStatement, []Symbol{SymSemicolon}},
	{SymExpressionStatement, []Symbol{SymExpression, SymSemicolon}},

	// compound-statement
	{SymCompoundStatement, []Symbol{SymLBrace, SymRBrace}},
	{SymCompoundStatement, []Symbol{SymLBrace, SymDeclarationList, SymRBrace}},
	{SymCompoundStatement, []Symbol{SymLBrace, SymStatementList, SymRBrace}},
	{SymCompoundStatement, []Symbol{SymLBrace, SymDeclarationList, SymStatementList, SymRBrace}},

	// statement-list
	{SymStatementList, []Symbol{SymStatementList, SymStatement}},
	{SymStatementList, []Symbol{SymStatement}},

	// selection-statement
	{SymSelectionStatement, []Symbol{SymIf, SymLParen, SymExpression, SymRParen, SymStatement}},
	{SymSelectionStatement, []Symbol{SymIf, SymLParen, SymExpression, SymRParen, SymStatement, SymElse, SymStatement}},
	{SymSelectionStatement, []Symbol{SymSwitch, SymLParen, SymExpression, SymRParen, SymStatement}},

	// iteration-statement
	{SymIterationStatement, []Symbol{SymWhile, SymLParen, SymExpression, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymDo, SymStatement, SymWhile, SymLParen, SymExpression, SymRParen, SymSemicolon}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymSemicolon, SymSemicolon, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymExpression, SymSemicolon, SymSemicolon, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymSemicolon, SymExpression, SymSemicolon, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymSemicolon, SymSemicolon, SymExpression, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymExpression, SymSemicolon, SymExpression, SymSemicolon, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymExpression, SymSemicolon, SymSemicolon, SymExpression, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymSemicolon, SymExpression, SymSemicolon, SymExpression, SymRParen, SymStatement}},
	{SymIterationStatement, []Symbol{SymFor, SymLParen, SymExpression, SymSemicolon, SymExpression, SymSemicolon, SymExpression, SymRParen, SymStatement}},

	// jump-statement
	{SymJumpStatement, []Symbol{SymGoto, SymIdentifier, SymSemicolon}},
	{SymJumpStatement, []Symbol{SymContinue, SymSemicolon}},
	{SymJumpStatement, []Symbol{SymBreak, SymSemicolon}},
	{SymJumpStatement, []Symbol{SymReturn, SymSemicolon}},
	{SymJumpStatement, []Symbol{SymReturn, SymExpression, SymSemicolon}},

	// expression
	{SymExpression, []Symbol{SymExpression, SymComma, SymAssignmentExpression}},
	{SymExpression, []Symbol{SymAssignmentExpression}},

	// assignment-expression: the full K&R compound-assignment operator set.
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymAsteriskEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymSlashEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymPercentEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymPlusEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymMinusEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymShiftLeftEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymShiftRightEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymAmpersandEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymCaretEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymUnaryExpression, SymVerticalBarEqual, SymAssignmentExpression}},
	{SymAssignmentExpression, []Symbol{SymConditionalExpression}},

	// constant-expression
	{SymConstantExpression, []Symbol{SymConditionalExpression}},

	// conditional-expression
	{SymConditionalExpression, []Symbol{SymLogicalOrExpression, SymQuestionMark, SymExpression, SymColon, SymConditionalExpression}},
	{SymConditionalExpression, []Symbol{SymLogicalOrExpression}},

	// logical-or-expression
	{SymLogicalOrExpression, []Symbol{SymLogicalOrExpression, SymVerticalBarVerticalBar, SymLogicalAndExpression}},
	{SymLogicalOrExpression, []Symbol{SymLogicalAndExpression}},

	// logical-and-expression
	{SymLogicalAndExpression, []Symbol{SymLogicalAndExpression, SymAmpersandAmpersand, SymInclusiveOrExpression}},
	{SymLogicalAndExpression, []Symbol{SymInclusiveOrExpression}},

	// inclusive-or-expression
	{SymInclusiveOrExpression, []Symbol{SymInclusiveOrExpression, SymVerticalBar, SymExclusiveOrExpression}},
	{SymInclusiveOrExpression, []Symbol{SymExclusiveOrExpression}},

	// exclusive-or-expression
	{SymExclusiveOrExpression, []Symbol{SymExclusiveOrExpression, SymCaret, SymAndExpression}},
	{SymExclusiveOrExpression, []Symbol{SymAndExpression}},

	// and-expression
	{SymAndExpression, []Symbol{SymAndExpression, SymAmpersand, SymEqualityExpression}},
	{SymAndExpression, []Symbol{SymEqualityExpression}},

	// equality-expression
	{SymEqualityExpression, []Symbol{SymEqualityExpression, SymEq, SymRelationalExpression}},
	{SymEqualityExpression, []Symbol{SymEqualityExpression, SymNeq, SymRelationalExpression}},
	{SymEqualityExpression, []Symbol{SymRelationalExpression}},

	// relational-expression
	{SymRelationalExpression, []Symbol{SymRelationalExpression, SymLt, SymShiftExpression}},
	{SymRelationalExpression, []Symbol{SymRelationalExpression, SymGt, SymShiftExpression}},
	{SymRelationalExpression, []Symbol{SymRelationalExpression, SymLtEq, SymShiftExpression}},
	{SymRelationalExpression, []Symbol{SymRelationalExpression, SymGtEq, SymShiftExpression}},
	{SymRelationalExpression, []Symbol{SymShiftExpression}},

	// shift-expression
	{SymShiftExpression, []Symbol{SymShiftExpression, SymShiftLeft, SymAdditiveExpression}},
	{SymShiftExpression, []Symbol{SymShiftExpression, SymShiftRight, SymAdditiveExpression}},
	{SymShiftExpression, []Symbol{SymAdditiveExpression}},

	// additive-expression
	{SymAdditiveExpression, []Symbol{SymAdditiveExpression, SymPlus, SymMultiplicativeExpression}},
	{SymAdditiveExpression, []Symbol{SymAdditiveExpression, SymMinus, SymMultiplicativeExpression}},
	{SymAdditiveExpression, []Symbol{SymMultiplicativeExpression}},

	// multiplicative-expression
	{SymMultiplicativeExpression, []Symbol{SymMultiplicativeExpression, SymAsterisk, SymCastExpression}},
	{SymMultiplicativeExpression, []Symbol{SymMultiplicativeExpression, SymSlash, SymCastExpression}},
	{SymMultiplicativeExpression, []Symbol{SymMultiplicativeExpression, SymPercent, SymCastExpression}},
	{SymMultiplicativeExpression, []Symbol{SymCastExpression}},

	// cast-expression: adds the parenthesized-type-name form K&R defines and
	// the source grammar dropped.
	{SymCastExpression, []Symbol{SymLParen, SymTypeName, SymRParen, SymCastExpression}},
	{SymCastExpression, []Symbol{SymUnaryExpression}},

	// unary-expression
	{SymUnaryExpression, []Symbol{SymPlusPlus, SymUnaryExpression}},
	{SymUnaryExpression, []Symbol{SymMinusMinus, SymUnaryExpression}},
	{SymUnaryExpression, []Symbol{SymAmpersand, SymCastExpression}},
	{SymUnaryExpression, []Symbol{SymAsterisk, SymCastExpression}},
	{SymUnaryExpression, []Symbol{SymPlus, SymCastExpression}},
	{SymUnaryExpression, []Symbol{SymMinus, SymCastExpression}},
	{SymUnaryExpression, []Symbol{SymBang, SymCastExpression}},
	{SymUnaryExpression, []Symbol{SymPostfixExpression}},

	// postfix-expression: adds function-call, subscript, and member-access
	// forms the source grammar never had.
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymLBracket, SymExpression, SymRBracket}},
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymLParen, SymRParen}},
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymLParen, SymArgumentExpressionList, SymRParen}},
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymDot, SymIdentifier}},
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymArrow, SymIdentifier}},
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymPlusPlus}},
	{SymPostfixExpression, []Symbol{SymPostfixExpression, SymMinusMinus}},
	{SymPostfixExpression, []Symbol{SymPrimaryExpression}},

	// argument-expression-list
	{SymArgumentExpressionList, []Symbol{SymAssignmentExpression}},
	{SymArgumentExpressionList, []Symbol{SymArgumentExpressionList, SymComma, SymAssignmentExpression}},

	// primary-expression: adds string-literal and parenthesized-expression
	// alternatives the source grammar never had.
	{SymPrimaryExpression, []Symbol{SymIdentifier}},
	{SymPrimaryExpression, []Symbol{SymConstant}},
	{SymPrimaryExpression, []Symbol{SymStringLiteral}},
	{SymPrimaryExpression, []Symbol{SymLParen, SymExpression, SymRParen}},

	// constant
	{SymConstant, []Symbol{SymIntegerConstant}},
	{SymConstant, []Symbol{SymCharacterConstant}},
}

// Rules returns the static grammar table. The returned slice must not be
// mutated; it backs every FIRST-set, automaton, and parse-table computation
// in this package.
func Rules() []Rule {
	return rules
}

// StartSymbol is the grammar's start symbol.
const StartSymbol = SymTranslationUnit

// AugmentedStartRule is the synthetic rule 0 ($start: translation-unit)
// added so automaton construction has a single accepting item. The driver
// never performs an actual reduce by this rule; reaching it with the
// correct lookahead means ACCEPT.
const AugmentedStartRule RuleID = 0

func init() {
	for i, r := range rules {
		if len(r.Body) == 0 {
			panic("grammar: empty production body is not allowed")
		}
		if len(r.Body) > MaxRHSLen {
			panic("grammar: production body exceeds MaxRHSLen")
		}
		if r.Head.IsTerminal() {
			panic("grammar: production head must be a non-terminal")
		}
		_ = i
	}
}
