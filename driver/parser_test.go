package driver

import (
	"testing"

	"github.com/kbrandt/cparse/ast"
	"github.com/kbrandt/cparse/grammar"
	"github.com/kbrandt/cparse/lexer"
	"github.com/kbrandt/cparse/perr"
)

func tok(kind grammar.Symbol, lexeme string) lexer.Token {
	return lexer.Token{Kind: kind, Lexeme: lexeme, Row: 1, Col: 1}
}

func eof() lexer.Token {
	return tok(grammar.SymEOF, "")
}

func ident(name string) lexer.Token {
	return tok(grammar.SymIdentifier, name)
}

func intConst(lexeme string) lexer.Token {
	return tok(grammar.SymIntegerConstant, lexeme)
}

// inFunctionBody wraps statement tokens in "int f ( ) { ... }" and appends
// end of input: the grammar only accepts statements inside a function body,
// never directly at translation-unit scope.
func inFunctionBody(stmt ...lexer.Token) []lexer.Token {
	toks := []lexer.Token{
		tok(grammar.SymInt, "int"),
		ident("f"),
		tok(grammar.SymLParen, "("),
		tok(grammar.SymRParen, ")"),
		tok(grammar.SymLBrace, "{"),
	}
	toks = append(toks, stmt...)
	return append(toks, tok(grammar.SymRBrace, "}"), eof())
}

// containsKind reports whether n or any descendant has the given grammar
// symbol as its Kind.
func containsKind(n *ast.Node, kind grammar.Symbol) bool {
	found := false
	n.Walk(func(m *ast.Node) {
		if m.Kind == kind {
			found = true
		}
	})
	return found
}

// countKind reports how many nodes in n's subtree have the given kind.
func countKind(n *ast.Node, kind grammar.Symbol) int {
	count := 0
	n.Walk(func(m *ast.Node) {
		if m.Kind == kind {
			count++
		}
	})
	return count
}

// TestParse_SimpleDeclaration covers the spec's "int x;" scenario: a
// translation unit holding one plain declaration, no initializer.
func TestParse_SimpleDeclaration(t *testing.T) {
	toks := []lexer.Token{
		tok(grammar.SymInt, "int"),
		ident("x"),
		tok(grammar.SymSemicolon, ";"),
		eof(),
	}
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Kind != grammar.SymTranslationUnit {
		t.Fatalf("root kind = %s, want %s", root.Kind, grammar.SymTranslationUnit)
	}
	if !containsKind(root, grammar.SymDeclaration) {
		t.Fatal("expected a declaration node in the tree")
	}
}

// TestParse_FunctionWithReturn covers the spec's "return 0; inside a
// function" scenario.
func TestParse_FunctionWithReturn(t *testing.T) {
	toks := []lexer.Token{
		tok(grammar.SymInt, "int"),
		ident("main"),
		tok(grammar.SymLParen, "("),
		tok(grammar.SymRParen, ")"),
		tok(grammar.SymLBrace, "{"),
		tok(grammar.SymReturn, "return"),
		intConst("0"),
		tok(grammar.SymSemicolon, ";"),
		tok(grammar.SymRBrace, "}"),
		eof(),
	}
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymFunctionDefinition) {
		t.Fatal("expected a function-definition node")
	}
	if !containsKind(root, grammar.SymJumpStatement) {
		t.Fatal("expected a jump-statement (return) node")
	}
}

// TestParse_Assignment covers the spec's "a = b + c;" scenario.
func TestParse_Assignment(t *testing.T) {
	toks := inFunctionBody(
		ident("a"),
		tok(grammar.SymEqual, "="),
		ident("b"),
		tok(grammar.SymPlus, "+"),
		ident("c"),
		tok(grammar.SymSemicolon, ";"),
	)
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymAssignmentExpression) {
		t.Fatal("expected an assignment-expression node")
	}
	if !containsKind(root, grammar.SymAdditiveExpression) {
		t.Fatal("expected an additive-expression node for b + c")
	}
}

// TestParse_DanglingElseBindsToNearestIf exercises the grammar's one known
// resolved ambiguity: "if (a) if (b) x; else y;" must attach the else to
// the inner if, matching the shift-wins resolution in grammar.BuildTable.
func TestParse_DanglingElseBindsToNearestIf(t *testing.T) {
	toks := inFunctionBody(
		tok(grammar.SymIf, "if"),
		tok(grammar.SymLParen, "("),
		ident("a"),
		tok(grammar.SymRParen, ")"),
		tok(grammar.SymIf, "if"),
		tok(grammar.SymLParen, "("),
		ident("b"),
		tok(grammar.SymRParen, ")"),
		ident("x"),
		tok(grammar.SymSemicolon, ";"),
		tok(grammar.SymElse, "else"),
		ident("y"),
		tok(grammar.SymSemicolon, ";"),
	)
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if countKind(root, grammar.SymSelectionStatement) != 2 {
		t.Fatalf("expected exactly 2 selection-statement nodes, got %d",
			countKind(root, grammar.SymSelectionStatement))
	}

	var outer *ast.Node
	root.Walk(func(n *ast.Node) {
		if n.Kind == grammar.SymSelectionStatement && outer == nil {
			outer = n
		}
	})
	if outer == nil {
		t.Fatal("no selection-statement found")
	}
	// The outer if's body (last child when there is no else) must itself
	// be a statement wrapping the inner if/else, not a bare if with the
	// else dangling at the outer level: the outer rule has exactly 5
	// children (if, (, expr, ), statement) rather than 7 (with else).
	if len(outer.Children) != 5 {
		t.Fatalf("outer if has %d children, want 5 (no else at the outer level)", len(outer.Children))
	}
	inner := outer.Children[4]
	if !containsKind(inner, grammar.SymElse) {
		t.Fatal("the else must appear within the inner if's subtree, not the outer one")
	}
}

// TestParse_StructDeclaration covers a struct type with two members.
func TestParse_StructDeclaration(t *testing.T) {
	toks := []lexer.Token{
		tok(grammar.SymStruct, "struct"),
		ident("point"),
		tok(grammar.SymLBrace, "{"),
		tok(grammar.SymInt, "int"),
		ident("x"),
		tok(grammar.SymSemicolon, ";"),
		tok(grammar.SymInt, "int"),
		ident("y"),
		tok(grammar.SymSemicolon, ";"),
		tok(grammar.SymRBrace, "}"),
		tok(grammar.SymSemicolon, ";"),
		eof(),
	}
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymStructOrUnionSpecifier) {
		t.Fatal("expected a struct-or-union-specifier node")
	}
	if countKind(root, grammar.SymStructDeclaration) != 2 {
		t.Fatalf("expected 2 struct-declaration members, got %d", countKind(root, grammar.SymStructDeclaration))
	}
}

// TestParse_BareDeclarationSpecifiersIsValid checks that "int ;" parses:
// the grammar's "declaration-specifiers ;" form accepts a declaration with
// no declarator (no declared name), so Parse returns no error.
func TestParse_BareDeclarationSpecifiersIsValid(t *testing.T) {
	toks := []lexer.Token{
		tok(grammar.SymInt, "int"),
		tok(grammar.SymSemicolon, ";"),
		eof(),
	}
	if _, err := Parse(NewSliceStream(toks)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

// TestParse_SyntaxErrorOnBareSemicolonAtTopLevel covers a genuine
// top-level rejection: a lone ";" is not a valid external-declaration (no
// expression-statement form exists at translation-unit scope), so the
// driver must report a syntax error rather than panicking or returning a
// partial tree.
func TestParse_SyntaxErrorOnBareSemicolonAtTopLevel(t *testing.T) {
	toks := []lexer.Token{
		tok(grammar.SymSemicolon, ";"),
		eof(),
	}
	node, err := Parse(NewSliceStream(toks))
	if err == nil {
		t.Fatal("expected a syntax error for a bare ';' at top level")
	}
	if node != nil {
		t.Fatal("expected a nil AST on syntax error")
	}
	if _, ok := err.(*perr.SyntaxError); !ok {
		t.Fatalf("expected a *perr.SyntaxError, got %T: %v", err, err)
	}
}

// TestParse_CompoundAssignmentOperators covers the supplemented
// compound-assignment operator set (+=, -=, *=, /=, %=, <<=, >>=, &=,
// ^=, |=), each exercised once.
func TestParse_CompoundAssignmentOperators(t *testing.T) {
	ops := []grammar.Symbol{
		grammar.SymPlusEqual, grammar.SymMinusEqual, grammar.SymAsteriskEqual,
		grammar.SymSlashEqual, grammar.SymPercentEqual, grammar.SymShiftLeftEqual,
		grammar.SymShiftRightEqual, grammar.SymAmpersandEqual, grammar.SymCaretEqual,
		grammar.SymVerticalBarEqual,
	}
	for _, op := range ops {
		toks := inFunctionBody(
			ident("a"),
			tok(op, op.String()),
			intConst("1"),
			tok(grammar.SymSemicolon, ";"),
		)
		root, err := Parse(NewSliceStream(toks))
		if err != nil {
			t.Fatalf("operator %s: Parse: %v", op, err)
		}
		if !containsKind(root, grammar.SymAssignmentExpression) {
			t.Fatalf("operator %s: expected an assignment-expression node", op)
		}
	}
}

// TestParse_CastExpression covers the supplemented parenthesized-type-name
// cast form, "(int) a;".
func TestParse_CastExpression(t *testing.T) {
	toks := inFunctionBody(
		tok(grammar.SymLParen, "("),
		tok(grammar.SymInt, "int"),
		tok(grammar.SymRParen, ")"),
		ident("a"),
		tok(grammar.SymSemicolon, ";"),
	)
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymTypeName) {
		t.Fatal("expected a type-name node inside the cast")
	}
}

// TestParse_FunctionCallWithArguments covers postfix-expression's call
// form with a multi-argument argument-expression-list.
func TestParse_FunctionCallWithArguments(t *testing.T) {
	toks := inFunctionBody(
		ident("f"),
		tok(grammar.SymLParen, "("),
		ident("a"),
		tok(grammar.SymComma, ","),
		ident("b"),
		tok(grammar.SymRParen, ")"),
		tok(grammar.SymSemicolon, ";"),
	)
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymArgumentExpressionList) {
		t.Fatal("expected an argument-expression-list node")
	}
}

// TestParse_ArraySubscriptAndMemberAccess covers postfix-expression's
// subscript and member-access forms together, "a[0].b;".
func TestParse_ArraySubscriptAndMemberAccess(t *testing.T) {
	toks := inFunctionBody(
		ident("a"),
		tok(grammar.SymLBracket, "["),
		intConst("0"),
		tok(grammar.SymRBracket, "]"),
		tok(grammar.SymDot, "."),
		ident("b"),
		tok(grammar.SymSemicolon, ";"),
	)
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymPostfixExpression) {
		t.Fatal("expected a postfix-expression node")
	}
}

// TestParse_StringLiteralAndParenthesizedPrimary covers
// primary-expression's supplemented STRING and "( expression )" forms.
func TestParse_StringLiteralAndParenthesizedPrimary(t *testing.T) {
	toks := inFunctionBody(
		ident("puts"),
		tok(grammar.SymLParen, "("),
		tok(grammar.SymStringLiteral, `"hi"`),
		tok(grammar.SymRParen, ")"),
		tok(grammar.SymSemicolon, ";"),
	)
	root, err := Parse(NewSliceStream(toks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !containsKind(root, grammar.SymArgumentExpressionList) {
		t.Fatal("expected an argument-expression-list node for the string-literal argument")
	}

	toks2 := inFunctionBody(
		tok(grammar.SymLParen, "("),
		ident("a"),
		tok(grammar.SymPlus, "+"),
		ident("b"),
		tok(grammar.SymRParen, ")"),
		tok(grammar.SymSemicolon, ";"),
	)
	root2, err := Parse(NewSliceStream(toks2))
	if err != nil {
		t.Fatalf("Parse (parenthesized primary): %v", err)
	}
	if !containsKind(root2, grammar.SymAdditiveExpression) {
		t.Fatal("expected the parenthesized additive-expression to survive")
	}
}
