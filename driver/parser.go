// Package driver runs the shift/reduce parsing loop over the static parse
// table in package grammar, consuming a TokenStream and producing an
// *ast.Node. Grounded on the teacher's driver.Parser.Parse loop, simplified
// because this grammar has no semantic-action-directive indirection: every
// reduce builds an interior AST node with exactly the reduced production's
// right-hand-side nodes as children (a CST-shaped AST), never a
// restructured one.
package driver

import (
	"fmt"

	"github.com/kbrandt/cparse/ast"
	"github.com/kbrandt/cparse/grammar"
	"github.com/kbrandt/cparse/lexer"
	"github.com/kbrandt/cparse/perr"
)

// Parse runs the shift/reduce loop to completion, returning the root AST
// node on success. On a rejecting token it returns a *perr.SyntaxError and
// a nil node (no partial AST is ever returned).
func Parse(ts TokenStream) (*ast.Node, error) {
	table := grammar.ParseTable()

	stateStack := []grammar.StateID{table.Start}
	var nodeStack []*ast.Node

	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}

	for {
		top := stateStack[len(stateStack)-1]
		action := table.Action(top, tok.Kind)

		switch action.Kind {
		case grammar.ActionShift:
			nodeStack = append(nodeStack, terminalLeaf(tok))
			stateStack = append(stateStack, action.State)
			tok, err = ts.Next()
			if err != nil {
				return nil, err
			}

		case grammar.ActionReduce:
			rule := grammar.Rules()[action.Rule]
			n := len(rule.Body)
			children := append([]*ast.Node{}, nodeStack[len(nodeStack)-n:]...)
			nodeStack = nodeStack[:len(nodeStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			node := ast.NewInterior(rule.Head, children)
			nodeStack = append(nodeStack, node)

			gotoState, ok := table.Goto(stateStack[len(stateStack)-1], rule.Head)
			if !ok {
				return nil, &perr.InternalError{Cause: fmt.Errorf(
					"no goto entry for state %d on %s after reducing rule %d",
					stateStack[len(stateStack)-1], rule.Head, action.Rule)}
			}
			stateStack = append(stateStack, gotoState)

		case grammar.ActionAccept:
			return nodeStack[len(nodeStack)-1], nil

		default: // grammar.ActionError
			expected := table.ExpectedTerminals(top)
			names := make([]string, len(expected))
			for i, e := range expected {
				names[i] = e.String()
			}
			return nil, &perr.SyntaxError{
				Row:      tok.Row,
				Col:      tok.Col,
				Got:      describeToken(tok),
				Expected: names,
			}
		}
	}
}

// terminalLeaf is the token-to-AST-leaf adapter: it maps a scanned token
// directly onto a leaf node tagged with the token's own terminal kind,
// since this grammar needs no renaming between lexer token kinds and
// grammar terminal symbols (the lexer already emits grammar.Symbol values).
func terminalLeaf(tok lexer.Token) *ast.Node {
	return ast.NewLeaf(tok.Kind, ast.Token{
		Lexeme: tok.Lexeme,
		Row:    tok.Row,
		Col:    tok.Col,
	})
}

func describeToken(tok lexer.Token) string {
	if tok.Kind == grammar.SymEOF {
		return "end of input"
	}
	if tok.Lexeme != "" {
		return fmt.Sprintf("%s %q", tok.Kind, tok.Lexeme)
	}
	return tok.Kind.String()
}
