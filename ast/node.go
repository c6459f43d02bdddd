// Package ast defines the abstract syntax tree the parser driver builds.
package ast

import (
	"fmt"
	"strings"

	"github.com/kbrandt/cparse/grammar"
)

// Node is one AST node: either an interior node whose Kind is a
// non-terminal and whose Children hold its sub-derivations, or a leaf
// whose Kind is a terminal and whose Token carries the source text that
// terminal matched.
type Node struct {
	Kind     grammar.Symbol
	Children []*Node
	Token    *Token
}

// Token is the payload a terminal leaf node carries: its matched lexeme
// and its source position, for error messages and for any later pass that
// wants the original text (e.g. an identifier's spelling).
type Token struct {
	Lexeme string
	Row    int
	Col    int
}

// NewLeaf builds a terminal AST node from a token kind and the token that
// matched it.
func NewLeaf(kind grammar.Symbol, tok Token) *Node {
	return &Node{Kind: kind, Token: &tok}
}

// NewInterior builds a non-terminal AST node from a reduced production's
// right-hand side nodes, in order.
func NewInterior(kind grammar.Symbol, children []*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// IsLeaf reports whether n is a terminal leaf.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// Text renders a node's significant text: the lexeme for a leaf, or a
// recursive concatenation of its children's text for an interior node,
// space-separated the way K&R source would naturally display.
func (n *Node) Text() string {
	if n.IsLeaf() {
		return n.Token.Lexeme
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.Text()
	}
	return strings.Join(parts, " ")
}

// String renders a one-line description of the node: its grammar symbol
// and, for a leaf, its lexeme.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s(%q)", n.Kind, n.Token.Lexeme)
	}
	return n.Kind.String()
}

// Walk visits n and every descendant, depth-first, pre-order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
