// Package tester is a small testable-tree diffing helper used by the
// cparse test subcommand: it
// compares a parsed *ast.Node against a compact textual fixture describing
// the shape the parse is expected to have, conceptually grounded in the
// teacher's tester.go diff-tree idea but rewritten from scratch, since the
// teacher's version is tightly coupled to its own DSL test-case file
// format, which this system has no use for.
package tester

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/kbrandt/cparse/ast"
)

// Tree is a compact, kind-only description of an expected AST shape:
// enough to assert "this production fired, with these children" without
// pinning down leaf lexemes the grammar doesn't care about.
type Tree struct {
	Kind     string
	Children []*Tree
}

// NewTree builds a Tree node.
func NewTree(kind string, children ...*Tree) *Tree {
	return &Tree{Kind: kind, Children: children}
}

// FromNode converts a parsed *ast.Node into its Tree shape, dropping
// lexeme/position information so it can be compared against a fixture
// that only encodes structure.
func FromNode(n *ast.Node) *Tree {
	if n == nil {
		return nil
	}
	t := &Tree{Kind: n.Kind.String()}
	for _, c := range n.Children {
		t.Children = append(t.Children, FromNode(c))
	}
	return t
}

// Diff is a single mismatch between an expected and an actual tree,
// located by a dotted child-index path from the root (e.g. "0.1.2").
type Diff struct {
	Path     string
	Message  string
	Expected string
	Actual   string
}

// DiffTree compares expected against actual and returns every mismatch
// found, depth-first. An empty result means the trees are equal.
func DiffTree(expected, actual *Tree) []Diff {
	var diffs []Diff
	diffTree("", expected, actual, &diffs)
	return diffs
}

func diffTree(path string, expected, actual *Tree, diffs *[]Diff) {
	switch {
	case expected == nil && actual == nil:
		return
	case expected == nil:
		*diffs = append(*diffs, Diff{Path: path, Message: "unexpected node", Expected: "<nil>", Actual: actual.Kind})
		return
	case actual == nil:
		*diffs = append(*diffs, Diff{Path: path, Message: "missing node", Expected: expected.Kind, Actual: "<nil>"})
		return
	}

	if expected.Kind != actual.Kind {
		*diffs = append(*diffs, Diff{Path: path, Message: "kind mismatch", Expected: expected.Kind, Actual: actual.Kind})
	}
	if len(expected.Children) != len(actual.Children) {
		*diffs = append(*diffs, Diff{
			Path:     path,
			Message:  "child count mismatch",
			Expected: fmt.Sprintf("%d children", len(expected.Children)),
			Actual:   fmt.Sprintf("%d children", len(actual.Children)),
		})
	}

	n := len(expected.Children)
	if len(actual.Children) < n {
		n = len(actual.Children)
	}
	for i := 0; i < n; i++ {
		childPath := fmt.Sprintf("%d", i)
		if path != "" {
			childPath = path + "." + childPath
		}
		diffTree(childPath, expected.Children[i], actual.Children[i], diffs)
	}
}

// ParseFixture reads a textual fixture describing an expected Tree shape:
// one node per line, indented two spaces per depth level, e.g.
//
//	translation-unit
//	  external-declaration
//	    declaration
//
// This is the format cparse test golden files use.
func ParseFixture(r *bufio.Scanner) (*Tree, error) {
	type frame struct {
		depth int
		node  *Tree
	}
	var stack []frame
	var root *Tree

	for r.Scan() {
		line := r.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth := 0
		for depth*2 < len(line) && line[depth*2] == ' ' {
			depth++
		}
		kind := strings.TrimSpace(line)
		node := &Tree{Kind: kind}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			if root != nil {
				return nil, fmt.Errorf("fixture has more than one root node")
			}
			root = node
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, frame{depth: depth, node: node})
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("fixture is empty")
	}
	return root, nil
}
