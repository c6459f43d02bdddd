package tester

import (
	"bufio"
	"strings"
	"testing"
)

func TestDiffTree_Equal(t *testing.T) {
	a := NewTree("translation-unit", NewTree("external-declaration"))
	b := NewTree("translation-unit", NewTree("external-declaration"))
	if diffs := DiffTree(a, b); len(diffs) != 0 {
		t.Fatalf("expected no diffs, got %v", diffs)
	}
}

func TestDiffTree_KindMismatch(t *testing.T) {
	a := NewTree("translation-unit")
	b := NewTree("declaration")
	diffs := DiffTree(a, b)
	if len(diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d: %v", len(diffs), diffs)
	}
	if diffs[0].Expected != "translation-unit" || diffs[0].Actual != "declaration" {
		t.Fatalf("unexpected diff contents: %+v", diffs[0])
	}
}

func TestDiffTree_ChildCountMismatch(t *testing.T) {
	a := NewTree("s", NewTree("a"), NewTree("b"))
	b := NewTree("s", NewTree("a"))
	diffs := DiffTree(a, b)
	if len(diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d: %v", len(diffs), diffs)
	}
	if diffs[0].Message != "child count mismatch" {
		t.Fatalf("unexpected diff: %+v", diffs[0])
	}
}

func TestDiffTree_NestedMismatch(t *testing.T) {
	a := NewTree("s", NewTree("a", NewTree("x")))
	b := NewTree("s", NewTree("a", NewTree("y")))
	diffs := DiffTree(a, b)
	if len(diffs) != 1 {
		t.Fatalf("expected 1 diff, got %d: %v", len(diffs), diffs)
	}
	if diffs[0].Path != "0.0" {
		t.Fatalf("expected path 0.0, got %v", diffs[0].Path)
	}
}

func TestParseFixture(t *testing.T) {
	src := `
translation-unit
  external-declaration
    declaration
`
	tree, err := ParseFixture(bufio.NewScanner(strings.NewReader(src)))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Kind != "translation-unit" {
		t.Fatalf("unexpected root kind: %v", tree.Kind)
	}
	if len(tree.Children) != 1 || tree.Children[0].Kind != "external-declaration" {
		t.Fatalf("unexpected children: %+v", tree.Children)
	}
	if len(tree.Children[0].Children) != 1 || tree.Children[0].Children[0].Kind != "declaration" {
		t.Fatalf("unexpected grandchildren: %+v", tree.Children[0].Children)
	}
}

func TestParseFixture_EmptyIsError(t *testing.T) {
	_, err := ParseFixture(bufio.NewScanner(strings.NewReader("")))
	if err == nil {
		t.Fatal("expected error for empty fixture")
	}
}
