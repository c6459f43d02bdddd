package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kbrandt/cparse/ast"
	"github.com/kbrandt/cparse/driver"
	"github.com/kbrandt/cparse/lexer"
)

var parseFormat string
var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a C source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "tree", "output format: text, tree, or json")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "write output to this file instead of stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	node, err := driver.Parse(lexer.New(src))
	if err != nil {
		pterm.Error.Println(err)
		return err
	}

	var rendered string
	switch parseFormat {
	case "text":
		rendered = node.Text()
	case "json":
		b, err := json.MarshalIndent(toJSON(node), "", "  ")
		if err != nil {
			return err
		}
		rendered = string(b)
	case "tree":
		rendered, err = renderTree(node)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text, tree, or json)", parseFormat)
	}

	if parseOutput == "" {
		fmt.Println(rendered)
		return nil
	}
	return os.WriteFile(parseOutput, []byte(rendered+"\n"), 0o644)
}

// renderTree renders an AST as an indented tree via pterm, the way the
// teacher's own tree-printing uses pterm.DefaultTree against an
// npillmayer/gorgo-style pterm.LeveledList.
func renderTree(n *ast.Node) (string, error) {
	var leveled pterm.LeveledList
	var walk func(node *ast.Node, level int)
	walk = func(node *ast.Node, level int) {
		leveled = append(leveled, pterm.LeveledListItem{Level: level, Text: node.String()})
		for _, c := range node.Children {
			walk(c, level+1)
		}
	}
	walk(n, 0)

	root := pterm.NewTreeFromLeveledList(leveled)
	return pterm.DefaultTree.WithRoot(root).Srender()
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Lexeme   string      `json:"lexeme,omitempty"`
	Row      int         `json:"row,omitempty"`
	Col      int         `json:"col,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func toJSON(n *ast.Node) *jsonNode {
	jn := &jsonNode{Kind: n.Kind.String()}
	if n.IsLeaf() {
		jn.Lexeme = n.Token.Lexeme
		jn.Row = n.Token.Row
		jn.Col = n.Token.Col
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, toJSON(c))
	}
	return jn
}
