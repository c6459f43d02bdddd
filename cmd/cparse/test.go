package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kbrandt/cparse/driver"
	"github.com/kbrandt/cparse/lexer"
	"github.com/kbrandt/cparse/tester"
)

var testCmd = &cobra.Command{
	Use:   "test <dir>",
	Short: "Run golden-file regression tests against a directory of .c/.tree fixture pairs",
	Args:  cobra.ExactArgs(1),
	RunE:  runTest,
}

// runTest parses every *.c file under dir and compares its AST shape
// against the sibling *.tree fixture, using the tester package's diffing
// helper.
func runTest(cmd *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	failures := 0
	total := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".c") {
			continue
		}
		total++
		base := strings.TrimSuffix(e.Name(), ".c")
		cPath := filepath.Join(dir, e.Name())
		treePath := filepath.Join(dir, base+".tree")

		src, err := os.ReadFile(cPath)
		if err != nil {
			pterm.Error.Printfln("%s: %v", cPath, err)
			failures++
			continue
		}
		node, err := driver.Parse(lexer.New(src))
		if err != nil {
			pterm.Error.Printfln("%s: %v", cPath, err)
			failures++
			continue
		}

		f, err := os.Open(treePath)
		if err != nil {
			pterm.Error.Printfln("%s: %v", treePath, err)
			failures++
			continue
		}
		expected, err := tester.ParseFixture(bufio.NewScanner(f))
		f.Close()
		if err != nil {
			pterm.Error.Printfln("%s: %v", treePath, err)
			failures++
			continue
		}

		diffs := tester.DiffTree(expected, tester.FromNode(node))
		if len(diffs) > 0 {
			failures++
			pterm.Error.Printfln("%s: %d mismatch(es)", cPath, len(diffs))
			for _, d := range diffs {
				fmt.Printf("  at %s: %s (expected %s, got %s)\n", d.Path, d.Message, d.Expected, d.Actual)
			}
			continue
		}
		pterm.Success.Printfln("%s", cPath)
	}

	if failures > 0 {
		return fmt.Errorf("%d/%d test case(s) failed", failures, total)
	}
	pterm.Success.Printfln("%d test case(s) passed", total)
	return nil
}
