// Command cparse parses a C source file with the canonical LR(1) parser in
// package driver and renders the resulting AST.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
