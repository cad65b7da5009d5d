package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/diag"
	"minic/internal/diagfmt"
	"minic/internal/driver"
	"minic/internal/lexer"
	"minic/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Tokenize a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	file := args[0]
	src, err := driver.ReadSource(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, src, bag)

	for {
		tok := lx.Next()
		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-14s %q\n", tok.Pos.String(), tok.Kind.String(), tok.Text)
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.HasErrors() {
		bag.Sort()
		diagfmt.Print(os.Stderr, bag, useColor(cmd, os.Stderr))
		return fmt.Errorf("tokenization reported errors")
	}
	return nil
}
