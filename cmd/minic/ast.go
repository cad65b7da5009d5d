package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"minic/internal/astdump"
	"minic/internal/diag"
	"minic/internal/diagfmt"
	"minic/internal/driver"
	"minic/internal/parser"
	"minic/internal/sem"
)

var astFormat string

func init() {
	astCmd.Flags().StringVar(&astFormat, "format", "text", "output format (text|msgpack)")
}

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse and analyze a source file, printing its decorated syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func runAST(cmd *cobra.Command, args []string) error {
	file := args[0]
	src, err := driver.ReadSource(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiagnostics)

	top := parser.ParseFile(file, src, bag)
	if !bag.HasErrors() {
		sem.Analyze(file, top, bag)
	}

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Print(os.Stderr, bag, useColor(cmd, os.Stderr))
	}
	if bag.HasErrors() {
		return fmt.Errorf("%s did not type-check", file)
	}

	tree := astdump.FromFuncDef(top)
	switch astFormat {
	case "text":
		astdump.WriteText(cmd.OutOrStdout(), tree)
		return nil
	case "msgpack":
		enc := msgpack.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(tree)
	default:
		return fmt.Errorf("unknown format: %s", astFormat)
	}
}
