// Command minic is the compiler driver's command-line front end: one
// cobra root command with build/tokenize/ast/version subcommands,
// grounded on the teacher's cmd/surge layout.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minic/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "minic compiler",
	Long:  `minic compiles the small statically-typed imperative language into textual LLVM IR.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to accumulate per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, out *os.File) bool {
	c, _ := cmd.Root().PersistentFlags().GetString("color")
	return c == "on" || (c == "auto" && isTerminal(out))
}
