package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"minic/internal/config"
	"minic/internal/diagfmt"
	"minic/internal/driver"
	"minic/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	buildOptimize bool
	buildOutDir   string
	buildProgress bool
)

func init() {
	buildCmd.Flags().BoolVarP(&buildOptimize, "optimize", "O", false, "run dead-block elimination on the generated IR")
	buildCmd.Flags().StringVar(&buildOutDir, "out-dir", "", "directory to write .ll files into (defaults to minic.toml out_dir)")
	buildCmd.Flags().BoolVar(&buildProgress, "progress", false, "render an interactive progress view while building")
}

var buildCmd = &cobra.Command{
	Use:   "build <files...>",
	Short: "Compile one or more source files to textual LLVM IR",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, files []string) error {
	cfg, err := config.Load("minic.toml")
	if err != nil {
		return fmt.Errorf("loading minic.toml: %w", err)
	}
	optimize := cfg.Optimize || buildOptimize
	outDir := cfg.OutDir
	if buildOutDir != "" {
		outDir = buildOutDir
	}
	if outDir == "" {
		outDir = "."
	}

	var events chan driver.Event
	var uiDone chan struct{}
	if buildProgress {
		events = make(chan driver.Event, 16)
		uiDone = make(chan struct{})
		model := ui.NewProgressModel("building", files, events)
		go func() {
			defer close(uiDone)
			p := tea.NewProgram(model)
			_, _ = p.Run()
		}()
	}

	results := make([]driver.Result, len(files))
	group := new(errgroup.Group)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			src, err := driver.ReadSource(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			results[i] = driver.CompileFile(file, src, optimize, events)
			return nil
		})
	}
	readErr := group.Wait()
	if events != nil {
		close(events)
		<-uiDone
	}
	if readErr != nil {
		fmt.Fprintln(os.Stderr, readErr)
		os.Exit(3)
	}

	exitCode := 0
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	colorOut := useColor(cmd, os.Stderr)

	for _, res := range results {
		if res.Bag.Len() > 0 {
			res.Bag.Sort()
			diagfmt.Print(os.Stderr, res.Bag, colorOut)
		}
		if res.Bag.HasErrors() {
			if code, ok := firstExitCode(res); ok && code > exitCode {
				exitCode = code
			}
			continue
		}

		outPath := outputPath(outDir, res.File)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", filepath.Dir(outPath), err)
			os.Exit(3)
		}
		if err := os.WriteFile(outPath, res.IR, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", outPath, err)
			os.Exit(3)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.File, outPath)
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func firstExitCode(res driver.Result) (int, bool) {
	d, ok := res.Bag.First()
	if !ok {
		return 0, false
	}
	return d.Code.ExitCode(), true
}

func outputPath(outDir, file string) string {
	base := filepath.Base(file)
	if file == "-" {
		base = "stdin"
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + ".ll"
	return filepath.Join(outDir, name)
}
