// Package diagfmt prints a diag.Bag to a writer, one diagnostic per
// line in the "file:line:col: kind: message" form spec.md §7 mandates,
// optionally colored by severity the way the teacher's CLI colors
// build output.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"minic/internal/diag"
)

// Print writes every diagnostic in bag (call bag.Sort() first for a
// deterministic order) to w, one per line.
func Print(w io.Writer, bag *diag.Bag, useColor bool) {
	for _, d := range bag.Items() {
		if !useColor {
			fmt.Fprintln(w, d.String())
			continue
		}
		fmt.Fprintln(w, colorize(d))
	}
}

func colorize(d diag.Diagnostic) string {
	sevColor := severityColor(d.Severity)
	file := d.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s: %s: %s",
		color.New(color.Bold).Sprint(fmt.Sprintf("%s:%s", file, d.Pos)),
		sevColor.Sprint(d.Code.String()),
		d.Message)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevFatal, diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
