// Package version records the build identity reported by `minic version`.
package version

import "github.com/fatih/color"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"

	// GitCommit, GitMessage and BuildDate are overridden at link time
	// with -ldflags; they are empty in a plain `go build`.
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)
