// Package source holds the small position/span types shared by the
// lexer, parser, sem, and codegen passes.
package source

import "fmt"

// Position is a 1-based line/column pair, as required by every AST
// node for diagnostics.
type Position struct {
	Line   int
	Column int
}

// NoPosition marks a synthetic node with no source origin (builtins).
var NoPosition = Position{}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a start and end position within a single file.
type Span struct {
	File  string
	Start Position
	End   Position
}

func (s Span) String() string {
	if s.File == "" {
		return s.Start.String()
	}
	return fmt.Sprintf("%s:%s", s.File, s.Start)
}
