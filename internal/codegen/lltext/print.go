// Package lltext renders an internal/ir.Module to textual LLVM IR.
// It is a pure printer: by the time a Module reaches here,
// internal/codegen has already built every value and internal/ir.Verify
// has already checked structural well-formedness (spec.md §4.3) — this
// package never reports errors, only formats.
package lltext

import (
	"bytes"
	"fmt"

	"minic/internal/ir"
)

// Print renders m as a complete .ll text: target-independent header
// comment, global string constants, extern declarations, then one
// `define` per function.
func Print(m *ir.Module) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "; module %s\n", m.Name)

	for _, g := range m.Globals {
		fmt.Fprintf(&buf, "%s = private unnamed_addr constant [%d x i8] c\"%s\"\n",
			g.Name, stringGlobalLen(g), g.Init)
	}
	if len(m.Globals) > 0 {
		buf.WriteByte('\n')
	}

	for _, e := range m.Externs {
		fmt.Fprintf(&buf, "declare %s @%s(%s)\n", e.RetType, e.Name, joinTypes(e.Params))
	}
	if len(m.Externs) > 0 {
		buf.WriteByte('\n')
	}

	for i, f := range m.Functions {
		if i > 0 {
			buf.WriteByte('\n')
		}
		printFunction(&buf, f)
	}

	return buf.Bytes()
}

// stringGlobalLen recovers the declared [N x i8] length from the
// escaped init text: count output bytes, where a "\XX" escape counts
// as one.
func stringGlobalLen(g ir.Global) int {
	n := 0
	for i := 0; i < len(g.Init); i++ {
		if g.Init[i] == '\\' && i+2 < len(g.Init) {
			i += 2
		}
		n++
	}
	return n
}

func joinTypes(types []string) string {
	var buf bytes.Buffer
	for i, t := range types {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(t)
	}
	return buf.String()
}

func printFunction(buf *bytes.Buffer, f *ir.Function) {
	fmt.Fprintf(buf, "define %s @%s(%s) {\n", f.RetType, f.Name, paramList(f.Params))
	for _, b := range f.Blocks {
		fmt.Fprintf(buf, "%s:\n", b.Label)
		for _, instr := range b.Instrs {
			fmt.Fprintf(buf, "  %s\n", instr)
		}
		fmt.Fprintf(buf, "  %s\n", b.Term)
	}
	buf.WriteString("}\n")
}

func paramList(params []ir.Param) string {
	var buf bytes.Buffer
	for i, p := range params {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %%%s", p.Type, p.Name)
	}
	return buf.String()
}
