package codegen

import (
	"fmt"

	"minic/internal/ast"
)

// flatten lists top and every FuncDef nested (at any depth) inside its
// Locals, pre-order, so the top-level function's own name always wins
// any collision with a nested one declared after it (the entry point's
// reserved name main is the exception, see assignNames).
func flatten(top *ast.FuncDef) []*ast.FuncDef {
	var all []*ast.FuncDef
	var walk func(f *ast.FuncDef)
	walk = func(f *ast.FuncDef) {
		all = append(all, f)
		for _, d := range f.Locals {
			if nested, ok := d.(*ast.FuncDef); ok {
				walk(nested)
			}
		}
	}
	walk(top)
	return all
}

// assignNames gives every FuncDef in all a unique top-level LLVM
// function name: its source name, with a numeric suffix appended when
// the name collides with one already seen (spec.md §6 — nested
// functions are flattened to the module's single namespace since LLVM
// IR has no nested functions). "main" counts as already seen, since
// emitMain defines the entry point under that name; a user function
// called main becomes main.1.
func assignNames(all []*ast.FuncDef) map[*ast.FuncDef]string {
	names := make(map[*ast.FuncDef]string, len(all))
	used := make(map[string]int, len(all))
	used["main"] = 1
	for _, f := range all {
		n := used[f.Name]
		used[f.Name] = n + 1
		if n == 0 {
			names[f] = f.Name
		} else {
			names[f] = fmt.Sprintf("%s.%d", f.Name, n)
		}
	}
	return names
}
