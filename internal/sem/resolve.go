package sem

import (
	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/symbols"
)

// resolve looks up name from the current scope and, when resolution
// crosses one or more function-scope boundaries, records the capture
// on every intervening function — spec.md §4.2's transitive
// propagation, implemented using the crossed count symbols.Lookup
// reports and the analyzer's stack of currently-open FuncDefs.
func (a *Analyzer) resolve(n ast.Node, name string) *symbols.Entry {
	entry, crossed, err := a.tbl.Lookup(name)
	if err != nil {
		a.errorAt(n, diag.CodeUndeclared, "%s", err.Error())
		return nil
	}
	if crossed == 0 || entry.Kind == symbols.KindFunction {
		return entry
	}
	mode := ast.ByValue
	if entry.Mode == symbols.ByReference {
		mode = ast.ByReference
	}
	captured := ast.CapturedVar{Name: name, Type: entry.Type, Mode: mode}
	top := len(a.funcStack)
	for i := top - crossed; i < top; i++ {
		a.funcStack[i].AddCapture(captured)
	}
	return entry
}
