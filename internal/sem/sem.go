// Package sem implements the semantic analysis pass of spec.md §4.2:
// name resolution, type checking, capture analysis, and the l-value /
// parameter-mode / return rules of spec.md §3.
package sem

import (
	"minic/internal/ast"
	"minic/internal/builtins"
	"minic/internal/diag"
	"minic/internal/symbols"
)

// Analyzer threads the symbol table and diagnostic sink through the
// post-order traversal described in spec.md §4.2.
type Analyzer struct {
	file string
	bag  *diag.Bag
	tbl  *symbols.Table

	// funcStack holds every FuncDef currently open, outermost first,
	// mirroring the ScopeFunction nesting in tbl. Used to propagate
	// captures to intervening functions and to check Return against
	// the innermost enclosing function's declared type.
	funcStack []*ast.FuncDef
}

// Analyze runs sem over the top-level FuncDef and returns the symbol
// table it built. Codegen works from the decorated tree and does not
// read this table.
// Diagnostics are appended to bag; the caller checks bag.HasErrors()
// before proceeding to codegen, per the early-abort policy of spec §7.
func Analyze(file string, top *ast.FuncDef, bag *diag.Bag) *symbols.Table {
	tbl := symbols.NewTable()
	builtins.Install(tbl)
	a := &Analyzer{file: file, bag: bag, tbl: tbl}

	if err := tbl.Insert(functionEntry(top)); err != nil {
		a.errorAt(top, diag.CodeRedeclaration, err.Error())
	}
	a.analyzeFuncDef(top)
	return tbl
}

func functionEntry(f *ast.FuncDef) *symbols.Entry {
	params := make([]symbols.ParamInfo, len(f.Fpars))
	for i, p := range f.Fpars {
		params[i] = symbols.ParamInfo{Type: p.Type, Mode: symbols.ParamMode(p.Mode)}
	}
	return &symbols.Entry{
		Kind:    symbols.KindFunction,
		Name:    f.Name,
		RetType: f.RetType,
		Params:  params,
		Def:     f,
	}
}

func (a *Analyzer) errorAt(n ast.Node, code diag.Code, format string, args ...any) {
	a.bag.Add(diag.Errorf(code, a.file, n.Position(), format, args...))
}

// currentFunc is the innermost FuncDef being analyzed.
func (a *Analyzer) currentFunc() *ast.FuncDef {
	return a.funcStack[len(a.funcStack)-1]
}

// analyzeFuncDef implements the FuncDef contract of spec.md §4.2:
// open a function scope, insert parameters, insert every local up
// front (so recursion and forward mutual references work), then sem
// the locals' bodies and the function body, and finally verify the
// return-on-every-path structural rule.
func (a *Analyzer) analyzeFuncDef(f *ast.FuncDef) {
	a.tbl.OpenFunction(f.Name)
	a.funcStack = append(a.funcStack, f)
	defer func() {
		a.funcStack = a.funcStack[:len(a.funcStack)-1]
		a.tbl.Close()
	}()

	for _, p := range f.Fpars {
		if p.IsArray && p.Mode != ast.ByReference {
			a.errorAt(p, diag.CodeParameterMode, "array parameter %q must be passed by reference", p.Name)
		}
		// Entry.Type is always the element type for an array (see
		// symbols.Entry), matching how VarDef locals store it; Fpar.Type
		// carries the full Array(...) wrapper, so unwrap it here.
		entryType, size := p.Type, 0
		if p.IsArray {
			entryType, size = *p.Type.Elem, p.Type.Size
		}
		entry := &symbols.Entry{
			Kind:    symbols.KindParameter,
			Name:    p.Name,
			Type:    entryType,
			Mode:    symbols.ParamMode(p.Mode),
			IsArray: p.IsArray,
			Size:    size,
		}
		if err := a.tbl.Insert(entry); err != nil {
			a.errorAt(p, diag.CodeRedeclaration, err.Error())
		}
	}

	for _, def := range f.Locals {
		switch d := def.(type) {
		case *ast.VarDef:
			entry := &symbols.Entry{
				Kind:    symbols.KindVariable,
				Name:    d.Name,
				Type:    d.Type,
				IsArray: d.IsArray,
				Size:    d.Size,
			}
			if err := a.tbl.Insert(entry); err != nil {
				a.errorAt(d, diag.CodeRedeclaration, err.Error())
			}
		case *ast.FuncDef:
			if err := a.tbl.Insert(functionEntry(d)); err != nil {
				a.errorAt(d, diag.CodeRedeclaration, err.Error())
			}
		}
	}

	for _, def := range f.Locals {
		if nested, ok := def.(*ast.FuncDef); ok {
			a.analyzeFuncDef(nested)
		}
	}

	a.stmt(f.Body)

	if !f.RetType.IsVoid() && !hasReturnOnAllPaths(f.Body) {
		a.errorAt(f, diag.CodeReturn, "function %q must return %s on every path", f.Name, f.RetType)
	} else {
		f.HasReturn = f.RetType.IsVoid() || hasReturnOnAllPaths(f.Body)
	}
}

// hasReturnOnAllPaths is the "simple structural check" spec.md §4.2
// prescribes: either the last statement is Return, or every branch of
// a terminal If returns.
func hasReturnOnAllPaths(s ast.Stmt) bool {
	switch v := s.(type) {
	case *ast.Return:
		return true
	case *ast.StmtList:
		if len(v.Stmts) == 0 {
			return false
		}
		return hasReturnOnAllPaths(v.Stmts[len(v.Stmts)-1])
	case *ast.If:
		if v.Else == nil {
			return false
		}
		return hasReturnOnAllPaths(v.Then) && hasReturnOnAllPaths(v.Else)
	default:
		return false
	}
}
