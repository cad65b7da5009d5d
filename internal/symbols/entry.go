// Package symbols implements the stack-of-scopes symbol table of
// spec.md §3/§4.1: scope open/close, name insertion with collision
// detection, and outward-walking lookup that reports whether
// resolution crossed a function-scope boundary (the trigger for
// capture analysis).
package symbols

import (
	"minic/internal/ast"
	"minic/internal/types"
)

// EntryKind distinguishes the three symbol kinds spec.md §3 names.
type EntryKind uint8

const (
	KindVariable EntryKind = iota
	KindParameter
	KindFunction
)

// ParamInfo describes one parameter of a Function entry, enough for
// call-site type/arity/mode checking without re-walking the AST.
type ParamInfo struct {
	Type types.Type
	Mode ParamMode
}

type ParamMode uint8

const (
	ByValue ParamMode = iota
	ByReference
)

// Entry is a symbol table entry. Type and Mode are fixed at sem time
// (spec.md §4.1).
type Entry struct {
	Kind EntryKind
	Name string
	Type types.Type // element type for Variable/Parameter arrays

	// Variable / Parameter
	Mode    ParamMode
	IsArray bool
	Size    int // meaningful when IsArray: element count, or types.UnknownSize for a reference parameter

	// Function
	RetType types.Type
	Params  []ParamInfo
	// Def is nil for builtins, and the declaring node for user
	// functions — codegen's call sites use it to avoid re-deriving
	// lexical scoping already resolved here.
	Def *ast.FuncDef

	// Slot is not written by any pass: codegen keeps the LLVM value
	// holding each name's address in its own per-function map instead.
	Slot string
	// IRName is the linker-visible name of a builtin Function entry. It
	// is empty for user functions; codegen assigns their (possibly
	// suffixed) LLVM names in its own table, not here.
	IRName string
}
