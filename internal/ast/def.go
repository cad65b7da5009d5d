package ast

import (
	"minic/internal/source"
	"minic/internal/types"
)

type ParamMode uint8

const (
	ByValue ParamMode = iota
	ByReference
)

// Fpar is one formal parameter of a FuncDef.
type Fpar struct {
	base
	Name    string
	Type    types.Type
	Mode    ParamMode
	IsArray bool
}

func NewFpar(pos source.Position, name string, t types.Type, mode ParamMode) *Fpar {
	return &Fpar{base: base{Pos: pos}, Name: name, Type: t, Mode: mode, IsArray: t.IsArray()}
}

// VarDef declares a local scalar or fixed-size array.
type VarDef struct {
	base
	Name    string
	Type    types.Type // element type for arrays, scalar type otherwise
	IsArray bool
	Size    int // only meaningful when IsArray
}

func NewVarDef(pos source.Position, name string, t types.Type, isArray bool, size int) *VarDef {
	return &VarDef{base: base{Pos: pos}, Name: name, Type: t, IsArray: isArray, Size: size}
}
func (*VarDef) defNode() {}

// CapturedVar is one entry in a FuncDef's capture set: a (name, type,
// mode) tuple identifying a free variable resolved in an enclosing
// function's scope (spec.md §4.2). Mode is ByReference when the
// captured name is an enclosing reference parameter and ByValue
// otherwise; it only records the original declaration, since every
// capture is plumbed as a pointer either way (spec.md §4.3) and
// codegen does not read it.
type CapturedVar struct {
	Name string
	Type types.Type
	Mode ParamMode
}

// CallTarget is the callee resolution sem attaches to a FuncCall:
// either a builtin (by its linker-visible name) or a user FuncDef
// node, so codegen never has to re-derive lexical scoping that sem
// already worked out (spec.md §4.3 assumes the decorated tree already
// knows what each call site means).
type CallTarget struct {
	IsBuiltin   bool
	BuiltinName string
	Func        *FuncDef
}

// FuncDef is a (possibly nested) function or procedure definition.
type FuncDef struct {
	base
	Name    string
	RetType types.Type
	Fpars   []*Fpar
	Locals  []Def // VarDef or nested *FuncDef, declaration order
	Body    Stmt

	// Decorated by sem:
	HasReturn bool          // every path returns; always true for a Void function
	Captured  []CapturedVar // first-seen-order free-variable set, transitively propagated
}

func NewFuncDef(pos source.Position, name string, ret types.Type, fpars []*Fpar, locals []Def, body Stmt) *FuncDef {
	return &FuncDef{base: base{Pos: pos}, Name: name, RetType: ret, Fpars: fpars, Locals: locals, Body: body}
}
func (*FuncDef) defNode() {}

// AddCapture appends c to the capture set if not already present,
// preserving first-seen insertion order per spec.md §4.2.
func (f *FuncDef) AddCapture(c CapturedVar) {
	for _, existing := range f.Captured {
		if existing.Name == c.Name {
			return
		}
	}
	f.Captured = append(f.Captured, c)
}
