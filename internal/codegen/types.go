package codegen

import (
	"minic/internal/ast"
	"minic/internal/symbols"
	"minic/internal/types"
)

// llvmScalar maps the three representable scalar kinds to their LLVM
// types (spec.md §4.3: "Scalars are represented as i32 (Int) or i8
// (Char); booleans as i1").
func llvmScalar(t types.Type) string {
	switch {
	case t.IsKind(types.Int):
		return "i32"
	case t.IsKind(types.Char):
		return "i8"
	case t.IsKind(types.Bool):
		return "i1"
	case t.IsKind(types.Void):
		return "void"
	default:
		panic("codegen: not a scalar type: " + t.String())
	}
}

// scalarLLVM returns the LLVM element type backing t: the array
// element type if t is an Array, else t's own scalar type. Both
// parameters and captured entries carry their *declared* type, which
// may be an array, so call sites that only care about the pointee
// scalar type go through here.
func scalarLLVM(t types.Type) string {
	if t.IsArray() {
		return llvmScalar(*t.Elem)
	}
	return llvmScalar(t)
}

// paramLLVMType is the LLVM type of one Fpar as it appears in the
// function's declared parameter list — spec.md §4.3: array parameters
// and by-reference scalars are always T*; by-value scalars are T.
func paramLLVMType(p *ast.Fpar) string {
	if p.IsArray {
		return scalarLLVM(p.Type) + "*"
	}
	if p.Mode == ast.ByReference {
		return llvmScalar(p.Type) + "*"
	}
	return llvmScalar(p.Type)
}

// capturedParamType is the LLVM type of one hidden trailing capture
// parameter: always a pointer, regardless of the captured variable's
// original by-value/by-reference mode (spec.md §4.3).
func capturedParamType(cv ast.CapturedVar) string {
	return scalarLLVM(cv.Type) + "*"
}

// paramInfoLLVMType is paramLLVMType's counterpart for a builtin's
// symbols.ParamInfo signature (builtins have no ast.Fpar to read).
func paramInfoLLVMType(p symbols.ParamInfo) string {
	if p.Mode == symbols.ByReference {
		return scalarLLVM(p.Type) + "*"
	}
	return llvmScalar(p.Type)
}
