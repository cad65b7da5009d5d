// Package codegen lowers a sem-decorated ast.FuncDef tree to the
// internal/ir model (spec.md §4.3): one LLVM function per source
// function (flattened, since LLVM IR has no nested functions),
// expressions and conditions lowered to SSA values and basic blocks,
// and hidden trailing pointer parameters threading captured variables
// down to the frames that use them.
package codegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"minic/internal/ast"
	"minic/internal/builtins"
	"minic/internal/ir"
)

// Emit lowers the program rooted at top (file's single top-level
// function) to a complete ir.Module: every nested function flattened
// to its own top-level ir.Function, builtin externs declared, and an
// externally-visible main emitted that calls top and returns 0
// (spec.md §6). optimize runs ir.Optimize on every function before
// ir.Verify, matching the -O flag's documented effect of dropping
// dead blocks earlier rather than changing emitted semantics.
func Emit(file string, top *ast.FuncDef, optimize bool) (*ir.Module, error) {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	m := ir.NewModule(name)
	declareBuiltinExterns(m)

	all := flatten(top)
	names := assignNames(all)
	cg := &codegenState{module: m, names: names}

	for _, f := range all {
		if err := cg.emitFuncDef(f); err != nil {
			return nil, err
		}
	}
	cg.emitMain(top)

	if optimize {
		for _, irf := range m.Functions {
			ir.Optimize(irf)
		}
	}
	for _, irf := range m.Functions {
		if err := ir.Verify(irf); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// declareBuiltinExterns declares every runtime library signature from
// internal/builtins as an LLVM extern, whether or not this particular
// source file calls it — matching spec.md §4.4's fixed runtime.
func declareBuiltinExterns(m *ir.Module) {
	for _, b := range builtins.All() {
		params := make([]string, len(b.Params))
		for i, p := range b.Params {
			params[i] = paramInfoLLVMType(p)
		}
		m.DeclareExtern(b.IRName, llvmScalar(b.Ret), params)
	}
}

// codegenState is the module-wide state shared by every function's
// lowering: the module being built and the flattened name table.
type codegenState struct {
	module *ir.Module
	names  map[*ast.FuncDef]string
}

// emitMain emits the fixed `define i32 @main()` entry point spec.md
// §6 requires: it calls the user's top-level function (which takes no
// parameters and has no captures, being the outermost frame) and
// always returns 0, regardless of the user function's own return type.
func (cg *codegenState) emitMain(top *ast.FuncDef) {
	f := cg.module.NewFunction("main", "i32", nil)
	entry := f.NewBlock("entry")
	f.Entry = entry

	topName := cg.names[top]
	if top.RetType.IsVoid() {
		entry.Emit(fmt.Sprintf("call void @%s()", topName))
	} else {
		tmp := f.NewTemp()
		entry.Emit(fmt.Sprintf("%s = call %s @%s()", tmp, llvmScalar(top.RetType), topName))
	}
	entry.Terminate("ret i32 0")
}
