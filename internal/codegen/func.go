package codegen

import (
	"fmt"
	"strings"

	"minic/internal/ast"
	"minic/internal/ir"
)

// funcGen carries the per-function state while lowering one FuncDef's
// body: the function being built, the module-wide name table (for
// resolving callees), and the name -> binding map covering parameters,
// locals, and hidden capture parameters alike.
type funcGen struct {
	cg   *codegenState
	fn   *ast.FuncDef
	irf  *ir.Function
	vars map[string]binding
}

// emitFuncDef lowers one FuncDef to its own top-level ir.Function:
// declare the flattened parameter list (user parameters followed by
// one hidden pointer per captured variable), build the entry block's
// allocas, lower the body, and terminate any block the body left
// open.
func (cg *codegenState) emitFuncDef(f *ast.FuncDef) error {
	name := cg.names[f]
	retType := llvmScalar(f.RetType)

	irf := cg.module.NewFunction(name, retType, nil)
	entry := irf.NewBlock("entry")
	irf.Entry = entry

	fg := &funcGen{cg: cg, fn: f, irf: irf, vars: make(map[string]binding)}

	var params []ir.Param
	for _, p := range f.Fpars {
		pname := strings.TrimPrefix(irf.NewTemp(), "%")
		params = append(params, ir.Param{Name: pname, Type: paramLLVMType(p)})
	}
	for _, cv := range f.Captured {
		pname := strings.TrimPrefix(irf.NewTemp(), "%")
		params = append(params, ir.Param{Name: pname, Type: capturedParamType(cv)})
	}
	irf.Params = params

	pidx := 0
	for _, p := range f.Fpars {
		irp := params[pidx]
		pidx++
		switch {
		case p.IsArray:
			fg.vars[p.Name] = binding{ptr: "%" + irp.Name, elemType: scalarLLVM(p.Type)}
		case p.Mode == ast.ByReference:
			fg.vars[p.Name] = binding{ptr: "%" + irp.Name, elemType: llvmScalar(p.Type)}
		default:
			elemType := llvmScalar(p.Type)
			alloca := fg.irf.NewTemp()
			entry.Emit(fmt.Sprintf("%s = alloca %s", alloca, elemType))
			entry.Emit(fmt.Sprintf("store %s %%%s, %s* %s", elemType, irp.Name, elemType, alloca))
			fg.vars[p.Name] = binding{ptr: alloca, elemType: elemType}
		}
	}
	for _, cv := range f.Captured {
		irp := params[pidx]
		pidx++
		elemType := scalarLLVM(cv.Type)
		fg.vars[cv.Name] = binding{ptr: "%" + irp.Name, elemType: elemType}
	}

	for _, def := range f.Locals {
		v, ok := def.(*ast.VarDef)
		if !ok {
			continue // nested FuncDef: emitted as its own top-level function
		}
		elemType := llvmScalar(v.Type)
		alloca := fg.irf.NewTemp()
		if v.IsArray {
			entry.Emit(fmt.Sprintf("%s = alloca [%d x %s]", alloca, v.Size, elemType))
			fg.vars[v.Name] = binding{ptr: alloca, elemType: elemType, fixedArray: true, size: v.Size}
		} else {
			entry.Emit(fmt.Sprintf("%s = alloca %s", alloca, elemType))
			fg.vars[v.Name] = binding{ptr: alloca, elemType: elemType}
		}
	}

	cur := genStmt(fg, entry, f.Body)
	if !cur.Terminated {
		if f.RetType.IsVoid() {
			cur.Terminate("ret void")
		} else {
			// sem only accepts this function if every path returns, so a
			// block still open here is genuinely unreachable (e.g. the
			// dead merge block after an if/else that both return).
			cur.Terminate("unreachable")
		}
	}
	return nil
}
