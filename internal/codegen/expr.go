package codegen

import (
	"fmt"
	"strings"

	"minic/internal/ast"
	"minic/internal/builtins"
	"minic/internal/ir"
	"minic/internal/symbols"
)

// genAddr lowers an l-value (Id or ArrayAccess — the only two sem
// allows, spec.md invariant 2) to its element address, returning the
// pointer and the scalar LLVM type it points to.
func genAddr(fg *funcGen, cur *ir.Block, e ast.Expr) (string, string) {
	switch v := e.(type) {
	case *ast.Id:
		b := fg.vars[v.Name]
		return b.ptr, b.elemType
	case *ast.ArrayAccess:
		b := fg.vars[v.Name]
		idx, _ := genExpr(fg, cur, v.Index)
		tmp := fg.irf.NewTemp()
		if b.fixedArray {
			cur.Emit(fmt.Sprintf("%s = getelementptr inbounds [%d x %s], [%d x %s]* %s, i32 0, i32 %s",
				tmp, b.size, b.elemType, b.size, b.elemType, b.ptr, idx))
		} else {
			cur.Emit(fmt.Sprintf("%s = getelementptr inbounds %s, %s* %s, i32 %s",
				tmp, b.elemType, b.elemType, b.ptr, idx))
		}
		return tmp, b.elemType
	default:
		panic(fmt.Sprintf("codegen: %T is not an l-value", e))
	}
}

// internString interns v (plus its NUL terminator, per spec.md §3's
// Array(Char, len+1) typing of string literals) as a module-level
// global and returns an i8* pointer to its first byte.
func internString(fg *funcGen, cur *ir.Block, v string) string {
	name := fg.cg.module.NewStringGlobal(escapeLLVMString(v))
	tmp := fg.irf.NewTemp()
	n := len(v) + 1
	cur.Emit(fmt.Sprintf("%s = getelementptr inbounds [%d x i8], [%d x i8]* %s, i32 0, i32 0", tmp, n, n, name))
	return tmp
}

func escapeLLVMString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' || c < 0x20 || c >= 0x7f {
			fmt.Fprintf(&b, "\\%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	b.WriteString("\\00")
	return b.String()
}

// genExpr lowers a sem-decorated expression to an SSA value, returning
// the value text (a literal or a %-named temp) and its LLVM type.
func genExpr(fg *funcGen, cur *ir.Block, e ast.Expr) (string, string) {
	switch v := e.(type) {
	case *ast.IntConst:
		return fmt.Sprintf("%d", v.Value), "i32"
	case *ast.CharConst:
		return fmt.Sprintf("%d", v.Value), "i8"
	case *ast.StringConst:
		return internString(fg, cur, v.Value), "i8*"
	case *ast.Id:
		ptr, elemType := genAddr(fg, cur, v)
		tmp := fg.irf.NewTemp()
		cur.Emit(fmt.Sprintf("%s = load %s, %s* %s", tmp, elemType, elemType, ptr))
		return tmp, elemType
	case *ast.ArrayAccess:
		ptr, elemType := genAddr(fg, cur, v)
		tmp := fg.irf.NewTemp()
		cur.Emit(fmt.Sprintf("%s = load %s, %s* %s", tmp, elemType, elemType, ptr))
		return tmp, elemType
	case *ast.UnOp:
		val, typ := genExpr(fg, cur, v.Expr)
		if v.Op == ast.UnPlus {
			return val, typ
		}
		tmp := fg.irf.NewTemp()
		cur.Emit(fmt.Sprintf("%s = sub i32 0, %s", tmp, val))
		return tmp, "i32"
	case *ast.BinOp:
		l, _ := genExpr(fg, cur, v.Left)
		r, _ := genExpr(fg, cur, v.Right)
		tmp := fg.irf.NewTemp()
		cur.Emit(fmt.Sprintf("%s = %s i32 %s, %s", tmp, binOpInstr(v.Op), l, r))
		return tmp, "i32"
	case *ast.FuncCall:
		return genCall(fg, cur, v)
	default:
		panic(fmt.Sprintf("codegen: unhandled expression node %T", e))
	}
}

func binOpInstr(op ast.BinOpKind) string {
	switch op {
	case ast.BinAdd:
		return "add"
	case ast.BinSub:
		return "sub"
	case ast.BinMul:
		return "mul"
	case ast.BinDiv:
		return "sdiv"
	default:
		return "srem"
	}
}

// refArg lowers e — an l-value or a string literal, the only
// arguments sem admits at a by-reference parameter position — to a
// plain elemType* pointer ready to pass as a call argument.
func refArg(fg *funcGen, cur *ir.Block, e ast.Expr) (string, string) {
	switch v := e.(type) {
	case *ast.Id:
		b := fg.vars[v.Name]
		return b.decay(fg, cur), b.elemType
	case *ast.ArrayAccess:
		return genAddr(fg, cur, v)
	case *ast.StringConst:
		return internString(fg, cur, v.Value), "i8"
	default:
		panic(fmt.Sprintf("codegen: %T is not a valid by-reference argument", e))
	}
}

// calleeSignature resolves a FuncCall's already-sem-decorated Target
// to the LLVM name, return type, and per-parameter mode it needs to
// emit the call and its hidden capture arguments.
func calleeSignature(call *ast.FuncCall) (llvmName, retType string, params []symbols.ParamInfo, captured []ast.CapturedVar) {
	if call.Target.IsBuiltin {
		ret, p, ok := builtins.Lookup(call.Target.BuiltinName)
		if !ok {
			panic("codegen: unknown builtin " + call.Target.BuiltinName)
		}
		return call.Target.BuiltinName, llvmScalar(ret), p, nil
	}
	f := call.Target.Func
	params = make([]symbols.ParamInfo, len(f.Fpars))
	for i, p := range f.Fpars {
		params[i] = symbols.ParamInfo{Type: p.Type, Mode: symbols.ParamMode(p.Mode)}
	}
	return "", llvmScalar(f.RetType), params, f.Captured
}

// genCall lowers a call to an SSA value (or "" for a Void callee),
// appending one hidden pointer per entry in the callee's Captured list
// after the user arguments (spec.md §4.3). Each hidden pointer is
// looked up by name in the caller's own bindings, which uniformly
// covers both cases invariant 8 distinguishes: a by-value capture of
// the immediately enclosing frame (bound to a local alloca) and a
// capture threaded through from a still-further-out frame (bound to
// one of the caller's own hidden parameters).
func genCall(fg *funcGen, cur *ir.Block, call *ast.FuncCall) (string, string) {
	llvmName, retType, params, captured := calleeSignature(call)
	if llvmName == "" {
		llvmName = fg.cg.names[call.Target.Func]
	}

	var args []string
	for i, argExpr := range call.Args {
		if params[i].Mode == symbols.ByReference {
			ptr, elemType := refArg(fg, cur, argExpr)
			args = append(args, fmt.Sprintf("%s* %s", elemType, ptr))
		} else {
			val, typ := genExpr(fg, cur, argExpr)
			args = append(args, fmt.Sprintf("%s %s", typ, val))
		}
	}
	for _, cv := range captured {
		b := fg.vars[cv.Name]
		ptr := b.decay(fg, cur)
		args = append(args, fmt.Sprintf("%s* %s", scalarLLVM(cv.Type), ptr))
	}

	argList := strings.Join(args, ", ")
	if retType == "void" {
		cur.Emit(fmt.Sprintf("call void @%s(%s)", llvmName, argList))
		return "", "void"
	}
	tmp := fg.irf.NewTemp()
	cur.Emit(fmt.Sprintf("%s = call %s @%s(%s)", tmp, retType, llvmName, argList))
	return tmp, retType
}
