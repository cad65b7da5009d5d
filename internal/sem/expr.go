package sem

import (
	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/symbols"
	"minic/internal/types"
)

// expr type-checks e and annotates it in place (spec.md §4.2).
func (a *Analyzer) expr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.IntConst:
		v.SetType(types.TInt)
	case *ast.CharConst:
		v.SetType(types.TChar)
	case *ast.StringConst:
		v.SetType(types.NewArray(types.TChar, len(v.Value)+1))
	case *ast.Id:
		entry := a.resolve(v, v.Name)
		if entry == nil {
			v.SetType(types.TInt) // keep traversal going with a placeholder
			return
		}
		if entry.Kind == symbols.KindFunction {
			a.errorAt(v, diag.CodeTypeMismatch, "%q is a function, not a variable", v.Name)
			v.SetType(types.TInt)
			return
		}
		if entry.IsArray {
			// entry.Type is the element type (spec.md §3); a bare Id
			// referring to a whole array must carry the Array type
			// itself, or invariant 3 (no wholesale array use) and
			// reference-parameter matching both silently degrade to
			// scalar checks.
			v.SetType(types.NewArray(entry.Type, entry.Size))
			return
		}
		v.SetType(entry.Type)
	case *ast.ArrayAccess:
		entry := a.resolve(v, v.Name)
		a.expr(v.Index)
		if !isInt(v.Index.Type()) {
			a.errorAt(v.Index, diag.CodeTypeMismatch, "array index must be int, got %s", v.Index.Type())
		}
		if entry == nil {
			v.SetType(types.TInt)
			return
		}
		if entry.Kind != symbols.KindVariable && entry.Kind != symbols.KindParameter || !entry.IsArray {
			a.errorAt(v, diag.CodeTypeMismatch, "%q is not an array", v.Name)
			v.SetType(types.TInt)
			return
		}
		v.SetType(entry.Type)
	case *ast.UnOp:
		a.expr(v.Expr)
		if !isInt(v.Expr.Type()) {
			a.errorAt(v, diag.CodeTypeMismatch, "unary %s requires int, got %s", unOpSym(v.Op), v.Expr.Type())
		}
		v.SetType(types.TInt)
	case *ast.BinOp:
		a.expr(v.Left)
		a.expr(v.Right)
		if !isInt(v.Left.Type()) || !isInt(v.Right.Type()) {
			a.errorAt(v, diag.CodeTypeMismatch, "%s requires int operands, got %s and %s", binOpSym(v.Op), v.Left.Type(), v.Right.Type())
		}
		v.SetType(types.TInt)
	case *ast.FuncCall:
		v.SetType(a.funcCall(v))
	default:
		a.errorAt(e, diag.CodeInternal, "unhandled expression node %T", e)
	}
}

func isInt(t types.Type) bool { return t.IsKind(types.Int) }

func unOpSym(op ast.UnOpKind) string {
	if op == ast.UnMinus {
		return "-"
	}
	return "+"
}

func binOpSym(op ast.BinOpKind) string {
	switch op {
	case ast.BinAdd:
		return "+"
	case ast.BinSub:
		return "-"
	case ast.BinMul:
		return "*"
	case ast.BinDiv:
		return "/"
	default:
		return "%"
	}
}

// isLvalue reports whether e is an Id or ArrayAccess, the only node
// kinds spec.md invariant 2/7 allow as assignment targets or
// by-reference arguments.
func isLvalue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Id, *ast.ArrayAccess:
		return true
	default:
		return false
	}
}

// funcCall resolves the callee, checks arity and per-position
// argument compatibility (spec.md invariant 7), and returns the
// callee's declared return type.
func (a *Analyzer) funcCall(c *ast.FuncCall) types.Type {
	entry, _, err := a.tbl.Lookup(c.Name)
	if err != nil {
		a.errorAt(c, diag.CodeUndeclared, "%s", err.Error())
		for _, arg := range c.Args {
			a.expr(arg)
		}
		return types.TInt
	}
	if entry.Kind != symbols.KindFunction {
		a.errorAt(c, diag.CodeTypeMismatch, "%q is not a function", c.Name)
		for _, arg := range c.Args {
			a.expr(arg)
		}
		return types.TInt
	}

	for _, arg := range c.Args {
		a.expr(arg)
	}

	if entry.Def != nil {
		c.Target = ast.CallTarget{Func: entry.Def}
	} else {
		c.Target = ast.CallTarget{IsBuiltin: true, BuiltinName: entry.IRName}
	}

	if len(c.Args) != len(entry.Params) {
		a.errorAt(c, diag.CodeArity, "%q expects %d argument(s), got %d", c.Name, len(entry.Params), len(c.Args))
		return entry.RetType
	}
	for i, arg := range c.Args {
		param := entry.Params[i]
		if param.Mode == symbols.ByReference {
			if !isLvalue(arg) {
				if _, isStr := arg.(*ast.StringConst); isStr && param.Type.IsArray() {
					// A string literal decays to a reference-to-char-array
					// argument; spec.md §4.2 explicitly allows this.
				} else {
					a.errorAt(arg, diag.CodeParameterMode, "argument %d to %q must be an l-value (passed by reference)", i+1, c.Name)
					continue
				}
			}
			if !referenceCompatible(param.Type, arg.Type()) {
				a.errorAt(arg, diag.CodeTypeMismatch, "argument %d to %q has type %s, expected %s", i+1, c.Name, arg.Type(), param.Type)
			}
		} else {
			if param.Type.IsArray() {
				a.errorAt(arg, diag.CodeParameterMode, "argument %d to %q is an array and must be passed by reference", i+1, c.Name)
				continue
			}
			if !types.Equal(param.Type, arg.Type()) {
				a.errorAt(arg, diag.CodeTypeMismatch, "argument %d to %q has type %s, expected %s", i+1, c.Name, arg.Type(), param.Type)
			}
		}
	}
	return entry.RetType
}

// referenceCompatible implements the "array parameter with unknown
// trailing dimension accepts any array of matching element type" rule
// of spec.md invariant 7.
func referenceCompatible(param, arg types.Type) bool {
	if param.IsArray() && arg.IsArray() {
		return types.Equal(*param.Elem, *arg.Elem)
	}
	return types.Equal(param, arg)
}
