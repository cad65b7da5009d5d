package sem

import (
	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/types"
)

// stmt type-checks a statement node (spec.md §4.2).
func (a *Analyzer) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.Empty:
		// nothing to check
	case *ast.StmtList:
		a.tbl.OpenBlock()
		for _, inner := range v.Stmts {
			a.stmt(inner)
		}
		a.tbl.Close()
	case *ast.Let:
		a.let(v)
	case *ast.ProcCall:
		a.expr(v.Call)
	case *ast.If:
		a.cond(v.Cond)
		a.stmt(v.Then)
		if v.Else != nil {
			a.stmt(v.Else)
		}
	case *ast.While:
		a.cond(v.Cond)
		a.stmt(v.Body)
	case *ast.Return:
		a.returnStmt(v)
	default:
		a.errorAt(s, diag.CodeInternal, "unhandled statement node %T", s)
	}
}

// let enforces invariant 2 of spec.md §3: the left side must be an
// l-value, never a String literal, and both sides must be the same
// scalar type.
func (a *Analyzer) let(l *ast.Let) {
	a.expr(l.Left)
	a.expr(l.Right)

	if !isLvalue(l.Left) {
		a.errorAt(l, diag.CodeLValue, "assignment target must be a variable or array element")
		return
	}
	lt, rt := l.Left.Type(), l.Right.Type()
	if !lt.IsScalar() || !rt.IsScalar() {
		a.errorAt(l, diag.CodeTypeMismatch, "assignment requires scalar operands, got %s and %s", lt, rt)
		return
	}
	if !types.Equal(lt, rt) {
		a.errorAt(l, diag.CodeTypeMismatch, "cannot assign %s to %s", rt, lt)
	}
}

// returnStmt enforces invariants 5/6 of spec.md §3: the expression
// type must match the enclosing function's declared return type, and
// a bare return is legal only inside a Void function.
func (a *Analyzer) returnStmt(r *ast.Return) {
	fn := a.currentFunc()
	if r.Expr == nil {
		if !fn.RetType.IsVoid() {
			a.errorAt(r, diag.CodeReturn, "function %q must return a value of type %s", fn.Name, fn.RetType)
		}
		return
	}
	a.expr(r.Expr)
	if fn.RetType.IsVoid() {
		a.errorAt(r, diag.CodeReturn, "function %q is declared nothing and cannot return a value", fn.Name)
		return
	}
	if !types.Equal(fn.RetType, r.Expr.Type()) {
		a.errorAt(r, diag.CodeReturn, "function %q returns %s, got %s", fn.Name, fn.RetType, r.Expr.Type())
	}
}
