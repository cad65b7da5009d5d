package sem

import (
	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/types"
)

// cond type-checks a condition node (spec.md §3 invariant 8: & / | / !
// operate only on conditions, comparisons only on matching scalars).
func (a *Analyzer) cond(c ast.Cond) {
	switch v := c.(type) {
	case *ast.BoolConst:
		// nothing to check
	case *ast.CondCompOp:
		a.expr(v.Left)
		a.expr(v.Right)
		lt, rt := v.Left.Type(), v.Right.Type()
		if !lt.IsScalar() || !rt.IsScalar() || !types.Equal(lt, rt) {
			a.errorAt(v, diag.CodeTypeMismatch, "comparison operands must have the same scalar type, got %s and %s", lt, rt)
		}
	case *ast.CondBoolOp:
		a.cond(v.Left)
		a.cond(v.Right)
	case *ast.CondUnOp:
		a.cond(v.Cond)
	default:
		a.errorAt(c, diag.CodeInternal, "unhandled condition node %T", c)
	}
}
