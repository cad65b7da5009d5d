package codegen

import (
	"fmt"

	"minic/internal/ast"
	"minic/internal/ir"
)

// genCond lowers a Cond to a branch, fully consuming cur (it always
// leaves cur terminated) and jumping to trueLabel or falseLabel
// depending on the condition's value. & and | get their own
// short-circuit block per spec.md §4.3 rather than being evaluated as
// i1 values and then branched on, so a false left-hand side of & never
// evaluates the right-hand side.
func genCond(fg *funcGen, cur *ir.Block, c ast.Cond, trueLabel, falseLabel string) {
	switch v := c.(type) {
	case *ast.BoolConst:
		if v.Value {
			cur.Terminate(fmt.Sprintf("br label %%%s", trueLabel))
		} else {
			cur.Terminate(fmt.Sprintf("br label %%%s", falseLabel))
		}
	case *ast.CondCompOp:
		l, typ := genExpr(fg, cur, v.Left)
		r, _ := genExpr(fg, cur, v.Right)
		tmp := fg.irf.NewTemp()
		cur.Emit(fmt.Sprintf("%s = icmp %s %s %s, %s", tmp, icmpCond(v.Op), typ, l, r))
		cur.Terminate(fmt.Sprintf("br i1 %s, label %%%s, label %%%s", tmp, trueLabel, falseLabel))
	case *ast.CondBoolOp:
		mid := fg.irf.NewBlock("cond.mid")
		if v.Op == ast.BoolAnd {
			genCond(fg, cur, v.Left, mid.Label, falseLabel)
		} else {
			genCond(fg, cur, v.Left, trueLabel, mid.Label)
		}
		genCond(fg, mid, v.Right, trueLabel, falseLabel)
	case *ast.CondUnOp:
		genCond(fg, cur, v.Cond, falseLabel, trueLabel)
	default:
		panic(fmt.Sprintf("codegen: unhandled condition node %T", c))
	}
}

func icmpCond(op ast.CompareOp) string {
	switch op {
	case ast.CmpEq:
		return "eq"
	case ast.CmpNeq:
		return "ne"
	case ast.CmpLt:
		return "slt"
	case ast.CmpLe:
		return "sle"
	case ast.CmpGt:
		return "sgt"
	default:
		return "sge"
	}
}
