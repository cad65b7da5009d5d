package codegen

import (
	"fmt"

	"minic/internal/ast"
	"minic/internal/ir"
)

// genStmt lowers one statement into cur and returns the block
// subsequent statements should continue appending to. The returned
// block may already be terminated (e.g. right after a Return); ir.Block
// silently drops anything emitted into a terminated block, which is
// exactly the "dead code that still type-checks" behavior spec.md
// §4.3 wants for statements following a return.
func genStmt(fg *funcGen, cur *ir.Block, s ast.Stmt) *ir.Block {
	switch v := s.(type) {
	case *ast.Empty:
		return cur
	case *ast.StmtList:
		for _, inner := range v.Stmts {
			cur = genStmt(fg, cur, inner)
		}
		return cur
	case *ast.Let:
		ptr, elemType := genAddr(fg, cur, v.Left)
		val, _ := genExpr(fg, cur, v.Right)
		cur.Emit(fmt.Sprintf("store %s %s, %s* %s", elemType, val, elemType, ptr))
		return cur
	case *ast.ProcCall:
		genCall(fg, cur, v.Call)
		return cur
	case *ast.Return:
		if v.Expr == nil {
			cur.Terminate("ret void")
		} else {
			val, typ := genExpr(fg, cur, v.Expr)
			cur.Terminate(fmt.Sprintf("ret %s %s", typ, val))
		}
		return cur
	case *ast.If:
		return genIf(fg, cur, v)
	case *ast.While:
		return genWhile(fg, cur, v)
	default:
		panic(fmt.Sprintf("codegen: unhandled statement node %T", s))
	}
}

func genIf(fg *funcGen, cur *ir.Block, s *ast.If) *ir.Block {
	thenBB := fg.irf.NewBlock("if.then")
	mergeBB := fg.irf.NewBlock("if.end")
	elseBB := mergeBB
	if s.Else != nil {
		elseBB = fg.irf.NewBlock("if.else")
	}

	genCond(fg, cur, s.Cond, thenBB.Label, elseBB.Label)

	thenEnd := genStmt(fg, thenBB, s.Then)
	if !thenEnd.Terminated {
		thenEnd.Terminate(fmt.Sprintf("br label %%%s", mergeBB.Label))
	}
	if s.Else != nil {
		elseEnd := genStmt(fg, elseBB, s.Else)
		if !elseEnd.Terminated {
			elseEnd.Terminate(fmt.Sprintf("br label %%%s", mergeBB.Label))
		}
	}
	return mergeBB
}

func genWhile(fg *funcGen, cur *ir.Block, s *ast.While) *ir.Block {
	headerBB := fg.irf.NewBlock("while.cond")
	bodyBB := fg.irf.NewBlock("while.body")
	exitBB := fg.irf.NewBlock("while.end")

	if !cur.Terminated {
		cur.Terminate(fmt.Sprintf("br label %%%s", headerBB.Label))
	}
	genCond(fg, headerBB, s.Cond, bodyBB.Label, exitBB.Label)

	bodyEnd := genStmt(fg, bodyBB, s.Body)
	if !bodyEnd.Terminated {
		bodyEnd.Terminate(fmt.Sprintf("br label %%%s", headerBB.Label))
	}
	return exitBB
}
