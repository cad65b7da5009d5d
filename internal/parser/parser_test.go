package parser

import (
	"testing"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/types"
)

func parseOK(t *testing.T, src string) *ast.FuncDef {
	t.Helper()
	bag := diag.NewBag(10)
	top := ParseFile("test.mc", []byte(src), bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", src, bag.Items())
	}
	return top
}

func TestParseEmptyFunction(t *testing.T) {
	top := parseOK(t, "fun main(): nothing { }")
	if top.Name != "main" {
		t.Errorf("expected name main, got %s", top.Name)
	}
	if !top.RetType.IsVoid() {
		t.Errorf("expected void return type, got %s", top.RetType)
	}
	if len(top.Fpars) != 0 {
		t.Errorf("expected no parameters, got %d", len(top.Fpars))
	}
}

func TestParseParametersAndLocals(t *testing.T) {
	top := parseOK(t, `
		fun add(a: int, ref b: int): int {
			var total: int;
			total <- a + b;
			return total;
		}
	`)
	if len(top.Fpars) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(top.Fpars))
	}
	if top.Fpars[0].Mode != ast.ByValue {
		t.Errorf("expected first parameter by value")
	}
	if top.Fpars[1].Mode != ast.ByReference {
		t.Errorf("expected second parameter by reference")
	}
	if len(top.Locals) != 1 {
		t.Fatalf("expected 1 local, got %d", len(top.Locals))
	}
	varDef, ok := top.Locals[0].(*ast.VarDef)
	if !ok {
		t.Fatalf("expected a VarDef local, got %T", top.Locals[0])
	}
	if varDef.Name != "total" || !types.Equal(varDef.Type, types.TInt) {
		t.Errorf("unexpected local: %+v", varDef)
	}
}

func TestParseArrayParameterAndLocal(t *testing.T) {
	top := parseOK(t, `
		fun f(ref buf: char[]): nothing {
			var arr: int[10];
			arr[0] <- 1;
		}
	`)
	if !top.Fpars[0].IsArray {
		t.Errorf("expected buf to be an array parameter")
	}
	local := top.Locals[0].(*ast.VarDef)
	if !local.IsArray || local.Size != 10 {
		t.Errorf("expected a 10-element array local, got %+v", local)
	}
}

func TestParseNestedFunction(t *testing.T) {
	top := parseOK(t, `
		fun outer(): int {
			fun inner(): int {
				return 1;
			}
			return inner();
		}
	`)
	if len(top.Locals) != 1 {
		t.Fatalf("expected 1 nested local, got %d", len(top.Locals))
	}
	if _, ok := top.Locals[0].(*ast.FuncDef); !ok {
		t.Fatalf("expected a nested FuncDef local, got %T", top.Locals[0])
	}
}

func TestParseIfWhileAndConditionPrecedence(t *testing.T) {
	top := parseOK(t, `
		fun f(x: int): nothing {
			if x > 0 & x < 10 then {
				x <- x + 1;
			} else {
				x <- 0;
			}
			while !x == 0 do {
				x <- x - 1;
			}
		}
	`)
	body := top.Body.(*ast.StmtList)
	if len(body.Stmts) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(body.Stmts))
	}
	ifStmt, ok := body.Stmts[0].(*ast.If)
	if !ok {
		t.Fatalf("expected an If statement, got %T", body.Stmts[0])
	}
	cond, ok := ifStmt.Cond.(*ast.CondBoolOp)
	if !ok {
		t.Fatalf("expected a CondBoolOp, got %T", ifStmt.Cond)
	}
	if cond.Op != ast.BoolAnd {
		t.Errorf("expected '&' to bind the two comparisons, got op %v", cond.Op)
	}
}

func TestParseCallAsExpressionAndStatement(t *testing.T) {
	top := parseOK(t, `
		fun f(): nothing {
			writeInteger(1);
		}
	`)
	body := top.Body.(*ast.StmtList)
	call, ok := body.Stmts[0].(*ast.ProcCall)
	if !ok {
		t.Fatalf("expected a ProcCall, got %T", body.Stmts[0])
	}
	if call.Call.Name != "writeInteger" || len(call.Call.Args) != 1 {
		t.Errorf("unexpected call: %+v", call.Call)
	}
}

func TestParseSyntaxErrorRecordsDiagnosticAndResyncs(t *testing.T) {
	bag := diag.NewBag(10)
	top := ParseFile("test.mc", []byte(`
		fun f(): nothing {
			x <- ;
			x <- 1;
		}
	`), bag)
	if !bag.HasErrors() {
		t.Fatalf("expected a syntax error for the malformed statement")
	}
	for _, d := range bag.Items() {
		if d.Code != diag.CodeSyntaxError {
			t.Errorf("expected CodeSyntaxError, got %s", d.Code)
		}
	}
	body := top.Body.(*ast.StmtList)
	if len(body.Stmts) != 2 {
		t.Fatalf("expected the parser to resynchronize and still see 2 statements, got %d", len(body.Stmts))
	}
}

func TestParseTrailingInputAfterTopLevelFunctionIsAnError(t *testing.T) {
	bag := diag.NewBag(10)
	ParseFile("test.mc", []byte("fun f(): nothing { } fun g(): nothing { }"), bag)
	if !bag.HasErrors() {
		t.Fatalf("expected an error for trailing input after the top-level function")
	}
}
