package sem

import (
	"testing"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/parser"
)

func analyzeSrc(t *testing.T, src string) (*ast.FuncDef, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(20)
	top := parser.ParseFile("test.mc", []byte(src), bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	Analyze("test.mc", top, bag)
	return top, bag
}

func TestWellTypedProgramHasNoDiagnostics(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun fact(n: int): int {
			if n <= 1 then {
				return 1;
			} else {
				return n * fact(n - 1);
			}
		}
	`)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %v", bag.Items())
	}
}

func TestUndeclaredIdentifierReportsUndeclared(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(): nothing {
			x <- 1;
		}
	`)
	requireCode(t, bag, diag.CodeUndeclared)
}

func TestRedeclaredParameterReportsRedeclaration(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(a: int, a: int): nothing {
		}
	`)
	requireCode(t, bag, diag.CodeRedeclaration)
}

func TestTypeMismatchOnAssignment(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(): nothing {
			var x: int;
			var c: char;
			x <- c;
		}
	`)
	requireCode(t, bag, diag.CodeTypeMismatch)
}

func TestArityMismatchOnCall(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(): nothing {
			fun g(a: int): nothing {
			}
			g(1, 2);
		}
	`)
	requireCode(t, bag, diag.CodeArity)
}

func TestArrayParameterMustBePassedByReference(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(a: int[]): nothing {
		}
	`)
	requireCode(t, bag, diag.CodeParameterMode)
}

// TestAssignmentTargetMustBeLvalue exercises sem's l-value check
// directly: the grammar only ever builds a Let with Id or ArrayAccess
// on the left, so a string literal there can only arise from a
// hand-built tree, not from parsing real source.
func TestAssignmentTargetMustBeLvalue(t *testing.T) {
	bag := diag.NewBag(20)
	top := parser.ParseFile("test.mc", []byte(`
		fun f(): nothing {
			var x: int;
			x <- 1;
		}
	`), bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	let := top.Body.(*ast.StmtList).Stmts[0].(*ast.Let)
	let.Left = ast.NewStringConst(let.Position(), "oops")

	Analyze("test.mc", top, bag)
	requireCode(t, bag, diag.CodeLValue)
}

func TestLocalArrayCannotBeUsedWholesaleInAssignment(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(): nothing {
			var arr: int[5];
			var x: int;
			x <- arr;
		}
	`)
	requireCode(t, bag, diag.CodeTypeMismatch)
}

func TestLocalArrayPassedByReferenceTypeChecks(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun main(): nothing {
			var buf: int[10];
			fun fill(ref a: int[], n: int): nothing {
				a[0] <- n;
			}
			fill(buf, 10);
		}
	`)
	if bag.HasErrors() {
		t.Fatalf("expected a local array to type-check as a by-reference argument, got %v", bag.Items())
	}
}

func TestMissingReturnOnAllPathsReportsReturnError(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(): int {
			if true then {
				return 1;
			}
		}
	`)
	requireCode(t, bag, diag.CodeReturn)
}

func TestBareReturnInNonVoidFunctionIsAReturnError(t *testing.T) {
	_, bag := analyzeSrc(t, `
		fun f(): int {
			return;
		}
	`)
	requireCode(t, bag, diag.CodeReturn)
}

func TestSimpleCaptureIsRecordedOnTheImmediateNestedFunction(t *testing.T) {
	top, bag := analyzeSrc(t, `
		fun outer(): int {
			var x: int;
			x <- 1;
			fun inner(): int {
				return x;
			}
			return inner();
		}
	`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	inner := top.Locals[0].(*ast.FuncDef)
	if len(inner.Captured) != 1 || inner.Captured[0].Name != "x" {
		t.Fatalf("expected inner to capture x, got %+v", inner.Captured)
	}
}

func TestCaptureIsPropagatedTransitivelyThroughIntermediateFunctions(t *testing.T) {
	top, bag := analyzeSrc(t, `
		fun outer(): int {
			var x: int;
			x <- 1;
			fun middle(): int {
				fun inner(): int {
					return x;
				}
				return inner();
			}
			return middle();
		}
	`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	middle := top.Locals[0].(*ast.FuncDef)
	inner := middle.Locals[0].(*ast.FuncDef)
	if len(inner.Captured) != 1 || inner.Captured[0].Name != "x" {
		t.Fatalf("expected inner to capture x, got %+v", inner.Captured)
	}
	if len(middle.Captured) != 1 || middle.Captured[0].Name != "x" {
		t.Fatalf("expected middle to also carry x through as a pass-through capture, got %+v", middle.Captured)
	}
}

func requireCode(t *testing.T, bag *diag.Bag, code diag.Code) {
	t.Helper()
	if !bag.HasErrors() {
		t.Fatalf("expected diagnostics, got none")
	}
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected a %s diagnostic, got %v", code, bag.Items())
}
