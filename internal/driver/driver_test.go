package driver

import (
	"strings"
	"testing"
)

func compileOK(t *testing.T, src string) string {
	t.Helper()
	res := CompileFile("test.mc", []byte(src), false, nil)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected compile errors: %v", res.Bag.Items())
	}
	if res.IR == nil {
		t.Fatalf("expected IR output, got nil")
	}
	return string(res.IR)
}

func TestCompileHelloWorld(t *testing.T) {
	ir := compileOK(t, `
		fun main(): nothing {
			writeString("hello, world");
		}
	`)
	if !strings.Contains(ir, "declare void @writeString(i8*)") {
		t.Errorf("expected a writeString extern declaration, got:\n%s", ir)
	}
	if !strings.Contains(ir, "call void @main.1()") {
		t.Errorf("expected main() to call the user's top-level function, got:\n%s", ir)
	}
	if !strings.Contains(ir, "define i32 @main()") {
		t.Errorf("expected a define i32 @main(), got:\n%s", ir)
	}
}

func TestCompileRecursiveFactorial(t *testing.T) {
	ir := compileOK(t, `
		fun fact(n: int): int {
			if n <= 1 then {
				return 1;
			} else {
				return n * fact(n - 1);
			}
		}
	`)
	if !strings.Contains(ir, "call i32 @fact(") {
		t.Errorf("expected a recursive self-call, got:\n%s", ir)
	}
	if !strings.Contains(ir, "mul i32") {
		t.Errorf("expected a multiply instruction, got:\n%s", ir)
	}
}

func TestCompileIterativeSum(t *testing.T) {
	ir := compileOK(t, `
		fun sum(n: int): int {
			var total: int;
			var i: int;
			total <- 0;
			i <- 0;
			while i < n do {
				total <- total + i;
				i <- i + 1;
			}
			return total;
		}
	`)
	if !strings.Contains(ir, "icmp slt i32") {
		t.Errorf("expected a signed less-than comparison for the loop condition, got:\n%s", ir)
	}
	if !strings.Contains(ir, "br i1") {
		t.Errorf("expected a conditional branch for the while loop, got:\n%s", ir)
	}
}

func TestCompileNestedFunctionCapture(t *testing.T) {
	ir := compileOK(t, `
		fun outer(): int {
			var x: int;
			x <- 10;
			fun bump(): int {
				x <- x + 1;
				return x;
			}
			bump();
			return bump();
		}
	`)
	// bump must gain a hidden trailing pointer parameter for x.
	if !strings.Contains(ir, "define i32 @bump(i32*") {
		t.Errorf("expected bump to take a hidden i32* capture parameter, got:\n%s", ir)
	}
}

func TestCompileByReferenceSwap(t *testing.T) {
	ir := compileOK(t, `
		fun swap(ref a: int, ref b: int): nothing {
			var tmp: int;
			tmp <- a;
			a <- b;
			b <- tmp;
		}
	`)
	if !strings.Contains(ir, "define void @swap(i32* ") {
		t.Errorf("expected swap's parameters to be plain i32* pointers (no alloca/copy), got:\n%s", ir)
	}
}

func TestCompileArrayReferenceParameter(t *testing.T) {
	ir := compileOK(t, `
		fun sumArray(ref a: int[], n: int): int {
			var i: int;
			var total: int;
			i <- 0;
			total <- 0;
			while i < n do {
				total <- total + a[i];
				i <- i + 1;
			}
			return total;
		}
	`)
	if !strings.Contains(ir, "getelementptr inbounds i32, i32* ") {
		t.Errorf("expected an unsized-array element GEP, got:\n%s", ir)
	}
}

func TestCompileLocalFixedArrayDecaysOnCall(t *testing.T) {
	ir := compileOK(t, `
		fun main(): nothing {
			var buf: int[10];
			fun fill(ref a: int[], n: int): nothing {
				a[0] <- n;
			}
			fill(buf, 10);
		}
	`)
	if !strings.Contains(ir, "getelementptr inbounds [10 x i32], [10 x i32]* ") {
		t.Errorf("expected a fixed-array decay GEP before the call, got:\n%s", ir)
	}
}

func TestCompileAbortsBeforeCodegenOnSemanticError(t *testing.T) {
	res := CompileFile("test.mc", []byte(`
		fun f(): nothing {
			x <- 1;
		}
	`), false, nil)
	if !res.Bag.HasErrors() {
		t.Fatalf("expected a semantic error")
	}
	if res.IR != nil {
		t.Fatalf("expected no IR output once sem reports an error")
	}
}

func TestCompileReportsEventsInStageOrder(t *testing.T) {
	events := make(chan Event, 16)
	go func() {
		CompileFile("test.mc", []byte(`fun main(): nothing { }`), false, events)
		close(events)
	}()

	var stages []Stage
	for ev := range events {
		if ev.Status == StatusOK {
			stages = append(stages, ev.Stage)
		}
	}
	want := []Stage{StageParse, StageAnalyze, StageGenerate, StageDone}
	if len(stages) != len(want) {
		t.Fatalf("expected %d OK events, got %d (%v)", len(want), len(stages), stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stage %d: got %s, want %s", i, stages[i], want[i])
		}
	}
}
