package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"minic/internal/diag"
	"minic/internal/source"
)

func TestPrintPlainFormat(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Errorf(diag.CodeUndeclared, "test.mc", source.Position{Line: 3, Column: 5}, "%q is not declared", "x"))

	var buf bytes.Buffer
	Print(&buf, bag, false)

	got := buf.String()
	want := `test.mc:3:5: UndeclaredError: "x" is not declared`
	if strings.TrimSpace(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintColorFormatStillContainsMessage(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Errorf(diag.CodeTypeMismatch, "test.mc", source.Position{Line: 1, Column: 1}, "bad types"))

	var buf bytes.Buffer
	Print(&buf, bag, true)

	if !strings.Contains(buf.String(), "bad types") {
		t.Errorf("expected colorized output to still contain the message, got %q", buf.String())
	}
}

func TestPrintMultipleDiagnosticsOnePerLine(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Errorf(diag.CodeUndeclared, "a.mc", source.Position{Line: 1, Column: 1}, "first"))
	bag.Add(diag.Errorf(diag.CodeUndeclared, "a.mc", source.Position{Line: 2, Column: 1}, "second"))

	var buf bytes.Buffer
	Print(&buf, bag, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
}
