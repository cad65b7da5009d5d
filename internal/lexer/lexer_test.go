package lexer

import (
	"testing"

	"minic/internal/diag"
	"minic/internal/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	bag := diag.NewBag(10)
	lx := New("test.mc", []byte(src), bag)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected lexer errors: %v", bag.Items())
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := scan(t, "fun foo var x ref")
	got := kinds(toks)
	want := []token.Kind{token.KwFun, token.Ident, token.KwVar, token.Ident, token.KwRef, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if toks[1].Text != "foo" {
		t.Errorf("expected identifier text %q, got %q", "foo", toks[1].Text)
	}
}

func TestOperatorsAndAssign(t *testing.T) {
	toks := scan(t, "x <- 1 + 2 * 3 <= 4 != 5")
	got := kinds(toks)
	want := []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Plus, token.IntLit,
		token.Star, token.IntLit, token.Le, token.IntLit, token.Neq, token.IntLit, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCharLiteralEscapes(t *testing.T) {
	cases := map[string]byte{
		`'a'`:  'a',
		`'\n'`: '\n',
		`'\t'`: '\t',
		`'\0'`: 0,
		`'\''`: '\'',
		`'\x41'`: 'A',
	}
	for src, want := range cases {
		toks := scan(t, src)
		if toks[0].Kind != token.CharLit {
			t.Fatalf("%q: expected CharLit, got %s", src, toks[0].Kind)
		}
		if toks[0].CharVal != want {
			t.Errorf("%q: expected char value %d, got %d", src, want, toks[0].CharVal)
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	toks := scan(t, `"hello\nworld"`)
	if toks[0].Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %s", toks[0].Kind)
	}
	if toks[0].StrVal != "hello\nworld" {
		t.Errorf("expected decoded string %q, got %q", "hello\nworld", toks[0].StrVal)
	}
}

func TestLineComment(t *testing.T) {
	toks := scan(t, "x $ this is a comment\ny")
	got := kinds(toks)
	want := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d (%v)", len(got), len(want), got)
	}
}

func TestBlockComment(t *testing.T) {
	toks := scan(t, "x $$ spans\nmultiple lines $$ y")
	got := kinds(toks)
	want := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d (%v)", len(got), len(want), got)
	}
}

func TestUnterminatedStringReportsSyntaxError(t *testing.T) {
	bag := diag.NewBag(10)
	lx := New("test.mc", []byte(`"unterminated`), bag)
	lx.Next()
	if !bag.HasErrors() {
		t.Fatalf("expected a syntax error for an unterminated string literal")
	}
	if bag.Items()[0].Code != diag.CodeSyntaxError {
		t.Errorf("expected CodeSyntaxError, got %s", bag.Items()[0].Code)
	}
}

func TestPositionTracking(t *testing.T) {
	toks := scan(t, "a\nb  c")
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Errorf("expected a at 1:1, got %s", toks[0].Pos)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 1 {
		t.Errorf("expected b at 2:1, got %s", toks[1].Pos)
	}
	if toks[2].Pos.Line != 2 || toks[2].Pos.Column != 4 {
		t.Errorf("expected c at 2:4, got %s", toks[2].Pos)
	}
}
