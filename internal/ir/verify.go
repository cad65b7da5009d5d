package ir

import "fmt"

// VerifyError is the "internal inconsistency discovered by
// verifyFunction" spec.md §7 classifies as InternalError — a compiler
// bug, not a user error.
type VerifyError struct {
	Function string
	Block    string
	Msg      string
}

func (e *VerifyError) Error() string {
	if e.Block == "" {
		return fmt.Sprintf("function %q: %s", e.Function, e.Msg)
	}
	return fmt.Sprintf("function %q, block %q: %s", e.Function, e.Block, e.Msg)
}

// Verify checks the structural invariants igen is required to
// maintain: every block terminates exactly once, the function has an
// entry block, and every block label is unique. This is the stand-in
// for LLVM's verifyFunction named in spec.md §4.3 — real type and
// dominance checking happens once the printed IR reaches the (out of
// scope, per spec.md §1) LLVM back-end.
func Verify(f *Function) error {
	if f.Entry == nil {
		return &VerifyError{Function: f.Name, Msg: "missing entry block"}
	}
	if len(f.Blocks) == 0 {
		return &VerifyError{Function: f.Name, Msg: "function has no blocks"}
	}
	seen := make(map[string]bool, len(f.Blocks))
	for _, b := range f.Blocks {
		if seen[b.Label] {
			return &VerifyError{Function: f.Name, Block: b.Label, Msg: "duplicate block label"}
		}
		seen[b.Label] = true
		if !b.Terminated {
			return &VerifyError{Function: f.Name, Block: b.Label, Msg: "block has no terminator"}
		}
	}
	return nil
}
