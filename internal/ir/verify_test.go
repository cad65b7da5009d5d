package ir

import "testing"

func TestVerifyRejectsMissingTerminator(t *testing.T) {
	m := NewModule("t")
	f := m.NewFunction("f", "void", nil)
	b := f.NewBlock("entry")
	f.Entry = b
	b.Emit("%t0 = add i32 1, 2")

	err := Verify(f)
	if err == nil {
		t.Fatalf("expected an error for an unterminated block")
	}
	ve, ok := err.(*VerifyError)
	if !ok {
		t.Fatalf("expected *VerifyError, got %T", err)
	}
	if ve.Block != b.Label {
		t.Errorf("expected error on block %q, got %q", b.Label, ve.Block)
	}
}

func TestVerifyRejectsMissingEntry(t *testing.T) {
	m := NewModule("t")
	f := m.NewFunction("f", "void", nil)
	f.NewBlock("entry").Terminate("ret void")

	err := Verify(f)
	if err == nil {
		t.Fatalf("expected an error when Entry is nil")
	}
}

func TestVerifyRejectsDuplicateLabel(t *testing.T) {
	m := NewModule("t")
	f := m.NewFunction("f", "void", nil)
	b1 := f.NewBlock("entry")
	f.Entry = b1
	b1.Terminate("br label %dup")
	b2 := &Block{Label: "dup"}
	b2.Terminate("ret void")
	f.Blocks = append(f.Blocks, b2)
	dup := &Block{Label: "dup"}
	dup.Terminate("ret void")
	f.Blocks = append(f.Blocks, dup)

	err := Verify(f)
	if err == nil {
		t.Fatalf("expected an error for a duplicate block label")
	}
}

func TestVerifyAcceptsWellFormedFunction(t *testing.T) {
	m := NewModule("t")
	f := m.NewFunction("f", "i32", []Param{{Name: "x", Type: "i32"}})
	entry := f.NewBlock("entry")
	f.Entry = entry
	entry.Emit("%t0 = add i32 %x, 1")
	entry.Terminate("ret i32 %t0")

	if err := Verify(f); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestOptimizeDropsUnreachableBlocks(t *testing.T) {
	m := NewModule("t")
	f := m.NewFunction("f", "void", nil)
	entry := f.NewBlock("entry")
	f.Entry = entry
	live := f.NewBlock("live")
	live.Terminate("ret void")
	dead := f.NewBlock("dead")
	dead.Terminate("ret void")
	entry.Terminate("br label %" + live.Label)

	if len(f.Blocks) != 3 {
		t.Fatalf("expected 3 blocks before optimize, got %d", len(f.Blocks))
	}
	Optimize(f)
	if len(f.Blocks) != 2 {
		t.Fatalf("expected 2 blocks after optimize, got %d", len(f.Blocks))
	}
	for _, b := range f.Blocks {
		if b.Label == dead.Label {
			t.Errorf("expected dead block to be pruned")
		}
	}
}

func TestOptimizeFollowsConditionalBranches(t *testing.T) {
	m := NewModule("t")
	f := m.NewFunction("f", "void", nil)
	entry := f.NewBlock("entry")
	f.Entry = entry
	then := f.NewBlock("then")
	then.Terminate("ret void")
	els := f.NewBlock("else")
	els.Terminate("ret void")
	entry.Terminate("br i1 %c, label %" + then.Label + ", label %" + els.Label)

	Optimize(f)
	if len(f.Blocks) != 3 {
		t.Fatalf("expected both branch targets kept, got %d blocks", len(f.Blocks))
	}
}
