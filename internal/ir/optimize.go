package ir

// Optimize runs the function-local simplifications igen performs
// itself, ahead of whatever the (out-of-scope) LLVM pass manager does
// with mem2reg/instcombine/reassociate/gvn/simplifycfg once this text
// reaches `opt`. At this level, the only simplification that is safe
// without a full instruction graph is dropping blocks nobody branches
// to — unreachable blocks are a common side effect of If/While
// lowering when a branch always returns.
func Optimize(f *Function) {
	reachable := map[string]bool{f.Entry.Label: true}
	changed := true
	for changed {
		changed = false
		for _, b := range f.Blocks {
			if !reachable[b.Label] {
				continue
			}
			for _, target := range successors(b) {
				if !reachable[target] {
					reachable[target] = true
					changed = true
				}
			}
		}
	}
	kept := f.Blocks[:0]
	for _, b := range f.Blocks {
		if reachable[b.Label] {
			kept = append(kept, b)
		}
	}
	f.Blocks = kept
}

// successors extracts branch targets from a terminator line of the
// form "br label %x" or "br i1 %c, label %x, label %y". This parses
// the text igen itself produced, so the format is fixed and narrow.
func successors(b *Block) []string {
	var targets []string
	rest := b.Term
	for {
		idx := indexOf(rest, "label %")
		if idx < 0 {
			break
		}
		rest = rest[idx+len("label %"):]
		end := 0
		for end < len(rest) && rest[end] != ',' && rest[end] != ' ' {
			end++
		}
		targets = append(targets, rest[:end])
		rest = rest[end:]
	}
	return targets
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
