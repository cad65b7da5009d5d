package diag

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Bag accumulates diagnostics for a single compilation unit and
// implements the "accumulating diagnostic sink plus an early-abort
// sentinel" described in spec §9.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a bag capped at max diagnostics (non-fatal
// diagnostics may accumulate up to this limit before being dropped).
func NewBag(max int) *Bag {
	if max <= 0 {
		max = 100
	}
	return &Bag{items: make([]Diagnostic, 0, max), max: max}
}

// Add records d, returning false if the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any accumulated diagnostic is at least
// SevError, which is the early-abort trigger before codegen (spec §7).
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// First returns the first error-or-worse diagnostic, if any. Semantic
// analysis short-circuits code generation on this diagnostic.
func (b *Bag) First() (Diagnostic, bool) {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return d, true
		}
	}
	return Diagnostic{}, false
}

func (b *Bag) Len() int { return len(b.items) }

func (b *Bag) Items() []Diagnostic { return b.items }

// collator orders diagnostic file names in a stable, locale-aware way
// so a run's stderr output does not depend on Go's default byte-wise
// string comparison when filenames carry non-ASCII characters.
var collator = collate.New(language.Und)

// Sort orders diagnostics by file, then position, then severity
// (descending), then code — a stable, deterministic report order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.File != dj.File {
			return collator.CompareString(di.File, dj.File) < 0
		}
		if di.Pos.Line != dj.Pos.Line {
			return di.Pos.Line < dj.Pos.Line
		}
		if di.Pos.Column != dj.Pos.Column {
			return di.Pos.Column < dj.Pos.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
