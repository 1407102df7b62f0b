package diag

import "sort"

// Bag is the standard accumulating Reporter. A nil disabled set keeps every
// diagnostic; codes in the set are dropped at report time so downstream
// consumers never see them.
type Bag struct {
	diags    []Diagnostic
	disabled map[Code]bool
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// NewBagWithDisabled creates a bag that drops the given codes.
func NewBagWithDisabled(codes []Code) *Bag {
	b := &Bag{}
	if len(codes) > 0 {
		b.disabled = make(map[Code]bool, len(codes))
		for _, c := range codes {
			b.disabled[c] = true
		}
	}
	return b
}

// Report implements Reporter.
func (b *Bag) Report(d Diagnostic) {
	if b.disabled[d.Code] {
		return
	}
	b.diags = append(b.diags, d)
}

// Diagnostics returns the accumulated diagnostics in report order.
func (b *Bag) Diagnostics() []Diagnostic {
	return b.diags
}

// HasErrors reports whether any accumulated diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Merge appends another bag's diagnostics. Used when classes are checked on
// parallel workers, each with a private bag.
func (b *Bag) Merge(other *Bag) {
	b.diags = append(b.diags, other.diags...)
}

// SortBySpan orders the diagnostics by file, line and column so merged
// output is deterministic regardless of worker scheduling.
func (b *Bag) SortBySpan() {
	sort.SliceStable(b.diags, func(i, j int) bool {
		a, c := b.diags[i].Span, b.diags[j].Span
		if a.Filename != c.Filename {
			return a.Filename < c.Filename
		}
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		return a.Column < c.Column
	})
}
