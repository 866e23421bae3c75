package lookahead

type boundKind int

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Bound is one end of a Range: unbounded, or a logical position that is either included or excluded.
type Bound struct {
	kind boundKind
	n    int
}

// Unbounded returns a Bound with no limit.
func Unbounded() Bound {
	return Bound{kind: boundUnbounded}
}

// Included returns a Bound that includes position n.
func Included(n int) Bound {
	return Bound{kind: boundIncluded, n: n}
}

// Excluded returns a Bound that excludes position n.
func Excluded(n int) Bound {
	return Bound{kind: boundExcluded, n: n}
}

// Range selects a run of logical positions, where position 0 is the next value to be popped.
type Range struct {
	Start Bound
	End   Bound
}

// All selects every available position.
func All() Range {
	return Range{Start: Unbounded(), End: Unbounded()}
}

// Span selects the half-open interval [start, end).
func Span(start, end int) Range {
	return Range{Start: Included(start), End: Excluded(end)}
}

// From selects every position at or after start.
func From(start int) Range {
	return Range{Start: Included(start), End: Unbounded()}
}

// To selects positions [0, end).
func To(end int) Range {
	return Range{Start: Unbounded(), End: Excluded(end)}
}

// startIndex resolves the first selected position.
func (r Range) startIndex() int {
	switch r.Start.kind {
	case boundIncluded:
		return r.Start.n
	case boundExcluded:
		return r.Start.n + 1
	default:
		return 0
	}
}

// endExtra returns how many values beyond have are needed to cover the upper
// bound, or all=true when the upper bound is unbounded.
func (r Range) endExtra(have int) (extra int, all bool) {
	switch r.End.kind {
	case boundIncluded:
		extra = r.End.n + 1 - have
	case boundExcluded:
		extra = r.End.n - have
	default:
		return 0, true
	}
	if extra < 0 {
		extra = 0
	}
	return extra, false
}

// endIndex resolves the first position past the selection, truncated to have.
func (r Range) endIndex(have int) int {
	end := have
	switch r.End.kind {
	case boundIncluded:
		end = r.End.n + 1
	case boundExcluded:
		end = r.End.n
	}
	if end > have {
		end = have
	}
	return end
}
