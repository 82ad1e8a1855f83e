// Package highlight maintains sets of non-overlapping half-open rune ranges
// over a fixed piece of text, used for passage mark-up. All operations are
// pure: they return a new Set and never mutate the receiver.
package highlight

import (
	"iter"
	"sort"
)

// Range is a half-open interval [Start, End) of rune offsets into the text
// it was created against. Valid ranges satisfy 0 <= Start < End <= rune count.
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes covered.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether the offset falls inside the range.
func (r Range) Contains(off int) bool {
	return r.Start <= off && off < r.End
}

// Overlaps reports a true overlap (shared runes) with o.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && r.End > o.Start
}

// Touches reports overlap or adjacency. Adjacent ranges ([0,5) and [5,10))
// look contiguous once rendered, so they merge. Deliberate policy.
func (r Range) Touches(o Range) bool {
	return r.Start <= o.End && r.End >= o.Start
}

// Set is an ordered collection of ranges. After every mutation the ranges are
// sorted ascending by Start and pairwise non-touching (S[i].End < S[i+1].Start).
type Set []Range

// FromSelection turns a raw selection into a Range. Selections come from
// imprecise user gestures, so anything unusable (collapsed, reversed into
// nothing, outside the text) reports ok=false rather than an error.
func FromSelection(text string, start, end int) (Range, bool) {
	if start > end {
		start, end = end, start
	}
	n := len([]rune(text))
	if start < 0 || end > n {
		return Range{}, false
	}
	if start == end {
		// collapsed cursor, nothing selected
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Add inserts newRange, coalescing every existing range it touches into a
// single covering range. Input ranges outside the owning text are a caller
// bug; Add does not check them.
func (s Set) Add(newRange Range) Set {
	merged := newRange
	out := make(Set, 0, len(s)+1)
	for _, r := range s {
		if r.Touches(merged) {
			if r.Start < merged.Start {
				merged.Start = r.Start
			}
			if r.End > merged.End {
				merged.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	out = append(out, merged)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// RemoveAt removes the range containing the offset. At most one range can
// contain it. Missing the highlights entirely is a no-op, not an error.
func (s Set) RemoveAt(off int) Set {
	for i, r := range s {
		if r.Contains(off) {
			out := make(Set, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			return out
		}
	}
	return s
}

// RangeAt returns the range containing the offset, if any.
func (s Set) RangeAt(off int) (Range, bool) {
	for _, r := range s {
		if r.Contains(off) {
			return r, true
		}
	}
	return Range{}, false
}

// ClickOffset approximates a click as the midpoint of whichever fragment
// (highlighted run or the plain gap between runs) contains the hit offset.
// The caller maps its click geometry to a rune offset first; this keeps the
// merge/remove logic independent of any particular display surface.
// ok=false when the hit is outside the text.
func ClickOffset(text string, s Set, hit int) (int, bool) {
	n := len([]rune(text))
	if hit < 0 || hit >= n {
		return 0, false
	}
	if r, ok := s.RangeAt(hit); ok {
		return r.Start + r.Len()/2, true
	}
	// plain gap between the surrounding highlights
	gapStart, gapEnd := 0, n
	for _, r := range s {
		if r.End <= hit && r.End > gapStart {
			gapStart = r.End
		}
		if r.Start > hit && r.Start < gapEnd {
			gapEnd = r.Start
		}
	}
	return gapStart + (gapEnd-gapStart)/2, true
}

// Segment is one piece of the partition Segments produces.
type Segment struct {
	Text        string
	Highlighted bool
}

// Segments partitions text into alternating plain/highlighted segments in
// original order, no gaps, no overlaps; concatenating every segment's Text
// reproduces text exactly. The sequence is lazy and restartable.
func Segments(text string, s Set) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		runes := []rune(text)
		pos := 0
		for _, r := range s {
			if r.Start > pos {
				if !yield(Segment{Text: string(runes[pos:r.Start])}) {
					return
				}
			}
			if !yield(Segment{Text: string(runes[r.Start:r.End]), Highlighted: true}) {
				return
			}
			pos = r.End
		}
		if pos < len(runes) {
			yield(Segment{Text: string(runes[pos:])})
		}
	}
}
