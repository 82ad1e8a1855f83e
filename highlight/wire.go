package highlight

// Pairs returns the [[start,end], ...] shape the progress snapshot stores per
// question. The engine only defines this array-of-pairs shape, not transport.
func (s Set) Pairs() [][2]int {
	out := make([][2]int, 0, len(s))
	for _, r := range s {
		out = append(out, [2]int{r.Start, r.End})
	}
	return out
}

// FromPairs rebuilds a Set from persisted pairs. Everything goes back through
// Add so malformed or overlapping stored data still normalizes; degenerate
// pairs (start >= end) are dropped.
func FromPairs(pairs [][2]int) Set {
	var s Set
	for _, p := range pairs {
		if p[0] >= p[1] {
			continue
		}
		s = s.Add(Range{Start: p[0], End: p[1]})
	}
	return s
}
