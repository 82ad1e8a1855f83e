package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passage = "The study of logic begins with the study of arguments."

// every mutation has to leave the set sorted and pairwise non-touching
func requireNormalized(t *testing.T, s Set) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		require.Less(t, s[i-1].End, s[i].Start,
			"ranges %v and %v touch or overlap", s[i-1], s[i])
	}
}

func TestFromSelection(t *testing.T) {
	r, ok := FromSelection(passage, 4, 9)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 4, End: 9}, r)

	// reversed selections normalize
	r, ok = FromSelection(passage, 9, 4)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 4, End: 9}, r)

	// collapsed cursor
	_, ok = FromSelection(passage, 7, 7)
	assert.False(t, ok)

	// outside the text
	_, ok = FromSelection(passage, -1, 5)
	assert.False(t, ok)
	_, ok = FromSelection(passage, 0, len([]rune(passage))+1)
	assert.False(t, ok)
}

func TestAddMergesOverlap(t *testing.T) {
	s := Set{}.Add(Range{0, 5}).Add(Range{3, 8})
	require.Len(t, s, 1)
	assert.Equal(t, Range{0, 8}, s[0])
	requireNormalized(t, s)
}

func TestAddMergesAdjacent(t *testing.T) {
	s := Set{{0, 5}}.Add(Range{5, 10})
	require.Len(t, s, 1)
	assert.Equal(t, Range{0, 10}, s[0])
}

func TestAddBridgesSeveralRanges(t *testing.T) {
	s := Set{{0, 3}, {5, 8}, {12, 15}}
	s = s.Add(Range{2, 13})
	require.Len(t, s, 1)
	assert.Equal(t, Range{0, 15}, s[0])
}

func TestAddKeepsDisjointRangesSorted(t *testing.T) {
	s := Set{}.Add(Range{10, 15}).Add(Range{0, 5}).Add(Range{20, 25})
	require.Len(t, s, 3)
	assert.Equal(t, Set{{0, 5}, {10, 15}, {20, 25}}, s)
	requireNormalized(t, s)
}

func TestAddIdempotent(t *testing.T) {
	s := Set{}.Add(Range{0, 5}).Add(Range{10, 15})
	again := s.Add(Range{0, 5})
	assert.Equal(t, s, again)
}

func TestAddIsPure(t *testing.T) {
	orig := Set{{0, 5}, {10, 15}}
	kept := append(Set(nil), orig...)
	_ = orig.Add(Range{3, 12})
	assert.Equal(t, kept, orig, "Add must not mutate its input")
}

func TestRemoveAt(t *testing.T) {
	s := Set{{0, 5}, {10, 15}}

	got := s.RemoveAt(12)
	assert.Equal(t, Set{{0, 5}}, got)

	// offset in the gap: no-op
	got = s.RemoveAt(7)
	assert.Equal(t, s, got)

	// End is exclusive
	got = s.RemoveAt(5)
	assert.Equal(t, s, got)
}

func TestSegmentsPartitionText(t *testing.T) {
	cases := []Set{
		nil,
		{{0, 5}},
		{{0, len([]rune(passage))}},
		{{4, 9}, {13, 18}, {30, 35}},
		{{0, 3}, {len([]rune(passage)) - 4, len([]rune(passage))}},
	}
	for _, set := range cases {
		var b strings.Builder
		prev := false
		first := true
		for seg := range Segments(passage, set) {
			require.NotEmpty(t, seg.Text)
			if !first {
				assert.NotEqual(t, prev, seg.Highlighted, "segments must alternate")
			}
			b.WriteString(seg.Text)
			prev = seg.Highlighted
			first = false
		}
		assert.Equal(t, passage, b.String())
	}
}

func TestSegmentsRestartable(t *testing.T) {
	set := Set{{4, 9}}
	seq := Segments(passage, set)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, count(), count())
}

func TestClickOffset(t *testing.T) {
	set := Set{{10, 20}}

	// inside a highlight: midpoint of the highlight
	off, ok := ClickOffset(passage, set, 11)
	require.True(t, ok)
	assert.Equal(t, 15, off)
	_, stillIn := set.RangeAt(off)
	assert.True(t, stillIn)

	// in the plain gap before it: midpoint of [0,10)
	off, ok = ClickOffset(passage, set, 2)
	require.True(t, ok)
	assert.Equal(t, 5, off)
	_, in := set.RangeAt(off)
	assert.False(t, in)

	// off the text entirely
	_, ok = ClickOffset(passage, set, -1)
	assert.False(t, ok)
	_, ok = ClickOffset(passage, set, len([]rune(passage)))
	assert.False(t, ok)
}

func TestPairsRoundTrip(t *testing.T) {
	s := Set{}.Add(Range{4, 9}).Add(Range{13, 18})
	pairs := s.Pairs()
	assert.Equal(t, [][2]int{{4, 9}, {13, 18}}, pairs)
	assert.Equal(t, s, FromPairs(pairs))
}

func TestFromPairsNormalizesStoredGarbage(t *testing.T) {
	// unsorted, overlapping and degenerate pairs as they might come back
	// from an old snapshot
	s := FromPairs([][2]int{{10, 15}, {3, 3}, {0, 5}, {4, 11}, {9, 2}})
	assert.Equal(t, Set{{0, 15}}, s)
	requireNormalized(t, s)
}
