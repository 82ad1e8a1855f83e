package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/prepdrill/highlight"
)

func TestFindMatchesCaseInsensitive(t *testing.T) {
	matches := findMatches("The whale. the Whale. THE WHALE.", "the whale")
	require.Len(t, matches, 3)
	assert.Equal(t, highlight.Range{Start: 0, End: 9}, matches[0])
	assert.Equal(t, highlight.Range{Start: 11, End: 20}, matches[1])
	assert.Equal(t, highlight.Range{Start: 22, End: 31}, matches[2])
}

func TestFindMatchesNonOverlapping(t *testing.T) {
	matches := findMatches("aaaa", "aa")
	require.Len(t, matches, 2)
	assert.Equal(t, highlight.Range{Start: 0, End: 2}, matches[0])
	assert.Equal(t, highlight.Range{Start: 2, End: 4}, matches[1])
}

func TestFindMatchesRuneOffsets(t *testing.T) {
	// multibyte runes before the match must not shift the offsets
	matches := findMatches("über alles über", "über")
	require.Len(t, matches, 2)
	assert.Equal(t, highlight.Range{Start: 0, End: 4}, matches[0])
	assert.Equal(t, highlight.Range{Start: 11, End: 15}, matches[1])
}

func TestFindMatchesEdgeCases(t *testing.T) {
	assert.Nil(t, findMatches("short", "much longer query"))
	assert.Nil(t, findMatches("anything", ""))
	assert.Nil(t, findMatches("", "x"))
	assert.Nil(t, findMatches("no such term here", "whale"))
}
