package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every letter of the alphabet must have a score and a bag count in
// both sets, and the per-letter counts must sum to the published bag
// sizes.
func TestDistributionsComplete(t *testing.T) {
	for _, ts := range []*TileSet{OldIcelandic(), NewIcelandic()} {
		counts := map[rune]int{}
		for _, tile := range ts.FullBag() {
			counts[tile]++
		}
		for _, letter := range Alphabet {
			assert.Contains(t, ts.scores, letter, "set %s letter %c", ts.Name, letter)
			assert.Greater(t, counts[letter], 0, "set %s letter %c", ts.Name, letter)
		}
		assert.Equal(t, 2, counts[Blank], "set %s", ts.Name)
	}
}

func TestDistributionSpotValues(t *testing.T) {
	testCases := []struct {
		set    *TileSet
		letter rune
		score  int
		count  int
	}{
		{OldIcelandic(), 'a', 1, 10},
		{OldIcelandic(), 'á', 4, 2},
		{OldIcelandic(), 'ú', 8, 1},
		{OldIcelandic(), 'ö', 7, 1},
		{NewIcelandic(), 'a', 1, 11},
		{NewIcelandic(), 'á', 3, 2},
		{NewIcelandic(), 'h', 4, 1},
		{NewIcelandic(), 'r', 1, 8},
		{NewIcelandic(), 'x', 10, 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.score, tc.set.Score(tc.letter),
			"score of %c in %s", tc.letter, tc.set.Name)
		count := 0
		for _, tile := range tc.set.FullBag() {
			if tile == tc.letter {
				count++
			}
		}
		assert.Equal(t, tc.count, count, "count of %c in %s", tc.letter, tc.set.Name)
	}
}
