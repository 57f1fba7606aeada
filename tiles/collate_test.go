package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestSortWordsIcelandic(t *testing.T) {
	is := is.New(t)
	words := []string{"ör", "austur", "árbók", "alda", "ðe"}
	SortWords(words)
	// á sorts after a and before b; ð after d; ö last.
	is.Equal(words, []string{"alda", "austur", "árbók", "ðe", "ör"})
}

func TestSortLetters(t *testing.T) {
	is := is.New(t)
	is.Equal(SortLetters("ðaód"), "adðó")
	is.Equal(SortLetters(""), "")
}

func TestCompareWords(t *testing.T) {
	is := is.New(t)
	is.Equal(CompareWords("alda", "árbók"), -1)
	is.Equal(CompareWords("ör", "ör"), 0)
	is.Equal(CompareWords("ör", "austur"), 1)
}
