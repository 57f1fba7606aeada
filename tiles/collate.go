package tiles

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var icelandic = collate.New(language.Icelandic)

// SortWords sorts a word list in place using Icelandic collation, so
// that á sorts after a, ð after d and so on, rather than by code point.
func SortWords(words []string) {
	icelandic.SortStrings(words)
}

// SortLetters returns the letters of s in Icelandic collation order.
// Used to present racks and exchange sets the way a player expects.
func SortLetters(s string) string {
	runes := []rune(s)
	letters := make([]string, len(runes))
	for i, r := range runes {
		letters[i] = string(r)
	}
	icelandic.SortStrings(letters)
	sorted := ""
	for _, l := range letters {
		sorted += l
	}
	return sorted
}

// CompareWords compares two words in Icelandic collation order,
// returning -1, 0 or 1.
func CompareWords(a, b string) int {
	return icelandic.CompareString(a, b)
}
