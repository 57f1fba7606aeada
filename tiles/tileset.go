package tiles

// Blank is the wildcard tile marker.
const Blank = '?'

// RackSize is the maximum number of tiles on a player's rack.
const RackSize = 7

// Alphabet is the sort ordering of the Icelandic letters that can appear
// on a tile.
const Alphabet = "aábdðeéfghiíjklmnoóprstuúvxyýþæö"

// letterCount is a letter and the number of copies of it in a full bag.
type letterCount struct {
	letter rune
	count  int
}

// A TileSet describes a letter distribution: the point value of each
// letter and the number of copies of it in a full bag. The two sets
// below are the original Icelandic set and the newer set published by
// Skraflfélag Íslands. Both are immutable after construction.
type TileSet struct {
	Name   string
	scores map[rune]int
	counts []letterCount
	total  int
}

func newTileSet(name string, scores map[rune]int, counts []letterCount) *TileSet {
	total := 0
	for _, lc := range counts {
		total += lc.count
	}
	return &TileSet{Name: name, scores: scores, counts: counts, total: total}
}

// Score returns the point value of the given tile. The blank is always
// worth zero, whatever letter it has been assigned.
func (ts *TileSet) Score(tile rune) int {
	if tile == Blank {
		return 0
	}
	return ts.scores[tile]
}

// WordScore returns the plain sum of tile values for a word, with no
// board multipliers applied.
func (ts *TileSet) WordScore(word string) int {
	score := 0
	for _, r := range word {
		score += ts.Score(r)
	}
	return score
}

// Contains returns whether the given rune is a playable tile in this
// set (a recognized letter or the blank).
func (ts *TileSet) Contains(tile rune) bool {
	if tile == Blank {
		return true
	}
	_, ok := ts.scores[tile]
	return ok
}

// NumTiles returns the total number of tiles in a full bag.
func (ts *TileSet) NumTiles() int {
	return ts.total
}

// FullBag returns every tile in the set, one rune per physical tile.
func (ts *TileSet) FullBag() []rune {
	bag := make([]rune, 0, ts.total)
	for _, lc := range ts.counts {
		for i := 0; i < lc.count; i++ {
			bag = append(bag, lc.letter)
		}
	}
	return bag
}

var oldIcelandic = newTileSet("old",
	map[rune]int{
		'a': 1, 'á': 4, 'b': 6, 'd': 4, 'ð': 2, 'e': 1, 'é': 6, 'f': 3,
		'g': 2, 'h': 3, 'i': 1, 'í': 4, 'j': 5, 'k': 2, 'l': 2, 'm': 2,
		'n': 1, 'o': 3, 'ó': 6, 'p': 8, 'r': 1, 's': 1, 't': 1, 'u': 1,
		'ú': 8, 'v': 3, 'x': 10, 'y': 7, 'ý': 9, 'þ': 4, 'æ': 5, 'ö': 7,
	},
	[]letterCount{
		{'a', 10}, {'á', 2}, {'b', 1}, {'d', 2}, {'ð', 5}, {'e', 6},
		{'é', 1}, {'f', 3}, {'g', 4}, {'h', 2}, {'i', 8}, {'í', 2},
		{'j', 1}, {'k', 3}, {'l', 3}, {'m', 3}, {'n', 8}, {'o', 3},
		{'ó', 1}, {'p', 1}, {'r', 7}, {'s', 6}, {'t', 5}, {'u', 6},
		{'ú', 1}, {'v', 2}, {'x', 1}, {'y', 1}, {'ý', 1}, {'þ', 1},
		{'æ', 1}, {'ö', 1}, {Blank, 2},
	})

var newIcelandic = newTileSet("new",
	map[rune]int{
		'a': 1, 'á': 3, 'b': 5, 'd': 5, 'ð': 2, 'e': 3, 'é': 7, 'f': 3,
		'g': 3, 'h': 4, 'i': 1, 'í': 4, 'j': 6, 'k': 2, 'l': 2, 'm': 2,
		'n': 1, 'o': 5, 'ó': 3, 'p': 5, 'r': 1, 's': 1, 't': 2, 'u': 2,
		'ú': 4, 'v': 5, 'x': 10, 'y': 6, 'ý': 5, 'þ': 7, 'æ': 4, 'ö': 6,
	},
	[]letterCount{
		{'a', 11}, {'á', 2}, {'b', 1}, {'d', 1}, {'ð', 4}, {'e', 3},
		{'é', 1}, {'f', 3}, {'g', 3}, {'h', 1}, {'i', 7}, {'í', 1},
		{'j', 1}, {'k', 4}, {'l', 5}, {'m', 3}, {'n', 7}, {'o', 1},
		{'ó', 2}, {'p', 1}, {'r', 8}, {'s', 7}, {'t', 6}, {'u', 6},
		{'ú', 1}, {'v', 1}, {'x', 1}, {'y', 1}, {'ý', 1}, {'þ', 1},
		{'æ', 2}, {'ö', 1}, {Blank, 2},
	})

// OldIcelandic returns the original Icelandic tile set.
func OldIcelandic() *TileSet {
	return oldIcelandic
}

// NewIcelandic returns the newer tile set from Skraflfélag Íslands.
func NewIcelandic() *TileSet {
	return newIcelandic
}

// NamedTileSet returns the tile set with the given name, defaulting to
// the new set for unrecognized names.
func NamedTileSet(name string) *TileSet {
	if name == "old" {
		return oldIcelandic
	}
	return newIcelandic
}
