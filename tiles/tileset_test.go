package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestScores(t *testing.T) {
	is := is.New(t)
	old := OldIcelandic()
	ts := NewIcelandic()

	is.Equal(old.Score('a'), 1)
	is.Equal(old.Score('þ'), 4)
	is.Equal(old.Score('x'), 10)
	is.Equal(old.Score(Blank), 0)

	is.Equal(ts.Score('þ'), 7)
	is.Equal(ts.Score('e'), 3)
	is.Equal(ts.Score(Blank), 0)
}

func TestWordScore(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	// h=4, ú=4, s=1
	is.Equal(ts.WordScore("hús"), 9)
	is.Equal(ts.WordScore(""), 0)
}

func TestBagComposition(t *testing.T) {
	is := is.New(t)
	is.Equal(OldIcelandic().NumTiles(), 104)
	is.Equal(NewIcelandic().NumTiles(), 100)

	full := NewIcelandic().FullBag()
	is.Equal(len(full), 100)
	blanks := 0
	for _, l := range full {
		if l == Blank {
			blanks++
		}
	}
	is.Equal(blanks, 2)
}

func TestContains(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	is.True(ts.Contains('ð'))
	is.True(ts.Contains(Blank))
	is.True(!ts.Contains('c'))
	is.True(!ts.Contains('z'))
}

func TestNamedTileSet(t *testing.T) {
	is := is.New(t)
	is.Equal(NamedTileSet("old").Name, "old")
	is.Equal(NamedTileSet("new").Name, "new")
	is.Equal(NamedTileSet("bogus").Name, "new")
}
