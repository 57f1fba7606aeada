package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/halldorb/skraflmotor/tiles"
)

func TestPlaceAndRemove(t *testing.T) {
	is := is.New(t)
	ts := tiles.NewIcelandic()
	b := New()
	is.True(b.IsEmpty())

	tile, err := tiles.NewTile(ts, 'a')
	is.NoErr(err)
	tile.Provenance = tiles.OnBoardTentative
	is.NoErr(b.PlaceTile(tile, Center))
	is.Equal(b.NumTentative(), 1)
	// Tentative tiles do not make the board non-empty.
	is.True(b.IsEmpty())
	is.True(b.HasTileAt(7, 7))

	other, err := tiles.NewTile(ts, 'b')
	is.NoErr(err)
	is.Equal(b.PlaceTile(other, Center), ErrSquareInUse)

	removed, err := b.RemoveTile(Center)
	is.NoErr(err)
	is.Equal(removed.Letter, 'a')
	is.True(!b.HasTileAt(7, 7))
}

func TestCommittedTilesStay(t *testing.T) {
	is := is.New(t)
	ts := tiles.NewIcelandic()
	b := New()
	is.NoErr(b.PlaceWord(ts, "H7", "hús"))
	is.True(!b.IsEmpty())

	_, err := b.RemoveTile(Position{Row: 7, Col: 6})
	is.Equal(err, ErrNotTentative)
	is.Equal(b.TileAt(7, 7).Meaning, 'ú')
	is.Equal(b.TileAt(7, 7).Provenance, tiles.OnBoardCommitted)
}

func TestCommitAndRecall(t *testing.T) {
	is := is.New(t)
	ts := tiles.NewIcelandic()
	b := New()
	for i, letter := range "nes" {
		tile, err := tiles.NewTile(ts, letter)
		is.NoErr(err)
		tile.Provenance = tiles.OnBoardTentative
		is.NoErr(b.PlaceTile(tile, Position{Row: 7, Col: 6 + i}))
	}
	is.Equal(b.NumTentative(), 3)

	recalled := b.RecallTentative()
	is.Equal(len(recalled), 3)
	is.Equal(b.NumTentative(), 0)
	is.True(b.IsEmpty())

	for i, letter := range "nes" {
		tile, err := tiles.NewTile(ts, letter)
		is.NoErr(err)
		tile.Provenance = tiles.OnBoardTentative
		is.NoErr(b.PlaceTile(tile, Position{Row: 7, Col: 6 + i}))
	}
	b.Commit()
	is.Equal(b.NumTentative(), 0)
	is.True(!b.IsEmpty())
	is.Equal(b.TileAt(7, 6).Provenance, tiles.OnBoardCommitted)
}

func TestPlaceWordVerticalPlaysThrough(t *testing.T) {
	is := is.New(t)
	ts := tiles.NewIcelandic()
	b := New()
	is.NoErr(b.PlaceWord(ts, "H7", "hús"))
	// Vertical word through the existing ú at H8.
	is.NoErr(b.PlaceWord(ts, "8G", "núp"))
	is.Equal(b.TileAt(6, 7).Meaning, 'n')
	is.Equal(b.TileAt(7, 7).Meaning, 'ú')
	is.Equal(b.TileAt(8, 7).Meaning, 'p')
}

func TestOutOfBounds(t *testing.T) {
	is := is.New(t)
	b := New()
	is.True(!b.HasTileAt(-1, 0))
	is.True(!b.HasTileAt(0, Size))
	is.True(b.TileAt(Size, Size) == nil)
}
