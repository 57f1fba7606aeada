package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestRackTakeAndAdd(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	r, err := RackFromString(ts, "aábðe?s")
	is.NoErr(err)
	is.Equal(r.NumTiles(), 7)

	tile, err := r.Take('ð')
	is.NoErr(err)
	is.Equal(tile.Letter, 'ð')
	is.Equal(tile.Value, 2)
	is.Equal(r.NumTiles(), 6)

	_, err = r.Take('ð')
	is.True(err != nil)

	blank, err := r.Take(Blank)
	is.NoErr(err)
	is.True(blank.IsBlank())
	is.Equal(blank.Value, 0)

	is.NoErr(r.Add(tile))
	is.Equal(tile.Provenance, InRack)
}

func TestRackHas(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	r, err := RackFromString(ts, "aabbs")
	is.NoErr(err)

	is.True(r.Has("ab"))
	is.True(r.Has("aabb"))
	is.True(!r.Has("abbb"))
	is.True(!r.Has("x"))
}

func TestRackOverflow(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	r, err := RackFromString(ts, "aaaaaaa")
	is.NoErr(err)

	extra, err := NewTile(ts, 's')
	is.NoErr(err)
	is.True(r.Add(extra) != nil)
}

func TestRackSetTiles(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	r := NewRack(ts)
	is.NoErr(r.SetTiles("hústak"))
	is.Equal(r.NumTiles(), 6)
	is.NoErr(r.SetTiles("nn"))
	is.Equal(r.NumTiles(), 2)
}

func TestRackFill(t *testing.T) {
	is := is.New(t)
	ts := NewIcelandic()
	bag := NewBag(ts)
	r := NewRack(ts)
	is.NoErr(r.Fill(bag))
	is.Equal(r.NumTiles(), RackSize)
	is.Equal(bag.TilesRemaining(), ts.NumTiles()-RackSize)
}
