package tiles

import (
	"fmt"

	"lukechampine.com/frand"
)

// MinTilesForExchange is the number of tiles that must remain in the
// bag for an exchange move to be allowed.
const MinTilesForExchange = RackSize

// A Bag is the pool of undrawn tiles. The authoritative bag lives on
// the server; this one supports local play in the shell and tests, and
// tracks the remaining-tile tally mirrored from server responses.
type Bag struct {
	tiles []rune
	set   *TileSet
}

// NewBag creates a full, shuffled bag from the given tile set.
func NewBag(ts *TileSet) *Bag {
	b := &Bag{tiles: ts.FullBag(), set: ts}
	b.Shuffle()
	return b
}

// Shuffle randomizes the order of the remaining tiles.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws exactly n tiles from the bag.
func (b *Bag) Draw(n int) ([]rune, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %d tiles, bag has %d", n, len(b.tiles))
	}
	drawn := make([]rune, n)
	for i := 0; i < n; i++ {
		idx := frand.Intn(len(b.tiles))
		drawn[i] = b.tiles[idx]
		b.tiles[idx] = b.tiles[len(b.tiles)-1]
		b.tiles = b.tiles[:len(b.tiles)-1]
	}
	return drawn, nil
}

// DrawAtMost draws up to n tiles, fewer if the bag is running out.
func (b *Bag) DrawAtMost(n int) ([]rune, error) {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	return b.Draw(n)
}

// ReturnTiles puts exchanged tiles back in the bag.
func (b *Bag) ReturnTiles(letters []rune) {
	b.tiles = append(b.tiles, letters...)
	b.Shuffle()
}

// TilesRemaining returns the number of undrawn tiles.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// ExchangeAllowed reports whether enough tiles remain for an exchange
// move.
func (b *Bag) ExchangeAllowed() bool {
	return len(b.tiles) >= MinTilesForExchange
}
