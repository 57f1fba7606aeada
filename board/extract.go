package board

import "github.com/halldorb/skraflmotor/tiles"

// A Cover is one tentatively placed tile: the tile face (the blank
// marker for wildcards), the letter it stands for, and its fixed point
// value. Covers are rebuilt from the board on every recompute and never
// persist across moves.
type Cover struct {
	Tile   rune
	Letter rune
	Value  int
}

// Covers maps board positions to the tiles newly placed this turn.
type Covers map[Position]Cover

// ExtractPlacements scans the board and returns a cover for every
// square holding a tentative tile. Committed tiles are excluded; the
// board is expected to already reflect settled state only (a tile in
// mid-drag is a UI artifact that must not be on the board). Pure read.
func ExtractPlacements(b *Board) Covers {
	covers := make(Covers)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			t := b.TileAt(row, col)
			if t == nil || t.Provenance != tiles.OnBoardTentative {
				continue
			}
			covers[Position{row, col}] = Cover{
				Tile:   t.Letter,
				Letter: t.Meaning,
				Value:  t.Value,
			}
		}
	}
	return covers
}
