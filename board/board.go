package board

import (
	"errors"
	"strings"

	"github.com/halldorb/skraflmotor/tiles"
)

// Size is the dimension of the (square) board.
const Size = 15

// Center is the starting square that the first play must cover.
var Center = Position{Row: 7, Col: 7}

var (
	ErrOutOfBounds  = errors.New("position is off the board")
	ErrSquareInUse  = errors.New("square already holds a tile")
	ErrEmptySquare  = errors.New("square holds no tile")
	ErrNotTentative = errors.New("square holds a committed tile")
)

// A Position is a 0-based square coordinate.
type Position struct {
	Row, Col int
}

// InBounds reports whether the position is on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// A Board is the 15×15 grid of squares. Each square holds at most one
// tile; a tile is either committed (confirmed by the server on a
// previous move) or tentative (placed from the rack this turn). The
// premium overlays live in layout.go and are not part of board state.
type Board struct {
	squares   [Size][Size]*tiles.Tile
	committed int
	tentative int
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// TileAt returns the tile on the given square, or nil.
func (b *Board) TileAt(row, col int) *tiles.Tile {
	if !(Position{row, col}).InBounds() {
		return nil
	}
	return b.squares[row][col]
}

// HasTileAt reports whether the given square holds a tile. Out-of-range
// positions count as empty, which lets word walkers run off the edge
// without bounds checks at every call site.
func (b *Board) HasTileAt(row, col int) bool {
	return b.TileAt(row, col) != nil
}

// PlaceTile puts a tile on a square. The tile keeps the provenance the
// caller gave it; placing from the rack should mark it tentative first.
func (b *Board) PlaceTile(t *tiles.Tile, pos Position) error {
	if !pos.InBounds() {
		return ErrOutOfBounds
	}
	if b.squares[pos.Row][pos.Col] != nil {
		return ErrSquareInUse
	}
	b.squares[pos.Row][pos.Col] = t
	if t.Provenance == tiles.OnBoardTentative {
		b.tentative++
	} else {
		t.Provenance = tiles.OnBoardCommitted
		b.committed++
	}
	return nil
}

// RemoveTile takes a tentative tile off a square and returns it, as
// when the player drags a tile back to the rack. Committed tiles
// cannot be removed.
func (b *Board) RemoveTile(pos Position) (*tiles.Tile, error) {
	if !pos.InBounds() {
		return nil, ErrOutOfBounds
	}
	t := b.squares[pos.Row][pos.Col]
	if t == nil {
		return nil, ErrEmptySquare
	}
	if t.Provenance != tiles.OnBoardTentative {
		return nil, ErrNotTentative
	}
	b.squares[pos.Row][pos.Col] = nil
	b.tentative--
	return t, nil
}

// IsEmpty reports whether the board holds no committed tiles, meaning
// the next play is the game's first move. Tentative tiles do not count.
func (b *Board) IsEmpty() bool {
	return b.committed == 0
}

// NumTentative returns the number of tentatively placed tiles.
func (b *Board) NumTentative() int {
	return b.tentative
}

// Commit marks every tentative tile as committed, as happens when the
// server accepts the move.
func (b *Board) Commit() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			t := b.squares[row][col]
			if t != nil && t.Provenance == tiles.OnBoardTentative {
				t.Provenance = tiles.OnBoardCommitted
				b.tentative--
				b.committed++
			}
		}
	}
}

// RecallTentative removes every tentative tile from the board and
// returns them, in no particular order, so they can go back on the
// rack.
func (b *Board) RecallTentative() []*tiles.Tile {
	var recalled []*tiles.Tile
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			t := b.squares[row][col]
			if t != nil && t.Provenance == tiles.OnBoardTentative {
				b.squares[row][col] = nil
				b.tentative--
				recalled = append(recalled, t)
			}
		}
	}
	return recalled
}

// Clear removes every tile from the board.
func (b *Board) Clear() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.squares[row][col] = nil
		}
	}
	b.committed = 0
	b.tentative = 0
}

// PlaceWord lays a committed word on the board starting at the given
// wire coordinate, skipping squares that already hold a tile. Mostly a
// convenience for tests and for mirroring confirmed server moves.
func (b *Board) PlaceWord(ts *tiles.TileSet, coords, word string) error {
	row, col, horizontal, err := ParseCoords(coords)
	if err != nil {
		return err
	}
	dRow, dCol := 0, 1
	if !horizontal {
		dRow, dCol = 1, 0
	}
	for _, letter := range word {
		if !b.HasTileAt(row, col) {
			t, err := tiles.NewTile(ts, letter)
			if err != nil {
				return err
			}
			if err := b.PlaceTile(t, Position{row, col}); err != nil {
				return err
			}
		}
		row += dRow
		col += dCol
	}
	return nil
}

// String renders the board for terminal display. Tentative tiles show
// in upper case.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 1; col <= Size; col++ {
		sb.WriteString(" " + string(rune('0'+col%10)))
	}
	sb.WriteString("\n")
	for row := 0; row < Size; row++ {
		sb.WriteString(" " + string(RowLetters[row]) + " ")
		for col := 0; col < Size; col++ {
			t := b.squares[row][col]
			switch {
			case t == nil:
				sb.WriteString(" .")
			case t.Provenance == tiles.OnBoardTentative:
				sb.WriteString(" " + strings.ToUpper(string(t.Meaning)))
			default:
				sb.WriteString(" " + string(t.Meaning))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
