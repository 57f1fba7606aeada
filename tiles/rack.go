package tiles

import (
	"fmt"
	"strings"
)

// A Rack holds the player's tiles that have not yet been committed to
// the board. Tentatively placed tiles are removed from the rack while
// they sit on the board and returned if the player recalls them.
type Rack struct {
	tiles []*Tile
	set   *TileSet
}

// NewRack creates an empty rack for the given tile set.
func NewRack(ts *TileSet) *Rack {
	return &Rack{tiles: make([]*Tile, 0, RackSize), set: ts}
}

// RackFromString creates a rack holding the given letters.
func RackFromString(ts *TileSet, letters string) (*Rack, error) {
	r := NewRack(ts)
	for _, l := range letters {
		t, err := NewTile(ts, l)
		if err != nil {
			return nil, err
		}
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NumTiles returns the number of tiles currently on the rack.
func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

// Tiles returns the tiles on the rack.
func (r *Rack) Tiles() []*Tile {
	return r.tiles
}

// Add puts a tile on the rack.
func (r *Rack) Add(t *Tile) error {
	if len(r.tiles) >= RackSize {
		return fmt.Errorf("rack already holds %d tiles", RackSize)
	}
	t.Provenance = InRack
	t.Meaning = t.Letter
	r.tiles = append(r.tiles, t)
	return nil
}

// Take removes and returns a tile with the given face letter. Use the
// blank marker to take a wildcard.
func (r *Rack) Take(letter rune) (*Tile, error) {
	for i, t := range r.tiles {
		if t.Letter == letter {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return t, nil
		}
	}
	return nil, fmt.Errorf("no tile %q on rack %s", letter, r.String())
}

// Has reports whether every letter of the given string can be taken
// from the rack, counting multiplicity.
func (r *Rack) Has(letters string) bool {
	avail := r.String()
	for _, l := range letters {
		idx := strings.IndexRune(avail, l)
		if idx < 0 {
			return false
		}
		avail = avail[:idx] + avail[idx+len(string(l)):]
	}
	return true
}

// SetTiles replaces the rack contents wholesale, as happens when the
// server confirms a move and sends back the updated rack.
func (r *Rack) SetTiles(letters string) error {
	r.tiles = r.tiles[:0]
	for _, l := range letters {
		t, err := NewTile(r.set, l)
		if err != nil {
			return err
		}
		if err := r.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Fill draws tiles from the bag until the rack is full or the bag is
// empty.
func (r *Rack) Fill(bag *Bag) error {
	drawn, err := bag.DrawAtMost(RackSize - len(r.tiles))
	if err != nil {
		return err
	}
	for _, l := range drawn {
		t, err := NewTile(r.set, l)
		if err != nil {
			return err
		}
		if err := r.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// String returns the rack's face letters as an unsorted string.
func (r *Rack) String() string {
	var sb strings.Builder
	for _, t := range r.tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Display returns the rack's letters in Icelandic collation order.
func (r *Rack) Display() string {
	return SortLetters(r.String())
}
