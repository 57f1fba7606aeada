package tiles

import "fmt"

// Provenance says where a tile currently lives. The distinction between
// a committed board tile and a tentative one drives both placement
// extraction and scoring: committed tiles contribute their fixed value
// with no multipliers, tentative ones get the full premium treatment.
type Provenance uint8

const (
	InRack Provenance = iota
	OnBoardCommitted
	OnBoardTentative
)

func (p Provenance) String() string {
	switch p {
	case InRack:
		return "rack"
	case OnBoardCommitted:
		return "committed"
	case OnBoardTentative:
		return "tentative"
	}
	return "unknown"
}

// A Tile is a physical playing piece. Letter is the face of the tile
// ('?' for a blank); Meaning is the letter the tile stands for, which
// differs from Letter only for blanks. Value is fixed at creation from
// the tile set and never changes, so a blank stays worth zero wherever
// it ends up.
type Tile struct {
	Letter     rune
	Meaning    rune
	Value      int
	Provenance Provenance
}

// NewTile creates a tile for the given face letter, looking its value
// up in the tile set. Blanks start without a meaning; assign one with
// SetMeaning before placing.
func NewTile(ts *TileSet, letter rune) (*Tile, error) {
	if !ts.Contains(letter) {
		return nil, fmt.Errorf("letter %q is not in the %s tile set", letter, ts.Name)
	}
	return &Tile{
		Letter:  letter,
		Meaning: letter,
		Value:   ts.Score(letter),
	}, nil
}

// SetMeaning assigns the letter a blank tile stands for. It is an error
// to reassign a normal tile.
func (t *Tile) SetMeaning(letter rune) error {
	if t.Letter != Blank {
		return fmt.Errorf("tile %q is not a blank", t.Letter)
	}
	t.Meaning = letter
	return nil
}

// IsBlank returns whether this is a wildcard tile.
func (t *Tile) IsBlank() bool {
	return t.Letter == Blank
}

func (t *Tile) String() string {
	if t.IsBlank() && t.Meaning != Blank {
		return string(Blank) + string(t.Meaning)
	}
	return string(t.Letter)
}
