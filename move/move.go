package move

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halldorb/skraflmotor/board"
	"github.com/halldorb/skraflmotor/tiles"
)

// Type is a kind of move: a tile play, an exchange, a pass, a
// resignation, or a challenge of the opponent's last move.
type Type uint8

const (
	TypePlay Type = iota
	TypeExchange
	TypePass
	TypeResign
	TypeChallenge
)

// Wire tokens for the non-play move types.
const (
	wirePass      = "pass"
	wireExchange  = "exch="
	wireResign    = "rsgn"
	wireChallenge = "chall"
)

// A Move is a move descriptor plus, for tile plays, the scoring result.
// Tile plays are produced by ScoreTileMove; the other types have
// trivial constructors. A Move is immutable once built.
type Move struct {
	action     Type
	covers     board.Covers
	coords     string
	word       string
	words      []string
	score      int
	bingo      bool
	horizontal bool
	letters    string
}

// NewPassMove creates a pass.
func NewPassMove() *Move {
	return &Move{action: TypePass}
}

// NewExchangeMove creates an exchange of the given rack letters.
func NewExchangeMove(letters string) *Move {
	return &Move{action: TypeExchange, letters: letters}
}

// NewResignMove creates a resignation.
func NewResignMove() *Move {
	return &Move{action: TypeResign}
}

// NewChallengeMove creates a challenge of the last move.
func NewChallengeMove() *Move {
	return &Move{action: TypeChallenge}
}

// Action returns the move type.
func (m *Move) Action() Type {
	return m.action
}

// Score returns the total score of a tile play; zero for every other
// move type.
func (m *Move) Score() int {
	return m.score
}

// Word returns the main word of a tile play.
func (m *Move) Word() string {
	return m.word
}

// Words returns every word the play formed, cross words first and the
// main word last. Consumers depend on that ordering.
func (m *Move) Words() []string {
	return m.words
}

// Coords returns the wire coordinate of the word start, encoding the
// play's axis.
func (m *Move) Coords() string {
	return m.coords
}

// TilesPlayed returns the number of tiles the move placed or exchanged.
func (m *Move) TilesPlayed() int {
	if m.action == TypeExchange {
		return len([]rune(m.letters))
	}
	return len(m.covers)
}

// IsBingo reports whether the play used the entire rack.
func (m *Move) IsBingo() bool {
	return m.bingo
}

// Wire returns the move as the list of strings the server expects: one
// "<coord>=<tile>" entry per placed tile (blanks as "?x"), or a single
// token for the other move types.
func (m *Move) Wire() []string {
	switch m.action {
	case TypePass:
		return []string{wirePass}
	case TypeExchange:
		return []string{wireExchange + m.letters}
	case TypeResign:
		return []string{wireResign}
	case TypeChallenge:
		return []string{wireChallenge}
	}
	positions := make([]board.Position, 0, len(m.covers))
	for pos := range m.covers {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	entries := make([]string, len(positions))
	for i, pos := range positions {
		cover := m.covers[pos]
		tile := string(cover.Tile)
		if cover.Tile == tiles.Blank {
			tile += string(cover.Letter)
		}
		entries[i] = board.Coords(pos.Row, pos.Col) + "=" + tile
	}
	return entries
}

// ShortDescription provides a short description for logging and move
// history.
func (m *Move) ShortDescription() string {
	switch m.action {
	case TypePlay:
		return fmt.Sprintf("%s %s %d", m.coords, m.word, m.score)
	case TypePass:
		return "(pass)"
	case TypeExchange:
		return fmt.Sprintf("(exch %s)", m.letters)
	case TypeResign:
		return "(resign)"
	case TypeChallenge:
		return "(challenge)"
	}
	return "(unknown)"
}

func (m *Move) String() string {
	if m.action == TypePlay {
		return fmt.Sprintf("<play %s %s score: %d words: %s>",
			m.coords, m.word, m.score, strings.Join(m.words, ","))
	}
	return "<" + m.ShortDescription() + ">"
}
