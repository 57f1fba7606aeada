package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/halldorb/skraflmotor/board"
	"github.com/halldorb/skraflmotor/move"
	"github.com/halldorb/skraflmotor/tiles"
)

// Player indices within a session. Local is always this client's
// player; the server reports scores in the same order.
const (
	Local    = 0
	Opponent = 1
)

// A HistoryEntry is one committed move, as rendered in the move list.
type HistoryEntry struct {
	Player int
	Coords string
	Word   string
	Score  int
}

// A Session owns the state of one game view: the board, the local
// rack, the move counter, the cumulative scores and the move history.
// What used to be ambient globals in older clients are explicit fields
// here. A session lives for the duration of one game view and is
// overwritten wholesale from server responses.
type Session struct {
	GameID    string
	TileSet   *tiles.TileSet
	Board     *board.Board
	Rack      *tiles.Rack
	moveCount int
	scores    [2]int
	bagCount  int
	history   []HistoryEntry
	over      bool
}

// NewSession creates a fresh session for the given game.
func NewSession(gameID string, ts *tiles.TileSet) *Session {
	return &Session{
		GameID:   gameID,
		TileSet:  ts,
		Board:    board.New(),
		Rack:     tiles.NewRack(ts),
		bagCount: ts.NumTiles(),
	}
}

// MoveCount returns the number of committed moves so far.
func (s *Session) MoveCount() int {
	return s.moveCount
}

// Scores returns the cumulative scores, local player first.
func (s *Session) Scores() (int, int) {
	return s.scores[Local], s.scores[Opponent]
}

// BagCount returns the number of tiles the server reports remaining in
// the bag.
func (s *Session) BagCount() int {
	return s.bagCount
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.over
}

// History returns the committed move list, oldest first.
func (s *Session) History() []HistoryEntry {
	return s.history
}

// PlaceTile moves a tile from the rack onto a board square as part of
// the tentative move. For a blank, meaning gives the letter it stands
// for.
func (s *Session) PlaceTile(pos board.Position, letter, meaning rune) error {
	t, err := s.Rack.Take(letter)
	if err != nil {
		return err
	}
	if t.IsBlank() {
		if err := t.SetMeaning(meaning); err != nil {
			return err
		}
	}
	t.Provenance = tiles.OnBoardTentative
	if err := s.Board.PlaceTile(t, pos); err != nil {
		// Put the tile back; the square was taken or out of range.
		t.Provenance = tiles.InRack
		if addErr := s.Rack.Add(t); addErr != nil {
			return addErr
		}
		return err
	}
	return nil
}

// RecallTile returns one tentative tile from the board to the rack.
func (s *Session) RecallTile(pos board.Position) error {
	t, err := s.Board.RemoveTile(pos)
	if err != nil {
		return err
	}
	return s.Rack.Add(t)
}

// RecallAll returns every tentative tile to the rack.
func (s *Session) RecallAll() error {
	for _, t := range s.Board.RecallTentative() {
		if err := s.Rack.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// TentativeMove extracts the current placement and scores it. The
// error return is the scorer's recoverable condition when the
// placement does not (yet) form a legal move.
func (s *Session) TentativeMove() (*move.Move, error) {
	covers := board.ExtractPlacements(s.Board)
	return move.ScoreTileMove(s.Board, covers)
}

// ExchangeMove builds an exchange descriptor for the given rack
// letters, checking them against the rack and the bag tally. Exchanges
// bypass the scorer entirely.
func (s *Session) ExchangeMove(letters string) (*move.Move, error) {
	n := len([]rune(letters))
	if n < 1 || n > tiles.RackSize {
		return nil, fmt.Errorf("cannot exchange %d tiles", n)
	}
	if s.bagCount < tiles.MinTilesForExchange {
		return nil, fmt.Errorf("exchange not allowed with %d tiles in the bag", s.bagCount)
	}
	if !s.Rack.Has(letters) {
		return nil, fmt.Errorf("rack %s does not hold all of %q", s.Rack.Display(), letters)
	}
	return move.NewExchangeMove(letters), nil
}

// ServerMove is one move as reported by the server in a move response.
// Coords is empty for non-play moves such as passes and exchanges.
type ServerMove struct {
	Player int
	Coords string
	Tiles  string
	Score  int
}

// placeServerTiles lays a confirmed play on the board as committed
// tiles. The tiles string is the full main word; squares that already
// hold a tile are played through, and a blank is encoded as the blank
// marker followed by the letter it stands for.
func (s *Session) placeServerTiles(coords, tileStr string) error {
	row, col, horizontal, err := board.ParseCoords(coords)
	if err != nil {
		return err
	}
	dRow, dCol := 0, 1
	if !horizontal {
		dRow, dCol = 1, 0
	}
	runes := []rune(tileStr)
	for i := 0; i < len(runes); i++ {
		letter := runes[i]
		meaning := letter
		if letter == tiles.Blank && i+1 < len(runes) {
			i++
			meaning = runes[i]
		}
		if !s.Board.HasTileAt(row, col) {
			t, err := tiles.NewTile(s.TileSet, letter)
			if err != nil {
				return err
			}
			if t.IsBlank() {
				if err := t.SetMeaning(meaning); err != nil {
					return err
				}
			}
			if err := s.Board.PlaceTile(t, board.Position{Row: row, Col: col}); err != nil {
				return err
			}
		}
		row += dRow
		col += dCol
	}
	return nil
}

// ApplyUpdate folds a confirmed server response into the session: new
// moves onto the board and the history, the refreshed rack, the bag
// tally and the cumulative scores.
func (s *Session) ApplyUpdate(newMoves []ServerMove, rack string, bagCount int,
	scores [2]int, gameOver bool) error {

	// Our own tentative tiles were either accepted (and come back as a
	// server move) or the update supersedes them; clear them first.
	s.Board.RecallTentative()

	for _, sm := range newMoves {
		if sm.Coords != "" {
			if err := s.placeServerTiles(sm.Coords, sm.Tiles); err != nil {
				return fmt.Errorf("applying server move %s %s: %w", sm.Coords, sm.Tiles, err)
			}
		}
		s.history = append(s.history, HistoryEntry{
			Player: sm.Player,
			Coords: sm.Coords,
			Word:   sm.Tiles,
			Score:  sm.Score,
		})
		s.moveCount++
	}
	if err := s.Rack.SetTiles(rack); err != nil {
		return err
	}
	s.bagCount = bagCount
	s.scores = scores
	s.over = gameOver
	log.Debug().
		Int("moves", s.moveCount).
		Int("bag", s.bagCount).
		Bool("over", s.over).
		Msg("applied server update")
	return nil
}
