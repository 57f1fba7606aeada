package move

import (
	"errors"

	"github.com/halldorb/skraflmotor/board"
	"github.com/halldorb/skraflmotor/tiles"
)

// BingoBonus is awarded for playing the entire rack in one move.
const BingoBonus = 50

// The recoverable reasons a tentative placement does not yet score.
// These are normal states while the player is still arranging tiles;
// callers treat them as "not submittable", not as faults.
var (
	ErrNoCovers         = errors.New("no tiles have been placed")
	ErrNotCollinear     = errors.New("placed tiles are not in a single row or column")
	ErrHasGap           = errors.New("the word has a gap between placed tiles")
	ErrNotConnected     = errors.New("the play does not connect to a tile on the board")
	ErrCenterNotCovered = errors.New("the first play must cover the center square")
)

// ScoreTileMove validates a tentative placement and computes its score.
// The covers are the newly placed tiles (normally from
// board.ExtractPlacements); the board supplies the committed tiles the
// word extends through. On success the returned move carries the main
// word, every word formed (cross words first, main word last) and the
// total score.
//
// Newly placed tiles score letter value × letter multiplier, and their
// word multipliers accumulate over the main word; committed tiles
// contribute their fixed stored value only, since their premiums were
// consumed on the turn they were placed. Each cross word scores once,
// with the pivot square's multipliers applied to the pivot tile alone.
func ScoreTileMove(b *board.Board, covers board.Covers) (*Move, error) {
	if len(covers) == 0 {
		return nil, ErrNoCovers
	}

	minRow, minCol := board.Size, board.Size
	maxRow, maxCol := -1, -1
	for pos := range covers {
		if pos.Row < minRow {
			minRow = pos.Row
		}
		if pos.Row > maxRow {
			maxRow = pos.Row
		}
		if pos.Col < minCol {
			minCol = pos.Col
		}
		if pos.Col > maxCol {
			maxCol = pos.Col
		}
	}
	if minRow != maxRow && minCol != maxCol {
		return nil, ErrNotCollinear
	}

	horizontal := minRow == maxRow
	if len(covers) == 1 {
		// A lone tile is ambiguous: read it as vertical if it extends
		// a word above or below, otherwise as horizontal.
		horizontal = !b.HasTileAt(minRow-1, minCol) && !b.HasTileAt(minRow+1, minCol)
	}
	dRow, dCol := 0, 1
	if !horizontal {
		dRow, dCol = 1, 0
	}

	// Back up over any committed tiles the placement extends, to the
	// true start of the main word.
	row, col := minRow, minCol
	for b.HasTileAt(row-dRow, col-dCol) {
		row -= dRow
		col -= dCol
	}
	startRow, startCol := row, col

	var word []rune
	var crossWords []string
	letterScore := 0
	wordMultiplier := 1
	crossScore := 0
	consumed := 0
	absorbed := false
	coversCenter := false

	for (board.Position{Row: row, Col: col}).InBounds() {
		pos := board.Position{Row: row, Col: col}
		if cover, ok := covers[pos]; ok {
			consumed++
			letterScore += cover.Value * board.LetterMultiplier(row, col)
			wordMultiplier *= board.WordMultiplier(row, col)
			word = append(word, cover.Letter)
			if pos == board.Center {
				coversCenter = true
			}
			if cw, cs := crossWordAt(b, pos, cover, horizontal); cw != "" {
				crossWords = append(crossWords, cw)
				crossScore += cs
			}
		} else if t := b.TileAt(row, col); t != nil {
			absorbed = true
			letterScore += t.Value
			word = append(word, t.Meaning)
		} else {
			break
		}
		row += dRow
		col += dCol
	}

	if consumed != len(covers) {
		// The walk hit an empty square before reaching every cover.
		return nil, ErrHasGap
	}
	if b.IsEmpty() {
		if !coversCenter {
			return nil, ErrCenterNotCovered
		}
	} else if !absorbed && len(crossWords) == 0 {
		return nil, ErrNotConnected
	}

	score := letterScore*wordMultiplier + crossScore
	bingo := len(covers) == tiles.RackSize
	if bingo {
		score += BingoBonus
	}

	main := string(word)
	words := append(crossWords, main)

	return &Move{
		action:     TypePlay,
		covers:     covers,
		coords:     board.MoveCoords(startRow, startCol, horizontal),
		word:       main,
		words:      words,
		score:      score,
		bingo:      bingo,
		horizontal: horizontal,
	}, nil
}

// crossWordAt collects the perpendicular word through a newly placed
// tile, returning the word and its score, or "" if the tile has no
// perpendicular neighbor.
func crossWordAt(b *board.Board, pivot board.Position, cover board.Cover,
	mainHorizontal bool) (string, int) {

	dRow, dCol := 1, 0
	if !mainHorizontal {
		dRow, dCol = 0, 1
	}

	row, col := pivot.Row, pivot.Col
	for b.HasTileAt(row-dRow, col-dCol) {
		row -= dRow
		col -= dCol
	}
	if row == pivot.Row && col == pivot.Col &&
		!b.HasTileAt(pivot.Row+dRow, pivot.Col+dCol) {
		return "", 0
	}

	var word []rune
	score := 0
	for {
		if row == pivot.Row && col == pivot.Col {
			word = append(word, cover.Letter)
			score += cover.Value * board.LetterMultiplier(row, col)
		} else {
			t := b.TileAt(row, col)
			if t == nil {
				break
			}
			word = append(word, t.Meaning)
			score += t.Value
		}
		row += dRow
		col += dCol
		if !(board.Position{Row: row, Col: col}).InBounds() {
			break
		}
	}
	return string(word), score * board.WordMultiplier(pivot.Row, pivot.Col)
}
