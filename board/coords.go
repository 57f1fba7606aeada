package board

import (
	"fmt"
	"regexp"
	"strconv"
)

// RowLetters maps board rows 0..14 to their display letters.
const RowLetters = "ABCDEFGHIJKLMNO"

// The wire format signals the move axis through the position of the
// row letter: "H8" is row H, column 8, horizontal; "8H" is the same
// square read vertically. There is no separate direction field, so
// this asymmetry must be reproduced exactly.
var (
	reHorizontal = regexp.MustCompile(`^(?P<row>[A-O])(?P<col>[0-9]+)$`)
	reVertical   = regexp.MustCompile(`^(?P<col>[0-9]+)(?P<row>[A-O])$`)
)

// Coords converts a square to its canonical (horizontal) coordinate
// string: row letter followed by the 1-based column number.
func Coords(row, col int) string {
	return string(RowLetters[row]) + strconv.Itoa(col+1)
}

// MoveCoords converts the starting square and axis of a play to its
// wire coordinate string.
func MoveCoords(row, col int, horizontal bool) string {
	rowCoords := string(RowLetters[row])
	colCoords := strconv.Itoa(col + 1)
	if horizontal {
		return rowCoords + colCoords
	}
	return colCoords + rowCoords
}

// ParseCoords decodes a coordinate string into a 0-based row and
// column plus the axis it encodes.
func ParseCoords(coords string) (row, col int, horizontal bool, err error) {
	if m := reHorizontal.FindStringSubmatch(coords); m != nil {
		row = int(m[1][0] - 'A')
		col, err = parseCol(m[2])
		return row, col, true, err
	}
	if m := reVertical.FindStringSubmatch(coords); m != nil {
		row = int(m[2][0] - 'A')
		col, err = parseCol(m[1])
		return row, col, false, err
	}
	return 0, 0, false, fmt.Errorf("malformed coordinate %q", coords)
}

func parseCol(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > Size {
		return 0, fmt.Errorf("column %d out of range", n)
	}
	return n - 1, nil
}
