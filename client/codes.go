package client

// Server result codes for move submissions. Zero means the move was
// accepted; the game-over code is terminal; everything else is an
// error keyed for display.
const (
	ResultLegal                   = 0
	ResultNullMove                = 1
	ResultFirstMoveNotInCenter    = 2
	ResultDisjoint                = 3
	ResultNotAdjacent             = 4
	ResultSquareAlreadyOccupied   = 5
	ResultHasGap                  = 6
	ResultWordNotInDictionary     = 7
	ResultCrossWordNotInDict      = 8
	ResultTooManyTilesPlayed      = 9
	ResultTileNotInRack           = 10
	ResultExchangeNotAllowed      = 11
	ResultTooManyTilesExchanged   = 12
	ResultOutOfSync               = 13
	ResultLoginRequired           = 14
	ResultWrongUser               = 15
	ResultGameNotFound            = 16
	ResultServerError             = 17
	ResultGameOver                = 99
)

var resultMessages = map[int]string{
	ResultNullMove:              "the move is empty",
	ResultFirstMoveNotInCenter:  "the first move must cover the center square",
	ResultDisjoint:              "the placed tiles are not in a single line",
	ResultNotAdjacent:           "the move does not connect to the tiles on the board",
	ResultSquareAlreadyOccupied: "a square in the move is already occupied",
	ResultHasGap:                "there is a gap in the word",
	ResultWordNotInDictionary:   "the word is not in the dictionary",
	ResultCrossWordNotInDict:    "a cross word is not in the dictionary",
	ResultTooManyTilesPlayed:    "too many tiles played",
	ResultTileNotInRack:         "a played tile is not on the rack",
	ResultExchangeNotAllowed:    "too few tiles left in the bag to exchange",
	ResultTooManyTilesExchanged: "too many tiles exchanged",
	ResultOutOfSync:             "the game is out of sync; reload",
	ResultLoginRequired:         "login required",
	ResultWrongUser:             "it is not your turn",
	ResultGameNotFound:          "game not found",
	ResultServerError:           "server error",
}

// ResultMessage returns a display message for a server result code.
func ResultMessage(code int) string {
	if msg, ok := resultMessages[code]; ok {
		return msg
	}
	switch code {
	case ResultLegal:
		return "move accepted"
	case ResultGameOver:
		return "game over"
	}
	return "unexpected server response"
}
