package board

// The standard premium-square overlays, stored as digit strings with
// one row per board row. These are fixed for the life of the process
// and shared by all scoring.
var wordMultipliers = [Size]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliers = [Size]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// WordMultiplier returns the word-score multiplier of a square, one of
// 1, 2 or 3.
func WordMultiplier(row, col int) int {
	return int(wordMultipliers[row][col] - '0')
}

// LetterMultiplier returns the letter-score multiplier of a square, one
// of 1, 2 or 3.
func LetterMultiplier(row, col int) int {
	return int(letterMultipliers[row][col] - '0')
}
