package game

import "unicode/utf8"

// DefaultMinWordLength is the shortest word a player may submit unless
// the session is configured otherwise.
const DefaultMinWordLength = 4

// Score returns the point value of a word under the classic table:
// 3 and 4 letters score 1, then 2, 3 and 5 points for 5, 6 and 7
// letters, and 11 points from 8 letters up. Letters are counted, not
// cells; a word through a QU face gets credit for both letters.
func Score(word string) int {
	switch n := utf8.RuneCountInString(word); {
	case n < 3:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}
