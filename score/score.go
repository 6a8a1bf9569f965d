// Package score scores found words with the classic Boggle table.
package score

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// MinScoringLength is the shortest word worth any points.
const MinScoringLength = 3

// Word returns the points for word, by its length in letters:
// 3 and 4 letters score 1, 5 score 2, 6 score 3, 7 score 5, and 8 or
// more score 11. Shorter words score nothing.
func Word(word string) int {
	switch n := utf8.RuneCountInString(word); {
	case n < MinScoringLength:
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

// Total is the sum of the scores of words. Repeated words count each time.
func Total(words []string) int {
	return lo.SumBy(words, Word)
}
