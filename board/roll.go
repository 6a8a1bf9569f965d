package board

import (
	"fmt"

	"lukechampine.com/frand"
)

// classicDice are the sixteen dice of the classic 4x4 game. The Qu face
// is written as a plain q, to match lower-case word lists.
var classicDice = []string{
	"aaeegn", "abbjoo", "achops", "affkps",
	"aoottw", "cimotu", "deilrx", "delrvy",
	"distty", "eeghnw", "eeinsu", "ehrtvw",
	"eiosst", "elrtty", "himnuq", "hlnnrz",
}

// Roll returns a random board. The dice are reused as many times as the
// board needs, shaken into random cells, and each shows a random face.
func Roll(width, height int) (*Board, error) {
	if height < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewRows, height)
	}
	if width < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooNarrow, width)
	}
	n := width * height
	dice := make([]string, n)
	for i := range dice {
		dice[i] = classicDice[i%len(classicDice)]
	}
	frand.Shuffle(n, func(i, j int) {
		dice[i], dice[j] = dice[j], dice[i]
	})

	chars := make(map[uint32]rune, n)
	for i, die := range dice {
		faces := []rune(die)
		chars[uint32(i)] = faces[frand.Intn(len(faces))]
	}
	return New(uint32(width), uint32(height), chars), nil
}
