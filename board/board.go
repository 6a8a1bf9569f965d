package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/domino14/wordsearch/graph"
)

var (
	ErrTooFewRows = errors.New("must have at least two rows")
	ErrUnevenRows = errors.New("all rows must be the same width")
	ErrTooNarrow  = errors.New("must have at least two columns")
)

// UnknownChar is what PathToWord prints for a cell the board does not have.
const UnknownChar = '?'

// A Path is one occurrence of a word on the board: the ids of the cells
// it uses, in order. No cell appears twice and consecutive cells are
// adjacent.
type Path []uint32

// A Board is a grid of letters. Cells are numbered from 0 in row-major
// order: row 0 left to right, then row 1, and so on. Boards do not change
// once built.
type Board struct {
	width  uint32
	height uint32
	grid   *graph.Graph
	chars  map[uint32]rune

	// neighbors[id] is grid.Neighbors(id), computed once for the search.
	neighbors [][]uint32
}

// New builds a board of the given dimensions. chars should hold one rune
// for every cell id in [0, width*height).
func New(width, height uint32, chars map[uint32]rune) *Board {
	b := &Board{
		width:  width,
		height: height,
		grid:   graph.Grid(width, height),
		chars:  chars,
	}
	b.neighbors = make([][]uint32, width*height)
	for _, n := range b.grid.Nodes() {
		b.neighbors[n] = b.grid.Neighbors(n)
	}
	return b
}

// ParseBoard reads a board from whitespace-separated rows, e.g.
// "abc def ghi" for a 3x3 board. There must be at least two rows, all of
// the same width, and that width must be at least two.
func ParseBoard(s string) (*Board, error) {
	rows := strings.Fields(s)
	height := len(rows)

	if height < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewRows, height)
	}

	width := utf8.RuneCountInString(rows[0])
	for _, row := range rows[1:] {
		if w := utf8.RuneCountInString(row); w != width {
			return nil, fmt.Errorf("%w (%q has %d, %q has %d)", ErrUnevenRows,
				rows[0], width, row, w)
		}
	}
	if width < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooNarrow, width)
	}

	chars := make(map[uint32]rune, width*height)
	id := uint32(0)
	for _, row := range rows {
		for _, r := range row {
			chars[id] = r
			id++
		}
	}
	return New(uint32(width), uint32(height), chars), nil
}

func (b *Board) Width() uint32 {
	return b.width
}

func (b *Board) Height() uint32 {
	return b.height
}

// Size is the number of cells.
func (b *Board) Size() int {
	return int(b.width * b.height)
}

func (b *Board) Grid() *graph.Graph {
	return b.grid
}

func (b *Board) Char(id uint32) (rune, bool) {
	r, ok := b.chars[id]
	return r, ok
}

// PathToWord spells out p. Cells missing from the board come out as
// UnknownChar.
func (b *Board) PathToWord(p Path) string {
	var sb strings.Builder
	for _, id := range p {
		r, ok := b.chars[id]
		if !ok {
			r = UnknownChar
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ValidPath returns whether p is non-empty, stays on the board, never
// repeats a cell, and only steps between adjacent cells.
func (b *Board) ValidPath(p Path) bool {
	if len(p) == 0 {
		return false
	}
	seen := make(map[uint32]bool, len(p))
	for i, id := range p {
		if !b.grid.HasNode(id) || seen[id] {
			return false
		}
		seen[id] = true
		if i > 0 && !b.grid.HasEdge(p[i-1], id) {
			return false
		}
	}
	return true
}

// Rows returns the board's rows, top to bottom.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	for r := uint32(0); r < b.height; r++ {
		var sb strings.Builder
		for c := uint32(0); c < b.width; c++ {
			ch, ok := b.chars[r*b.width+c]
			if !ok {
				ch = UnknownChar
			}
			sb.WriteRune(ch)
		}
		rows[r] = sb.String()
	}
	return rows
}

// String returns the board in the form ParseBoard reads.
func (b *Board) String() string {
	return strings.Join(b.Rows(), " ")
}

// Display returns the board laid out as a grid, one row per line.
func (b *Board) Display() string {
	var sb strings.Builder
	for _, row := range b.Rows() {
		for i, r := range []rune(row) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height ||
		len(b.chars) != len(other.chars) || !b.grid.Equal(other.grid) {
		return false
	}
	for id, r := range b.chars {
		if or, ok := other.chars[id]; !ok || or != r {
			return false
		}
	}
	return true
}
