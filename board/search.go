package board

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/dict"
)

type searcher struct {
	board   *Board
	words   dict.WordGraph
	path    Path
	visited []bool
	results []Path
}

// Search returns every path on the board that spells a word in words.
// Paths are distinct, but several paths can spell the same word.
//
// Starting cells are tried in id order. From each cell the search only
// goes on while the letters so far are a prefix in words, and never steps
// onto a cell already in the current path.
func (b *Board) Search(words dict.WordGraph) []Path {
	s := &searcher{
		board:   b,
		words:   words,
		path:    make(Path, 0, b.Size()),
		visited: make([]bool, b.Size()),
	}
	for _, pos := range b.grid.Nodes() {
		s.step(pos, words.Root())
	}
	log.Debug().Uint32("width", b.width).Uint32("height", b.height).
		Int("num-paths", len(s.results)).Msg("search-done")
	return s.results
}

// step extends the current path with pos, if that keeps it a prefix. Paths
// found further along are recorded before the path ending at pos.
func (s *searcher) step(pos uint32, node dict.NodeIdx) {
	c, ok := s.board.chars[pos]
	if !ok {
		return
	}
	next, ok := s.words.Next(node, c)
	if !ok {
		return
	}

	s.path = append(s.path, pos)
	s.visited[pos] = true

	for _, n := range s.board.neighbors[pos] {
		if !s.visited[n] {
			s.step(n, next)
		}
	}
	if s.words.IsWordEnd(next) {
		s.results = append(s.results, slices.Clone(s.path))
	}

	s.visited[pos] = false
	s.path = s.path[:len(s.path)-1]
}
