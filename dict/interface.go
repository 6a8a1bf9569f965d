package dict

// NodeIdx addresses a node in a word graph. The zero value is not
// necessarily the root; always start from Root().
type NodeIdx uint32

// WordGraph is what a board search needs from a word structure: a way to
// follow one letter from a node, and whether a node completes a word.
type WordGraph interface {
	Root() NodeIdx
	Next(node NodeIdx, r rune) (NodeIdx, bool)
	IsWordEnd(node NodeIdx) bool
}
