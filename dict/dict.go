// Package dict holds the prefix tree that board searches are pruned with.
package dict

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

const rootIdx NodeIdx = 0

type node struct {
	end      bool
	children map[rune]NodeIdx
}

// Dict is a prefix tree keyed by rune. Nodes live in a single slice and
// refer to their children by index; node 0 is the root. Nodes are created
// the first time a prefix is inserted and are never removed.
type Dict struct {
	nodes    []node
	numWords int

	// fingerprint is valid while hasFingerprint is set; AddWord clears it.
	fingerprint    uint64
	hasFingerprint bool
}

// New returns an empty tree: a root that is not a word end and has no
// children.
func New() *Dict {
	return &Dict{nodes: []node{{}}}
}

// FromWords builds a tree holding every word in words. The resulting shape
// does not depend on the order of words.
func FromWords(words []string) *Dict {
	d := New()
	for _, w := range words {
		d.AddWord(w)
	}
	return d
}

// addArc returns the child of from for r, creating it if it does not
// exist yet.
func (d *Dict) addArc(from NodeIdx, r rune) NodeIdx {
	if next, ok := d.nodes[from].children[r]; ok {
		return next
	}
	next := NodeIdx(len(d.nodes))
	d.nodes = append(d.nodes, node{})
	// Index again: the append may have moved the slice.
	if d.nodes[from].children == nil {
		d.nodes[from].children = make(map[rune]NodeIdx)
	}
	d.nodes[from].children[r] = next
	return next
}

// AddWord inserts word. Adding a word twice is a no-op. The empty word
// marks the root itself as a word end.
func (d *Dict) AddWord(word string) *Dict {
	cur := rootIdx
	for _, r := range word {
		cur = d.addArc(cur, r)
	}
	if !d.nodes[cur].end {
		d.nodes[cur].end = true
		d.numWords++
		d.hasFingerprint = false
	}
	return d
}

func (d *Dict) Root() NodeIdx {
	return rootIdx
}

func (d *Dict) Next(n NodeIdx, r rune) (NodeIdx, bool) {
	next, ok := d.nodes[n].children[r]
	return next, ok
}

func (d *Dict) IsWordEnd(n NodeIdx) bool {
	return d.nodes[n].end
}

// walk follows s from the root. It returns false if some prefix of s is
// missing from the tree.
func (d *Dict) walk(s string) (NodeIdx, bool) {
	cur := rootIdx
	for _, r := range s {
		next, ok := d.Next(cur, r)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Has returns whether word was added.
func (d *Dict) Has(word string) bool {
	n, ok := d.walk(word)
	return ok && d.IsWordEnd(n)
}

// HasPrefix returns whether some added word starts with prefix.
func (d *Dict) HasPrefix(prefix string) bool {
	_, ok := d.walk(prefix)
	return ok
}

func (d *Dict) NumWords() int {
	return d.numWords
}

func (d *Dict) NumNodes() int {
	return len(d.nodes)
}

func (d *Dict) sortedChildren(n NodeIdx) []rune {
	keys := lo.Keys(d.nodes[n].children)
	slices.Sort(keys)
	return keys
}

// Words returns every stored word, ordered rune by rune.
func (d *Dict) Words() []string {
	words := make([]string, 0, d.numWords)
	var prefix []rune
	var visit func(n NodeIdx)
	visit = func(n NodeIdx) {
		if d.nodes[n].end {
			words = append(words, string(prefix))
		}
		for _, r := range d.sortedChildren(n) {
			prefix = append(prefix, r)
			visit(d.nodes[n].children[r])
			prefix = prefix[:len(prefix)-1]
		}
	}
	visit(rootIdx)
	return words
}

// Fingerprint identifies the set of words stored, independent of the
// order they were added in. It is computed once and kept until the next
// AddWord that adds a new word. A Dict shared between goroutines must have
// its fingerprint computed before it is shared; Get and Builtin do this.
func (d *Dict) Fingerprint() uint64 {
	if d.hasFingerprint {
		return d.fingerprint
	}
	h := xxhash.New()
	for _, w := range d.Words() {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	d.fingerprint = h.Sum64()
	d.hasFingerprint = true
	return d.fingerprint
}

// Equal reports whether d and other have the same shape: the same
// children under the same runes and the same word ends.
func (d *Dict) Equal(other *Dict) bool {
	var eq func(a, b NodeIdx) bool
	eq = func(a, b NodeIdx) bool {
		na, nb := d.nodes[a], other.nodes[b]
		if na.end != nb.end || len(na.children) != len(nb.children) {
			return false
		}
		for r, ca := range na.children {
			cb, ok := nb.children[r]
			if !ok || !eq(ca, cb) {
				return false
			}
		}
		return true
	}
	return eq(rootIdx, rootIdx)
}

func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteString("Dict{")
	for i, w := range d.Words() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}
	sb.WriteByte('}')
	return sb.String()
}
