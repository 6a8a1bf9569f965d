// Package graph builds the undirected cell-adjacency graph of a rectangular
// letter grid.
package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Graph maps each node to the set of its neighbors. Edges are always
// stored in both directions.
type Graph struct {
	adj map[uint32]map[uint32]struct{}
}

func New() *Graph {
	return &Graph{adj: make(map[uint32]map[uint32]struct{})}
}

// AddNode makes sure x is present, even if it has no edges.
func (g *Graph) AddNode(x uint32) {
	if _, ok := g.adj[x]; !ok {
		g.adj[x] = make(map[uint32]struct{})
	}
}

func (g *Graph) addDirectedEdge(x, y uint32) {
	g.AddNode(x)
	g.adj[x][y] = struct{}{}
}

// AddEdge connects x and y in both directions.
func (g *Graph) AddEdge(x, y uint32) {
	g.addDirectedEdge(x, y)
	g.addDirectedEdge(y, x)
}

// Grid returns the king-move graph of a width x height grid whose cells
// are numbered from 0 in row-major order. Every cell is joined to each
// cell sharing an edge or a corner with it.
//
// Each edge is found exactly once, from its upper or left endpoint, by
// scanning forward: right, down-right, down and down-left. Dimensions are
// not checked; zero dimensions give an empty graph.
func Grid(width, height uint32) *Graph {
	g := New()
	if width == 0 || height == 0 {
		return g
	}
	for n := uint32(0); n < width*height; n++ {
		g.AddNode(n)

		right := (n+1)%width != 0
		down := n/width+1 < height
		left := n%width != 0

		if right {
			g.AddEdge(n, n+1)
		}
		if right && down {
			g.AddEdge(n, n+1+width)
		}
		if down {
			g.AddEdge(n, n+width)
		}
		if down && left {
			g.AddEdge(n, n-1+width)
		}
	}
	return g
}

// Neighbors returns the neighbors of x in ascending order.
func (g *Graph) Neighbors(x uint32) []uint32 {
	ns := lo.Keys(g.adj[x])
	slices.Sort(ns)
	return ns
}

func (g *Graph) HasEdge(x, y uint32) bool {
	_, ok := g.adj[x][y]
	return ok
}

func (g *Graph) HasNode(x uint32) bool {
	_, ok := g.adj[x]
	return ok
}

// Nodes returns every node in ascending order.
func (g *Graph) Nodes() []uint32 {
	ns := lo.Keys(g.adj)
	slices.Sort(ns)
	return ns
}

// Len is the number of nodes.
func (g *Graph) Len() int {
	return len(g.adj)
}

func (g *Graph) Degree(x uint32) int {
	return len(g.adj[x])
}

func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for x, ns := range g.adj {
		ons, ok := other.adj[x]
		if !ok || len(ns) != len(ons) {
			return false
		}
		for y := range ns {
			if _, ok := ons[y]; !ok {
				return false
			}
		}
	}
	return true
}

func (g *Graph) String() string {
	var sb strings.Builder
	for _, x := range g.Nodes() {
		fmt.Fprintf(&sb, "%d: %v\n", x, g.Neighbors(x))
	}
	return sb.String()
}
