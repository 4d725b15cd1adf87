package aoc

import (
	"sort"
	"strings"
)

// Graph is an unweighted undirected graph over named nodes.
type Graph struct {
	adj map[string][]string
}

func NewGraph() *Graph {
	return &Graph{adj: map[string][]string{}}
}

// ParseGraph reads one "a-b" edge per line.
func ParseGraph(input []byte) (*Graph, error) {
	g := NewGraph()
	for i, l := range NonEmptyLines(input) {
		a, b, ok := strings.Cut(strings.TrimSpace(l), "-")
		if !ok || a == "" || b == "" {
			return nil, Invalidf("line %d: bad edge %q", i+1, l)
		}
		g.AddEdge(a, b)
	}
	return g, nil
}

func (g *Graph) AddEdge(a, b string) {
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

func (g *Graph) Neighbours(n string) []string { return g.adj[n] }

func (g *Graph) Has(n string) bool {
	_, ok := g.adj[n]
	return ok
}

// Nodes returns node names sorted.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
