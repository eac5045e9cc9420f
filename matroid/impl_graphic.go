// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// impl_graphic.go — the graphic matroid of an undirected graph.
//
// Contract:
//   • The ground set is {1..len(edges)}, labelling edges positionally.
//   • Bases are the edge index sets of spanning forests: acyclic subsets
//     of |V| − #components edges, acyclicity decided by union-find with
//     path compression and union by rank.
//   • Every edge endpoint must occur in the vertex list (ErrMalformed).
//     Self-loops are admitted as input but never enter a basis.
//
// Complexity:
//   • O(C(|E|, f)·f·α(|V|)) for forest size f — exponential in the edge
//     count, matching the brute-force basis enumeration elsewhere.

package matroid

import "fmt"

// Graphic returns the graphic matroid of the graph given by its vertex
// list and edge list. Edge k of the input becomes ground element k+1.
//
// Errors: ErrMalformed for an endpoint missing from the vertex list or
// a repeated vertex label.
func Graphic(vertices []int, edges [][2]int) (*Matroid, error) {
	verts := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if _, dup := verts[v]; dup {
			return nil, fmt.Errorf("Graphic: vertex %d repeated: %w", v, ErrMalformed)
		}
		verts[v] = struct{}{}
	}
	for k, e := range edges {
		if _, ok := verts[e[0]]; !ok {
			return nil, fmt.Errorf("Graphic: edge %d endpoint %d unknown: %w", k+1, e[0], ErrMalformed)
		}
		if _, ok := verts[e[1]]; !ok {
			return nil, fmt.Errorf("Graphic: edge %d endpoint %d unknown: %w", k+1, e[1], ErrMalformed)
		}
	}

	forestSize := len(vertices) - componentCount(vertices, edges)
	bases := make([][]int, 0)
	for _, indices := range allSubsets(len(edges), forestSize) {
		if isForest(indices, edges) {
			bases = append(bases, indices)
		}
	}
	out, err := New(ascendingRun(1, len(edges)), bases, WithValidator(AcceptAllValidator))
	if err != nil {
		return nil, fmt.Errorf("Graphic: %w", err)
	}

	return out, nil
}

// forest is a union-find over vertex labels with path compression and
// union by rank.
type forest struct {
	parent map[int]int
	rank   map[int]int
}

func newForest() *forest {
	return &forest{parent: make(map[int]int), rank: make(map[int]int)}
}

// add registers a vertex as its own component if unseen.
func (f *forest) add(v int) {
	if _, ok := f.parent[v]; !ok {
		f.parent[v] = v
		f.rank[v] = 0
	}
}

// find walks to the root, halving the path as it goes.
func (f *forest) find(v int) int {
	for f.parent[v] != v {
		f.parent[v] = f.parent[f.parent[v]]
		v = f.parent[v]
	}

	return v
}

// union merges the components of u and v; it reports false when they
// already coincide (the joining edge would close a cycle).
func (f *forest) union(u, v int) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	if f.rank[ru] < f.rank[rv] {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	if f.rank[ru] == f.rank[rv] {
		f.rank[ru]++
	}

	return true
}

// isForest reports whether the selected edges (1-based indices into
// edges) contain no cycle.
func isForest(indices []int, edges [][2]int) bool {
	f := newForest()
	for _, k := range indices {
		e := edges[k-1]
		f.add(e[0])
		f.add(e[1])
		if !f.union(e[0], e[1]) {
			return false
		}
	}

	return true
}

// componentCount returns the number of connected components of the full
// graph, isolated vertices included.
func componentCount(vertices []int, edges [][2]int) int {
	f := newForest()
	for _, v := range vertices {
		f.add(v)
	}
	for _, e := range edges {
		f.union(e[0], e[1])
	}
	roots := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		roots[f.find(v)] = struct{}{}
	}

	return len(roots)
}
