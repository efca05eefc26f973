// SPDX-License-Identifier: MIT
//
// Package core defines the Graph Store types, sentinel errors and the
// constructors. Methods live in methods.go, the visited set in visited.go.
package core

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"
)

// DefaultMaxNodes caps the node count NewGraph will allocate for unless
// WithMaxNodes overrides it.
const DefaultMaxNodes = 1 << 24

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeCount indicates a negative node count or one above the
	// graph's node cap.
	ErrInvalidNodeCount = errors.New("core: invalid node count")

	// ErrInvalidInputBounds indicates an edge count that no simple graph on
	// n nodes can have (m < 0 or m > n·(n−1)/2).
	ErrInvalidInputBounds = errors.New("core: edge count exceeds n*(n-1)/2")

	// ErrOutOfRangeNodeID indicates a node ID outside [1, n].
	ErrOutOfRangeNodeID = errors.New("core: node id out of range")

	// ErrLoopNotAllowed indicates a self-loop on a graph built WithStrictEdges.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge on a graph built WithStrictEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxNodes sets the largest n NewGraph accepts. n <= 0 keeps
// DefaultMaxNodes.
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxNodes = n
		}
	}
}

// WithStrictEdges rejects self-loops and parallel edges in AddEdge.
// Without it the graph stores every edge it is given.
func WithStrictEdges() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is an undirected adjacency list over node IDs 1..n.
//
// mu guards adj and m. visited is independently safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	strict   bool // reject loops and parallel edges
	maxNodes int

	n       int     // node count, fixed
	m       int     // edges inserted so far
	adj     [][]int // adj[id] = neighbor IDs in insertion order; adj[0] unused
	visited *VisitedSet
}

// NewGraph creates an empty graph with n nodes and no edges.
// Returns ErrInvalidNodeCount if n < 0 or n exceeds the node cap; nothing
// is allocated in that case.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNodeCount, n)
	}
	g := &Graph{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(g)
	}
	if n > g.maxNodes {
		return nil, fmt.Errorf("%w: %d exceeds cap %d", ErrInvalidNodeCount, n, g.maxNodes)
	}
	g.n = n
	g.adj = make([][]int, n+1)
	g.visited = NewVisitedSet(n)

	return g, nil
}

// NewGraphFromEdges validates len(edges) against n before inserting any
// edge, then adds every edge in order. The first failing edge aborts
// construction.
// Complexity: O(n + m).
func NewGraphFromEdges(n int, edges [][2]int, opts ...GraphOption) (*Graph, error) {
	if err := ValidateEdgeCount(n, len(edges)); err != nil {
		return nil, err
	}
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("core: edge #%d: %w", i+1, err)
		}
	}

	return g, nil
}

// ValidateEdgeCount reports whether m edges fit a simple undirected graph
// on n nodes. It is meant to run before any edge is read.
func ValidateEdgeCount(n, m int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNodeCount, n)
	}
	if m < 0 {
		return fmt.Errorf("%w: n=%d m=%d", ErrInvalidInputBounds, n, m)
	}
	if n < 2 {
		if m > 0 {
			return fmt.Errorf("%w: n=%d m=%d max=0", ErrInvalidInputBounds, n, m)
		}
		return nil
	}
	// n·(n−1) as a 128-bit product; it is even, so m fits iff 2m <= it.
	hi, lo := bits.Mul64(uint64(n), uint64(n-1))
	if hi == 0 && 2*uint64(m) > lo {
		return fmt.Errorf("%w: n=%d m=%d max=%d", ErrInvalidInputBounds, n, m, lo/2)
	}

	return nil
}
