// Package core: Graph method implementations.
//
// Structural methods take mu; visited-state methods delegate to the
// lock-free VisitedSet and never touch mu.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v}: v is appended to u's
// neighbor sequence and u to v's. No duplicate detection is performed
// unless the graph is strict. A self-loop appends u to its own sequence twice.
// Returns ErrOutOfRangeNodeID if either endpoint lies outside [1, n].
// Complexity: O(1) amortized, O(deg(u)) on strict graphs.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkID(u); err != nil {
		return err
	}
	if err := g.checkID(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.strict {
		if u == v {
			return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
		}
		for _, w := range g.adj[u] {
			if w == v {
				return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, u, v)
			}
		}
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.m++

	return nil
}

// Neighbors returns a copy of id's neighbor sequence in insertion order.
// Complexity: O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if err := g.checkID(id); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// Degree returns the length of id's neighbor sequence (loops count twice).
func (g *Graph) Degree(id int) (int, error) {
	if err := g.checkID(id); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[id]), nil
}

// HasNode reports whether id lies in [1, n].
func (g *Graph) HasNode(id int) bool {
	return id >= 1 && id <= g.n
}

// IsIsolated reports whether id has no neighbors. Out-of-range IDs are
// reported as isolated.
func (g *Graph) IsIsolated(id int) bool {
	d, err := g.Degree(id)
	return err != nil || d == 0
}

// Order returns the node count n.
func (g *Graph) Order() int {
	return g.n
}

// Size returns the number of edges inserted so far.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m
}

// Nodes returns 1..n in increasing order.
func (g *Graph) Nodes() []int {
	ids := make([]int, g.n)
	for i := range ids {
		ids[i] = i + 1
	}

	return ids
}

// Visited exposes the graph's visited set.
func (g *Graph) Visited() *VisitedSet {
	return g.visited
}

// ResetVisited marks every node unvisited. Callers must not run it while
// a traversal over g is in flight.
// Complexity: O(n).
func (g *Graph) ResetVisited() {
	g.visited.Reset()
}

// TryClaim atomically marks id visited and reports whether this call did it.
// Out-of-range IDs are never claimable.
func (g *Graph) TryClaim(id int) bool {
	return g.visited.TryClaim(id)
}

// IsVisited reports whether id has been claimed.
func (g *Graph) IsVisited(id int) bool {
	return g.visited.IsClaimed(id)
}

// checkID returns ErrOutOfRangeNodeID wrapped with the offending id and range.
func (g *Graph) checkID(id int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRangeNodeID, id, g.n)
	}

	return nil
}
