// Package core provides the Graph Store consumed by the traversal engines:
// a dynamically sized, undirected adjacency list over node IDs 1..N and a
// lock-free visited set.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Node IDs are integers in [1, N]; N is fixed at construction.
//   - AddEdge(u, v) appends v to u's neighbor sequence and u to v's.
//     Parallel edges and self-loops are stored as given unless the graph
//     was built WithStrictEdges().
//   - Neighbor sequences keep insertion order, so traversals over a fixed
//     input are reproducible when run sequentially.
//   - The visited set is a []atomic.Bool; TryClaim is the only way a
//     traversal marks a node, and exactly one caller wins each node.
//
// Input validation:
//
//	ValidateEdgeCount(n, m)   // m must satisfy 0 ≤ m ≤ n·(n−1)/2
//	AddEdge(u, v)             // both endpoints must lie in [1, n]
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)
//	NewGraphFromEdges(n int, edges [][2]int, opts ...GraphOption) (*Graph, error)
//	AddEdge(u, v int) error              // O(1) amortized
//	Neighbors(id int) ([]int, error)     // O(d) copy, insertion order
//	Degree(id int) (int, error)          // O(1)
//	IsIsolated(id int) bool              // O(1), zero neighbors
//	Order() int / Size() int             // N / edges inserted
//
//	// Visited state
//	TryClaim(id int) bool                // atomic unvisited → visited
//	IsVisited(id int) bool
//	ResetVisited()                       // O(N)
//
// Concurrency:
//
//	Adjacency is guarded by a sync.RWMutex: AddEdge takes the write lock,
//	queries take the read lock. The visited set needs no lock at all.
//	Structure must not change while a traversal runs; only visited flags do.
//
// Errors:
//
//	ErrInvalidNodeCount    – negative node count
//	ErrInvalidInputBounds  – edge count outside [0, n·(n−1)/2]
//	ErrOutOfRangeNodeID    – node ID outside [1, n]
//	ErrLoopNotAllowed      – self-loop on a strict graph
//	ErrMultiEdgeNotAllowed – parallel edge on a strict graph
package core
