// Package bfs provides a level-synchronous parallel breadth-first search
// over a core.Graph, streaming the visit order as it is produced.
//
// What
//
//   - Explore nodes level by level from a start node.
//   - Each round drains the entire frontier into one level, emits that level
//     in dequeue order, then expands all of its nodes in one parallel region
//     on a pool.Pool. The region joins before the next level starts, so two
//     levels never mix.
//   - Discovery uses core.Graph.TryClaim: a neighbor is appended to the next
//     level by exactly one worker and is never lost.
//   - Returns a BFSResult containing:
//   - Order:  emission sequence
//   - Levels: nodes per distance
//   - Depth:  map from node → distance (edges) from start
//   - Hooks:
//   - OnVisit (each node as it is emitted; may abort with an error)
//   - OnLevel (each complete level)
//
// Determinism
//
//	Emission order inside a level is the dequeue order. The next level is
//	built from one slot per source node, concatenated in level order, with
//	neighbors in insertion order. With pool.Sequential() the whole run is
//	reproducible. With more workers, a neighbor shared by two sources of the
//	same level lands in whichever source's slot claimed it first: the set of
//	each level is fixed, the position inside the level is not.
//
// Visited state
//
//	BFS never resets the graph's visited set. The caller resets it before a
//	fresh traversal; the component sweep deliberately does not.
//
// Complexity (V = reachable nodes, E = their incident edges, P = workers)
//
//   - Time:   O((V + E) / P + D) with D = number of levels
//   - Memory: O(V) for frontier, levels and depth map
//
// Usage
//
//	g.ResetVisited()
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithPool(pool.New(pool.WithWorkers(8))),
//	    bfs.WithOnVisit(func(id, depth int) error { fmt.Print(id, " "); return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - core.ErrOutOfRangeNodeID if start is outside [1, N].
//   - ErrStartVisited        if start is already claimed.
//   - ErrOptionViolation     for a negative MaxDepth.
//   - context errors         if Ctx is cancelled between levels.
//   - Wrapped OnVisit errors.
package bfs
