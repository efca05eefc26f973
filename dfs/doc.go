// Package dfs provides a parallel batch depth-first traversal over a
// core.Graph.
//
// What
//
//   - Work stack seeded with the start node (claimed up front).
//   - Each iteration pops the top node and emits it; this pop is the only
//     point where output order is fixed.
//   - All neighbors of the popped node are claimed in one parallel region
//     on a pool.Pool via core.Graph.TryClaim.
//   - After the region joins, the claimed neighbors are pushed in neighbor
//     order, so the last claimed neighbor is popped next.
//
// This is DFS-flavored, not a recursive preorder: a popped node's
// unvisited neighbors are discovered as one batch, and a node discovered
// early in a batch is not re-discovered deeper in the tree. Every node
// reachable from start is emitted exactly once.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per pop.
//   - WithPool(p)               the region pool; pool.Sequential() is deterministic.
//   - WithLogger(l)             logrus logger for per-batch debug records.
//   - WithOnVisit(fn)           emission hook; error aborts traversal.
//   - WithOnBatch(fn)           observes each pushed batch.
//   - WithMaxDepth(limit)       stops expanding at the given batch depth (>=0).
//   - WithFilterNeighbor(fn)    skip neighbors; return false to skip.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrOutOfRangeNodeID  if start is outside [1, N].
//   - ErrStartVisited           if start is already claimed.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
