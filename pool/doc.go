// Package pool provides the explicit fork-join task pool behind every
// parallel region of the traversal engines.
//
// What
//
//   - ForEach(ctx, n, fn) runs fn(i) for every i in [0, n) and returns
//     only after all of them finished: one region, one join.
//   - The index range is split into at most Workers() contiguous chunks,
//     each chunk is one errgroup task.
//   - Regions smaller than the threshold run inline on the caller's
//     goroutine, in index order.
//   - Sequential() returns a pool that always runs inline, giving
//     deterministic behavior for tests and examples.
//
// Errors
//
//   - The first non-nil error returned by fn cancels the group context;
//     chunks still running stop at their next index.
//   - A panicking task is recovered and reported as ErrTaskPanicked.
package pool
