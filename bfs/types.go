// Package bfs provides tunable options, results and error definitions
// for the level-synchronous parallel breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/internal/telemetry"
	"github.com/katalvlaran/frontier/pool"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVisited is returned when the start node was already claimed
	// before the traversal began. Reset the visited set for a fresh run.
	ErrStartVisited = errors.New("bfs: start node already visited")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation; it is checked once per level.
	Ctx context.Context

	// Pool runs the per-level expansion region.
	Pool *pool.Pool

	// Log receives per-level debug records.
	Log logrus.FieldLogger

	// OnVisit is called for each node as it is emitted, in dequeue order,
	// before its level is expanded. Returning an error aborts BFS.
	OnVisit func(id, depth int) error

	// OnLevel is called once per level after all of its nodes were emitted.
	OnLevel func(depth int, level []int)

	// MaxDepth, if > 0, stops expanding beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false. It runs on pool
	// workers and must be safe for concurrent use.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - a pool with runtime.NumCPU() workers
//   - a discarding logger
//   - no depth limit, no filtering, no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		Pool:           pool.New(),
		Log:            telemetry.Discard(),
		OnVisit:        func(int, int) error { return nil },
		OnLevel:        func(int, []int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPool sets the task pool; pool.Sequential() makes BFS deterministic.
func WithPool(p *pool.Pool) Option {
	return func(o *BFSOptions) {
		if p != nil {
			o.Pool = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *BFSOptions) {
		if log != nil {
			o.Log = log
		}
	}
}

// WithOnVisit registers the emission callback; returning an error from
// it stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnLevel registers a callback that receives each complete level.
// The slice is shared with BFSResult.Levels and must not be modified.
func WithOnLevel(fn func(depth int, level []int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes in emission order.
//   - Levels: Levels[d] holds the nodes at distance d, in emission order.
//   - Depth: map from node ID to its distance (in edges) from the start.
//   - Conflicts: neighbor claims that found the node already visited.
type BFSResult struct {
	Order     []int
	Levels    [][]int
	Depth     map[int]int
	Conflicts int
}
