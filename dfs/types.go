// Package dfs defines types and options for batch depth-first traversal,
// including cancellation, emission hooks, depth limiting and neighbor filtering.
package dfs

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/internal/telemetry"
	"github.com/katalvlaran/frontier/pool"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVisited is returned when the start node was already claimed
	// before the traversal began.
	ErrStartVisited = errors.New("dfs: start node already visited")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; it is checked once per pop.
	Ctx context.Context

	// Pool runs the per-pop neighbor claim region.
	Pool *pool.Pool

	// Log receives per-batch debug records.
	Log logrus.FieldLogger

	// OnVisit, if non-nil, is invoked when a node is popped and emitted.
	// Returning an error aborts traversal with that error.
	OnVisit func(id, depth int) error

	// OnBatch, if non-nil, receives the neighbors claimed from a popped
	// node, in push order, after the region joined.
	OnBatch func(from int, batch []int)

	// MaxDepth, if non-negative, limits expansion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before the
	// claim. It runs on pool workers and must be safe for concurrent use.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - a pool with runtime.NumCPU() workers
//   - a discarding logger
//   - No hooks, no depth limit (MaxDepth = -1), no filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		Pool:     pool.New(),
		Log:      telemetry.Discard(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPool sets the task pool; pool.Sequential() makes DFS deterministic.
func WithPool(p *pool.Pool) Option {
	return func(o *DFSOptions) {
		if p != nil {
			o.Pool = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *DFSOptions) {
		if log != nil {
			o.Log = log
		}
	}
}

// WithOnVisit returns an Option that installs fn as the emission hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnBatch returns an Option that observes every pushed batch.
func WithOnBatch(fn func(from int, batch []int)) Option {
	return func(o *DFSOptions) {
		o.OnBatch = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(curr, nbr) == false, that neighbor is not claimed from curr.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a batch depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were popped and emitted.
	Order []int

	// Depth maps each node to the depth of the pop that claimed it
	// (start = 0). It is a batch depth, not a shortest distance.
	Depth map[int]int

	// Batches counts pops whose claim region pushed at least one node.
	Batches int

	// MaxStack is the peak work stack length.
	MaxStack int

	// Conflicts counts neighbor claims that found the node already visited.
	Conflicts int
}
