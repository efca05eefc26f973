// Package dfs implements batch depth-first traversal on core.Graph.
//
// Each iteration pops one node, emits it, claims all of its unvisited
// neighbors in one parallel region, and pushes the claimed batch onto the
// work stack after the region joins. The result is stack-disciplined but
// is not a recursive preorder: siblings are discovered together.
package dfs

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/internal/telemetry"
)

const strategyLabel = "dfs"

var tracer = telemetry.Tracer("frontier/dfs")

// stackItem pairs a node with the depth at which it was claimed.
type stackItem struct {
	id    int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	ctx   context.Context
	stack []stackItem
	res   *DFSResult
}

// DFS performs batch depth-first traversal on g from start.
// The visited set of g is not reset: only nodes unclaimed at call time can
// be discovered.
// Returns DFSResult or an error for invalid input, cancellation, or a hook abort.
// A context that is already done on entry leaves g untouched; a mid-run
// abort leaves the stacked nodes claimed but unemitted.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Validate and claim start
	if !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start %d: %w", start, core.ErrOutOfRangeNodeID)
	}
	if err := dopts.Ctx.Err(); err != nil {
		return nil, err
	}
	if !g.TryClaim(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVisited, start)
	}

	ctx, span := tracer.Start(dopts.Ctx, "dfs.DFS", trace.WithAttributes(
		attribute.Int("start", start),
		attribute.Int("nodes", g.Order()),
		attribute.Int("workers", dopts.Pool.Workers()),
	))
	began := time.Now()

	// 4. Seed the stack and run
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		ctx:   ctx,
		stack: []stackItem{{id: start}},
		res: &DFSResult{
			Order:    make([]int, 0, g.Order()),
			Depth:    map[int]int{start: 0},
			MaxStack: 1,
		},
	}
	err := w.loop()

	// 5. Report
	span.SetAttributes(
		attribute.Int("visited", len(w.res.Order)),
		attribute.Int("batches", w.res.Batches),
		attribute.Int("max_stack", w.res.MaxStack),
	)
	telemetry.EndSpan(span, err)
	telemetry.TraversalsTotal.WithLabelValues(strategyLabel, telemetry.Outcome(err)).Inc()
	telemetry.NodesVisitedTotal.WithLabelValues(strategyLabel).Add(float64(len(w.res.Order)))
	telemetry.ClaimConflictsTotal.WithLabelValues(strategyLabel).Add(float64(w.res.Conflicts))
	telemetry.TraversalDuration.WithLabelValues(strategyLabel).Observe(time.Since(began).Seconds())

	return w.res, err
}

// loop pops until the stack is empty.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.ctx.Err(); err != nil {
			return err
		}

		// 2. Pop and emit
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.res.Order = append(w.res.Order, top.id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.id, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", top.id, err)
			}
		}

		// 3. Depth limit: emit but do not expand
		if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
			continue
		}

		// 4. Claim and push the batch
		batch, err := w.claimNeighbors(top.id)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			continue
		}
		for _, u := range batch {
			w.res.Depth[u] = top.depth + 1
			w.stack = append(w.stack, stackItem{id: u, depth: top.depth + 1})
		}
		w.res.Batches++
		w.res.MaxStack = max(w.res.MaxStack, len(w.stack))
		if w.opts.OnBatch != nil {
			w.opts.OnBatch(top.id, batch)
		}
		w.opts.Log.WithFields(logrus.Fields{
			"from":  top.id,
			"batch": len(batch),
			"stack": len(w.stack),
		}).Debug("dfs batch pushed")
	}

	return nil
}

// claimNeighbors runs the claim region over v's neighbor sequence. A
// neighbor index is marked only by the worker whose TryClaim won, and the
// batch is read back in neighbor order after the join.
func (w *dfsWalker) claimNeighbors(v int) ([]int, error) {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	telemetry.RegionWidth.WithLabelValues(strategyLabel).Observe(float64(len(neighbors)))

	claimed := make([]bool, len(neighbors))
	lost := make([]bool, len(neighbors))
	err = w.opts.Pool.ForEach(w.ctx, len(neighbors), func(i int) error {
		u := neighbors[i]
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, u) {
			return nil
		}
		if w.graph.TryClaim(u) {
			claimed[i] = true
		} else {
			lost[i] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var batch []int
	for i, u := range neighbors {
		if claimed[i] {
			batch = append(batch, u)
		}
		if lost[i] {
			w.res.Conflicts++
		}
	}

	return batch, nil
}
