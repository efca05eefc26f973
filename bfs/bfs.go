// Package bfs provides level-synchronous parallel breadth-first search
// over a core.Graph, returning visit order, levels and distances.
//
// BFS drains the whole frontier into one level, emits it, then expands
// every node of the level in one parallel region. Neighbor discovery is
// deduplicated through core.Graph.TryClaim.
package bfs

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

const strategyLabel = "bfs"

var tracer = telemetry.Tracer("frontier/bfs")

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	frontier []int
	res      *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. The visited set of g is not reset: only
// nodes unclaimed at call time can be discovered.
// Returns ErrGraphNil, core.ErrOutOfRangeNodeID or ErrStartVisited for
// invalid input, ErrOptionViolation for bad options, context errors on
// cancellation, or any OnVisit error.
// A context that is already done on entry leaves g untouched. Cancelling
// mid-run leaves the claimed next level unemitted; reset g before reuse.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrOutOfRangeNodeID)
	}
	// a cancelled run must leave start unclaimed
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	if !g.TryClaim(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVisited, start)
	}

	ctx, span := tracer.Start(o.Ctx, "bfs.BFS", trace.WithAttributes(
		attribute.Int("start", start),
		attribute.Int("nodes", g.Order()),
		attribute.Int("workers", o.Pool.Workers()),
	))
	began := time.Now()

	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      ctx,
		frontier: []int{start},
		res: &BFSResult{
			Order: make([]int, 0, g.Order()),
			Depth: make(map[int]int),
		},
	}
	err := w.loop()

	span.SetAttributes(
		attribute.Int("visited", len(w.res.Order)),
		attribute.Int("levels", len(w.res.Levels)),
		attribute.Int("conflicts", w.res.Conflicts),
	)
	telemetry.EndSpan(span, err)
	telemetry.TraversalsTotal.WithLabelValues(strategyLabel, telemetry.Outcome(err)).Inc()
	telemetry.NodesVisitedTotal.WithLabelValues(strategyLabel).Add(float64(len(w.res.Order)))
	telemetry.ClaimConflictsTotal.WithLabelValues(strategyLabel).Add(float64(w.res.Conflicts))
	telemetry.TraversalDuration.WithLabelValues(strategyLabel).Observe(time.Since(began).Seconds())

	return w.res, err
}

// loop processes one level per iteration until the frontier is empty.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		// cancellation check (once per level)
		if err := w.ctx.Err(); err != nil {
			return err
		}

		// fix the level boundary before any parallel work
		level := w.frontier
		w.frontier = nil

		if err := w.emit(level, depth); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			break
		}

		next, err := w.expand(level)
		if err != nil {
			return err
		}
		w.opts.Log.WithFields(logrus.Fields{
			"depth": depth,
			"level": len(level),
			"next":  len(next),
		}).Debug("bfs level expanded")

		w.frontier = next
	}

	return nil
}

// emit records the level in dequeue order and streams it through OnVisit.
func (w *walker) emit(level []int, depth int) error {
	for _, id := range level {
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = depth
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
	}
	w.res.Levels = append(w.res.Levels, level)
	w.opts.OnLevel(depth, level)

	return nil
}

// expand claims the unvisited neighbors of every node in level in one
// parallel region. Each source node owns a slot, so a claimed neighbor is
// appended by exactly one worker; slots are joined in level order.
func (w *walker) expand(level []int) ([]int, error) {
	telemetry.RegionWidth.WithLabelValues(strategyLabel).Observe(float64(len(level)))

	slots := make([][]int, len(level))
	conflicts := make([]int, len(level))

	err := w.opts.Pool.ForEach(w.ctx, len(level), func(i int) error {
		v := level[i]
		neighbors, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
		}
		for _, u := range neighbors {
			if !w.opts.FilterNeighbor(v, u) {
				continue
			}
			if w.graph.TryClaim(u) {
				slots[i] = append(slots[i], u)
			} else {
				conflicts[i]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var next []int
	for i := range slots {
		next = append(next, slots[i]...)
		w.res.Conflicts += conflicts[i]
	}

	return next, nil
}
