// Package sweep drives full-graph coverage on top of the bfs and dfs
// engines: it picks the strategy, runs it from the requested start, and
// restarts from the remaining unvisited non-isolated nodes.
package sweep

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/bfs"
	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/dfs"
)

// Run resets g's visited set, traverses from start with strategy, then,
// under PolicyAll, scans 1..N in increasing order and traverses again from
// every node that is still unvisited and has at least one neighbor. The
// visited set is not reset between runs, so each component is emitted once.
// Isolated nodes other than start are never visited.
func Run(g *core.Graph, start int, strategy Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Policy != PolicyAll && o.Policy != PolicyNone {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(o.Policy))
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("sweep: start %d: %w", start, core.ErrOutOfRangeNodeID)
	}
	run, err := runner(strategy, o)
	if err != nil {
		return nil, err
	}

	g.ResetVisited()
	res := &Result{Strategy: strategy}

	order, err := run(g, start)
	res.Passes = append(res.Passes, Pass{Start: start, Order: order})
	if err != nil || o.Policy == PolicyNone {
		return res, err
	}

	for id := 1; id <= g.Order(); id++ {
		if g.IsVisited(id) || g.IsIsolated(id) {
			continue
		}
		o.Log.WithFields(logrus.Fields{
			"strategy": strategy.String(),
			"start":    id,
		}).Debug("restarting on disconnected component")
		if o.OnRestart != nil {
			o.OnRestart(id)
		}
		order, err = run(g, id)
		res.Passes = append(res.Passes, Pass{Start: id, Order: order})
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

// Components resets g's visited set and returns the node sets of every
// component that contains at least one edge, ordered by their smallest
// node ID. Isolated nodes are not reported.
func Components(g *core.Graph, strategy Strategy, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	run, err := runner(strategy, o)
	if err != nil {
		return nil, err
	}

	g.ResetVisited()
	var comps [][]int
	for id := 1; id <= g.Order(); id++ {
		if g.IsVisited(id) || g.IsIsolated(id) {
			continue
		}
		order, err := run(g, id)
		if err != nil {
			return comps, err
		}
		comps = append(comps, order)
	}

	return comps, nil
}

// runFunc runs one engine from start and returns its emission order.
type runFunc func(g *core.Graph, start int) ([]int, error)

// runner binds the strategy's engine to the sweep options.
func runner(strategy Strategy, o Options) (runFunc, error) {
	switch strategy {
	case BFS:
		return func(g *core.Graph, start int) ([]int, error) {
			bopts := []bfs.Option{bfs.WithContext(o.Ctx), bfs.WithPool(o.Pool), bfs.WithLogger(o.Log)}
			if o.OnVisit != nil {
				bopts = append(bopts, bfs.WithOnVisit(func(id, _ int) error { return o.OnVisit(id) }))
			}
			res, err := bfs.BFS(g, start, bopts...)
			if res == nil {
				return nil, err
			}
			return res.Order, err
		}, nil
	case DFS:
		return func(g *core.Graph, start int) ([]int, error) {
			dopts := []dfs.Option{dfs.WithContext(o.Ctx), dfs.WithPool(o.Pool), dfs.WithLogger(o.Log)}
			if o.OnVisit != nil {
				dopts = append(dopts, dfs.WithOnVisit(func(id, _ int) error { return o.OnVisit(id) }))
			}
			res, err := dfs.DFS(g, start, dopts...)
			if res == nil {
				return nil, err
			}
			return res.Order, err
		}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
}
