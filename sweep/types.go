// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/internal/telemetry"
	"github.com/katalvlaran/frontier/pool"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("sweep: graph is nil")

	// ErrUnknownStrategy is returned for a strategy outside {BFS, DFS}.
	ErrUnknownStrategy = errors.New("sweep: unknown strategy")

	// ErrUnknownPolicy is returned for a policy outside {all, none}.
	ErrUnknownPolicy = errors.New("sweep: unknown policy")
)

// Strategy selects the traversal engine.
type Strategy int

const (
	BFS Strategy = iota + 1
	DFS
)

// ParseStrategy accepts "bfs", "dfs" (any case) and the menu numbers "1", "2".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "1":
		return BFS, nil
	case "dfs", "2":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// String returns "bfs" or "dfs".
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Policy decides what happens after the first traversal finishes.
type Policy int

const (
	// PolicyAll restarts from every remaining unvisited node that has at
	// least one neighbor, in increasing ID order, until none remain.
	PolicyAll Policy = iota

	// PolicyNone stops after the component of the start node.
	PolicyNone
)

// ParsePolicy accepts "all" and "none".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return PolicyAll, nil
	case "none":
		return PolicyNone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Option configures Run and Components.
type Option func(*Options)

// Options holds the sweep settings and the per-node hooks.
type Options struct {
	Ctx    context.Context
	Pool   *pool.Pool
	Log    logrus.FieldLogger
	Policy Policy

	// OnVisit receives every emitted node across all runs, in order.
	OnVisit func(id int) error

	// OnRestart is called before each run after the first one.
	OnRestart func(start int)
}

// DefaultOptions returns background context, a NumCPU pool, a discarding
// logger and PolicyAll.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Pool:   pool.New(),
		Log:    telemetry.Discard(),
		Policy: PolicyAll,
	}
}

// WithContext sets the context passed to every run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPool sets the pool shared by every run.
func WithPool(p *pool.Pool) Option {
	return func(o *Options) {
		if p != nil {
			o.Pool = p
		}
	}
}

// WithLogger sets the logger passed to the engines.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		if log != nil {
			o.Log = log
		}
	}
}

// WithPolicy sets the restart policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithOnVisit streams emitted nodes.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnRestart observes each component restart.
func WithOnRestart(fn func(start int)) Option {
	return func(o *Options) { o.OnRestart = fn }
}

// Pass is one traversal inside a sweep.
type Pass struct {
	Start int
	Order []int
}

// Result holds every pass of a sweep in execution order.
type Result struct {
	Strategy Strategy
	Passes   []Pass
}

// Order concatenates the emission order of all passes.
func (r *Result) Order() []int {
	var out []int
	for _, p := range r.Passes {
		out = append(out, p.Order...)
	}
	return out
}
