// SPDX-License-Identifier: MIT

package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrTaskPanicked is returned by ForEach when a task panics.
var ErrTaskPanicked = errors.New("pool: task panicked")

// DefaultThreshold is the smallest region size that is fanned out.
const DefaultThreshold = 32

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers caps the goroutines per region. n <= 0 keeps runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithThreshold sets the inline cutoff. n == 0 fans out every region.
func WithThreshold(n int) Option {
	return func(p *Pool) {
		if n >= 0 {
			p.threshold = n
		}
	}
}

// WithLogger sets the logger used to report recovered panics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Pool) {
		if log != nil {
			p.log = log
		}
	}
}

// Pool runs fork-join regions with a bounded number of goroutines.
// A Pool holds no per-region state and may be shared by sequential callers.
type Pool struct {
	workers   int
	threshold int
	log       logrus.FieldLogger
}

// New returns a pool with runtime.NumCPU() workers and DefaultThreshold.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers:   runtime.NumCPU(),
		threshold: DefaultThreshold,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Sequential returns a single-worker pool: every region runs inline in
// index order.
func Sequential() *Pool {
	return New(WithWorkers(1))
}

// Workers returns the per-region goroutine cap.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach runs fn(i) for i in [0, n) and blocks until every call returned.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if p.workers <= 1 || n < p.threshold || n == 1 {
		return p.runChunk(ctx, 0, n, fn)
	}

	chunks := min(p.workers, n)
	size := (n + chunks - 1) / chunks

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, min(lo+size, n)
		g.Go(func() error {
			return p.runChunk(gctx, lo, hi, fn)
		})
	}

	return g.Wait()
}

// runChunk executes fn over [lo, hi), converting a panic into ErrTaskPanicked.
func (p *Pool) runChunk(ctx context.Context, lo, hi int, fn func(i int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			p.log.WithFields(logrus.Fields{
				"chunk": fmt.Sprintf("[%d,%d)", lo, hi),
				"panic": r,
				"stack": string(buf[:n]),
			}).Error("panic in pool task")
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	for i := lo; i < hi; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = fn(i); err != nil {
			return err
		}
	}

	return nil
}
