// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides a bounded worker pool for running independent,
// indexed jobs in parallel while keeping their results in index order.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job produces the result for one index.
type Job[T any] func(ctx context.Context, index int) T

// Pool runs jobs with at most Concurrency of them in flight.
type Pool struct {
	concurrency int
}

// NewPool returns a Pool. Values below one run jobs sequentially.
func NewPool(concurrency int) *Pool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pool{concurrency: concurrency}
}

// Concurrency returns the number of jobs allowed to run at once.
func (p *Pool) Concurrency() int {
	return p.concurrency
}

// Run executes job for every index in [0, n) and returns the results
// ordered by index. When ctx is cancelled, jobs that have not started are
// skipped and only the results of the leading run of completed indexes are
// returned.
func Run[T any](ctx context.Context, p *Pool, n int, job Job[T]) []T {
	if n <= 0 {
		return nil
	}

	results := make([]T, n)

	if p.concurrency == 1 {
		for i := range n {
			if ctx.Err() != nil {
				return results[:i]
			}
			results[i] = job(ctx, i)
		}
		return results
	}

	done := make([]bool, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = job(gctx, i)
			done[i] = true
			return nil
		})
	}

	_ = g.Wait()

	for i, ok := range done {
		if !ok {
			return results[:i]
		}
	}
	return results
}
