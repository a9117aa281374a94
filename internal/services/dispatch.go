package services

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
)

// WorkerFunc processes one slice of the work. workerID is unique within a run
// and selects the worker's private workspace.
type WorkerFunc[T, R any] func(ctx context.Context, workerID int, items []T) ([]R, error)

// Partition splits items into workers slices of len(items)/workers items,
// the last slice absorbing the remainder. workers below 1 counts as 1.
func Partition[T any](items []T, workers int) [][]T {
	if workers < 1 {
		workers = 1
	}

	size := len(items) / workers
	slices := make([][]T, workers)
	for i := range workers {
		start := i * size
		end := start + size
		if i == workers-1 {
			end = len(items)
		}
		slices[i] = items[start:end]
	}
	return slices
}

// RunLocal runs fn over workers slices of items, one goroutine per slice.
// A failing or panicking worker is logged and its slice dropped; the other
// workers keep running. Results are concatenated in worker order.
func RunLocal[T, R any](ctx context.Context, items []T, workers int, fn WorkerFunc[T, R]) []R {
	slices := Partition(items, workers)
	results := make([][]R, len(slices))

	// Worker errors are never returned to the group so healthy workers are
	// not cancelled
	var g errgroup.Group
	for i, slice := range slices {
		if len(slice) == 0 {
			continue
		}
		g.Go(func() error {
			out, err := runWorker(ctx, i, slice, fn)
			if err != nil {
				logging.Logger.Error("Worker failed, dropping its results", "error", err, "worker", i, "items", len(slice))
				return nil
			}
			results[i] = out
			return nil
		})
	}
	_ = g.Wait()

	var all []R
	for _, out := range results {
		all = append(all, out...)
	}
	return all
}

// runWorker calls fn, turning a panic into ErrWorkerFailed
func runWorker[T, R any](ctx context.Context, workerID int, items []T, fn WorkerFunc[T, R]) (out []R, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Worker panicked", "worker", workerID, "panic", r, "stack", string(debug.Stack()))
			out = nil
			err = fmt.Errorf("%w: worker %d panicked: %v", domain.ErrWorkerFailed, workerID, r)
		}
	}()

	out, err = fn(ctx, workerID, items)
	if err != nil {
		return nil, fmt.Errorf("%w: worker %d: %w", domain.ErrWorkerFailed, workerID, err)
	}
	return out, nil
}
