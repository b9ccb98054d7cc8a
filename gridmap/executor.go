package gridmap

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/FriedImage/gridmap/internal/cpu"
)

const (
	defaultTileRows = 128
	defaultTileCols = 128
)

// TransformFn is a pure function from one source element to one destination
// element. It must not depend on neighboring elements or partition
// boundaries; that independence is what makes partitioning safe without
// synchronization. A non-nil error aborts the whole Apply call.
//
// Type parameters:
//   - S: The source element type
//   - D: The destination element type
type TransformFn[S, D any] func(s S) (D, error)

// Executor applies a TransformFn across a 2D grid using a bounded pool of
// workers. An Executor is stateless between calls and safe for concurrent
// use; the same instance can serve many Apply invocations.
//
// Type parameters:
//   - S: The source element type read from the source grid
//   - D: The destination element type written to the destination grid
type Executor[S, D any] struct {
	conf *executorConfig
}

// New creates an Executor with the specified options.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0) (number of logical CPUs)
//   - tile size: 128x128 elements
//   - no rate limiting, no CPU pinning
//
// Example:
//
//	exec := gridmap.New[gridmap.Sample3, gridmap.Sample1](
//	    gridmap.WithWorkerCount(4),
//	    gridmap.WithTileSize(64, 256),
//	)
func New[S, D any](opts ...Option) *Executor[S, D] {
	cfg := &executorConfig{
		workerCount: runtime.GOMAXPROCS(0),
		tileRows:    defaultTileRows,
		tileCols:    defaultTileCols,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Executor[S, D]{conf: cfg}
}

// Apply maps fn over every element of src and writes the results into dst.
//
// The coordinate space is split into rectangular tiles which workers drain
// from a shared queue; within a tile elements are visited in row-major
// order, across tiles no order is guaranteed. Apply returns only after all
// workers have joined, so dst is safe to read immediately afterwards.
//
// src is never written and dst's shape is never changed; on success every
// dst element has been written exactly once.
//
// Returns:
//   - ErrNilGrid if either grid is nil
//   - ErrDimensionMismatch if the grids differ in shape (before any writes)
//   - the first transform error or recovered panic, after in-flight tiles
//     settle; dst contents are then undefined
//   - ctx.Err() if the context is cancelled mid-flight
func (e *Executor[S, D]) Apply(ctx context.Context, src *Grid[S], dst *Grid[D], fn TransformFn[S, D]) error {
	if src == nil || dst == nil {
		return ErrNilGrid
	}
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return fmt.Errorf("%w: source %dx%d, destination %dx%d",
			ErrDimensionMismatch, src.Width(), src.Height(), dst.Width(), dst.Height())
	}

	tiles := partitionSpace(src.Height(), src.Width(), e.conf.tileRows, e.conf.tileCols)
	if len(tiles) == 0 {
		return nil
	}

	tileChan := make(chan Partition, len(tiles))
	for _, t := range tiles {
		tileChan <- t
	}
	close(tileChan)

	g, ctx := errgroup.WithContext(ctx)
	workers := min(e.conf.workerCount, len(tiles))
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			if e.conf.pinWorkers {
				defer cpu.Pin(i)()
			}
			return e.runWorker(ctx, tileChan, src, dst, fn)
		})
	}

	return g.Wait()
}

// runWorker is the worker loop: it drains tiles from the shared queue until
// the queue is empty, an error occurs, or the context is cancelled. The
// first failing worker cancels the group context, which stops the rest
// before they pick up further tiles.
func (e *Executor[S, D]) runWorker(
	ctx context.Context,
	tiles <-chan Partition,
	src *Grid[S],
	dst *Grid[D],
	fn TransformFn[S, D],
) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case tile, ok := <-tiles:
			if !ok {
				return nil
			}

			if e.conf.rateLimiter != nil {
				if err := e.conf.rateLimiter.Wait(ctx); err != nil {
					// Rate limiter's error doesn't wrap context errors, so check context explicitly
					if ctxErr := ctx.Err(); ctxErr != nil {
						return ctxErr
					}
					return err
				}
			}

			if err := applyTile(src, dst, tile, fn); err != nil {
				return err
			}

			if e.conf.onTileDone != nil {
				e.conf.onTileDone(tile)
			}
		}
	}
}

// applyTile executes the transform over one partition in row-major order,
// with panic recovery so a misbehaving transform surfaces as an error
// instead of crashing the pool.
func applyTile[S, D any](src *Grid[S], dst *Grid[D], tile Partition, fn TransformFn[S, D]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("transform panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	for r := tile.RowStart; r < tile.RowEnd; r++ {
		srcRow := src.Row(r)
		dstRow := dst.Row(r)
		for c := tile.ColStart; c < tile.ColEnd; c++ {
			v, ferr := fn(srcRow[c])
			if ferr != nil {
				return fmt.Errorf("transform element (%d,%d): %w", r, c, ferr)
			}
			dstRow[c] = v
		}
	}
	return nil
}

// Apply is a convenience wrapper that builds a one-shot Executor and runs it.
//
// Example:
//
//	err := gridmap.Apply(ctx, src, dst, gridmap.GrayAverage)
func Apply[S, D any](ctx context.Context, src *Grid[S], dst *Grid[D], fn TransformFn[S, D], opts ...Option) error {
	return New[S, D](opts...).Apply(ctx, src, dst, fn)
}
