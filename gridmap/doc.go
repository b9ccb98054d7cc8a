// Package gridmap provides a generic, data-parallel map executor for dense
// 2D grids.
//
// The primary type is Executor[S, D], which splits a grid's coordinate space
// into rectangular tiles and applies a pure per-element TransformFn across
// them concurrently. Because the transform has no cross-element dependency,
// disjoint tiles need no synchronization: each destination coordinate is
// written by exactly one worker, and the output is byte-identical to a
// sequential row-major pass regardless of worker count.
//
// # Basic Usage
//
//	src := gridmap.NewGrid[gridmap.Sample3](width, height)
//	dst := gridmap.NewGrid[gridmap.Sample1](width, height)
//
//	exec := gridmap.New[gridmap.Sample3, gridmap.Sample1](
//	    gridmap.WithWorkerCount(8),
//	)
//	if err := exec.Apply(ctx, src, dst, gridmap.GrayAverage); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scheduling
//
// Tile granularity is an internal scheduling decision, not part of the
// contract. Tiles default to 128x128 elements so that tile count comfortably
// exceeds worker count; WithTileSize overrides the grain. Workers drain a
// shared tile queue until it is empty, which load-balances uneven machines
// without a work-stealing scheduler.
//
// # Failure
//
// Apply fails fast with ErrDimensionMismatch before dispatching any work if
// the source and destination shapes differ. If the transform returns an
// error (or panics) for any element, exactly one representative error is
// returned after in-flight tiles settle; destination contents are then
// undefined. The engine never retries.
package gridmap
