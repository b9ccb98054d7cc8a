package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/FriedImage/gridmap/gridmap"
)

var bold = color.New(color.Bold)

// runBench converts the same source grid at several worker counts and
// renders a comparison table. The single-worker run is the baseline for the
// speedup column.
func runBench(ctx context.Context, src *gridmap.Grid[gridmap.Sample3], kernel gridmap.TransformFn[gridmap.Sample3, gridmap.Sample1]) error {
	counts := workerCounts()
	pixels := src.Width() * src.Height()

	_, _ = bold.Println("Comparing worker counts...")
	fmt.Println()

	var baseline time.Duration
	type benchRow struct {
		workers int
		elapsed time.Duration
	}
	rows := make([]benchRow, 0, len(counts))

	for _, workers := range counts {
		dst := gridmap.NewGrid[gridmap.Sample1](src.Width(), src.Height())
		exec := gridmap.New[gridmap.Sample3, gridmap.Sample1](
			gridmap.WithWorkerCount(workers),
			gridmap.WithTileSize(flagTile, flagTile),
		)

		start := time.Now()
		if err := exec.Apply(ctx, src, dst, kernel); err != nil {
			return err
		}
		elapsed := time.Since(start)

		if workers == 1 {
			baseline = elapsed
		}
		rows = append(rows, benchRow{workers: workers, elapsed: elapsed})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Workers", "Time", "Mpix/s", "Speedup")
	for _, r := range rows {
		mpps := float64(pixels) / r.elapsed.Seconds() / 1e6
		speedup := "baseline"
		if r.workers != 1 && baseline > 0 {
			speedup = fmt.Sprintf("%.2fx", float64(baseline)/float64(r.elapsed))
		}
		_ = table.Append(
			fmt.Sprintf("%d", r.workers),
			r.elapsed.Round(time.Microsecond).String(),
			fmt.Sprintf("%.1f", mpps),
			speedup,
		)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render results: %w", err)
	}
	return nil
}

// workerCounts returns the deduplicated, sorted set of worker counts to
// compare: 1, 2, the logical CPU count, and twice that.
func workerCounts() []int {
	n := runtime.GOMAXPROCS(0)
	counts := []int{1, 2, n, 2 * n}
	slices.Sort(counts)
	return slices.Compact(counts)
}
