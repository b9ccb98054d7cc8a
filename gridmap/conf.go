package gridmap

import (
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring an Executor.
type Option func(*executorConfig)

type executorConfig struct {
	workerCount int
	tileRows    int
	tileCols    int
	pinWorkers  bool
	rateLimiter *rate.Limiter
	onTileDone  func(Partition)
}

// WithWorkerCount sets the number of concurrent workers.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) Option {
	return func(cfg *executorConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTileSize sets the partition grain in rows x cols. Smaller tiles
// improve load balancing, larger tiles amortize dispatch overhead. Output is
// identical for any grain; only scheduling changes.
// If not specified, defaults to 128x128.
func WithTileSize(rows, cols int) Option {
	return func(cfg *executorConfig) {
		if rows > 0 {
			cfg.tileRows = rows
		}
		if cols > 0 {
			cfg.tileCols = cols
		}
	}
}

// WithCPUAffinity pins each worker goroutine to an OS thread bound to one
// CPU core for the duration of Apply. Useful for stable throughput on
// dedicated machines; a no-op on platforms without affinity support.
func WithCPUAffinity() Option {
	return func(cfg *executorConfig) {
		cfg.pinWorkers = true
	}
}

// WithRateLimit throttles tile dispatch with a token bucket.
// tilesPerSecond specifies the maximum number of tiles to start per second,
// burst the bucket size. This bounds CPU draw when the conversion shares a
// host with latency-sensitive work. If not specified, tiles are dispatched
// as fast as workers drain them.
//
// Example:
//
//	WithRateLimit(100, 10) // at most 100 tiles/sec with burst of 10
func WithRateLimit(tilesPerSecond float64, burst int) Option {
	return func(cfg *executorConfig) {
		if tilesPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tilesPerSecond), burst)
		}
	}
}

// WithOnTileDone registers a hook invoked after each tile completes
// successfully. Hooks run on worker goroutines and may fire concurrently;
// they must be safe for concurrent use. Useful for progress reporting.
func WithOnTileDone(fn func(Partition)) Option {
	return func(cfg *executorConfig) {
		cfg.onTileDone = fn
	}
}
