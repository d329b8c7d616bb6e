package runner

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/auto2048/internal/registry"
)

// BenchOptions control a benchmark.
type BenchOptions struct {
	Games    int   // number of games, >= 1
	Parallel int   // games played at once; <1 means 1
	BaseSeed int64 // game i uses BaseSeed+i; 0 picks a random base
	MaxMoves int
	Logger   *log.Logger
}

// Bench plays opts.Games games, each with its own player built by the
// factory. Results are returned in seed order whatever order the games
// finish in.
func Bench(ctx context.Context, factory registry.Factory, popts registry.Options, opts BenchOptions) ([]Result, error) {
	if opts.Games < 1 {
		return nil, fmt.Errorf("runner: games must be >= 1, got %d", opts.Games)
	}
	logger := discard(opts.Logger)

	base := opts.BaseSeed
	if base == 0 {
		base = RandomSeed()
	}

	results := make([]Result, opts.Games)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Parallel, 1))

	for i := range opts.Games {
		seed := base + int64(i)
		g.Go(func() error {
			po := popts
			po.Seed = seed
			p := factory(po)

			// Per-move logs from concurrent games would interleave
			res, err := Play(gctx, p, seed, Options{MaxMoves: opts.MaxMoves})
			if err != nil {
				return err
			}
			results[i] = res

			n := done.Add(1)
			logger.Info("bench progress",
				"done", n,
				"of", opts.Games,
				"seed", seed,
				"score", res.Score,
				"max", res.MaxTile)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
