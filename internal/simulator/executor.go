package simulator

import (
	"context"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/config"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/randutil"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/statistics"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/strategy"
)

// Batch is the outcome of executing a full simulation batch.
type Batch struct {
	// Seed is the base seed the batch ran under, after resolving a zero
	// seed from the clock. Re-running with this seed reproduces the
	// batch exactly.
	Seed int64

	// Results holds every completed run, ordered by the strategy's
	// position in the requested set and then by run seed, regardless of
	// completion order.
	Results []statistics.Result

	// Summary aggregates the completed runs per strategy.
	Summary *statistics.Summary

	// Requested and Failed count scheduled runs and runs that failed
	// even after a retry. Failed runs are excluded from the summary.
	Requested int
	Failed    int
}

// Run executes cfg.Simulations independent runs for every strategy in the
// set across a bounded worker pool. Every run gets its own seed derived
// from the base seed and its global index, so results are reproducible for
// a fixed configuration no matter how workers interleave.
func Run(ctx context.Context, cfg config.Config, set []strategy.Strategy, logger *log.Logger) (*Batch, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	total := len(set) * cfg.Simulations
	logger.Info("starting batch",
		"strategies", len(set),
		"simulations", cfg.Simulations,
		"workers", workers,
		"seed", baseSeed)

	results := make(chan statistics.Result, workers)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	go func() {
		defer close(results)
		for si, strat := range set {
			for i := 0; i < cfg.Simulations; i++ {
				idx := si*cfg.Simulations + i
				seed := randutil.RunSeed(baseSeed, idx)
				g.Go(func() error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}

					res, err := NewRunner(strat, cfg, seed, logger).Run()
					if err != nil {
						// One retry on a fresh seed; a unit that fails twice is
						// dropped rather than sinking the batch.
						retrySeed := randutil.RunSeed(baseSeed, total+idx)
						logger.Warn("run failed, retrying",
							"strategy", strat.Name(), "seed", seed, "err", err)
						res, err = NewRunner(strat, cfg, retrySeed, logger).Run()
						if err != nil {
							logger.Error("run failed after retry",
								"strategy", strat.Name(), "seed", retrySeed, "err", err)
							return nil
						}
					}

					select {
					case results <- res:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				})
			}
		}
		g.Wait()
	}()

	collected := make([]statistics.Result, 0, total)
	for res := range results {
		collected = append(collected, res)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortResults(collected, set)

	batch := &Batch{
		Seed:      baseSeed,
		Results:   collected,
		Summary:   statistics.Summarize(collected),
		Requested: total,
		Failed:    total - len(collected),
	}
	logger.Info("batch finished", "completed", len(collected), "failed", batch.Failed)
	return batch, nil
}

// sortResults orders results by the strategy's position in the requested
// set, then by seed, giving deterministic output independent of worker
// scheduling.
func sortResults(results []statistics.Result, set []strategy.Strategy) {
	order := make(map[string]int, len(set))
	for i, s := range set {
		order[s.Name()] = i
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if order[a.Strategy] != order[b.Strategy] {
			return order[a.Strategy] < order[b.Strategy]
		}
		return a.Seed < b.Seed
	})
}
