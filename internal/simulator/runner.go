// Package simulator runs batches of independent blackjack simulations and
// collects their results.
package simulator

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/config"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/count"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/game"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/randutil"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/statistics"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/strategy"
)

// Runner executes one simulation run: a single player at a fresh table,
// playing rounds until the hand cap, bankruptcy, or a broke house. Each
// runner owns all of its state, so runners execute concurrently without
// sharing anything but the read-only strategy.
type Runner struct {
	strat  strategy.Strategy
	cfg    config.Config
	seed   int64
	logger *log.Logger
}

// NewRunner creates a runner for one run with its own seed.
func NewRunner(strat strategy.Strategy, cfg config.Config, seed int64, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		strat:  strat,
		cfg:    cfg,
		seed:   seed,
		logger: logger.With("strategy", strat.Name(), "seed", seed),
	}
}

// Run plays the run to completion and returns its result.
func (r *Runner) Run() (statistics.Result, error) {
	res := statistics.Result{
		Strategy:        r.strat.Name(),
		Seed:            r.seed,
		StartingBalance: r.cfg.PlayerBalance,
	}

	rng := randutil.New(r.seed)
	shoe, err := deck.NewShoe(r.cfg.Decks, r.cfg.Penetration, rng)
	if err != nil {
		return res, fmt.Errorf("simulator: building shoe: %w", err)
	}

	rules := r.cfg.Rules()
	table := game.NewTable(rules, r.cfg.TableBalance)
	account := game.NewAccount(r.cfg.PlayerBalance)
	tracker := count.NewTracker(
		r.strat.CardWeight,
		r.strat.InitialRunningCount(r.cfg.Decks),
		r.strat.Balanced(),
	)
	round := game.NewRound(shoe, table, account, tracker, r.strat, r.logger)

	for res.Rounds < r.cfg.MaxHands {
		if account.Balance() < rules.MinBet {
			res.Terminal = statistics.Bankrupt
			break
		}
		// The cut card only takes effect between rounds; the count
		// starts over with the fresh shoe.
		if shoe.NeedsReshuffle() {
			shoe.Reshuffle()
			tracker.Reset()
			r.logger.Debug("reshuffled", "round", res.Rounds)
		}

		rr, err := round.Play()
		if err != nil {
			if errors.Is(err, game.ErrTableCannotCover) {
				res.Terminal = statistics.TableBroke
				break
			}
			res.EndingBalance = account.Balance()
			return res, fmt.Errorf("simulator: round %d: %w", res.Rounds, err)
		}

		res.Rounds++
		res.Hands += rr.Hands
		res.Wins += rr.Wins
		res.Pushes += rr.Pushes
		res.Losses += rr.Losses
		res.Surrenders += rr.Surrenders
		res.Wagered += rr.Wagered
		if rr.Blackjack {
			res.Blackjacks++
		}
	}

	if res.Terminal == "" {
		res.Terminal = statistics.Completed
	}
	res.EndingBalance = account.Balance()
	r.logger.Debug("run finished",
		"rounds", res.Rounds,
		"net", res.Net(),
		"terminal", res.Terminal)
	return res, nil
}
