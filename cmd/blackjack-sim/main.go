package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/config"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/fileutil"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/report"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/simulator"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/strategy"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/strategy/strategyfile"
)

type CLI struct {
	Simulations int     `default:"${simulations}" help:"Independent runs per strategy"`
	Hands       int     `default:"${hands}" help:"Hand cap per run"`
	Decks       int     `default:"${decks}" help:"Decks in the shoe"`
	Penetration float64 `default:"${penetration}" help:"Shoe fraction dealt before reshuffling"`

	Balance      float64 `default:"${balance}" help:"Starting player balance"`
	TableBalance float64 `default:"${table_balance}" help:"House bankroll (0 for unconstrained)"`
	MinBet       float64 `default:"${min_bet}" help:"Table minimum bet"`
	Margin       float64 `default:"${margin}" help:"Bet scaling above the minimum as the count climbs"`
	Deviations   string  `default:"" enum:",none,s17,h17" help:"Index-play set: none, s17 or h17"`

	Surrender bool `default:"${surrender}" negatable:"" help:"Allow late surrender"`
	Insurance bool `default:"${insurance}" negatable:"" help:"Offer insurance against an ace"`
	HitSoft17 bool `default:"${hit_soft_17}" help:"Dealer hits soft 17"`

	Strategies   []string `help:"Strategy names to run (default: every registered strategy)"`
	StrategyFile string   `type:"existingfile" help:"HCL file selecting the lineup"`
	List         bool     `help:"List registered strategies and exit"`

	Quiet   bool   `short:"q" help:"Suppress per-run output"`
	Output  string `short:"o" help:"Write the report to a file instead of stdout"`
	Seed    int64  `default:"${seed}" help:"RNG seed (0 for random)"`
	Workers int    `default:"${workers}" help:"Worker goroutines (0 for one per CPU)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	// Environment overrides become flag defaults, so flags always win.
	base, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("blackjack-sim"),
		kong.Description("Monte Carlo simulator for card counting blackjack strategies."),
		kong.Vars{
			"simulations":   strconv.Itoa(base.Simulations),
			"hands":         strconv.Itoa(base.MaxHands),
			"decks":         strconv.Itoa(base.Decks),
			"penetration":   strconv.FormatFloat(base.Penetration, 'f', -1, 64),
			"balance":       strconv.FormatFloat(base.PlayerBalance, 'f', -1, 64),
			"table_balance": strconv.FormatFloat(base.TableBalance, 'f', -1, 64),
			"min_bet":       strconv.FormatFloat(base.MinBet, 'f', -1, 64),
			"margin":        strconv.FormatFloat(base.BetMargin, 'f', -1, 64),
			"surrender":     strconv.FormatBool(base.Surrender),
			"insurance":     strconv.FormatBool(base.Insurance),
			"hit_soft_17":   strconv.FormatBool(base.HitSoft17),
			"seed":          strconv.FormatInt(base.Seed, 10),
			"workers":       strconv.Itoa(base.Workers),
		})

	if cli.List {
		for _, name := range strategy.Names() {
			fmt.Println(name)
		}
		kctx.Exit(0)
	}

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	cfg := config.Config{
		PlayerBalance: cli.Balance,
		TableBalance:  cli.TableBalance,
		Decks:         cli.Decks,
		Simulations:   cli.Simulations,
		MaxHands:      cli.Hands,
		MinBet:        cli.MinBet,
		BetMargin:     cli.Margin,
		Penetration:   cli.Penetration,
		Surrender:     cli.Surrender,
		Insurance:     cli.Insurance,
		HitSoft17:     cli.HitSoft17,
		PerRun:        !cli.Quiet,
		Seed:          cli.Seed,
		Workers:       cli.Workers,
	}

	set, err := lineup(cli, cfg)
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	batch, err := simulator.Run(ctx, cfg, set, logger)
	kctx.FatalIfErrorf(err)
	logger.Info("batch complete", "duration", time.Since(start).Round(time.Millisecond))

	out := io.Writer(os.Stdout)
	var buf bytes.Buffer
	if cli.Output != "" {
		out = &buf
	}

	if cfg.PerRun {
		for _, res := range batch.Results {
			report.WriteRun(out, res)
			fmt.Fprintln(out)
		}
	}
	report.WriteSummary(out, batch)

	if cli.Output != "" {
		kctx.FatalIfErrorf(fileutil.WriteFileAtomic(cli.Output, buf.Bytes(), 0o644))
	}

	kctx.Exit(0)
}

// lineup resolves the strategies a batch will run: an explicit HCL file, a
// list of names, or everything in the registry.
func lineup(cli CLI, cfg config.Config) ([]strategy.Strategy, error) {
	if cli.StrategyFile != "" {
		file, err := strategyfile.Load(cli.StrategyFile)
		if err != nil {
			return nil, err
		}
		return file.Build()
	}

	params := strategy.Params{Margin: cfg.BetMargin, Deviations: cli.Deviations}
	if len(cli.Strategies) > 0 {
		set := make([]strategy.Strategy, 0, len(cli.Strategies))
		for _, name := range cli.Strategies {
			s, err := strategy.Build(name, params)
			if err != nil {
				return nil, err
			}
			set = append(set, s)
		}
		return set, nil
	}
	return strategy.DefaultSet(params)
}
