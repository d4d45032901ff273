package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/config"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/statistics"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/strategy"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Simulations = 4
	cfg.MaxHands = 50
	cfg.Seed = 12345
	cfg.Workers = 2
	return cfg
}

func buildStrategy(t *testing.T, name string) strategy.Strategy {
	t.Helper()
	s, err := strategy.Build(name, strategy.Params{Margin: 2, Deviations: "s17"})
	require.NoError(t, err)
	return s
}

func TestRunnerPlaysToHandCap(t *testing.T) {
	cfg := testConfig()
	res, err := NewRunner(buildStrategy(t, "HiLo"), cfg, 42, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, "HiLo", res.Strategy)
	assert.Equal(t, int64(42), res.Seed)
	assert.Equal(t, cfg.PlayerBalance, res.StartingBalance)
	if res.Terminal == statistics.Completed {
		assert.Equal(t, cfg.MaxHands, res.Rounds)
	} else {
		assert.Equal(t, statistics.Bankrupt, res.Terminal)
	}
	// Every settled hand has exactly one outcome.
	assert.Equal(t, res.Hands, res.Wins+res.Pushes+res.Losses+res.Surrenders)
	assert.GreaterOrEqual(t, res.Hands, res.Rounds)
	assert.Positive(t, res.Wagered)
}

func TestRunnerDeterministicBySeed(t *testing.T) {
	cfg := testConfig()
	a, err := NewRunner(buildStrategy(t, "HiLo"), cfg, 7, nil).Run()
	require.NoError(t, err)
	b, err := NewRunner(buildStrategy(t, "HiLo"), cfg, 7, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical seed and config must reproduce the run")
}

func TestRunnerBankruptBeforeFirstRound(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerBalance = 3 // below the $5 minimum

	res, err := NewRunner(buildStrategy(t, "HiLo"), cfg, 1, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, statistics.Bankrupt, res.Terminal)
	assert.Zero(t, res.Rounds)
	assert.Zero(t, res.Hands)
	assert.Equal(t, 3.0, res.EndingBalance)
}

func TestRunnerHouseBankrollStops(t *testing.T) {
	cfg := testConfig()
	cfg.TableBalance = 1 // cannot cover a single blackjack payout

	res, err := NewRunner(buildStrategy(t, "HiLo"), cfg, 1, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, statistics.TableBroke, res.Terminal)
	assert.Zero(t, res.Rounds)
}

func TestRunExecutesAllUnits(t *testing.T) {
	cfg := testConfig()
	set := []strategy.Strategy{
		buildStrategy(t, "HiLo"),
		buildStrategy(t, "KO"),
	}

	batch, err := Run(context.Background(), cfg, set, nil)
	require.NoError(t, err)

	assert.Equal(t, 8, batch.Requested)
	assert.Zero(t, batch.Failed)
	assert.Len(t, batch.Results, 8)
	assert.Len(t, batch.Summary.Strategies, 2)
	assert.Equal(t, 4, batch.Summary.Strategies["HiLo"].Runs)
	assert.Equal(t, 4, batch.Summary.Strategies["KO"].Runs)
	assert.Equal(t, cfg.Seed, batch.Seed)
}

func TestRunDeterministicAcrossSchedules(t *testing.T) {
	cfg := testConfig()
	set := []strategy.Strategy{
		buildStrategy(t, "HiLo"),
		buildStrategy(t, "Wong Halves"),
	}

	first, err := Run(context.Background(), cfg, set, nil)
	require.NoError(t, err)

	cfg.Workers = 7 // different pool shape, same seeds
	second, err := Run(context.Background(), cfg, set, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
}

func TestRunExcludesFailingRuns(t *testing.T) {
	// A single deck dealt to the last card leaves rounds that start near
	// the end of the shoe unable to finish, so runs die mid-round on both
	// their first seed and the retry seed.
	cfg := testConfig()
	cfg.Decks = 1
	cfg.Penetration = 1.0
	cfg.MaxHands = 500
	cfg.Simulations = 3

	batch, err := Run(context.Background(), cfg, []strategy.Strategy{buildStrategy(t, "HiLo")}, nil)
	require.NoError(t, err, "failed units are excluded, not fatal")

	assert.Equal(t, 3, batch.Requested)
	assert.Positive(t, batch.Failed)
	assert.Len(t, batch.Results, batch.Requested-batch.Failed)

	// The summary holds only the completed runs.
	completed := 0
	for _, agg := range batch.Summary.Strategies {
		require.NoError(t, agg.Validate())
		completed += agg.Runs
	}
	assert.Equal(t, len(batch.Results), completed)
}

func TestRunResolvesSeedFromClock(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	cfg.Simulations = 2

	batch, err := Run(context.Background(), cfg, []strategy.Strategy{buildStrategy(t, "HiLo")}, nil)
	require.NoError(t, err)

	assert.NotZero(t, batch.Seed, "a zero seed resolves from the clock")
	require.Len(t, batch.Results, 2)
	for _, res := range batch.Results {
		assert.Equal(t, res.Hands, res.Wins+res.Pushes+res.Losses+res.Surrenders)
		assert.NotEmpty(t, res.Terminal)
	}
	for _, agg := range batch.Summary.Strategies {
		require.NoError(t, agg.Validate())
	}
}

func TestRunValidatesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Decks = 0
	_, err := Run(context.Background(), cfg, []strategy.Strategy{buildStrategy(t, "HiLo")}, nil)
	require.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig()
	cfg.Simulations = 50
	_, err := Run(ctx, cfg, []strategy.Strategy{buildStrategy(t, "HiLo")}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
