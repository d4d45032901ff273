package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/simulator"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/statistics"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$12.50", formatMoney(12.5))
	assert.Equal(t, "-$7.25", formatMoney(-7.25))
	assert.Equal(t, "$0.00", formatMoney(0))
}

func TestWriteRun(t *testing.T) {
	var buf strings.Builder
	WriteRun(&buf, statistics.Result{
		Strategy:        "HiLo",
		Seed:            42,
		StartingBalance: 500,
		EndingBalance:   612.50,
		Rounds:          200,
		Hands:           205,
		Wins:            90,
		Pushes:          20,
		Losses:          95,
		Blackjacks:      9,
		Wagered:         1800,
		Terminal:        statistics.Completed,
	})

	out := buf.String()
	assert.Contains(t, out, "HiLo")
	assert.Contains(t, out, "seed=42")
	assert.Contains(t, out, "200 rounds")
	assert.Contains(t, out, "$112.50")
	assert.Contains(t, out, "completed")
}

func TestWriteSummary(t *testing.T) {
	results := []statistics.Result{
		{Strategy: "HiLo", StartingBalance: 500, EndingBalance: 620, Hands: 200, Wins: 90, Pushes: 20, Losses: 90, Terminal: statistics.Completed},
		{Strategy: "HiLo", StartingBalance: 500, EndingBalance: 430, Hands: 180, Wins: 80, Pushes: 15, Losses: 85, Terminal: statistics.Completed},
		{Strategy: "KO", StartingBalance: 500, EndingBalance: 0, Hands: 120, Wins: 50, Pushes: 10, Losses: 60, Terminal: statistics.Bankrupt},
	}

	batch := &simulator.Batch{
		Seed:      7,
		Results:   results,
		Summary:   statistics.Summarize(results),
		Requested: 4,
		Failed:    1,
	}

	var buf strings.Builder
	WriteSummary(&buf, batch)
	out := buf.String()

	assert.Contains(t, out, "Simulation Summary")
	assert.Contains(t, out, "HiLo")
	assert.Contains(t, out, "KO")
	assert.Contains(t, out, "1 bankruptcies")
	assert.Contains(t, out, "1 run(s) failed")
	// Best strategy listed first.
	assert.Less(t, strings.Index(out, "HiLo"), strings.Index(out, "KO"))
}
