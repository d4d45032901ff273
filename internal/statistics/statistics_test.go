package statistics

import (
	"math"
	rand "math/rand/v2"
	"testing"
)

func result(strategy string, start, end float64) Result {
	return Result{
		Strategy:        strategy,
		StartingBalance: start,
		EndingBalance:   end,
		Hands:           1,
		Wins:            1,
		Terminal:        Completed,
	}
}

func TestAggregateMeanAndSpread(t *testing.T) {
	var a Aggregate
	for _, net := range []float64{10, -10, 30, 10} {
		a.Add(result("HiLo", 500, 500+net))
	}

	if a.Runs != 4 {
		t.Errorf("Runs = %d, want 4", a.Runs)
	}
	if got := a.MeanNet(); got != 10 {
		t.Errorf("MeanNet() = %g, want 10", got)
	}
	// Sample variance of {10,-10,30,10} around 10 is 800/3.
	if got, want := a.Variance(), 800.0/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("Variance() = %g, want %g", got, want)
	}
	if got := a.MedianNet(); got != 10 {
		t.Errorf("MedianNet() = %g, want 10", got)
	}
}

func TestAggregateEmpty(t *testing.T) {
	var a Aggregate
	if a.MeanNet() != 0 || a.StdDev() != 0 || a.MedianNet() != 0 {
		t.Error("empty aggregate should report zeroes")
	}
}

func TestAggregateTerminalCounts(t *testing.T) {
	var a Aggregate
	r := result("KO", 500, 0)
	r.Terminal = Bankrupt
	a.Add(r)
	r = result("KO", 500, 600)
	r.Terminal = TableBroke
	a.Add(r)
	a.Add(result("KO", 500, 550))

	if a.Bankruptcies != 1 {
		t.Errorf("Bankruptcies = %d, want 1", a.Bankruptcies)
	}
	if a.TableBreaks != 1 {
		t.Errorf("TableBreaks = %d, want 1", a.TableBreaks)
	}
}

func TestAggregateRates(t *testing.T) {
	var a Aggregate
	a.Add(Result{
		Strategy: "HiLo",
		Hands:    10,
		Wins:     4,
		Pushes:   1,
		Losses:   5,
		Terminal: Completed,
	})

	if got := a.WinRate(); got != 0.4 {
		t.Errorf("WinRate() = %g, want 0.4", got)
	}
	if got := a.PushRate(); got != 0.1 {
		t.Errorf("PushRate() = %g, want 0.1", got)
	}
	if got := a.LossRate(); got != 0.5 {
		t.Errorf("LossRate() = %g, want 0.5", got)
	}
}

func TestAggregateEdgeMetrics(t *testing.T) {
	var a Aggregate
	a.Add(Result{
		Strategy:        "HiLo",
		StartingBalance: 500,
		EndingBalance:   520,
		Hands:           40,
		Wagered:         400,
		Terminal:        Completed,
	})
	a.Add(Result{
		Strategy:        "HiLo",
		StartingBalance: 500,
		EndingBalance:   490,
		Hands:           20,
		Wagered:         100,
		Terminal:        Bankrupt,
	})

	if got := a.NetPerWagered(); got != 10.0/500.0 {
		t.Errorf("NetPerWagered() = %g, want %g", got, 10.0/500.0)
	}
	if got := a.MeanHands(); got != 30 {
		t.Errorf("MeanHands() = %g, want 30", got)
	}
}

// Summaries must not depend on the order results arrive, since concurrent
// workers deliver them in whatever order they finish.
func TestSummarizeOrderIndependent(t *testing.T) {
	results := make([]Result, 0, 100)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		name := "HiLo"
		if i%3 == 0 {
			name = "KO"
		}
		r := result(name, 500, 500+float64(rng.IntN(200)-100))
		r.Hands = 1 + rng.IntN(5)
		r.Wins = r.Hands
		results = append(results, r)
	}

	base := Summarize(results)

	shuffled := make([]Result, len(results))
	copy(shuffled, results)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	perm := Summarize(shuffled)

	for name, want := range base.Strategies {
		got, ok := perm.Strategies[name]
		if !ok {
			t.Fatalf("strategy %s missing after permutation", name)
		}
		if got.Runs != want.Runs || got.SumNet != want.SumNet || got.Hands != want.Hands {
			t.Errorf("totals for %s differ after permutation", name)
		}
		if got.MedianNet() != want.MedianNet() {
			t.Errorf("median for %s differs after permutation", name)
		}
	}
}

func TestSummaryNamesOrderedByMeanNet(t *testing.T) {
	sum := Summarize([]Result{
		result("Loser", 500, 400),
		result("Winner", 500, 700),
		result("Middle", 500, 510),
	})

	names := sum.Names()
	want := []string{"Winner", "Middle", "Loser"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestValidate(t *testing.T) {
	var a Aggregate
	a.Add(Result{Strategy: "HiLo", Hands: 3, Wins: 1, Pushes: 1, Losses: 1, Terminal: Completed})
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := Aggregate{Runs: 1, Nets: []float64{0}, Hands: 5, Wins: 1}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject mismatched outcome totals")
	}

	// A natural pushed against a dealer natural counts as a blackjack
	// without a win.
	var pushed Aggregate
	pushed.Add(Result{Strategy: "HiLo", Hands: 1, Pushes: 1, Blackjacks: 1, Terminal: Completed})
	if err := pushed.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for a pushed natural", err)
	}
}
