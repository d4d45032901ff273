// Package statistics aggregates simulation run results per strategy.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TerminalReason records why a simulation run stopped.
type TerminalReason string

const (
	// Completed means the run played its full allotment of hands.
	Completed TerminalReason = "completed"
	// Bankrupt means the balance fell below the table minimum.
	Bankrupt TerminalReason = "bankrupt"
	// TableBroke means the house bankroll could no longer cover a payout.
	TableBroke TerminalReason = "table_broke"
)

// Result is the outcome of one independent simulation run: one player
// sitting down with a fresh shoe and playing until the hand cap, bankruptcy
// or a broke house.
type Result struct {
	Strategy        string
	Seed            int64 // RNG seed for this run, for replay
	StartingBalance float64
	EndingBalance   float64
	Hands           int // hands settled, counting split hands
	Rounds          int
	Wins            int
	Pushes          int
	Losses          int
	Surrenders      int
	Blackjacks      int
	Wagered         float64
	Terminal        TerminalReason
}

// Net returns the run's profit or loss.
func (r Result) Net() float64 {
	return r.EndingBalance - r.StartingBalance
}

// Aggregate accumulates per-strategy statistics over many runs. Addition is
// commutative, so the order results arrive from concurrent workers does not
// affect the totals.
type Aggregate struct {
	Name    string
	Runs    int
	SumNet  float64
	SumNet2 float64   // sum of squares for variance
	Nets    []float64 // per-run nets for median/percentile

	Hands      int
	Wins       int
	Pushes     int
	Losses     int
	Surrenders int
	Blackjacks int
	Wagered    float64

	Bankruptcies int
	TableBreaks  int
}

// Add incorporates one run result.
func (s *Aggregate) Add(r Result) {
	net := r.Net()
	s.Runs++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Nets = append(s.Nets, net)

	s.Hands += r.Hands
	s.Wins += r.Wins
	s.Pushes += r.Pushes
	s.Losses += r.Losses
	s.Surrenders += r.Surrenders
	s.Blackjacks += r.Blackjacks
	s.Wagered += r.Wagered

	switch r.Terminal {
	case Bankrupt:
		s.Bankruptcies++
	case TableBroke:
		s.TableBreaks++
	}
}

// MeanNet returns the arithmetic mean profit per run.
func (s *Aggregate) MeanNet() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.SumNet / float64(s.Runs)
}

// Variance returns the sample variance of per-run nets.
func (s *Aggregate) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.MeanNet()
	return (s.SumNet2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation of per-run nets.
func (s *Aggregate) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean net.
func (s *Aggregate) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// net.
func (s *Aggregate) ConfidenceInterval95() (float64, float64) {
	mean := s.MeanNet()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// MedianNet returns the median per-run net.
func (s *Aggregate) MedianNet() float64 {
	if len(s.Nets) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Nets))
	copy(sorted, s.Nets)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// WinRate returns the fraction of settled hands won.
func (s *Aggregate) WinRate() float64 { return s.handRate(s.Wins) }

// PushRate returns the fraction of settled hands pushed.
func (s *Aggregate) PushRate() float64 { return s.handRate(s.Pushes) }

// LossRate returns the fraction of settled hands lost.
func (s *Aggregate) LossRate() float64 { return s.handRate(s.Losses) }

// NetPerHand returns the mean profit per settled hand.
func (s *Aggregate) NetPerHand() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumNet / float64(s.Hands)
}

// NetPerWagered returns profit per unit wagered, the house-edge view of
// the strategy.
func (s *Aggregate) NetPerWagered() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return s.SumNet / s.Wagered
}

// MeanHands returns the average number of hands a run survived.
func (s *Aggregate) MeanHands() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Hands) / float64(s.Runs)
}

func (s *Aggregate) handRate(n int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(n) / float64(s.Hands)
}

// Validate checks internal consistency of the accumulated data.
func (s *Aggregate) Validate() error {
	if s.Runs <= 0 {
		return fmt.Errorf("invalid run count: %d", s.Runs)
	}
	if len(s.Nets) != s.Runs {
		return fmt.Errorf("nets length (%d) does not match run count (%d)", len(s.Nets), s.Runs)
	}
	settled := s.Wins + s.Pushes + s.Losses + s.Surrenders
	if settled != s.Hands {
		return fmt.Errorf("outcome total (%d) does not match hands (%d)", settled, s.Hands)
	}
	// Naturals win or, against a dealer natural, push.
	if s.Blackjacks > s.Wins+s.Pushes {
		return fmt.Errorf("blackjacks (%d) exceed wins plus pushes (%d)", s.Blackjacks, s.Wins+s.Pushes)
	}
	return nil
}

// Summary holds per-strategy aggregates for a batch of results.
type Summary struct {
	Strategies map[string]*Aggregate
}

// Summarize folds a batch of results into per-strategy aggregates. The
// totals are independent of the order results were produced or delivered.
func Summarize(results []Result) *Summary {
	sum := &Summary{Strategies: make(map[string]*Aggregate)}
	for _, r := range results {
		sum.Add(r)
	}
	return sum
}

// Add incorporates one result into the summary.
func (sum *Summary) Add(r Result) {
	s, ok := sum.Strategies[r.Strategy]
	if !ok {
		s = &Aggregate{Name: r.Strategy}
		sum.Strategies[r.Strategy] = s
	}
	s.Add(r)
}

// Names returns strategy names ordered by mean net, best first, ties
// broken alphabetically.
func (sum *Summary) Names() []string {
	names := make([]string, 0, len(sum.Strategies))
	for name := range sum.Strategies {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := sum.Strategies[names[i]], sum.Strategies[names[j]]
		if a.MeanNet() != b.MeanNet() {
			return a.MeanNet() > b.MeanNet()
		}
		return names[i] < names[j]
	})
	return names
}
