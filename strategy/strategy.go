// Package strategy provides the playing strategies the simulator pits
// against the house: a catalogue of published card counting systems, the
// basic strategy decision tables with optional count-based deviations, and
// count-driven bet sizing.
//
// A Strategy is assembled from three orthogonal parts, each swappable on
// its own:
//
//   - a Counter, the counting system assigning a weight to every card
//   - a Policy, the decision tables played against the dealer upcard
//   - a Bettor, the wager sizing driven by the true count
//
// Strategies are stateless; the running count lives in the simulator's
// tracker, so a single Strategy value is safe to share across concurrent
// runs.
package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/game"
)

// Strategy is a complete player: counting system, decision tables and bet
// sizing. It extends game.Agent with the counting hooks the simulator needs
// to maintain the tracker on the player's behalf.
type Strategy interface {
	game.Agent

	// Name identifies the strategy in results and reports.
	Name() string

	// CardWeight returns the counting weight of an observed card.
	CardWeight(c deck.Card) float64

	// InitialRunningCount returns the count the system starts from for a
	// shoe of the given size. Zero for balanced systems; unbalanced
	// systems offset by deck count.
	InitialRunningCount(decks int) float64

	// Balanced reports whether the running count should be divided by
	// the decks remaining to produce the betting signal. Unbalanced
	// systems read the running count raw.
	Balanced() bool
}

// Policy supplies the playing decisions.
type Policy interface {
	Play(h *game.Hand, dealerUp deck.Card, trueCount float64, rules game.Rules) game.Decision
	TakeInsurance(trueCount float64) bool
}

// Bettor sizes the wager for the next round.
type Bettor interface {
	BetAmount(trueCount float64, rules game.Rules, bankroll float64) float64
}

// New assembles a Strategy from its three parts under the given name.
func New(name string, counter Counter, policy Policy, bettor Bettor) Strategy {
	return &composed{name: name, counter: counter, policy: policy, bettor: bettor}
}

type composed struct {
	name    string
	counter Counter
	policy  Policy
	bettor  Bettor
}

func (s *composed) Name() string { return s.name }

func (s *composed) CardWeight(c deck.Card) float64 { return s.counter.Weight(c) }

func (s *composed) InitialRunningCount(decks int) float64 {
	if s.counter.Initial == nil {
		return 0
	}
	return s.counter.Initial(decks)
}

func (s *composed) Balanced() bool { return s.counter.Balanced }

func (s *composed) BetAmount(trueCount float64, rules game.Rules, bankroll float64) float64 {
	return s.bettor.BetAmount(trueCount, rules, bankroll)
}

func (s *composed) Play(h *game.Hand, dealerUp deck.Card, trueCount float64, rules game.Rules) game.Decision {
	return s.policy.Play(h, dealerUp, trueCount, rules)
}

func (s *composed) TakeInsurance(trueCount float64) bool {
	return s.policy.TakeInsurance(trueCount)
}

// Params carries the knobs a registry builder needs to assemble a strategy.
type Params struct {
	// Margin scales the wager above the table minimum as the count
	// climbs.
	Margin float64

	// Deviations selects the deviation set layered on basic strategy:
	// "" for none, "s17" or "h17" for the matching index plays.
	Deviations string
}

// Builder constructs a strategy from runtime parameters.
type Builder func(p Params) (Strategy, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Builder{}
)

// Register adds a named builder to the catalogue. Later registrations with
// the same name replace earlier ones.
func Register(name string, b Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = b
}

// Build constructs the named strategy, or an error naming the unknown
// entry.
func Build(name string, p Params) (Strategy, error) {
	registryMu.RLock()
	b, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("strategy: unknown strategy %q", name)
	}
	return b(p)
}

// Names returns every registered strategy name in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultSet builds every registered strategy with the same parameters,
// sorted by name. This is the lineup the CLI runs when no strategy file is
// given.
func DefaultSet(p Params) ([]Strategy, error) {
	var set []Strategy
	for _, name := range Names() {
		s, err := Build(name, p)
		if err != nil {
			return nil, err
		}
		set = append(set, s)
	}
	return set, nil
}

func policyFor(deviations string) (Policy, error) {
	switch deviations {
	case "", "none":
		return BasicPolicy{}, nil
	case "s17":
		return DeviationPolicy{}, nil
	case "h17":
		return DeviationPolicy{H17: true}, nil
	default:
		return nil, fmt.Errorf("strategy: unknown deviation set %q", deviations)
	}
}

func init() {
	for _, c := range Counters() {
		counter := c
		Register(counter.Name, func(p Params) (Strategy, error) {
			policy, err := policyFor(p.Deviations)
			if err != nil {
				return nil, err
			}
			margin := p.Margin
			if margin <= 0 {
				margin = 2
			}
			return New(counter.Name, counter, policy, MarginBettor{Margin: margin}), nil
		})
	}

	// A non-counting baseline: basic strategy, flat table-minimum bets.
	Register("Basic", func(p Params) (Strategy, error) {
		return New("Basic", NoCount, BasicPolicy{}, FlatBettor{}), nil
	})
}
