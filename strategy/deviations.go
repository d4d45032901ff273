package strategy

import (
	"math"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/game"
)

// deviation is one index play: on a hard total against an upcard, play
// above when the true count is at or past the threshold, below otherwise.
type deviation struct {
	total     int
	up        int // dealer upcard value, ace as 1
	threshold float64
	above     game.Decision
	below     game.Decision
}

// s17Deviations is the core of the Illustrious 18 for multi-deck games
// where the dealer stands on soft 17.
var s17Deviations = []deviation{
	{total: 16, up: 10, threshold: 0, above: game.Stand, below: game.Hit},
	{total: 15, up: 10, threshold: 4, above: game.Stand, below: game.Hit},
	{total: 12, up: 2, threshold: 3, above: game.Stand, below: game.Hit},
	{total: 12, up: 3, threshold: 2, above: game.Stand, below: game.Hit},
	{total: 12, up: 4, threshold: 0, above: game.Stand, below: game.Hit},
	{total: 12, up: 5, threshold: -2, above: game.Stand, below: game.Hit},
	{total: 12, up: 6, threshold: -1, above: game.Stand, below: game.Hit},
	{total: 13, up: 2, threshold: -1, above: game.Stand, below: game.Hit},
	{total: 13, up: 3, threshold: -2, above: game.Stand, below: game.Hit},
	{total: 9, up: 2, threshold: 1, above: game.Double, below: game.Hit},
	{total: 9, up: 7, threshold: 3, above: game.Double, below: game.Hit},
	{total: 10, up: 10, threshold: 4, above: game.Double, below: game.Hit},
	{total: 10, up: 1, threshold: 4, above: game.Double, below: game.Hit},
	{total: 11, up: 1, threshold: 1, above: game.Double, below: game.Hit},
}

// h17Deviations adjusts the set for tables where the dealer hits soft 17:
// doubling 11 against the ace becomes the off-the-top play.
var h17Deviations = func() []deviation {
	devs := make([]deviation, len(s17Deviations))
	copy(devs, s17Deviations)
	for i := range devs {
		if devs[i].total == 11 && devs[i].up == 1 {
			devs[i].threshold = math.Inf(-1)
		}
	}
	return devs
}()

// insuranceThreshold is the true count at which insurance flips positive
// for level-one counts.
const insuranceThreshold = 3

// DeviationPolicy layers count-based index plays over basic strategy and
// takes insurance once the count justifies it.
type DeviationPolicy struct {
	// H17 selects the deviation set for dealer-hits-soft-17 tables.
	H17 bool
}

func (p DeviationPolicy) Play(h *game.Hand, dealerUp deck.Card, trueCount float64, rules game.Rules) game.Decision {
	up := dealerUp.Value()

	// Index plays apply to hard totals only, and never preempt the pair
	// chart or surrender.
	if total, soft := h.Value(); !soft && !h.IsPair() && !(surrenderable(h, up, rules) && shouldSurrender(total, up)) {
		for _, dev := range p.deviations() {
			if dev.total != total || dev.up != up {
				continue
			}
			d := dev.below
			if trueCount >= dev.threshold {
				d = dev.above
			}
			if d == game.Double && !doubleAvailable(h) {
				d = game.Hit
			}
			return d
		}
	}

	return BasicPolicy{}.Play(h, dealerUp, trueCount, rules)
}

func (p DeviationPolicy) TakeInsurance(trueCount float64) bool {
	return trueCount >= insuranceThreshold
}

func (p DeviationPolicy) deviations() []deviation {
	if p.H17 {
		return h17Deviations
	}
	return s17Deviations
}
