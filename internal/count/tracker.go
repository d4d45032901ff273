// Package count maintains the running and true card counts for a shoe.
package count

import "github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"

// WeightFunc assigns a counting weight to a single observed card.
type WeightFunc func(c deck.Card) float64

// Tracker accumulates a running count from observed cards. Balanced systems
// convert it to a true count by dividing by the decks still in the shoe;
// unbalanced systems such as KO are designed to be read raw and skip the
// division, relying on their non-zero initial count instead.
type Tracker struct {
	weight   WeightFunc
	initial  float64
	running  float64
	balanced bool
}

// NewTracker creates a tracker starting at the given initial running count.
// Pass balanced=false for unbalanced systems whose running count already is
// the betting signal.
func NewTracker(weight WeightFunc, initial float64, balanced bool) *Tracker {
	return &Tracker{
		weight:   weight,
		initial:  initial,
		running:  initial,
		balanced: balanced,
	}
}

// Observe folds one exposed card into the running count.
func (t *Tracker) Observe(c deck.Card) {
	t.running += t.weight(c)
}

// Running returns the current running count.
func (t *Tracker) Running() float64 {
	return t.running
}

// True converts the running count to the betting signal. For balanced
// systems this is the running count divided by the estimated decks
// remaining; callers are expected to pass an estimate of at least one.
func (t *Tracker) True(decksRemaining float64) float64 {
	if !t.balanced {
		return t.running
	}
	if decksRemaining < 1 {
		decksRemaining = 1
	}
	return t.running / decksRemaining
}

// Reset restores the initial running count. Called when the shoe is
// reshuffled, since every dealt card returns to the shoe.
func (t *Tracker) Reset() {
	t.running = t.initial
}
