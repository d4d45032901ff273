package game

import "github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"

// Decision is a playing action requested by an agent for one hand.
type Decision int

const (
	Stand Decision = iota
	Hit
	Double
	Split
	Surrender
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	case Double:
		return "double"
	case Split:
		return "split"
	case Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Agent supplies the player-side choices a round needs: how much to wager,
// how to play each hand, and whether to take insurance. Implementations
// receive read-only state and must not retain the hand between calls.
type Agent interface {
	// BetAmount returns the wager for the next round given the current
	// true count and the player's balance. The round clamps the result to
	// the table minimum and the available balance.
	BetAmount(trueCount float64, rules Rules, bankroll float64) float64

	// Play returns the next action for the hand against the dealer's
	// upcard. Illegal actions are coerced to Stand by the round.
	Play(h *Hand, dealerUp deck.Card, trueCount float64, rules Rules) Decision

	// TakeInsurance reports whether to take the insurance side bet when
	// the dealer shows an ace.
	TakeInsurance(trueCount float64) bool
}

// CardCounter observes cards as they are exposed during play. The round
// feeds it every card the player would see at a real table: both player
// cards, the dealer upcard, every hit card, and the dealer's draws. The
// hole card is observed exactly once per round, when the dealer turns it
// over at the end of the round; the dealer always exposes it, even when
// every player hand busted or the round ended on a natural.
type CardCounter interface {
	Observe(c deck.Card)
	True(decksRemaining float64) float64
}
