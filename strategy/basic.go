package strategy

import (
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/game"
)

// BasicPolicy plays multi-deck basic strategy with no count-based
// deviations and never takes insurance.
//
// Lookup order mirrors how the choices present themselves at the table:
// surrender is only available on the opening two cards, splitting consumes
// the pair before totals matter, then soft and hard totals.
type BasicPolicy struct{}

func (BasicPolicy) Play(h *game.Hand, dealerUp deck.Card, trueCount float64, rules game.Rules) game.Decision {
	up := dealerUp.Value()

	if surrenderable(h, up, rules) && shouldSurrender(h.HardTotal(), up) {
		return game.Surrender
	}
	if h.IsPair() {
		if d, ok := pairDecision(h.Cards()[0].Value(), up); ok {
			return d
		}
	}
	if total, soft := h.Value(); soft {
		return softDecision(h, total, up)
	}
	return hardDecision(h, h.HardTotal(), up)
}

func (BasicPolicy) TakeInsurance(trueCount float64) bool {
	// Insurance is a losing side bet without a count.
	return false
}

// surrenderable reports whether late surrender is on offer at all: opening
// two cards of an unsplit hand against a ten or ace.
func surrenderable(h *game.Hand, up int, rules game.Rules) bool {
	return rules.AllowSurrender &&
		len(h.Cards()) == 2 && !h.FromSplit() &&
		(up == 10 || up == 1)
}

// shouldSurrender holds the standard multi-deck late surrender chart:
// hard 16 against 9, ten or ace, and hard 15 against a ten.
func shouldSurrender(hardTotal, up int) bool {
	switch hardTotal {
	case 15:
		return up == 10
	case 16:
		return up == 9 || up == 10 || up == 1
	}
	return false
}

// pairDecision returns the pair play for a pair of cards of the given
// value. ok is false when the chart says to play the hand as its total
// instead.
func pairDecision(pairCard, up int) (game.Decision, bool) {
	switch pairCard {
	case 1: // aces
		return game.Split, true
	case 2, 3:
		if up >= 2 && up <= 7 {
			return game.Split, true
		}
	case 4:
		if up == 5 || up == 6 {
			return game.Split, true
		}
	case 6:
		if up >= 2 && up <= 6 {
			return game.Split, true
		}
	case 7:
		if up >= 2 && up <= 7 {
			return game.Split, true
		}
	case 8:
		return game.Split, true
	case 9:
		if (up >= 2 && up <= 6) || up == 8 || up == 9 {
			return game.Split, true
		}
	}
	// Fives and tens are never split; everything else falls through to
	// the total charts.
	return game.Stand, false
}

// softDecision plays a soft total. The total argument is the soft value
// (ace as eleven).
func softDecision(h *game.Hand, total, up int) game.Decision {
	canDouble := doubleAvailable(h)
	switch {
	case total <= 17: // A2 through A6
		return game.Hit
	case total == 18: // A7
		switch {
		case up >= 2 && up <= 6:
			if canDouble {
				return game.Double
			}
			return game.Stand
		case up == 7 || up == 8:
			return game.Stand
		default:
			return game.Hit
		}
	case total == 19: // A8
		if up == 6 && canDouble {
			return game.Double
		}
		return game.Stand
	default: // A9 and above
		return game.Stand
	}
}

// hardDecision plays a hard total.
func hardDecision(h *game.Hand, total, up int) game.Decision {
	canDouble := doubleAvailable(h)
	switch {
	case total <= 8:
		return game.Hit
	case total == 9:
		if up >= 3 && up <= 6 && canDouble {
			return game.Double
		}
		return game.Hit
	case total == 10:
		if up >= 2 && up <= 9 && canDouble {
			return game.Double
		}
		return game.Hit
	case total == 11:
		if canDouble {
			return game.Double
		}
		return game.Hit
	case total == 12:
		if up >= 4 && up <= 6 {
			return game.Stand
		}
		return game.Hit
	case total <= 16:
		if up >= 2 && up <= 6 {
			return game.Stand
		}
		return game.Hit
	default:
		return game.Stand
	}
}

// doubleAvailable mirrors the table rule: two cards, not after a split,
// and a hard total of nine through eleven.
func doubleAvailable(h *game.Hand) bool {
	if len(h.Cards()) != 2 || h.FromSplit() || h.Doubled() {
		return false
	}
	total := h.HardTotal()
	return total >= 9 && total <= 11
}
