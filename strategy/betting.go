package strategy

import (
	"math"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/game"
)

// MarginBettor scales the wager with the count: the table minimum at or
// below a zero count, and minimum times margin times the count rounded up
// when the count is positive. The result never exceeds the bankroll.
type MarginBettor struct {
	Margin float64
}

func (b MarginBettor) BetAmount(trueCount float64, rules game.Rules, bankroll float64) float64 {
	bet := rules.MinBet
	if trueCount > 0 {
		bet = rules.MinBet * b.Margin * math.Ceil(trueCount)
	}
	return math.Min(bet, bankroll)
}

// FlatBettor always wagers the table minimum, for baseline strategies that
// ignore the count.
type FlatBettor struct{}

func (FlatBettor) BetAmount(trueCount float64, rules game.Rules, bankroll float64) float64 {
	return math.Min(rules.MinBet, bankroll)
}
