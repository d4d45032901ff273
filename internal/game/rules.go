package game

// Rules captures the house rules a table plays under.
type Rules struct {
	MinBet           float64 // Smallest wager the table accepts
	BlackjackPayout  float64 // Multiple of the bet paid on a natural, normally 1.5
	AllowSurrender   bool    // Late surrender against a ten or ace upcard
	AllowInsurance   bool    // Insurance side bet against an ace upcard
	DealerHitsSoft17 bool    // H17 tables hit soft 17, S17 tables stand
	MaxPlayerHands   int     // Cap on hands a player can hold after splits
	HitSplitAces     bool    // Whether split aces may draw more than one card
}

// DefaultRules returns the rules used when the caller does not override them:
// a five dollar minimum, 3:2 blackjacks, dealer stands on soft 17, resplit up
// to four hands, and no surrender or insurance.
func DefaultRules() Rules {
	return Rules{
		MinBet:          5,
		BlackjackPayout: 1.5,
		MaxPlayerHands:  4,
	}
}
