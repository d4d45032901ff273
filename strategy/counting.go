package strategy

import "github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"

// Counter is a card counting system: a name, a per-card weight, and for
// unbalanced systems the deck-dependent count the player starts from.
type Counter struct {
	Name string

	// Weight assigns the counting value of one observed card.
	Weight func(c deck.Card) float64

	// Initial returns the starting running count for a shoe of the
	// given number of decks. Nil means start at zero.
	Initial func(decks int) float64

	// Balanced systems sum to zero over a full deck and convert the
	// running count to a true count by deck division. Unbalanced systems
	// bake the conversion into their initial count and are read raw.
	Balanced bool
}

// weightTable maps card values (ace as 1) to counting weights. Suit-aware
// systems wrap it with their own function.
type weightTable [11]float64

func (w weightTable) weigh(c deck.Card) float64 {
	return w[c.Value()]
}

// NoCount weighs every card at zero, for strategies that ignore the count.
var NoCount = Counter{
	Name:     "None",
	Weight:   func(deck.Card) float64 { return 0 },
	Balanced: true,
}

// HiLo is the classic level-one balanced count.
var HiLo = Counter{
	Name: "HiLo",
	Weight: weightTable{
		1: -1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 0, 8: 0, 9: 0, 10: -1,
	}.weigh,
	Balanced: true,
}

// WongHalves is Stanford Wong's fractional balanced count.
var WongHalves = Counter{
	Name: "Wong Halves",
	Weight: weightTable{
		1: -1, 2: 0.5, 3: 1, 4: 1, 5: 1.5, 6: 1, 7: 0.5, 8: 0, 9: -0.5, 10: -1,
	}.weigh,
	Balanced: true,
}

// KO is the Knock-Out unbalanced count. Starting from 4-4D, the running
// count itself is the betting signal; no deck division is applied.
var KO = Counter{
	Name: "KO",
	Weight: weightTable{
		1: -1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 0, 9: 0, 10: -1,
	}.weigh,
	Initial:  func(decks int) float64 { return 4 - 4*float64(decks) },
	Balanced: false,
}

// RedSeven counts the two red sevens per deck as low cards, making it
// unbalanced by two points per deck. It starts at -2 per deck.
var RedSeven = Counter{
	Name: "Red Seven",
	Weight: func(c deck.Card) float64 {
		if c.Rank == deck.Seven {
			if c.IsRed() {
				return 1
			}
			return 0
		}
		return weightTable{
			1: -1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 8: 0, 9: 0, 10: -1,
		}.weigh(c)
	},
	Initial:  func(decks int) float64 { return -2 * float64(decks) },
	Balanced: false,
}

// HiOptI is the level-one balanced count that ignores aces.
var HiOptI = Counter{
	Name: "HiOptI",
	Weight: weightTable{
		1: 0, 2: 0, 3: 1, 4: 1, 5: 1, 6: 1, 7: 0, 8: 0, 9: 0, 10: -1,
	}.weigh,
	Balanced: true,
}

// HiOptII is the level-two balanced count that ignores aces.
var HiOptII = Counter{
	Name: "HiOptII",
	Weight: weightTable{
		1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 1, 7: 1, 8: 0, 9: 0, 10: -2,
	}.weigh,
	Balanced: true,
}

// OmegaII is Bryce Carlson's level-two balanced count.
var OmegaII = Counter{
	Name: "OmegaII",
	Weight: weightTable{
		1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 1, 8: 0, 9: -1, 10: -2,
	}.weigh,
	Balanced: true,
}

// ZenCount is Arnold Snyder's level-two balanced count.
var ZenCount = Counter{
	Name: "Zen Count",
	Weight: weightTable{
		1: -1, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 1, 8: 0, 9: 0, 10: -2,
	}.weigh,
	Balanced: true,
}

// UnbalancedZen2 drops the ace from the Zen weights, leaving the count
// unbalanced by four points per deck. Like KO it starts at 4-4D and reads
// the running count raw.
var UnbalancedZen2 = Counter{
	Name: "Unbalanced Zen 2",
	Weight: weightTable{
		1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 1, 8: 0, 9: 0, 10: -2,
	}.weigh,
	Initial:  func(decks int) float64 { return 4 - 4*float64(decks) },
	Balanced: false,
}

// SilverFox is Ralph Stricker's level-one balanced count.
var SilverFox = Counter{
	Name: "Silver Fox",
	Weight: weightTable{
		1: -1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 0, 9: -1, 10: -1,
	}.weigh,
	Balanced: true,
}

// KISSIII counts only the black twos, which leaves it unbalanced by two
// points per deck. It follows the KO convention of starting at its pivot
// offset.
var KISSIII = Counter{
	Name: "KISSIII",
	Weight: func(c deck.Card) float64 {
		if c.Rank == deck.Two {
			if c.IsRed() {
				return 0
			}
			return 1
		}
		return weightTable{
			1: -1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 0, 9: 0, 10: -1,
		}.weigh(c)
	},
	Initial:  func(decks int) float64 { return 4 - 2*float64(decks) },
	Balanced: false,
}

// AceFive tracks only aces and fives. It is a betting-only count; the
// playing decisions stay on basic strategy.
var AceFive = Counter{
	Name: "AceFive",
	Weight: weightTable{
		1: -1, 5: 1,
	}.weigh,
	Balanced: true,
}

// Counters returns the full catalogue of counting systems.
func Counters() []Counter {
	return []Counter{
		HiLo,
		WongHalves,
		KO,
		RedSeven,
		HiOptI,
		HiOptII,
		OmegaII,
		ZenCount,
		UnbalancedZen2,
		SilverFox,
		KISSIII,
		AceFive,
	}
}
