package game

import (
	"strconv"
	"strings"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"
)

// Hand is a single blackjack hand and the wager riding on it. A player may
// hold several hands at once after splitting; each carries its own bet and
// is played and settled independently.
type Hand struct {
	cards       []deck.Card
	bet         float64
	fromSplit   bool
	doubled     bool
	surrendered bool
	stood       bool
}

// NewHand creates a hand with the given wager and initial cards.
func NewHand(bet float64, cards ...deck.Card) *Hand {
	return &Hand{
		cards: append(make([]deck.Card, 0, 4), cards...),
		bet:   bet,
	}
}

// Add appends a dealt card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in the hand in deal order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Bet returns the current wager on the hand, including any double.
func (h *Hand) Bet() float64 {
	return h.bet
}

// HardTotal returns the hand total with every ace counted as one.
func (h *Hand) HardTotal() int {
	total := 0
	for _, c := range h.cards {
		total += c.Value()
	}
	return total
}

// Value returns the best total of the hand and whether that total is soft.
// A hand is soft when it holds an ace counted as eleven; at most one ace can
// be promoted without busting.
func (h *Hand) Value() (total int, soft bool) {
	total = h.HardTotal()
	for _, c := range h.cards {
		if c.IsAce() {
			if total+10 <= 21 {
				return total + 10, true
			}
			break
		}
	}
	return total, false
}

// IsBust returns true if the hand total exceeds 21.
func (h *Hand) IsBust() bool {
	total, _ := h.Value()
	return total > 21
}

// IsBlackjack returns true for a natural: an ace and a ten-value card as the
// first two cards of an unsplit hand. A 21 assembled after a split pays even
// money, not 3:2.
func (h *Hand) IsBlackjack() bool {
	if h.fromSplit || len(h.cards) != 2 {
		return false
	}
	total, _ := h.Value()
	return total == 21
}

// IsPair returns true if the hand is exactly two cards of equal blackjack
// value. Any two ten-value cards count, so K,Q splits like T,T.
func (h *Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
}

// FromSplit returns true if the hand was created by splitting a pair.
func (h *Hand) FromSplit() bool {
	return h.fromSplit
}

// Doubled returns true if the hand's bet was doubled down.
func (h *Hand) Doubled() bool {
	return h.doubled
}

// Surrendered returns true if the hand was surrendered.
func (h *Hand) Surrendered() bool {
	return h.surrendered
}

// String renders the hand for logs, e.g. "A♠K♥ (21)".
func (h *Hand) String() string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteString(c.String())
	}
	total, soft := h.Value()
	b.WriteString(" (")
	if soft {
		b.WriteString("soft ")
	}
	b.WriteString(strconv.Itoa(total))
	b.WriteString(")")
	return b.String()
}

// double doubles the wager on the hand. The round deals exactly one more
// card afterwards.
func (h *Hand) double() {
	h.bet *= 2
	h.doubled = true
}

// splitOff removes the hand's second card and returns it as a new hand
// carrying the same wager. Both hands are marked as split hands.
func (h *Hand) splitOff() *Hand {
	second := h.cards[1]
	h.cards = h.cards[:1]
	h.fromSplit = true
	return &Hand{
		cards:     append(make([]deck.Card, 0, 4), second),
		bet:       h.bet,
		fromSplit: true,
	}
}
