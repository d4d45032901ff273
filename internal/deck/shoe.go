package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrShoeExhausted is returned by Deal when every card in the shoe has been
// dealt. Callers are expected to reshuffle between rounds before this can
// happen; hitting it mid-round indicates a misconfigured penetration.
var ErrShoeExhausted = errors.New("deck: shoe exhausted")

const cardsPerDeck = 52

// Shoe is a multi-deck dealing shoe. Dealt cards are never removed from the
// backing slice; a cursor tracks the boundary between dealt and undealt cards
// so that Reshuffle can restore the full population without reallocating.
type Shoe struct {
	cards       []Card
	cursor      int
	decks       int
	penetration float64
	rng         *rand.Rand
}

// NewShoe creates a shuffled shoe of decks standard 52-card decks. The
// penetration is the fraction of the shoe dealt before NeedsReshuffle starts
// reporting true. The caller owns the generator; the shoe never seeds one
// itself so that runs stay reproducible.
func NewShoe(decks int, penetration float64, rng *rand.Rand) (*Shoe, error) {
	if decks < 1 {
		return nil, fmt.Errorf("deck: shoe requires at least one deck, got %d", decks)
	}
	if penetration <= 0 || penetration > 1 {
		return nil, fmt.Errorf("deck: penetration must be in (0, 1], got %g", penetration)
	}

	s := &Shoe{
		cards:       make([]Card, 0, decks*cardsPerDeck),
		decks:       decks,
		penetration: penetration,
		rng:         rng,
	}
	for d := 0; d < decks; d++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.shuffle()
	return s, nil
}

// NewStackedShoe creates an unshuffled shoe that deals the provided cards in
// order. Reshuffle is a no-op beyond resetting the cursor. Intended for tests
// that need a scripted deal.
func NewStackedShoe(cards ...Card) *Shoe {
	return &Shoe{
		cards:       append([]Card(nil), cards...),
		decks:       (len(cards) + cardsPerDeck - 1) / cardsPerDeck,
		penetration: 1,
	}
}

func (s *Shoe) shuffle() {
	if s.rng == nil {
		return
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Deal removes and returns the next card from the shoe.
func (s *Shoe) Deal() (Card, error) {
	if s.cursor >= len(s.cards) {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// NeedsReshuffle reports whether the cut card has been reached, i.e. the
// dealt fraction of the shoe has passed the configured penetration.
func (s *Shoe) NeedsReshuffle() bool {
	return float64(s.cursor) >= s.penetration*float64(len(s.cards))
}

// Reshuffle returns every dealt card to the shoe and shuffles the full
// population.
func (s *Shoe) Reshuffle() {
	s.cursor = 0
	s.shuffle()
}

// Remaining returns the number of undealt cards.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.cursor
}

// Size returns the total number of cards in the shoe, dealt or not.
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Decks returns the number of decks the shoe was built from.
func (s *Shoe) Decks() int {
	return s.decks
}

// DecksRemaining estimates the undealt portion of the shoe in decks, rounded
// to the nearest half deck the way a player eyeballs the discard tray. The
// result never drops below one so true-count division stays defined near the
// cut card.
func (s *Shoe) DecksRemaining() float64 {
	halves := float64(s.Remaining()) / (cardsPerDeck / 2)
	est := float64(int(halves+0.5)) / 2
	if est < 1 {
		return 1
	}
	return est
}
