// Package game implements the core blackjack round logic.
//
// The main type is Round, which drives a single round of play from the
// opening bet through settlement: the deal, the insurance offer, the
// player's decision loop (hit, stand, double, split, surrender), the
// dealer's draw, and the final payouts.
//
// A Round is wired together from a dealing shoe, a Table carrying the house
// rules and bankroll, an Account holding the player's balance, a card
// counter, and an Agent supplying the playing decisions. Rounds share no
// state with each other; everything a round mutates is owned by the caller
// and passed in.
//
// For deterministic testing, construct the shoe with deck.NewStackedShoe so
// the deal is fully scripted.
package game
