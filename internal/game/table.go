package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientFunds is returned when a debit would take a balance below
// zero.
var ErrInsufficientFunds = errors.New("game: insufficient funds")

// ErrTableCannotCover is returned when the house bankroll cannot cover the
// largest payout a wager could win. The table refuses the bet rather than
// risk an unpayable round.
var ErrTableCannotCover = errors.New("game: table bankroll cannot cover payout")

// Account holds a player's balance. Wagers are debited when placed and
// winning hands are credited at settlement, so the balance always reflects
// money actually in hand, never money riding on the felt.
type Account struct {
	balance float64
}

// NewAccount creates an account with the given starting balance.
func NewAccount(balance float64) *Account {
	return &Account{balance: balance}
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	return a.balance
}

// Debit removes amount from the balance, failing if it would go negative.
func (a *Account) Debit(amount float64) error {
	if amount > a.balance {
		return fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, amount, a.balance)
	}
	a.balance -= amount
	return nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount float64) {
	a.balance += amount
}

// Table is the house side of the game: the rules in force and the bankroll
// that pays winning hands. A bankroll of +Inf models the usual simulation
// setup where the house can always pay.
type Table struct {
	rules    Rules
	bankroll float64
}

// NewTable creates a table with the given rules and house bankroll. A
// bankroll of zero or below means unconstrained and is stored as +Inf.
func NewTable(rules Rules, bankroll float64) *Table {
	if bankroll <= 0 {
		bankroll = math.Inf(1)
	}
	return &Table{rules: rules, bankroll: bankroll}
}

// Rules returns the house rules in force at the table.
func (t *Table) Rules() Rules {
	return t.rules
}

// Bankroll returns the house bankroll.
func (t *Table) Bankroll() float64 {
	return t.bankroll
}

// CanCover reports whether the house could pay out amount.
func (t *Table) CanCover(amount float64) bool {
	return amount <= t.bankroll
}

// Pay deducts a payout from the house bankroll.
func (t *Table) Pay(amount float64) {
	t.bankroll -= amount
}

// Collect adds a lost wager to the house bankroll.
func (t *Table) Collect(amount float64) {
	if !math.IsInf(t.bankroll, 1) {
		t.bankroll += amount
	}
}
