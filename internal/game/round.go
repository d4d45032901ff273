package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/deck"
)

// RoundResult summarises one settled round from the player's side.
type RoundResult struct {
	Bet        float64 // opening wager, after clamping
	Wagered    float64 // everything risked: opening bet, doubles, splits, insurance
	Net        float64 // player balance delta for the round
	Hands      int     // hands settled, more than one after splits
	Wins       int
	Pushes     int
	Losses     int
	Surrenders int
	Blackjack  bool // player was dealt a natural
}

// Round drives one round of blackjack from the opening bet to settlement.
// It owns no state of its own; the shoe, table, account and counter passed
// in carry everything forward between rounds.
type Round struct {
	shoe    *deck.Shoe
	table   *Table
	account *Account
	counter CardCounter
	agent   Agent
	logger  *log.Logger
}

// NewRound wires up a round over the caller's table state.
func NewRound(shoe *deck.Shoe, table *Table, account *Account, counter CardCounter, agent Agent, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Round{
		shoe:    shoe,
		table:   table,
		account: account,
		counter: counter,
		agent:   agent,
		logger:  logger,
	}
}

// Play runs the round to completion. It returns an error only when the
// round cannot proceed at all: the shoe ran dry mid-round, the player
// cannot cover the table minimum, or the house cannot cover the payout.
func (r *Round) Play() (RoundResult, error) {
	var res RoundResult
	opening := r.account.Balance()
	rules := r.table.Rules()

	bet := r.clampBet(r.agent.BetAmount(r.trueCount(), rules, r.account.Balance()))
	if !r.table.CanCover(bet * rules.BlackjackPayout) {
		return res, ErrTableCannotCover
	}
	if err := r.account.Debit(bet); err != nil {
		return res, err
	}
	res.Bet = bet
	res.Wagered = bet

	// Deal order matches the table: player, dealer up, player, dealer
	// hole. The hole card stays hidden from the counter until revealed.
	p1, err := r.dealObserved()
	if err != nil {
		return res, err
	}
	up, err := r.dealObserved()
	if err != nil {
		return res, err
	}
	p2, err := r.dealObserved()
	if err != nil {
		return res, err
	}
	hole, err := r.shoe.Deal()
	if err != nil {
		return res, err
	}

	hand := NewHand(bet, p1, p2)
	r.logger.Debug("dealt", "hand", hand, "up", up)

	if up.IsAce() && rules.AllowInsurance {
		if err := r.playInsurance(bet, up, hole, &res); err != nil {
			return res, err
		}
	}

	dealerHand := NewHand(0, up, hole)
	if (up.IsAce() || up.Value() == 10) && dealerHand.IsBlackjack() {
		r.counter.Observe(hole)
		if hand.IsBlackjack() {
			r.account.Credit(bet)
			res.Pushes++
			res.Blackjack = true
		} else {
			r.table.Collect(bet)
			res.Losses++
		}
		res.Hands = 1
		res.Net = r.account.Balance() - opening
		return res, nil
	}

	if hand.IsBlackjack() {
		payout := bet * rules.BlackjackPayout
		r.account.Credit(bet + payout)
		r.table.Pay(payout)
		r.counter.Observe(hole)
		res.Wins++
		res.Blackjack = true
		res.Hands = 1
		res.Net = r.account.Balance() - opening
		return res, nil
	}

	hands, err := r.playHands(hand, up, &res)
	if err != nil {
		return res, err
	}

	if err := r.settle(hands, dealerHand, &res); err != nil {
		return res, err
	}
	res.Hands = len(hands)
	res.Net = r.account.Balance() - opening
	return res, nil
}

// playInsurance resolves the insurance side bet against a revealed ace. The
// bet is half the opening wager, clipped to what the player has left, and
// pays 2:1 when the hole card completes a natural.
func (r *Round) playInsurance(bet float64, up, hole deck.Card, res *RoundResult) error {
	if !r.agent.TakeInsurance(r.trueCount()) {
		return nil
	}
	side := bet / 2
	if side > r.account.Balance() {
		side = r.account.Balance()
	}
	if side <= 0 {
		return nil
	}
	if err := r.account.Debit(side); err != nil {
		return err
	}
	res.Wagered += side

	if hole.Value() == 10 {
		r.account.Credit(side * 3)
		r.table.Pay(side * 2)
		r.logger.Debug("insurance won", "side", side)
	} else {
		r.table.Collect(side)
		r.logger.Debug("insurance lost", "side", side)
	}
	return nil
}

// playHands runs the player's decision loop. Splits insert the new hand
// immediately after the current one, matching the left-to-right order of a
// real table.
func (r *Round) playHands(first *Hand, up deck.Card, res *RoundResult) ([]*Hand, error) {
	hands := []*Hand{first}
	for i := 0; i < len(hands); i++ {
		h := hands[i]
		for !h.stood && !h.IsBust() {
			if total, _ := h.Value(); total == 21 {
				break
			}
			d := r.agent.Play(h, up, r.trueCount(), r.table.Rules())
			if !r.legal(d, h, up, len(hands)) {
				r.logger.Debug("illegal decision coerced to stand", "decision", d, "hand", h)
				d = Stand
			}

			switch d {
			case Stand:
				h.stood = true

			case Hit:
				c, err := r.dealObserved()
				if err != nil {
					return nil, err
				}
				h.Add(c)

			case Double:
				if err := r.account.Debit(h.Bet()); err != nil {
					return nil, err
				}
				res.Wagered += h.Bet()
				h.double()
				c, err := r.dealObserved()
				if err != nil {
					return nil, err
				}
				h.Add(c)
				h.stood = true

			case Split:
				if err := r.account.Debit(h.Bet()); err != nil {
					return nil, err
				}
				res.Wagered += h.Bet()
				next := h.splitOff()

				c1, err := r.dealObserved()
				if err != nil {
					return nil, err
				}
				h.Add(c1)
				c2, err := r.dealObserved()
				if err != nil {
					return nil, err
				}
				next.Add(c2)

				hands = append(hands, nil)
				copy(hands[i+2:], hands[i+1:])
				hands[i+1] = next

				// Split aces receive one card each and stand.
				if h.cards[0].IsAce() && !r.table.Rules().HitSplitAces {
					h.stood = true
					next.stood = true
				}

			case Surrender:
				h.surrendered = true
				h.stood = true
				r.account.Credit(h.Bet() / 2)
				r.table.Collect(h.Bet() / 2)
			}
		}
	}
	return hands, nil
}

// legal reports whether the requested decision is available for the hand
// under the table rules and the player's remaining balance.
func (r *Round) legal(d Decision, h *Hand, up deck.Card, handCount int) bool {
	rules := r.table.Rules()
	switch d {
	case Stand, Hit:
		return true
	case Double:
		if len(h.cards) != 2 || h.fromSplit || h.doubled {
			return false
		}
		total := h.HardTotal()
		if total < 9 || total > 11 {
			return false
		}
		return h.Bet() <= r.account.Balance()
	case Split:
		return h.IsPair() &&
			handCount < rules.MaxPlayerHands &&
			h.Bet() <= r.account.Balance()
	case Surrender:
		if !rules.AllowSurrender || h.fromSplit || len(h.cards) != 2 {
			return false
		}
		return up.IsAce() || up.Value() == 10
	default:
		return false
	}
}

// settle reveals the dealer's hole card, plays out the dealer's draw when
// any player hand is still live, and pays each hand. The counter observes
// the hole card and every dealer draw here, which is the first time the
// player would see them.
func (r *Round) settle(hands []*Hand, dealerHand *Hand, res *RoundResult) error {
	r.counter.Observe(dealerHand.cards[1])

	alive := false
	for _, h := range hands {
		if !h.IsBust() && !h.surrendered {
			alive = true
			break
		}
	}

	rules := r.table.Rules()
	if alive {
		for {
			total, soft := dealerHand.Value()
			if total > 17 || (total == 17 && (!soft || !rules.DealerHitsSoft17)) {
				break
			}
			c, err := r.dealObserved()
			if err != nil {
				return err
			}
			dealerHand.Add(c)
		}
	}
	dealerTotal, _ := dealerHand.Value()
	r.logger.Debug("dealer settled", "hand", dealerHand)

	for _, h := range hands {
		total, _ := h.Value()
		switch {
		case h.surrendered:
			// Half the wager already came back during the decision
			// loop; the house keeps the rest.
			res.Surrenders++
		case total > 21:
			r.table.Collect(h.Bet())
			res.Losses++
		case dealerTotal > 21 || total > dealerTotal:
			r.account.Credit(2 * h.Bet())
			r.table.Pay(h.Bet())
			res.Wins++
		case total == dealerTotal:
			r.account.Credit(h.Bet())
			res.Pushes++
		default:
			r.table.Collect(h.Bet())
			res.Losses++
		}
	}
	return nil
}

// dealObserved deals the next card and shows it to the counter.
func (r *Round) dealObserved() (deck.Card, error) {
	c, err := r.shoe.Deal()
	if err != nil {
		return deck.Card{}, err
	}
	r.counter.Observe(c)
	return c, nil
}

func (r *Round) trueCount() float64 {
	return r.counter.True(r.shoe.DecksRemaining())
}

// clampBet forces the agent's requested wager into the playable range: at
// least the table minimum, at most the player's whole balance.
func (r *Round) clampBet(bet float64) float64 {
	rules := r.table.Rules()
	if bet < rules.MinBet {
		bet = rules.MinBet
	}
	if bet > r.account.Balance() {
		bet = r.account.Balance()
	}
	return bet
}
