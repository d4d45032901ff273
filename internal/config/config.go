// Package config holds the simulation configuration and its validation.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/game"
)

// Error describes a single rejected configuration field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Config carries every knob a simulation batch needs. Values are plain data;
// a Config is copied freely into workers and never mutated after Validate.
type Config struct {
	PlayerBalance float64 `env:"BLACKJACKSIM_PLAYER_BALANCE"` // starting balance per run
	TableBalance  float64 `env:"BLACKJACKSIM_TABLE_BALANCE"`  // house bankroll, 0 = unconstrained
	Decks         int     `env:"BLACKJACKSIM_DECKS"`
	Simulations   int     `env:"BLACKJACKSIM_SIMULATIONS"` // independent runs per strategy
	MaxHands      int     `env:"BLACKJACKSIM_MAX_HANDS"`   // hand cap per run
	MinBet        float64 `env:"BLACKJACKSIM_MIN_BET"`
	BetMargin     float64 `env:"BLACKJACKSIM_BET_MARGIN"`
	Penetration   float64 `env:"BLACKJACKSIM_PENETRATION"` // shoe fraction dealt before reshuffle

	Surrender bool `env:"BLACKJACKSIM_SURRENDER"`
	Insurance bool `env:"BLACKJACKSIM_INSURANCE"`
	HitSoft17 bool `env:"BLACKJACKSIM_HIT_SOFT_17"`
	PerRun    bool `env:"BLACKJACKSIM_PER_RUN"` // emit a block per finished run

	Seed    int64 `env:"BLACKJACKSIM_SEED"`    // 0 = derive from the clock
	Workers int   `env:"BLACKJACKSIM_WORKERS"` // 0 = one per CPU
}

// Default returns the configuration used when nothing is overridden: a six
// deck shoe at 80% penetration, $500 bankroll at a $5 table, one hundred
// runs of up to two hundred hands.
func Default() Config {
	return Config{
		PlayerBalance: 500,
		Decks:         6,
		Simulations:   100,
		MaxHands:      200,
		MinBet:        5,
		BetMargin:     2,
		Penetration:   0.8,
		PerRun:        true,
	}
}

// FromEnv returns the default configuration with any BLACKJACKSIM_*
// environment variables applied on top.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulator cannot run.
func (c Config) Validate() error {
	switch {
	case c.Decks < 1:
		return &Error{"decks", "must be at least 1"}
	case c.Simulations < 1:
		return &Error{"simulations", "must be at least 1"}
	case c.MaxHands < 1:
		return &Error{"max hands", "must be at least 1"}
	case c.MinBet <= 0:
		return &Error{"min bet", "must be positive"}
	case c.BetMargin <= 0:
		return &Error{"bet margin", "must be positive"}
	case c.Penetration <= 0 || c.Penetration > 1:
		return &Error{"penetration", "must be in (0, 1]"}
	case c.PlayerBalance <= 0:
		return &Error{"player balance", "must be positive"}
	case c.MinBet > c.PlayerBalance:
		return &Error{"min bet", "exceeds the starting balance"}
	case c.Workers < 0:
		return &Error{"workers", "must not be negative"}
	}
	return nil
}

// Rules derives the table rules from the configuration.
func (c Config) Rules() game.Rules {
	rules := game.DefaultRules()
	rules.MinBet = c.MinBet
	rules.AllowSurrender = c.Surrender
	rules.AllowInsurance = c.Insurance
	rules.DealerHitsSoft17 = c.HitSoft17
	return rules
}
