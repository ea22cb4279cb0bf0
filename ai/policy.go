// Package ai provides decision policies for driving Wizard games:
// trump choice when the indicator is a Wizard, trick-count bidding,
// and card selection. Policies observe the game state read-only and
// must return cards that pass engine.IsLegal.
package ai

import "github.com/simulatedScience/wizard-game/engine"

// Policy is the capability interface a seat's decision-maker
// implements. Implementations are resolved at construction time and
// injected into the driver; they may keep internal state (e.g. an RNG)
// but must never mutate the observed GameState.
type Policy interface {
	Name() string

	// ChooseTrump picks the trump suit when the round's indicator is a
	// Wizard. It runs before StartRound installs the deal, so the
	// chooser's freshly dealt hand is passed directly.
	ChooseTrump(hand []engine.Card) uint8

	// Bid returns the number of tricks the player claims to win this
	// round, in [0, RoundNumber].
	Bid(g *engine.GameState, player uint8) uint8

	// ChooseCard returns a legal card from the player's hand for the
	// current trick.
	ChooseCard(g *engine.GameState, player uint8) engine.Card
}

// Factory builds a fresh set of per-seat policies for one game. Batch
// runners call it once per game so policies (and their RNGs) are never
// shared across goroutines.
type Factory func(nPlayers int, seed uint64) []Policy
