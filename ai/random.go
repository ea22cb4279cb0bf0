package ai

import "github.com/simulatedScience/wizard-game/engine"

// Random plays uniformly: random trump suit, random bid in range,
// random legal card.
type Random struct {
	rng *engine.RNG
}

// NewRandom returns a Random policy with its own generator.
func NewRandom(seed uint64) *Random {
	return &Random{rng: engine.NewRNG(seed)}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ChooseTrump(_ []engine.Card) uint8 {
	return uint8(r.rng.Intn(4))
}

func (r *Random) Bid(g *engine.GameState, _ uint8) uint8 {
	return uint8(r.rng.Intn(int(g.RoundNumber) + 1))
}

func (r *Random) ChooseCard(g *engine.GameState, player uint8) engine.Card {
	legal := engine.LegalCards(g.Hand(player), g.ServingSuit)
	return legal[r.rng.Intn(len(legal))]
}
