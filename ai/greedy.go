package ai

import "github.com/simulatedScience/wizard-game/engine"

// Greedy is a simple rule-based policy: it bids by counting strong
// cards, chases tricks while under its bid and sheds weak cards once
// the bid is met.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

// ChooseTrump picks the suit the chooser holds most of.
func (Greedy) ChooseTrump(hand []engine.Card) uint8 {
	var counts [4]int
	for _, c := range hand {
		if s := c.Suit(); s != engine.NoSuit {
			counts[s]++
		}
	}
	best := uint8(0)
	for s := uint8(1); s < 4; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

// Bid counts wizards, high cards and decent trump as expected tricks.
func (Greedy) Bid(g *engine.GameState, player uint8) uint8 {
	bid := uint8(0)
	for _, c := range g.Hand(player) {
		switch {
		case c.IsWizard():
			bid++
		case c.IsJester():
		case c.Suit() == g.TrumpSuit && c.Rank() >= 8:
			bid++
		case c.Rank() >= 12:
			bid++
		}
	}
	if bid > g.RoundNumber {
		bid = g.RoundNumber
	}
	return bid
}

// ChooseCard plays the weakest card that would currently take the
// trick while the player still needs tricks, and the weakest legal
// card otherwise.
func (Greedy) ChooseCard(g *engine.GameState, player uint8) engine.Card {
	legal := engine.LegalCards(g.Hand(player), g.ServingSuit)
	needTricks := g.Players[player].WonTricks < g.Players[player].Prediction

	trick := g.CurrentTrick()
	chosen := engine.EmptyCard
	if needTricks {
		// Weakest card that beats everything played so far.
		for _, c := range legal {
			probe := append(append([]engine.Card{}, trick...), c)
			if engine.ScoreTrick(probe, g.TrumpSuit) == uint8(len(trick)) {
				if chosen == engine.EmptyCard || strength(c, g.TrumpSuit) < strength(chosen, g.TrumpSuit) {
					chosen = c
				}
			}
		}
	}
	if chosen == engine.EmptyCard {
		for _, c := range legal {
			if chosen == engine.EmptyCard || strength(c, g.TrumpSuit) < strength(chosen, g.TrumpSuit) {
				chosen = c
			}
		}
	}
	return chosen
}

// strength orders cards for shedding: jester < off-suit by rank <
// trump by rank < wizard.
func strength(c engine.Card, trumpSuit uint8) int {
	switch {
	case c.IsJester():
		return 0
	case c.IsWizard():
		return 40
	case c.Suit() == trumpSuit:
		return 15 + int(c.Rank())
	default:
		return int(c.Rank())
	}
}
