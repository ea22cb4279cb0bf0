package engine

// IsLegal reports whether playing card from hand is legal under the
// given serving suit.
//
//   - A card not in the hand is never legal.
//   - With no serving suit established, any card is legal.
//   - Jesters and Wizards are always legal; they never serve.
//   - Otherwise the card must match the serving suit unless the hand
//     holds no card of that suit.
func IsLegal(card Card, hand []Card, servingSuit uint8) bool {
	found := false
	holdsServing := false
	for _, c := range hand {
		if c.Same(card) {
			found = true
		}
		if c.Suit() == servingSuit {
			holdsServing = true
		}
	}
	if !found {
		return false
	}
	if servingSuit == NoSuit {
		return true
	}
	if card.IsJester() || card.IsWizard() {
		return true
	}
	return card.Suit() == servingSuit || !holdsServing
}

// LegalCards returns the subset of hand that is legal to play under
// the given serving suit. Allocates; drivers filtering in hot loops
// should call IsLegal per candidate instead.
func LegalCards(hand []Card, servingSuit uint8) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if IsLegal(c, hand, servingSuit) {
			out = append(out, c)
		}
	}
	return out
}

// LegalActions returns the legal cards for the acting player of the
// current trick.
func (g *GameState) LegalActions() []Card {
	return LegalCards(g.Hand(g.ActivePlayer), g.ServingSuit)
}
