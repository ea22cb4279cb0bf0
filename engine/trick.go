package engine

// updateLeader folds one newly played card into the trick, returning
// the updated leader, leading card and serving suit.
//
// Ranking rules, applied in order:
//  1. The first card of a trick leads; if suited it sets the serving suit.
//  2. A Jester never displaces an existing leader.
//  3. A suited card displaces a Jester leader and sets the serving suit.
//  4. The first Wizard played beats everything.
//  5. Later Wizards never displace the first.
//  6. A trump card beats a non-trump numbered leader.
//  7. A higher card of the leader's suit beats it (strictly higher,
//     so earlier cards win ties).
func updateLeader(playerIdx uint8, card Card, leaderIdx uint8, leadCard Card, servingSuit, trumpSuit uint8) (uint8, Card, uint8) {
	switch {
	case leadCard == EmptyCard:
		if s := card.Suit(); s != NoSuit {
			servingSuit = s
		}
		return playerIdx, card, servingSuit

	case card.IsJester():
		return leaderIdx, leadCard, servingSuit

	case leadCard.IsJester() && card.Suit() != NoSuit:
		return playerIdx, card, card.Suit()

	case card.IsWizard() && !leadCard.IsWizard():
		return playerIdx, card, servingSuit

	case card.IsWizard():
		return leaderIdx, leadCard, servingSuit

	case card.Suit() == trumpSuit && leadCard.Suit() != trumpSuit && !leadCard.IsWizard():
		return playerIdx, card, servingSuit

	case card.Suit() == leadCard.Suit() && card.Rank() > leadCard.Rank():
		return playerIdx, card, servingSuit
	}
	return leaderIdx, leadCard, servingSuit
}

// ScoreTrick returns the index of the winning card in a completed
// trick (index = play order), given the round's trump suit (NoSuit for
// no trump). Recomputing from scratch agrees with the incremental
// tracking done by PerformAction.
func ScoreTrick(cards []Card, trumpSuit uint8) uint8 {
	leader := uint8(0)
	leadCard := EmptyCard
	serving := NoSuit
	for i, c := range cards {
		leader, leadCard, serving = updateLeader(uint8(i), c, leader, leadCard, serving, trumpSuit)
	}
	return leader
}
