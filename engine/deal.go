package engine

import "fmt"

// Deal shuffles a fresh 60-card deck and returns one hand of round
// cards per player plus the trump indicator. The indicator is
// EmptyCard exactly when the deal consumes the whole deck
// (nPlayers * round == 60).
//
// The caller owns rng; dealing the same (nPlayers, round) from the
// same generator state always yields the same hands.
func Deal(nPlayers, round uint8, rng *RNG) (hands [][]Card, trump Card, err error) {
	if nPlayers < MinPlayers || nPlayers > MaxPlayers {
		return nil, EmptyCard, DealError(fmt.Sprintf("deal: player count %d outside %d..%d", nPlayers, MinPlayers, MaxPlayers))
	}
	if round == 0 || round > DeckSize/nPlayers {
		return nil, EmptyCard, DealError(fmt.Sprintf("deal: %d players cannot be dealt %d cards each from %d", nPlayers, round, DeckSize))
	}

	var deck [DeckSize]Card
	for i := range deck {
		deck[i] = Card(i)
	}

	// Fisher-Yates shuffle.
	for i := DeckSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	hands = make([][]Card, nPlayers)
	for p := uint8(0); p < nPlayers; p++ {
		h := make([]Card, round)
		copy(h, deck[uint(p)*uint(round):(uint(p)+1)*uint(round)])
		hands[p] = h
	}

	trump = EmptyCard
	if used := uint(nPlayers) * uint(round); used < DeckSize {
		trump = deck[used]
	}
	return hands, trump, nil
}

// TrumpFromIndicator resolves the round's trump suit from the
// indicator card. needsChoice is true when the indicator is a Wizard:
// the trump suit must then be supplied externally (by the dealer's
// policy) before StartRound.
func TrumpFromIndicator(indicator Card) (suit uint8, needsChoice bool) {
	switch {
	case indicator == EmptyCard:
		return NoSuit, false
	case indicator.IsWizard():
		return NoSuit, true
	case indicator.IsJester():
		return NoSuit, false
	default:
		return indicator.Suit(), false
	}
}
