package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simulatedScience/wizard-game/engine"
)

// setupRound deals and starts a round, returning the game.
func setupRound(t *testing.T, nPlayers, round uint8, seed uint64) *engine.GameState {
	t.Helper()
	rng := engine.NewRNG(seed)
	g, err := engine.NewGame(nPlayers, rng)
	require.NoError(t, err)
	g.RoundNumber = round
	hands, indicator, err := engine.Deal(nPlayers, round, rng)
	require.NoError(t, err)
	trump, needsChoice := engine.TrumpFromIndicator(indicator)
	if needsChoice {
		trump = engine.SuitYellow
	}
	require.NoError(t, g.StartRound(hands, indicator, trump))
	return &g
}

func TestRandomBidInRange(t *testing.T) {
	g := setupRound(t, 4, 7, 11)
	p := NewRandom(3)
	for i := 0; i < 100; i++ {
		bid := p.Bid(g, 0)
		assert.LessOrEqual(t, bid, g.RoundNumber)
	}
}

func TestRandomChoosesLegalCards(t *testing.T) {
	g := setupRound(t, 4, 7, 12)
	require.NoError(t, g.SetPredictions([]uint8{0, 0, 0, 0}))
	p := NewRandom(4)
	for !g.IsTerminal() && g.TricksRemaining > 0 {
		seat := g.ActivePlayer
		card := p.ChooseCard(g, seat)
		require.True(t, engine.IsLegal(card, g.Hand(seat), g.ServingSuit),
			"policy returned illegal card %v", card)
		_, err := g.PerformAction(card)
		require.NoError(t, err)
	}
}

func TestRandomTrumpChoiceValid(t *testing.T) {
	p := NewRandom(9)
	for i := 0; i < 50; i++ {
		s := p.ChooseTrump(nil)
		assert.Less(t, s, uint8(4))
	}
}

func TestGreedyChoosesLegalCards(t *testing.T) {
	g := setupRound(t, 5, 6, 21)
	require.NoError(t, g.SetPredictions([]uint8{1, 1, 1, 1, 1}))
	p := Greedy{}
	for g.TricksRemaining > 0 {
		seat := g.ActivePlayer
		card := p.ChooseCard(g, seat)
		require.True(t, engine.IsLegal(card, g.Hand(seat), g.ServingSuit),
			"greedy returned illegal card %v", card)
		_, err := g.PerformAction(card)
		require.NoError(t, err)
	}
}

func TestGreedyBidBounded(t *testing.T) {
	for seed := uint64(1); seed < 20; seed++ {
		g := setupRound(t, 3, 5, seed)
		bid := Greedy{}.Bid(g, 1)
		assert.LessOrEqual(t, bid, g.RoundNumber)
	}
}

func TestGreedyTakesWinnableTrick(t *testing.T) {
	rng := engine.NewRNG(2)
	g, err := engine.NewGame(3, rng)
	require.NoError(t, err)
	g.StartingPlayer = 2
	g.RoundNumber = 2
	hands := [][]engine.Card{
		{engine.NewCard(engine.SuitRed, 4), engine.NewCard(engine.SuitYellow, 2)},
		{engine.NewCard(engine.SuitRed, 9), engine.NewCard(engine.SuitRed, 1)},
		{engine.NewCard(engine.SuitRed, 2), engine.NewCard(engine.SuitBlue, 3)},
	}
	require.NoError(t, g.StartRound(hands, engine.EmptyCard, engine.NoSuit))
	require.NoError(t, g.SetPredictions([]uint8{0, 1, 0}))
	_, err = g.PerformAction(engine.NewCard(engine.SuitRed, 4))
	require.NoError(t, err)

	// Player 1 needs a trick; of the legal red cards only R9 wins, so
	// greedy must pick it over R1.
	card := Greedy{}.ChooseCard(&g, 1)
	assert.Equal(t, engine.NewCard(engine.SuitRed, 9), card)

	// Once the bid is met the weakest card is shed instead.
	g.Players[1].WonTricks = 1
	card = Greedy{}.ChooseCard(&g, 1)
	assert.Equal(t, engine.NewCard(engine.SuitRed, 1), card)
}

func TestGreedyTrumpChoiceIsMajoritySuit(t *testing.T) {
	hand := []engine.Card{
		engine.NewCard(engine.SuitBlue, 4),
		engine.NewCard(engine.SuitBlue, 9),
		engine.NewCard(engine.SuitRed, 2),
		engine.NewCard(engine.SuitGreen, engine.RankJester),
	}
	assert.Equal(t, engine.SuitBlue, Greedy{}.ChooseTrump(hand))

	hand = []engine.Card{
		engine.NewCard(engine.SuitRed, 3),
		engine.NewCard(engine.SuitYellow, 5),
		engine.NewCard(engine.SuitYellow, 6),
	}
	assert.Equal(t, engine.SuitYellow, Greedy{}.ChooseTrump(hand))
}
