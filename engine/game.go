// Package engine implements the Wizard card game rules: dealing,
// trick resolution, bid scoring and the round/trick state machine.
//
// The engine is a flat value type driven strictly sequentially by one
// caller (a human UI loop, an AI policy loop or a batch simulator).
// It performs no I/O, holds no locks and shares nothing; parallel
// simulation is done by giving each worker its own GameState and RNG.
package engine

import "fmt"

const (
	MinPlayers  = 3
	MaxPlayers  = 6
	DeckSize    = 60
	MaxHandSize = DeckSize / MinPlayers // 20
	MaxRounds   = DeckSize / MinPlayers
)

// Card-visibility states for GameState.CardStates.
const (
	CardUnseen    int8 = -1 // not yet publicly visible this round
	CardTrumpFlip int8 = -2 // face-up trump indicator
	// values >= 0: index of the player who played the card
)

// PlayerState holds one player's per-round state.
type PlayerState struct {
	Hand        [MaxHandSize]Card
	HandLen     uint8
	Prediction  uint8
	WonTricks   uint8
	TotalPoints int16
}

// Flags bitfield.
const (
	FlagRoundActive    uint16 = 1 << 0
	FlagPredictionsSet uint16 = 1 << 1
	FlagGameOver       uint16 = 1 << 2
)

// GameState holds the complete, self-contained state of a Wizard game.
// It is a flat value type (no pointers, no slices) so search-style
// drivers can Save and Restore it by plain struct copy.
//
// Drivers mutate it only through StartRound, SetPredictions and
// PerformAction; all exported fields are read-only views.
type GameState struct {
	Players  [MaxPlayers]PlayerState
	NPlayers uint8

	RoundNumber    uint8 // 1-based; the round being (or about to be) played
	StartingPlayer uint8
	TrumpCard      Card  // indicator card, EmptyCard if the deck was fully dealt
	TrumpSuit      uint8 // resolved suit, NoSuit for no trump

	TricksRemaining uint8
	ActivePlayer    uint8

	// Current trick.
	ServingSuit uint8
	LeadCard    Card // best card played so far, EmptyCard before the first play
	LeaderIdx   uint8
	CardsToPlay uint8
	Trick       [MaxPlayers]Card // cards in play order
	TrickLen    uint8

	// CardStates tracks public card visibility for policy observations:
	// CardUnseen, CardTrumpFlip, or the index of the player who played it.
	CardStates [DeckSize]int8

	// History records per-round point deltas for audit and replay.
	History      [MaxRounds][MaxPlayers]int16
	RoundsScored uint8

	Flags uint16
}

// NewGame initializes a game for nPlayers (3–6). The first round's
// starting player is drawn from rng; StartRound advances it by one
// before each round, including the first.
func NewGame(nPlayers uint8, rng *RNG) (GameState, error) {
	var g GameState
	if nPlayers < MinPlayers || nPlayers > MaxPlayers {
		return g, DealError(fmt.Sprintf("new game: player count %d outside %d..%d", nPlayers, MinPlayers, MaxPlayers))
	}
	g.NPlayers = nPlayers
	g.RoundNumber = 1
	g.StartingPlayer = uint8(rng.Intn(int(nPlayers)))
	g.TrumpCard = EmptyCard
	g.TrumpSuit = NoSuit
	for i := range g.CardStates {
		g.CardStates[i] = CardUnseen
	}
	return g, nil
}

// MaxRound returns the number of rounds in this game.
func (g *GameState) MaxRound() uint8 { return DeckSize / g.NPlayers }

// IsTerminal reports whether all rounds have been played.
func (g *GameState) IsTerminal() bool { return g.Flags&FlagGameOver != 0 }

// RoundActive reports whether a round is currently in progress.
func (g *GameState) RoundActive() bool { return g.Flags&FlagRoundActive != 0 }

// PredictionsSet reports whether this round's bids have been recorded.
func (g *GameState) PredictionsSet() bool { return g.Flags&FlagPredictionsSet != 0 }

// Hand returns a read-only view of player p's current hand.
func (g *GameState) Hand(p uint8) []Card {
	return g.Players[p].Hand[:g.Players[p].HandLen]
}

// CurrentTrick returns the cards played so far this trick, in play order.
func (g *GameState) CurrentTrick() []Card { return g.Trick[:g.TrickLen] }

// WonTricks returns each player's running won-trick count this round.
func (g *GameState) WonTricks() []uint8 {
	out := make([]uint8, g.NPlayers)
	for p := uint8(0); p < g.NPlayers; p++ {
		out[p] = g.Players[p].WonTricks
	}
	return out
}

// Predictions returns each player's bid for the current round.
func (g *GameState) Predictions() []uint8 {
	out := make([]uint8, g.NPlayers)
	for p := uint8(0); p < g.NPlayers; p++ {
		out[p] = g.Players[p].Prediction
	}
	return out
}

// TotalPoints returns each player's cumulative score.
func (g *GameState) TotalPoints() []int16 {
	out := make([]int16, g.NPlayers)
	for p := uint8(0); p < g.NPlayers; p++ {
		out[p] = g.Players[p].TotalPoints
	}
	return out
}

// StartRound installs a freshly dealt round. hands must contain
// RoundNumber cards per player; trumpSuit must already be resolved
// (an external policy chooses it when the indicator is a Wizard).
// The starting player advances by one from the previous round.
func (g *GameState) StartRound(hands [][]Card, trumpCard Card, trumpSuit uint8) error {
	if g.IsTerminal() {
		return SequencingError("start round: game is over")
	}
	if g.RoundActive() {
		return SequencingError("start round: previous round still in progress")
	}
	if len(hands) != int(g.NPlayers) {
		return SequencingError(fmt.Sprintf("start round: got %d hands for %d players", len(hands), g.NPlayers))
	}
	for p, h := range hands {
		if len(h) != int(g.RoundNumber) {
			return SequencingError(fmt.Sprintf("start round: hand %d has %d cards, round %d needs %d", p, len(h), g.RoundNumber, g.RoundNumber))
		}
	}
	if trumpCard != EmptyCard && trumpCard.IsWizard() && trumpSuit == NoSuit {
		return SequencingError("start round: wizard indicator requires an externally chosen trump suit")
	}

	g.StartingPlayer = (g.StartingPlayer + 1) % g.NPlayers
	g.TrumpCard = trumpCard
	g.TrumpSuit = trumpSuit
	g.TricksRemaining = g.RoundNumber
	g.ActivePlayer = g.StartingPlayer

	for p := uint8(0); p < g.NPlayers; p++ {
		copy(g.Players[p].Hand[:], hands[p])
		g.Players[p].HandLen = g.RoundNumber
		g.Players[p].Prediction = 0
		g.Players[p].WonTricks = 0
	}
	for i := range g.CardStates {
		g.CardStates[i] = CardUnseen
	}
	if trumpCard != EmptyCard {
		g.CardStates[trumpCard] = CardTrumpFlip
	}

	g.resetTrick()
	g.Flags |= FlagRoundActive
	g.Flags &^= FlagPredictionsSet
	return nil
}

// SetPredictions records all players' bids for the round. Must be
// called exactly once per round, after StartRound and before the
// first trick action. Each bid must be in [0, RoundNumber]; whether
// the bids may sum to the trick count is a driver policy, not an
// engine rule.
func (g *GameState) SetPredictions(predictions []uint8) error {
	if !g.RoundActive() {
		return SequencingError("set predictions: no round in progress")
	}
	if g.PredictionsSet() {
		return SequencingError("set predictions: already set this round")
	}
	if len(predictions) != int(g.NPlayers) {
		return SequencingError(fmt.Sprintf("set predictions: got %d bids for %d players", len(predictions), g.NPlayers))
	}
	for p, bid := range predictions {
		if bid > g.RoundNumber {
			return SequencingError(fmt.Sprintf("set predictions: player %d bid %d exceeds round %d", p, bid, g.RoundNumber))
		}
	}
	for p := uint8(0); p < g.NPlayers; p++ {
		g.Players[p].Prediction = predictions[p]
	}
	g.Flags |= FlagPredictionsSet
	return nil
}

// PerformAction plays card for the acting player, updates the trick
// leader and serving suit, and advances the turn. On the trick's last
// card the winner is credited and leads the next trick; on the round's
// last trick the round is scored and the next round (or game over)
// is set up.
//
// PerformAction does NOT check suit-following legality — callers
// validate via IsLegal first, and simulation loops that guarantee
// legality themselves may skip that. Behavior on an illegal-but-held
// card is undefined. A card absent from the acting hand is detected
// during removal and rejected.
func (g *GameState) PerformAction(card Card) (Progress, error) {
	if g.IsTerminal() {
		return TrickOngoing, SequencingError("perform action: game is over")
	}
	if !g.RoundActive() {
		return TrickOngoing, SequencingError("perform action: no round in progress")
	}
	if !g.PredictionsSet() {
		return TrickOngoing, SequencingError("perform action: predictions not set")
	}

	acting := g.ActivePlayer
	idx := -1
	hand := g.Hand(acting)
	for i, c := range hand {
		if c.Same(card) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return TrickOngoing, SequencingError(fmt.Sprintf("perform action: card %v not in player %d's hand", card, acting))
	}
	played := hand[idx]

	// Shift-remove to keep hand order stable.
	ps := &g.Players[acting]
	copy(ps.Hand[idx:], ps.Hand[idx+1:ps.HandLen])
	ps.HandLen--

	g.CardStates[played] = int8(acting)
	g.Trick[g.TrickLen] = played
	g.TrickLen++

	g.LeaderIdx, g.LeadCard, g.ServingSuit = updateLeader(
		acting, played, g.LeaderIdx, g.LeadCard, g.ServingSuit, g.TrumpSuit)

	g.ActivePlayer = (g.ActivePlayer + 1) % g.NPlayers

	if g.CardsToPlay > 1 {
		g.CardsToPlay--
		return TrickOngoing, nil
	}
	g.endTrick()
	if g.TricksRemaining > 0 {
		return TrickDone, nil
	}
	g.endRound()
	return RoundDone, nil
}

// resetTrick clears per-trick state; the acting player leads.
func (g *GameState) resetTrick() {
	g.ServingSuit = NoSuit
	g.LeadCard = EmptyCard
	g.LeaderIdx = g.ActivePlayer
	g.CardsToPlay = g.NPlayers
	g.TrickLen = 0
}

// endTrick credits the winner and makes them lead the next trick.
func (g *GameState) endTrick() {
	g.Players[g.LeaderIdx].WonTricks++
	g.TricksRemaining--
	g.ActivePlayer = g.LeaderIdx
	g.resetTrick()
}

// endRound scores the finished round into History and the totals,
// then advances to the next round or ends the game.
func (g *GameState) endRound() {
	deltas := ScoreRound(g.Predictions(), g.WonTricks())
	for p := uint8(0); p < g.NPlayers; p++ {
		g.History[g.RoundNumber-1][p] = deltas[p]
		g.Players[p].TotalPoints += deltas[p]
	}
	g.RoundsScored++
	g.RoundNumber++
	g.Flags &^= FlagRoundActive | FlagPredictionsSet
	if g.RoundNumber > g.MaxRound() {
		g.Flags |= FlagGameOver
	}
}

// ---------------------------------------------------------------------------
// Snapshot Undo (Save / Restore)
// ---------------------------------------------------------------------------

// Snapshot is a complete value-copy of GameState for undo support in
// search-style drivers. Saving and restoring are plain struct copies.
type Snapshot GameState

// Save returns a snapshot of the current game state.
func (g *GameState) Save() Snapshot { return Snapshot(*g) }

// Restore replaces the game state with the given snapshot.
func (g *GameState) Restore(s Snapshot) { *g = GameState(s) }
