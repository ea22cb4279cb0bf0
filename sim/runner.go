// Package sim drives complete Wizard games with injected policies:
// single games through Runner, independent parallel games through
// RunBatch, and optional SQLite persistence of results through Store.
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/simulatedScience/wizard-game/ai"
	"github.com/simulatedScience/wizard-game/engine"
)

// Result summarizes one finished game.
type Result struct {
	ID       uuid.UUID
	Seed     uint64
	NPlayers int
	Winner   int // seat with the highest total (first on ties)
	Points   []int16
	Policies []string
}

// Runner plays complete games with one policy per seat, enforcing the
// engine's call protocol: deal, trump resolution, bids, then tricks,
// validating every card before it is played.
type Runner struct {
	Policies []ai.Policy

	// LimitBids forbids the last bidder from making the round's bids
	// sum to the trick count; the offending bid is nudged by one.
	// House rule, off by default.
	LimitBids bool

	// Log receives per-round progress at debug level. Nil disables.
	Log logrus.FieldLogger
}

// Run plays one full game from seed and returns its result. The game
// state and RNG are private to this call, so concurrent Runs on
// separate Runners are independent.
func (r *Runner) Run(seed uint64) (Result, error) {
	n := len(r.Policies)
	rng := engine.NewRNG(seed)
	g, err := engine.NewGame(uint8(n), rng)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ID:       uuid.New(),
		Seed:     seed,
		NPlayers: n,
		Policies: make([]string, n),
	}
	for p, pol := range r.Policies {
		res.Policies[p] = pol.Name()
	}

	for round := uint8(1); round <= g.MaxRound(); round++ {
		if err := r.playRound(&g, round, rng); err != nil {
			return Result{}, fmt.Errorf("round %d: %w", round, err)
		}
	}
	if !g.IsTerminal() {
		return Result{}, fmt.Errorf("game did not terminate after %d rounds", g.MaxRound())
	}

	res.Points = g.TotalPoints()
	for p, pts := range res.Points {
		if pts > res.Points[res.Winner] {
			res.Winner = p
		}
	}
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"game":   res.ID,
			"winner": res.Winner,
			"points": res.Points,
		}).Debug("game finished")
	}
	return res, nil
}

// playRound deals, resolves trump, collects bids and plays out the
// round's tricks.
func (r *Runner) playRound(g *engine.GameState, round uint8, rng *engine.RNG) error {
	n := uint8(len(r.Policies))
	hands, indicator, err := engine.Deal(n, round, rng)
	if err != nil {
		return err
	}

	trump, needsChoice := engine.TrumpFromIndicator(indicator)
	if needsChoice {
		// The dealer (starting player before StartRound advances it)
		// chooses trump from their dealt hand.
		dealer := g.StartingPlayer
		trump = r.Policies[dealer].ChooseTrump(hands[dealer])
		if trump > engine.SuitBlue {
			return fmt.Errorf("policy %s chose invalid trump suit %d", r.Policies[dealer].Name(), trump)
		}
	}
	if err := g.StartRound(hands, indicator, trump); err != nil {
		return err
	}

	preds := make([]uint8, n)
	for i := uint8(0); i < n; i++ {
		seat := (g.StartingPlayer + i) % n
		preds[seat] = r.Policies[seat].Bid(g, seat)
	}
	if r.LimitBids {
		limitBid(preds, round, (g.StartingPlayer+n-1)%n)
	}
	if err := g.SetPredictions(preds); err != nil {
		return err
	}

	for {
		seat := g.ActivePlayer
		card := r.Policies[seat].ChooseCard(g, seat)
		if !engine.IsLegal(card, g.Hand(seat), g.ServingSuit) {
			return fmt.Errorf("policy %s played illegal card %v for seat %d", r.Policies[seat].Name(), card, seat)
		}
		prog, err := g.PerformAction(card)
		if err != nil {
			return err
		}
		if prog == engine.RoundDone {
			break
		}
	}

	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"round":  round,
			"trump":  trump,
			"bids":   preds,
			"tricks": g.WonTricks(),
		}).Debug("round finished")
	}
	return nil
}

// limitBid applies the optional house rule: the last bidder may not
// make the bids sum to the round's trick count. The offending bid is
// nudged down when possible, otherwise up.
func limitBid(preds []uint8, round, last uint8) {
	var sum uint8
	for _, b := range preds {
		sum += b
	}
	if sum != round {
		return
	}
	if preds[last] > 0 {
		preds[last]--
	} else {
		preds[last]++
	}
}
