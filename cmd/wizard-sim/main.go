// Command wizard-sim plays batches of Wizard games between AI policies
// and reports per-seat standings, optionally recording every game to a
// SQLite results database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/simulatedScience/wizard-game/ai"
	"github.com/simulatedScience/wizard-game/sim"
)

func main() {
	// .env provides defaults; flags override.
	_ = godotenv.Load()

	var (
		players   = flag.Int("players", envInt("WIZARD_PLAYERS", 4), "number of players (3-6)")
		games     = flag.Int("games", envInt("WIZARD_GAMES", 100), "number of games to play")
		workers   = flag.Int("workers", envInt("WIZARD_WORKERS", 4), "parallel worker goroutines")
		seed      = flag.Uint64("seed", uint64(envInt("WIZARD_SEED", 1)), "base seed; game i uses seed+i")
		policy    = flag.String("policy", envStr("WIZARD_POLICY", "mixed"), "seat policies: random, greedy or mixed")
		limitBids = flag.Bool("limit-bids", false, "forbid bids summing to the trick count")
		dbPath    = flag.String("db", envStr("WIZARD_DB", ""), "optional SQLite file to record results")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	factory, err := policyFactory(*policy)
	if err != nil {
		log.Fatal(err)
	}

	sum, err := sim.RunBatch(sim.BatchConfig{
		Games:     *games,
		Workers:   *workers,
		NPlayers:  *players,
		BaseSeed:  *seed,
		LimitBids: *limitBids,
		Factory:   factory,
	}, log)
	if err != nil {
		log.Fatalf("batch failed: %v", err)
	}

	if *dbPath != "" {
		store, err := sim.OpenStore(*dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
		if err := store.SaveBatch(context.Background(), sum); err != nil {
			log.Fatalf("save batch: %v", err)
		}
		log.WithField("db", *dbPath).Info("results recorded")
	}

	printStandings(sum, factory(*players, *seed))
}

// printStandings renders a per-seat results table.
func printStandings(sum sim.Summary, policies []ai.Policy) {
	fmt.Printf("\n%d games, %d players\n", sum.Games, len(sum.Wins))
	fmt.Println("| seat | policy | wins | win % | mean points |")
	fmt.Println("|------|--------|------|-------|-------------|")
	for p := range sum.Wins {
		fmt.Printf("| P%d   | %-6s | %4d | %4.1f%% | %11.1f |\n",
			p+1, policies[p].Name(), sum.Wins[p],
			100*float64(sum.Wins[p])/float64(sum.Games), sum.MeanPoints[p])
	}
}

// policyFactory maps the -policy flag to a per-game policy builder.
func policyFactory(kind string) (ai.Factory, error) {
	switch kind {
	case "random":
		return func(n int, seed uint64) []ai.Policy {
			out := make([]ai.Policy, n)
			for i := range out {
				out[i] = ai.NewRandom(seed + uint64(i)*7919)
			}
			return out
		}, nil
	case "greedy":
		return func(n int, _ uint64) []ai.Policy {
			out := make([]ai.Policy, n)
			for i := range out {
				out[i] = ai.Greedy{}
			}
			return out
		}, nil
	case "mixed":
		// Even seats greedy, odd seats random.
		return func(n int, seed uint64) []ai.Policy {
			out := make([]ai.Policy, n)
			for i := range out {
				if i%2 == 0 {
					out[i] = ai.Greedy{}
				} else {
					out[i] = ai.NewRandom(seed + uint64(i)*7919)
				}
			}
			return out
		}, nil
	default:
		return nil, fmt.Errorf("unknown policy kind %q (want random, greedy or mixed)", kind)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
