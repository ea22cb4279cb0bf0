package sim

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/simulatedScience/wizard-game/ai"
)

// BatchConfig parameterizes a batch of independent games.
type BatchConfig struct {
	Games     int
	Workers   int // <= 0 means 1
	BaseSeed  uint64
	LimitBids bool

	// Factory builds fresh per-seat policies for each game, so no
	// policy state is ever shared between worker goroutines.
	Factory ai.Factory

	NPlayers int
}

// Summary aggregates a finished batch.
type Summary struct {
	BatchID    uuid.UUID
	Games      int
	Wins       []int // per seat
	MeanPoints []float64
	Results    []Result
}

// RunBatch plays cfg.Games independent games across cfg.Workers
// goroutines. Each game gets its own GameState, RNG and policies
// (map), and results are aggregated once all workers finish (reduce).
// The first game error aborts the batch.
func RunBatch(cfg BatchConfig, log logrus.FieldLogger) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("batch: game count %d must be positive", cfg.Games)
	}
	if cfg.Factory == nil {
		return Summary{}, fmt.Errorf("batch: no policy factory")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > cfg.Games {
		workers = cfg.Games
	}

	jobs := make(chan int)
	results := make(chan Result, cfg.Games)
	errs := make(chan error, workers)
	quit := make(chan struct{})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := cfg.BaseSeed + uint64(i)
				runner := &Runner{
					Policies:  cfg.Factory(cfg.NPlayers, seed),
					LimitBids: cfg.LimitBids,
				}
				res, err := runner.Run(seed)
				if err != nil {
					errs <- fmt.Errorf("game %d: %w", i, err)
					return
				}
				results <- res
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Games; i++ {
			select {
			case jobs <- i:
			case <-quit:
				return
			}
		}
	}()

	wg.Wait()
	close(quit)
	close(results)
	close(errs)
	if err := <-errs; err != nil {
		return Summary{}, err
	}

	sum := Summary{
		BatchID:    uuid.New(),
		Wins:       make([]int, cfg.NPlayers),
		MeanPoints: make([]float64, cfg.NPlayers),
	}
	for res := range results {
		sum.Games++
		sum.Wins[res.Winner]++
		for p, pts := range res.Points {
			sum.MeanPoints[p] += float64(pts)
		}
		sum.Results = append(sum.Results, res)
	}
	for p := range sum.MeanPoints {
		sum.MeanPoints[p] /= float64(sum.Games)
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"batch": sum.BatchID,
			"games": sum.Games,
			"wins":  sum.Wins,
		}).Info("batch finished")
	}
	return sum, nil
}
