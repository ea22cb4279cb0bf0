package sim

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists game results to a SQLite database so batch outcomes
// survive the process and can be compared across policy variants.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the results database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS game_results (
			id        TEXT PRIMARY KEY,
			batch_id  TEXT NOT NULL,
			seed      INTEGER NOT NULL,
			n_players INTEGER NOT NULL,
			winner    INTEGER NOT NULL,
			points    TEXT NOT NULL,
			policies  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_results_batch ON game_results(batch_id)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init results schema: %w", err)
		}
	}
	return nil
}

// SaveResult writes one game result under the given batch.
func (s *Store) SaveResult(ctx context.Context, batchID uuid.UUID, r Result) error {
	points, err := json.Marshal(r.Points)
	if err != nil {
		return err
	}
	policies, err := json.Marshal(r.Policies)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO game_results (id, batch_id, seed, n_players, winner, points, policies)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), batchID.String(), int64(r.Seed), r.NPlayers, r.Winner, string(points), string(policies))
	if err != nil {
		return fmt.Errorf("save result %s: %w", r.ID, err)
	}
	return nil
}

// SaveBatch writes every result of a finished batch.
func (s *Store) SaveBatch(ctx context.Context, sum Summary) error {
	for _, r := range sum.Results {
		if err := s.SaveResult(ctx, sum.BatchID, r); err != nil {
			return err
		}
	}
	return nil
}

// BatchResults loads all results recorded under batchID.
func (s *Store) BatchResults(ctx context.Context, batchID uuid.UUID) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed, n_players, winner, points, policies
		FROM game_results WHERE batch_id = ? ORDER BY seed`,
		batchID.String())
	if err != nil {
		return nil, fmt.Errorf("load batch %s: %w", batchID, err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			r        Result
			id       string
			seed     int64
			points   string
			policies string
		)
		if err := rows.Scan(&id, &seed, &r.NPlayers, &r.Winner, &points, &policies); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		r.Seed = uint64(seed)
		if err := json.Unmarshal([]byte(points), &r.Points); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(policies), &r.Policies); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
