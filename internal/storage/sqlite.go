// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tri-hunt/internal/game"
)

// DefaultPath is where results are kept unless --db says otherwise.
const DefaultPath = "~/.trihunt/scores.db"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	Player    string
	Outcome   game.Outcome
	Collected int
	Total     int
	TimeLeft  float64
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

// ResultFromSnapshot builds a result from the final snapshot of a game.
func ResultFromSnapshot(player string, snap game.Snapshot, played time.Duration) Result {
	return Result{
		Player:    player,
		Outcome:   snap.Outcome,
		Collected: snap.Collected,
		Total:     snap.Total,
		TimeLeft:  snap.TimeLeft,
		Score:     snap.Score(),
		Duration:  played,
	}
}

// Stats contains aggregated statistics over all stored results.
type Stats struct {
	GamesPlayed    int
	Wins           int
	ObstacleLosses int
	TimeoutLosses  int
	BestScore      int
	AvgCollected   float64
	LastPlayed     time.Time
}

// WinRate returns the fraction of games won.
func (s Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			outcome TEXT NOT NULL,
			collected INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			time_left REAL NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (player, outcome, collected, total, time_left, score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Player,
		r.Outcome.String(),
		r.Collected,
		r.Total,
		r.TimeLeft,
		r.Score,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectResults = `SELECT id, player, outcome, collected, total, time_left, score, duration_ms, created_at FROM results`

// TopResults retrieves the best N results, highest score first.
// Ties go to the earlier game.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectResults+` ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

// RecentResults retrieves the latest N results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(selectResults+` ORDER BY id DESC LIMIT ?`, limit)
}

// PlayerResults retrieves the best N results of one player.
func (s *Store) PlayerResults(player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectResults+` WHERE player = ? ORDER BY score DESC, id ASC LIMIT ?`, player, limit)
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&outcome,
			&r.Collected,
			&r.Total,
			&r.TimeLeft,
			&r.Score,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = game.ParseOutcome(outcome)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats returns aggregated statistics over every stored result.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	var best sql.NullInt64
	var avg sql.NullFloat64
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MAX(score),
		        AVG(collected),
		        MAX(created_at)
		 FROM results`,
		game.Won.String(), game.LostToObstacle.String(), game.LostToTimeout.String(),
	).Scan(
		&stats.GamesPlayed,
		&stats.Wins,
		&stats.ObstacleLosses,
		&stats.TimeoutLosses,
		&best,
		&avg,
		&last,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		stats.BestScore = int(best.Int64)
	}
	if avg.Valid {
		stats.AvgCollected = avg.Float64
	}
	stats.LastPlayed = parseTime(last)

	return stats, nil
}

// Clear deletes every stored result.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// CURRENT_TIMESTAMP.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
