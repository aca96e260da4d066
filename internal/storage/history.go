// Package storage keeps the round history of the running process in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The game does not persist anything across restarts, so the arcade opens the
// store on MemoryDSN and the data disappears with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection for round history.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round.
type RoundResult struct {
	ID          int64
	Score       int
	Catches     int
	Misses      int
	BombsCaught int
	BombsDodged int
	LivesGained int
	Duration    time.Duration
	Difficulty  string
	CreatedAt   time.Time
}

// HistoryStats aggregates every recorded round.
type HistoryStats struct {
	Rounds       int
	BestScore    int
	AvgScore     float64
	TotalCatches int
	PlayTime     time.Duration
	LastPlayed   time.Time
}

// Open opens a database and runs migrations. Use MemoryDSN for a
// process-lifetime store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			catches INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			bombs_caught INTEGER NOT NULL DEFAULT 0,
			bombs_dodged INTEGER NOT NULL DEFAULT 0,
			lives_gained INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
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

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO rounds
		 (score, catches, misses, bombs_caught, bombs_dodged, lives_gained, duration_ms, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Score, r.Catches, r.Misses, r.BombsCaught, r.BombsDodged, r.LivesGained,
		r.Duration.Milliseconds(), r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const roundColumns = `id, score, catches, misses, bombs_caught, bombs_dodged,
	lives_gained, duration_ms, difficulty, created_at`

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(`SELECT `+roundColumns+` FROM rounds ORDER BY id DESC LIMIT ?`, limit)
}

// TopRounds returns the best rounds by score. Ties keep the earlier round first.
func (s *Store) TopRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(`SELECT `+roundColumns+` FROM rounds ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundResult
	for rows.Next() {
		var r RoundResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Catches, &r.Misses, &r.BombsCaught,
			&r.BombsDodged, &r.LivesGained, &durationMS, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// Stats aggregates all recorded rounds. An empty history yields zero values.
func (s *Store) Stats() (*HistoryStats, error) {
	stats := &HistoryStats{}
	var playMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(catches), 0), COALESCE(SUM(duration_ms), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.BestScore, &stats.AvgScore, &stats.TotalCatches, &playMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM rounds ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// Clear deletes every recorded round.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
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
