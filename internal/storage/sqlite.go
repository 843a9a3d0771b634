// Package storage provides SQLite-based persistence for the win history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the win history.
type Store struct {
	db *sql.DB
}

// Win records a board epoch that reached the celebration threshold.
// Only the outcome is kept; boards themselves are never restored.
type Win struct {
	ID       int64
	Epoch    int           // Board number within the session
	Lines    int           // Completed lines when the celebration fired
	Marks    int           // Toggles made on the board before the win
	Duration time.Duration // Time from shuffle to win
	Seed     int64         // Session seed, reproduces the shuffles
	Player   string        // "local" or the SSH user name

	CreatedAt time.Time
}

// WinStats aggregates the whole history.
type WinStats struct {
	Count    int
	Fastest  time.Duration
	AvgMarks float64
	LastWin  time.Time
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
		CREATE TABLE IF NOT EXISTS bingos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			epoch INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			marks INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bingos_created ON bingos(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_bingos_duration ON bingos(duration_ms);
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

// SaveWin records a finished board.
// Returns the ID of the inserted record.
func (s *Store) SaveWin(w Win) (int64, error) {
	player := w.Player
	if player == "" {
		player = "local"
	}

	result, err := s.db.Exec(
		`INSERT INTO bingos (epoch, lines, marks, duration_ms, seed, player)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.Epoch, w.Lines, w.Marks, w.Duration.Milliseconds(), w.Seed, player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save win: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentWins retrieves the latest wins, newest first.
func (s *Store) RecentWins(limit int) ([]Win, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryWins(
		`SELECT id, epoch, lines, marks, duration_ms, seed, player, created_at
		 FROM bingos
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestWins retrieves the quickest wins, fastest first.
func (s *Store) FastestWins(limit int) ([]Win, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryWins(
		`SELECT id, epoch, lines, marks, duration_ms, seed, player, created_at
		 FROM bingos
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// queryWins runs a SELECT returning full win rows.
func (s *Store) queryWins(query string, args ...any) ([]Win, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var wins []Win
	for rows.Next() {
		var w Win
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&w.ID, &w.Epoch, &w.Lines, &w.Marks, &durationMS, &w.Seed, &w.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		w.Duration = time.Duration(durationMS) * time.Millisecond
		w.CreatedAt = parseTime(createdAt)
		wins = append(wins, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return wins, nil
}

// Stats retrieves aggregated statistics over every recorded win.
func (s *Store) Stats() (*WinStats, error) {
	stats := &WinStats{}

	var fastestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ms), 0), COALESCE(AVG(marks), 0)
		 FROM bingos`,
	).Scan(&stats.Count, &fastestMS, &stats.AvgMarks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.Fastest = time.Duration(fastestMS) * time.Millisecond

	var lastWin any
	err = s.db.QueryRow(
		`SELECT created_at FROM bingos ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastWin)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last win: %w", err)
	}
	if err == nil {
		stats.LastWin = parseTime(lastWin)
	}

	return stats, nil
}

// ClearWins deletes the whole history.
func (s *Store) ClearWins() error {
	if _, err := s.db.Exec("DELETE FROM bingos"); err != nil {
		return fmt.Errorf("storage: cannot clear wins: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
