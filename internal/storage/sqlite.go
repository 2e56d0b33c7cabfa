// Package storage provides the byte-addressable persistent store and the
// run history. The SQLite store uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/score"
)

// Erased is the value of a byte that was never written.
const Erased byte = 0xFF

// Store is a SQLite database holding an EEPROM image and the run history.
type Store struct {
	db *sql.DB
}

// RunEntry is a stored run.
type RunEntry struct {
	ID int64
	score.Run
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS eeprom (
			addr INTEGER PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			victory INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			played_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_played_at ON runs(played_at DESC);
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

// Get returns the byte at addr, Erased if it was never written.
func (s *Store) Get(addr uint16) (byte, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM eeprom WHERE addr = ?", addr).Scan(&v)
	if err == sql.ErrNoRows {
		return Erased, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read byte %d: %w", addr, err)
	}
	return byte(v), nil
}

// Update writes v at addr. Unchanged bytes are not rewritten.
func (s *Store) Update(addr uint16, v byte) error {
	_, err := s.db.Exec(
		`INSERT INTO eeprom (addr, value) VALUES (?, ?)
		 ON CONFLICT(addr) DO UPDATE SET value = excluded.value
		 WHERE value <> excluded.value`,
		addr, v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write byte %d: %w", addr, err)
	}
	return nil
}

// Erase forgets every stored byte.
func (s *Store) Erase() error {
	if _, err := s.db.Exec("DELETE FROM eeprom"); err != nil {
		return fmt.Errorf("storage: cannot erase: %w", err)
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r score.Run) (int64, error) {
	playedAt := r.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (name, score, level, victory, duration_ms, played_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Name, r.Score, r.Level, r.Victory, r.Duration.Milliseconds(), playedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, victory, duration_ms, played_at
		 FROM runs
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs int64
		var playedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &e.Victory, &durationMs, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := playedAt.(type) {
		case time.Time:
			e.PlayedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.PlayedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Ensure Store implements the persistence collaborators.
var (
	_ core.ByteStore = (*Store)(nil)
	_ score.History  = (*Store)(nil)
)
