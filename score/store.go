// Package score persists high scores in SQLite via the pure-Go
// modernc.org/sqlite driver, so builds stay CGO-free.
package score

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Entry is a single recorded score.
type Entry struct {
	ID        int64
	Game      string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and running migrations as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("score: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("score: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game ON scores(game);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a score for the named game.
func (s *Store) Save(game, name string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (game, name, score) VALUES (?, ?, ?)`,
		game, name, score,
	)
	if err != nil {
		return fmt.Errorf("score: save: %w", err)
	}
	return nil
}

// Top returns the highest scores for a game, best first.
func (s *Store) Top(game string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, game, name, score, created_at FROM scores
		 WHERE game = ? ORDER BY score DESC, created_at ASC LIMIT ?`,
		game, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("score: top: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Game, &e.Name, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("score: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Best returns the highest recorded score for a game, 0 when none exists.
func (s *Store) Best(game string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game = ?`, game).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("score: best: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}
