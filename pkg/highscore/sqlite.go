package highscore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single-file SQLite database. One
// process at a time is assumed; WAL keeps the append durable without
// any further locking discipline.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at path and
// runs the migration.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open highscore db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS highscores (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_highscores_score ON highscores(score DESC, created_at ASC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migrate highscore db: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns up to limit entries ordered best score first. A
// non-positive limit returns every entry.
func (s *SQLiteStore) Load(limit int) ([]Entry, error) {
	query := `SELECT id, player, score, created_at FROM highscores
		ORDER BY score DESC, created_at ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("load highscores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &ts); err != nil {
			return nil, fmt.Errorf("scan highscore row: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse highscore timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load highscores: %w", err)
	}
	return entries, nil
}

// Append persists the entry and returns the re-sorted full list. An
// entry without an ID is assigned one.
func (s *SQLiteStore) Append(e Entry) ([]Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	_, err := s.db.Exec(
		`INSERT INTO highscores (id, player, score, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Player, e.Score, e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("append highscore: %w", err)
	}
	return s.Load(0)
}
