// Package highscore persists finished-game totals across runs and
// serves them back ranked by score.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Entry is one ranked record in the all-time list.
type Entry struct {
	ID        string
	Player    string
	Score     int
	CreatedAt time.Time
}

// Store is the persistence interface the game talks to. Entries come
// back sorted by score descending; ties keep the older entry first.
type Store interface {
	// Load returns up to limit entries, best score first. A
	// non-positive limit returns everything.
	Load(limit int) ([]Entry, error)
	// Append persists the entry and returns the updated full list,
	// re-sorted.
	Append(e Entry) ([]Entry, error)
	Close() error
}

// DataPath returns the per-user directory where the highscore database
// lives, creating it if needed. The location follows the platform's
// data-directory conventions.
func DataPath() (string, error) {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("LOCALAPPDATA")
		if dir == "" {
			return "", fmt.Errorf("resolve data path: LOCALAPPDATA not set")
		}
		dir = filepath.Join(dir, "Yahoozy")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve data path: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support", "Yahoozy")
	default:
		dir = os.Getenv("XDG_DATA_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve data path: %w", err)
			}
			dir = filepath.Join(home, ".local", "share")
		}
		dir = filepath.Join(dir, "yahoozy")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data path: %w", err)
	}
	return dir, nil
}
