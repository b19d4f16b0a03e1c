package game

import (
	"time"

	"github.com/google/uuid"
)

// Result is the immutable record of a finished game, handed to the
// highscore store.
type Result struct {
	ID        string
	Player    string
	Score     int
	CreatedAt time.Time
}

// Result builds the final record for a finished game. It fails with
// ErrGameInProgress while turns remain.
func (g *Game) Result() (Result, error) {
	if g.Phase() != PhaseOver {
		return Result{}, ErrGameInProgress
	}
	return Result{
		ID:        uuid.New().String(),
		Player:    g.player,
		Score:     g.Total(),
		CreatedAt: time.Now(),
	}, nil
}
