// Package game sequences a single game of Yatzy: three rolls per turn,
// fifteen turns per game, one category committed per turn. It owns the
// dice set and the scorecard; the terminal front end only reads state
// and dispatches actions.
package game

import (
	"errors"
	"math/rand"

	"github.com/velbaek/yahoozy/pkg/dice"
	"github.com/velbaek/yahoozy/pkg/score"
)

// Rolls per turn and turns per game in standard Yatzy.
const (
	MaxRolls = 3
	MaxTurns = score.NumCategories
)

// Phase is the coarse state of the turn machine.
type Phase int

const (
	// PhaseRolling means rolls remain in the current turn. Committing
	// early is allowed once at least one roll has happened.
	PhaseRolling Phase = iota
	// PhaseCommit means all three rolls are spent; the only way
	// forward is committing a category.
	PhaseCommit
	// PhaseOver means all fifteen turns are done.
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRolling:
		return "rolling"
	case PhaseCommit:
		return "commit"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// ErrNoRollsLeft indicates a roll attempt after the third roll.
var ErrNoRollsLeft = errors.New("no rolls remaining")

// ErrNothingRolled indicates a commit or hold before the first roll of
// a turn.
var ErrNothingRolled = errors.New("dice have not been rolled yet")

// ErrHoldNotAllowed indicates a hold toggle after the final roll.
var ErrHoldNotAllowed = errors.New("holds cannot change after the final roll")

// ErrGameOver indicates an action on a finished game.
var ErrGameOver = errors.New("game is over")

// ErrGameInProgress indicates a result request before the game ended.
var ErrGameInProgress = errors.New("game still in progress")

// Game is the state of one game in progress for one player.
type Game struct {
	player string
	set    *dice.Set
	sheet  *score.Sheet
	turn   int // 1..MaxTurns
	roll   int // rolls taken this turn, 0..MaxRolls
}

// New starts a game for the named player, drawing dice from rng.
func New(player string, rng *rand.Rand) *Game {
	return &Game{
		player: player,
		set:    dice.NewSet(rng),
		sheet:  score.NewSheet(),
		turn:   1,
	}
}

// Player returns the player name the game was started with.
func (g *Game) Player() string { return g.player }

// Turn returns the current turn number, 1..MaxTurns.
func (g *Game) Turn() int { return g.turn }

// RollNumber returns how many rolls have been taken this turn.
func (g *Game) RollNumber() int { return g.roll }

// Hand returns the current die values.
func (g *Game) Hand() dice.Hand { return g.set.Hand() }

// Held reports whether the die at index i is held.
func (g *Game) Held(i int) bool { return g.set.Held(i) }

// Sheet returns a read view of the scorecard.
func (g *Game) Sheet() *score.Sheet { return g.sheet }

// Phase returns the coarse state of the turn machine.
func (g *Game) Phase() Phase {
	switch {
	case g.turn > MaxTurns:
		return PhaseOver
	case g.roll >= MaxRolls:
		return PhaseCommit
	default:
		return PhaseRolling
	}
}

// Roll rerolls every non-held die. It fails once the three rolls of
// the turn are spent or the game is over.
func (g *Game) Roll() error {
	switch g.Phase() {
	case PhaseOver:
		return ErrGameOver
	case PhaseCommit:
		return ErrNoRollsLeft
	}
	g.set.Roll()
	g.roll++
	return nil
}

// ToggleHold flips the held flag for the die at index i. Holds are
// meaningful only after the first roll and before the last one.
func (g *Game) ToggleHold(i int) error {
	if g.Phase() == PhaseOver {
		return ErrGameOver
	}
	if g.roll < 1 {
		return ErrNothingRolled
	}
	if g.roll >= MaxRolls {
		return ErrHoldNotAllowed
	}
	return g.set.ToggleHold(i)
}

// Commit fills category c with the current hand's score and advances
// to the next turn, resetting rolls and holds. Committing is allowed
// after any roll, including early after the first or second. The
// attempt fails without mutating anything when the category is
// unknown, already filled, or no roll has happened yet.
func (g *Game) Commit(c score.Category) (int, error) {
	if g.Phase() == PhaseOver {
		return 0, ErrGameOver
	}
	if g.roll < 1 {
		return 0, ErrNothingRolled
	}
	pts, err := g.sheet.Commit(c, g.set.Hand())
	if err != nil {
		return 0, err
	}
	g.turn++
	g.roll = 0
	g.set.ResetHolds()
	return pts, nil
}

// Total returns the running total, bonus included.
func (g *Game) Total() int {
	return g.sheet.Total()
}
