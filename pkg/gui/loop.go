package gui

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/velbaek/yahoozy/pkg/dice"
	"github.com/velbaek/yahoozy/pkg/game"
	"github.com/velbaek/yahoozy/pkg/highscore"
	"github.com/velbaek/yahoozy/pkg/score"
)

// Run drives the game with an immediate-mode loop: repaint everything
// from the current state, block for one keystroke, dispatch it into
// the engine, repeat. It returns when the game finishes and the player
// acknowledges the summary, or when the quit key is pressed. A quit
// mid-game discards the game without persisting a score.
func Run(gs *GameState) error {
	for {
		Render(gs)

		ev := gs.S.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			gs.S.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() != tcell.KeyRune {
				gs.Msg = "Unknown key"
				continue
			}

			switch act := gs.Keys.Lookup(ev.Rune()); {
			case act == ActionQuit:
				return nil
			case act == ActionNone:
				gs.Msg = "Unknown key"
			case act == ActionAck:
				// Nothing to acknowledge mid-game
			case act == ActionRoll:
				gs.dispatch(gs.Game.Roll())
			default:
				if i, ok := act.HoldIndex(); ok {
					gs.dispatch(gs.Game.ToggleHold(i))
					continue
				}
				if c, ok := act.CommitCategory(); ok {
					_, err := gs.Game.Commit(c)
					gs.dispatch(err)
					if err == nil && gs.Game.Phase() == game.PhaseOver {
						return gs.finish()
					}
				}
			}
		}
	}
}

// dispatch records the outcome of an action: errors become the
// transient diagnostic line, success clears it. User errors never
// mutate game state, so redrawing from state is always safe.
func (gs *GameState) dispatch(err error) {
	if err == nil {
		gs.Msg = ""
		return
	}
	gs.Msg = userMessage(err)
}

// userMessage maps engine errors to the on-screen diagnostic text.
func userMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNoRollsLeft):
		return "No more rolls remaining"
	case errors.Is(err, game.ErrNothingRolled):
		return "Roll the dice first"
	case errors.Is(err, game.ErrHoldNotAllowed):
		return "Holds cannot change after the final roll"
	case errors.Is(err, score.ErrAlreadyFilled):
		return "Category already filled"
	case errors.Is(err, score.ErrInvalidCategory):
		return "No such category"
	case errors.Is(err, dice.ErrInvalidIndex):
		return "No such die"
	default:
		return err.Error()
	}
}

// finish persists the result and shows the summary screen until the
// player acknowledges it. Persistence failures are non-fatal: the
// score is still displayed, with a warning that it was not saved.
func (gs *GameState) finish() error {
	res, err := gs.Game.Result()
	if err != nil {
		return err
	}

	saved := false
	var top []highscore.Entry
	if gs.Store != nil {
		entry := highscore.Entry{
			ID:        res.ID,
			Player:    res.Player,
			Score:     res.Score,
			CreatedAt: res.CreatedAt,
		}
		top, err = gs.Store.Append(entry)
		if err != nil {
			// One retry on what may be a transient failure
			log.Printf("highscore append failed, retrying: %v", err)
			top, err = gs.Store.Append(entry)
		}
		if err != nil {
			log.Printf("highscore append failed: %v", err)
			top, _ = gs.Store.Load(10)
		} else {
			saved = true
		}
	}

	for {
		RenderFinal(gs, res, top, saved)
		ev := gs.S.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			gs.S.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch gs.Keys.Lookup(ev.Rune()) {
			case ActionAck, ActionQuit:
				return nil
			}
		}
	}
}
