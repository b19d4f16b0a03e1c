package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/velbaek/yahoozy/pkg/game"
	"github.com/velbaek/yahoozy/pkg/highscore"
)

// GameState encapsulates everything the render loop needs
type GameState struct {
	S     tcell.Screen    // Screen
	Game  *game.Game      // Engine state
	Store highscore.Store // Nil when persistence is unavailable
	Keys  Keymap          // Key bindings
	Theme Theme           // Theme
	Msg   string          // Transient diagnostic line
}

// NewGameState wires up a state for one game. The keymap is validated
// here so a bad binding table aborts before the first frame.
func NewGameState(s tcell.Screen, g *game.Game, store highscore.Store, keys Keymap, theme Theme) (*GameState, error) {
	if err := keys.Validate(); err != nil {
		return nil, err
	}
	return &GameState{
		S:     s,
		Game:  g,
		Store: store,
		Keys:  keys,
		Theme: theme,
	}, nil
}

// InitScreen creates and initializes the tcell screen. Failure here is
// fatal to the program; no game state exists yet.
func InitScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(DefStyle)
	s.HideCursor()
	return s, nil
}
