package gui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Themes should stick to the terminal safe palette
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name      string      `json:"name"`
	Title     tcell.Color `json:"title"`
	Header    tcell.Color `json:"header"`
	Label     tcell.Color `json:"label"`
	Score     tcell.Color `json:"score"`
	Preview   tcell.Color `json:"preview"`
	Pip       tcell.Color `json:"pip"`
	DieBox    tcell.Color `json:"dieBox"`
	HeldMark  tcell.Color `json:"heldMark"`
	Msg       tcell.Color `json:"msg"`
	Help      tcell.Color `json:"help"`
	Total     tcell.Color `json:"total"`
	Highscore tcell.Color `json:"highscore"`
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:      "basic",
	Title:     tcell.Color226,
	Header:    tcell.Color252,
	Label:     tcell.Color247,
	Score:     tcell.ColorDefault,
	Preview:   tcell.Color240,
	Pip:       tcell.ColorDefault,
	DieBox:    tcell.Color247,
	HeldMark:  tcell.Color122,
	Msg:       tcell.Color160,
	Help:      tcell.Color247,
	Total:     tcell.Color226,
	Highscore: tcell.Color252,
}

// ThemeMono suits terminals without color support
var ThemeMono = Theme{
	Name:      "mono",
	Title:     tcell.ColorDefault,
	Header:    tcell.ColorDefault,
	Label:     tcell.ColorDefault,
	Score:     tcell.ColorDefault,
	Preview:   tcell.ColorDefault,
	Pip:       tcell.ColorDefault,
	DieBox:    tcell.ColorDefault,
	HeldMark:  tcell.ColorDefault,
	Msg:       tcell.ColorDefault,
	Help:      tcell.ColorDefault,
	Total:     tcell.ColorDefault,
	Highscore: tcell.ColorDefault,
}

var themes = []Theme{ThemeBasic, ThemeMono}

// ImportTheme returns the theme whose name matches want
func ImportTheme(want string) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}
