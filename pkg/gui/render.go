package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/velbaek/yahoozy/pkg/dice"
	"github.com/velbaek/yahoozy/pkg/game"
	"github.com/velbaek/yahoozy/pkg/highscore"
	"github.com/velbaek/yahoozy/pkg/score"
)

const (
	leftMargin = 2
	topMargin  = 1

	sheetWidth = 32
	dieWidth   = 5
	dieHeight  = 3
	dieGap     = 4
)

// Title shown at the top of every frame
const Title = "Yahoozy — Yatzy not Yahtzee"

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// dieArt is the pip art for faces one through six, three rows of five
// cells each. Index 0 is a blank face for unrolled dice.
var dieArt = [dice.Sides + 1][dieHeight]string{
	{"     ", "     ", "     "},
	{"     ", "  •  ", "     "},
	{" •   ", "     ", "   • "},
	{"   • ", "  •  ", " •   "},
	{" • • ", "     ", " • • "},
	{" • • ", "  •  ", " • • "},
	{" • • ", " • • ", " • • "},
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawBox draws a border rectangle with its top-left corner at (x, y)
// surrounding an interior of w by h cells
func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := 1; i <= w; i++ {
		drawRune(s, x+i, y, style, tcell.RuneHLine)
		drawRune(s, x+i, y+h+1, style, tcell.RuneHLine)
	}
	for j := 1; j <= h; j++ {
		drawRune(s, x, y+j, style, tcell.RuneVLine)
		drawRune(s, x+w+1, y+j, style, tcell.RuneVLine)
	}
	drawRune(s, x, y, style, tcell.RuneULCorner)
	drawRune(s, x+w+1, y, style, tcell.RuneURCorner)
	drawRune(s, x, y+h+1, style, tcell.RuneLLCorner)
	drawRune(s, x+w+1, y+h+1, style, tcell.RuneLRCorner)
}

// drawTitle displays the game title
func drawTitle(s tcell.Screen, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Title).Bold(true)
	drawText(s, leftMargin, topMargin, style, Title)
}

// drawStatus displays the player name, turn number and roll number
func drawStatus(s tcell.Screen, g *game.Game, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Header)
	status := fmt.Sprintf("Player %-16s Turn %2d/%d   Roll %d/%d",
		g.Player(), min(g.Turn(), game.MaxTurns), game.MaxTurns,
		g.RollNumber(), game.MaxRolls)
	drawText(s, leftMargin, topMargin+2, style, status)
}

// drawSheet displays the scorecard with filled scores and, once the
// dice have been rolled, a preview of what the current hand would
// score in each open category
func drawSheet(s tcell.Screen, g *game.Game, km Keymap, t Theme) {
	top := topMargin + 4
	headerStyle := tcell.StyleDefault.Foreground(t.Header).Bold(true)
	labelStyle := tcell.StyleDefault.Foreground(t.Label)
	scoreStyle := tcell.StyleDefault.Foreground(t.Score)
	previewStyle := tcell.StyleDefault.Foreground(t.Preview)

	drawText(s, leftMargin+1, top, headerStyle, "Score Sheet")

	sheet := g.Sheet()
	hand := g.Hand()
	rolled := g.RollNumber() > 0

	for i, c := range score.Categories() {
		y := top + 1 + i
		key := km.Key(CommitAction(c))
		drawText(s, leftMargin+1, y, labelStyle, fmt.Sprintf("%c  %-15s", key, c))

		if pts, filled := sheet.Filled(c); filled {
			drawText(s, leftMargin+20, y, scoreStyle, fmt.Sprintf("%4d", pts))
			continue
		}
		drawText(s, leftMargin+20, y, previewStyle, "   —")
		if rolled {
			// Preview cannot fail for a known category
			pts, _ := score.Preview(c, hand)
			drawText(s, leftMargin+25, y, previewStyle, fmt.Sprintf("→ %2d", pts))
		}
	}

	barY := top + 1 + score.NumCategories
	for x := 0; x < sheetWidth-2; x++ {
		drawRune(s, leftMargin+1+x, barY, labelStyle, tcell.RuneHLine)
	}
	totalStyle := tcell.StyleDefault.Foreground(t.Total).Bold(true)
	drawText(s, leftMargin+1, barY+1, totalStyle, fmt.Sprintf("%-18s %4d", "Total", g.Total()))
}

// drawDice displays the five dice with their hold markers
func drawDice(s tcell.Screen, g *game.Game, km Keymap, t Theme) {
	top := topMargin + 5
	left := leftMargin + sheetWidth + 4
	boxStyle := tcell.StyleDefault.Foreground(t.DieBox)
	pipStyle := tcell.StyleDefault.Foreground(t.Pip)
	heldStyle := tcell.StyleDefault.Foreground(t.HeldMark).Bold(true)
	labelStyle := tcell.StyleDefault.Foreground(t.Label)

	hand := g.Hand()
	for i := 0; i < dice.Count; i++ {
		x := left + i*(dieWidth+2+dieGap)
		drawBox(s, x, top, dieWidth, dieHeight, boxStyle)
		for row, line := range dieArt[hand[i]] {
			drawText(s, x+1, top+1+row, pipStyle, line)
		}

		key := km.Key(HoldAction(i))
		mark := "[ ]"
		markStyle := labelStyle
		if g.Held(i) {
			mark = "[×]"
			markStyle = heldStyle
		}
		drawText(s, x+1, top+dieHeight+2, markStyle, fmt.Sprintf("%s %c", mark, key))
	}
}

// drawMsg displays the transient diagnostic line
func drawMsg(s tcell.Screen, msg string, t Theme) {
	if msg == "" {
		return
	}
	_, h := s.Size()
	style := tcell.StyleDefault.Foreground(t.Msg)
	drawText(s, leftMargin, h-3, style, msg)
}

// drawHelp displays the key bindings on the bottom row
func drawHelp(s tcell.Screen, km Keymap, t Theme) {
	_, h := s.Size()
	style := tcell.StyleDefault.Foreground(t.Help).Dim(true)
	help := fmt.Sprintf("%c roll    %c-%c hold    %c-%c commit    %c quit",
		km.Key(ActionRoll),
		km.Key(ActionHold1), km.Key(ActionHold5),
		km.Key(ActionCommitOnes), km.Key(ActionCommitYatzy),
		km.Key(ActionQuit))
	drawText(s, leftMargin, h-2, style, help)
}

// Render draws one full frame from the current state
func Render(gs *GameState) {
	gs.S.Clear()
	drawTitle(gs.S, gs.Theme)
	drawStatus(gs.S, gs.Game, gs.Theme)
	drawSheet(gs.S, gs.Game, gs.Keys, gs.Theme)
	drawDice(gs.S, gs.Game, gs.Keys, gs.Theme)
	drawMsg(gs.S, gs.Msg, gs.Theme)
	drawHelp(gs.S, gs.Keys, gs.Theme)
	// Update screen
	gs.S.Show()
}

// RenderFinal draws the end-of-game summary and the all-time top-10
// table. The saved flag reports whether the result reached the store.
func RenderFinal(gs *GameState, res game.Result, top []highscore.Entry, saved bool) {
	gs.S.Clear()
	drawTitle(gs.S, gs.Theme)

	headerStyle := tcell.StyleDefault.Foreground(gs.Theme.Header).Bold(true)
	totalStyle := tcell.StyleDefault.Foreground(gs.Theme.Total).Bold(true)
	hsStyle := tcell.StyleDefault.Foreground(gs.Theme.Highscore)

	drawText(gs.S, leftMargin, topMargin+2, headerStyle, "Game Over!")
	drawText(gs.S, leftMargin, topMargin+4, totalStyle,
		fmt.Sprintf("%s scored %d", res.Player, res.Score))

	drawText(gs.S, leftMargin, topMargin+6, headerStyle, "All-Time Top 10")
	for i, e := range top {
		if i >= 10 {
			break
		}
		line := fmt.Sprintf("%3d  %-16s %s", e.Score, e.Player, e.CreatedAt.Format("2006-01-02"))
		drawText(gs.S, leftMargin, topMargin+7+i, hsStyle, line)
	}

	_, h := gs.S.Size()
	if !saved {
		warnStyle := tcell.StyleDefault.Foreground(gs.Theme.Msg)
		drawText(gs.S, leftMargin, h-3, warnStyle, "Warning: score was not saved")
	}
	helpStyle := tcell.StyleDefault.Foreground(gs.Theme.Help).Dim(true)
	drawText(gs.S, leftMargin, h-2, helpStyle, "press space to exit")
	gs.S.Show()
}
