package gui

import (
	"fmt"

	"github.com/velbaek/yahoozy/pkg/dice"
	"github.com/velbaek/yahoozy/pkg/score"
)

// Action is something the player can ask the game to do with a single
// keystroke.
type Action int

const (
	ActionNone Action = iota
	ActionRoll
	ActionQuit
	ActionAck
	ActionHold1
	ActionHold2
	ActionHold3
	ActionHold4
	ActionHold5
	ActionCommitOnes
	ActionCommitTwos
	ActionCommitThrees
	ActionCommitFours
	ActionCommitFives
	ActionCommitSixes
	ActionCommitOnePair
	ActionCommitTwoPairs
	ActionCommitThreeOfAKind
	ActionCommitFourOfAKind
	ActionCommitSmallStraight
	ActionCommitLargeStraight
	ActionCommitFullHouse
	ActionCommitChance
	ActionCommitYatzy
)

// HoldIndex returns the die index for a hold action.
func (a Action) HoldIndex() (int, bool) {
	if a >= ActionHold1 && a <= ActionHold5 {
		return int(a - ActionHold1), true
	}
	return 0, false
}

// CommitCategory returns the scoring category for a commit action.
func (a Action) CommitCategory() (score.Category, bool) {
	if a >= ActionCommitOnes && a <= ActionCommitYatzy {
		return score.Category(a - ActionCommitOnes), true
	}
	return 0, false
}

// HoldAction returns the hold action for die index i.
func HoldAction(i int) Action {
	return ActionHold1 + Action(i)
}

// CommitAction returns the commit action for category c.
func CommitAction(c score.Category) Action {
	return ActionCommitOnes + Action(c)
}

// Keymap binds every action to exactly one key. The mapping is static;
// Validate is run once at startup instead of checking on every
// keystroke.
type Keymap map[Action]rune

// DefaultKeymap is the stock binding: r rolls, 1-5 toggle holds,
// a through o commit the categories in sheet order, space
// acknowledges, q quits.
func DefaultKeymap() Keymap {
	km := Keymap{
		ActionRoll: 'r',
		ActionQuit: 'q',
		ActionAck:  ' ',
	}
	for i := 0; i < dice.Count; i++ {
		km[HoldAction(i)] = rune('1' + i)
	}
	for _, c := range score.Categories() {
		km[CommitAction(c)] = rune('a' + int(c))
	}
	return km
}

// Validate checks that every action is bound and no two actions share
// a key.
func (km Keymap) Validate() error {
	seen := make(map[rune]Action, len(km))
	for a := ActionRoll; a <= ActionCommitYatzy; a++ {
		r, ok := km[a]
		if !ok {
			return fmt.Errorf("keymap: action %d is not bound", a)
		}
		if prev, dup := seen[r]; dup {
			return fmt.Errorf("keymap: key %q bound to both actions %d and %d", r, prev, a)
		}
		seen[r] = a
	}
	return nil
}

// Lookup returns the action bound to the key, or ActionNone.
func (km Keymap) Lookup(r rune) Action {
	for a, bound := range km {
		if bound == r {
			return a
		}
	}
	return ActionNone
}

// Key returns the key bound to the action, for display in the UI.
func (km Keymap) Key(a Action) rune {
	return km[a]
}
