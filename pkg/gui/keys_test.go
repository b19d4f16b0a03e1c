package gui

import (
	"testing"

	"github.com/velbaek/yahoozy/pkg/dice"
	"github.com/velbaek/yahoozy/pkg/score"
)

func TestDefaultKeymapIsValid(t *testing.T) {
	if err := DefaultKeymap().Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidateRejectsDuplicateKey(t *testing.T) {
	km := DefaultKeymap()
	km[ActionRoll] = km[ActionQuit]
	if err := km.Validate(); err == nil {
		t.Fatal("Validate accepted two actions on one key")
	}
}

func TestValidateRejectsUnboundAction(t *testing.T) {
	km := DefaultKeymap()
	delete(km, ActionCommitYatzy)
	if err := km.Validate(); err == nil {
		t.Fatal("Validate accepted a keymap with an unbound action")
	}
}

func TestLookupRoundTrips(t *testing.T) {
	km := DefaultKeymap()
	for a := ActionRoll; a <= ActionCommitYatzy; a++ {
		if got := km.Lookup(km.Key(a)); got != a {
			t.Fatalf("Lookup(Key(%d)) = %d, want %d", a, got, a)
		}
	}
	if got := km.Lookup('?'); got != ActionNone {
		t.Fatalf("Lookup('?') = %d, want ActionNone", got)
	}
}

func TestActionHelpers(t *testing.T) {
	for i := 0; i < dice.Count; i++ {
		got, ok := HoldAction(i).HoldIndex()
		if !ok || got != i {
			t.Fatalf("HoldIndex of HoldAction(%d) = %d, %v", i, got, ok)
		}
	}
	for _, c := range score.Categories() {
		got, ok := CommitAction(c).CommitCategory()
		if !ok || got != c {
			t.Fatalf("CommitCategory of CommitAction(%v) = %v, %v", c, got, ok)
		}
	}
	if _, ok := ActionRoll.HoldIndex(); ok {
		t.Fatal("ActionRoll reports a hold index")
	}
	if _, ok := ActionQuit.CommitCategory(); ok {
		t.Fatal("ActionQuit reports a commit category")
	}
}
