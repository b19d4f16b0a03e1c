package dice

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRollAssignsValuesInRange(t *testing.T) {
	s := NewSet(rand.New(rand.NewSource(1)))

	for roll := 0; roll < 100; roll++ {
		s.Roll()
		for i, v := range s.Hand() {
			if v < 1 || v > Sides {
				t.Fatalf("die %d = %d after roll %d, want value in [1,%d]", i, v, roll, Sides)
			}
		}
	}
}

func TestRollSkipsHeldDice(t *testing.T) {
	s := NewSet(rand.New(rand.NewSource(2)))
	s.Roll()

	if err := s.ToggleHold(2); err != nil {
		t.Fatalf("ToggleHold(2) returned error: %v", err)
	}
	if !s.Held(2) {
		t.Fatal("die 2 not held after toggle")
	}
	held := s.Hand()[2]

	for roll := 0; roll < 50; roll++ {
		s.Roll()
		if got := s.Hand()[2]; got != held {
			t.Fatalf("held die changed from %d to %d on roll %d", held, got, roll)
		}
	}
}

func TestToggleHoldTwiceReleases(t *testing.T) {
	s := NewSet(rand.New(rand.NewSource(3)))
	s.Roll()

	if err := s.ToggleHold(0); err != nil {
		t.Fatalf("ToggleHold returned error: %v", err)
	}
	if err := s.ToggleHold(0); err != nil {
		t.Fatalf("ToggleHold returned error: %v", err)
	}
	if s.Held(0) {
		t.Fatal("die 0 still held after double toggle")
	}
}

func TestToggleHoldRejectsInvalidIndex(t *testing.T) {
	s := NewSet(rand.New(rand.NewSource(4)))

	for _, i := range []int{-1, Count, 99} {
		if err := s.ToggleHold(i); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("ToggleHold(%d) error = %v, want %v", i, err, ErrInvalidIndex)
		}
	}
}

func TestResetHoldsClearsEveryFlag(t *testing.T) {
	s := NewSet(rand.New(rand.NewSource(5)))
	s.Roll()
	for i := 0; i < Count; i++ {
		if err := s.ToggleHold(i); err != nil {
			t.Fatalf("ToggleHold(%d) returned error: %v", i, err)
		}
	}

	s.ResetHolds()
	for i := 0; i < Count; i++ {
		if s.Held(i) {
			t.Fatalf("die %d still held after ResetHolds", i)
		}
	}
}

func TestHandSumAndCounts(t *testing.T) {
	h := Hand{3, 3, 1, 6, 3}
	if got := h.Sum(); got != 16 {
		t.Fatalf("Sum() = %d, want 16", got)
	}
	counts := h.Counts()
	if counts[3] != 3 || counts[1] != 1 || counts[6] != 1 || counts[2] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
