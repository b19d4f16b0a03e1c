// Package dice implements the five-die set used by a game of Yatzy.
package dice

import (
	"errors"
	"math/rand"
)

// Count is the number of dice in a set.
const Count = 5

// Sides is the number of faces on each die.
const Sides = 6

// ErrInvalidIndex indicates a die index outside [0, Count).
var ErrInvalidIndex = errors.New("die index out of range")

// Hand is a snapshot of the five die values at a point in time. It is
// the transient view handed to the scoring rules.
type Hand [Count]int

// Sum returns the sum of all five dice.
func (h Hand) Sum() int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

// Counts returns how many dice in the hand show each face. Index 0 is
// unused so that Counts()[face] reads naturally.
func (h Hand) Counts() [Sides + 1]int {
	var counts [Sides + 1]int
	for _, v := range h {
		if v >= 1 && v <= Sides {
			counts[v]++
		}
	}
	return counts
}

// Set holds the five dice of the current turn along with their held
// flags. A held die is excluded from the next reroll.
type Set struct {
	values [Count]int
	held   [Count]bool
	rng    *rand.Rand
}

// NewSet returns a Set drawing from the provided generator. The dice
// start at zero; values are assigned by the first Roll.
func NewSet(rng *rand.Rand) *Set {
	return &Set{rng: rng}
}

// Roll assigns a fresh uniformly random value in [1, Sides] to every
// die that is not held. Held dice are untouched.
func (s *Set) Roll() {
	for i := range s.values {
		if !s.held[i] {
			s.values[i] = s.rng.Intn(Sides) + 1
		}
	}
}

// ToggleHold flips the held flag for the die at index i.
func (s *Set) ToggleHold(i int) error {
	if i < 0 || i >= Count {
		return ErrInvalidIndex
	}
	s.held[i] = !s.held[i]
	return nil
}

// ResetHolds clears every held flag. Invoked at the start of each turn.
func (s *Set) ResetHolds() {
	for i := range s.held {
		s.held[i] = false
	}
}

// Held reports whether the die at index i is held. Out-of-range
// indexes report false.
func (s *Set) Held(i int) bool {
	if i < 0 || i >= Count {
		return false
	}
	return s.held[i]
}

// Hand returns the current die values.
func (s *Set) Hand() Hand {
	return s.values
}
