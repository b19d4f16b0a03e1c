// Package score implements the Yatzy scorecard: the fifteen standard
// categories, the scoring rules for each, and the sheet a player fills
// over the course of a game.
package score

import (
	"errors"

	"github.com/velbaek/yahoozy/pkg/dice"
)

// Category identifies one of the fifteen scoring categories.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	OnePair
	TwoPairs
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	FullHouse
	Chance
	Yatzy

	// NumCategories is the number of categories on a sheet.
	NumCategories = int(Yatzy) + 1
)

// Fixed category payouts and the upper-section bonus parameters.
const (
	SmallStraightScore = 15
	LargeStraightScore = 20
	YatzyScore         = 50

	// BonusThreshold is the upper-section subtotal at which the bonus
	// is awarded.
	BonusThreshold = 63
	// Bonus is the amount added to the total once the threshold is met.
	Bonus = 50
)

var categoryNames = [NumCategories]string{
	"Ones",
	"Twos",
	"Threes",
	"Fours",
	"Fives",
	"Sixes",
	"One Pair",
	"Two Pairs",
	"Three of a Kind",
	"Four of a Kind",
	"Small Straight",
	"Large Straight",
	"Full House",
	"Chance",
	"Yatzy",
}

func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c names an actual category.
func (c Category) Valid() bool {
	return c >= Ones && c <= Yatzy
}

// Upper reports whether c belongs to the upper section (Ones..Sixes),
// which counts toward the completion bonus.
func (c Category) Upper() bool {
	return c >= Ones && c <= Sixes
}

// Categories returns all categories in sheet order.
func Categories() []Category {
	cs := make([]Category, NumCategories)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}

// ErrAlreadyFilled indicates a commit to a category that has a score.
var ErrAlreadyFilled = errors.New("category already filled")

// ErrInvalidCategory indicates a category outside the fifteen known ones.
var ErrInvalidCategory = errors.New("no such category")

// Preview returns the score the hand would yield in category c under
// standard Yatzy rules. It is a pure function; nothing is mutated.
//
// Rules:
//
//   - Ones..Sixes: sum of the dice showing that face.
//   - One Pair: twice the highest face with at least two dice; 0 if none.
//   - Two Pairs: two distinct pair faces, highest first; 0 otherwise.
//     Four of a kind does not count as two pairs of the same face.
//   - Three/Four of a Kind: three or four times the highest qualifying
//     face; 0 if absent.
//   - Small Straight: exactly {1,2,3,4,5} in any order scores 15.
//   - Large Straight: exactly {2,3,4,5,6} in any order scores 20.
//   - Full House: exactly one pair plus one three of a kind of a
//     different face scores the sum of all dice. Five equal dice are a
//     Yatzy, not a full house.
//   - Chance: sum of all dice, always.
//   - Yatzy: five equal dice score 50.
func Preview(c Category, hand dice.Hand) (int, error) {
	if !c.Valid() {
		return 0, ErrInvalidCategory
	}

	counts := hand.Counts()

	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := int(c) + 1
		return counts[face] * face, nil

	case OnePair:
		for face := dice.Sides; face >= 1; face-- {
			if counts[face] >= 2 {
				return face * 2, nil
			}
		}
		return 0, nil

	case TwoPairs:
		pairs := 0
		total := 0
		for face := dice.Sides; face >= 1; face-- {
			if counts[face] >= 2 {
				pairs++
				total += face * 2
				if pairs == 2 {
					return total, nil
				}
			}
		}
		return 0, nil

	case ThreeOfAKind:
		for face := dice.Sides; face >= 1; face-- {
			if counts[face] >= 3 {
				return face * 3, nil
			}
		}
		return 0, nil

	case FourOfAKind:
		for face := dice.Sides; face >= 1; face-- {
			if counts[face] >= 4 {
				return face * 4, nil
			}
		}
		return 0, nil

	case SmallStraight:
		if isStraight(counts, 1) {
			return SmallStraightScore, nil
		}
		return 0, nil

	case LargeStraight:
		if isStraight(counts, 2) {
			return LargeStraightScore, nil
		}
		return 0, nil

	case FullHouse:
		pairFace, tripleFace := 0, 0
		for face := 1; face <= dice.Sides; face++ {
			switch counts[face] {
			case 2:
				pairFace = face
			case 3:
				tripleFace = face
			}
		}
		if pairFace != 0 && tripleFace != 0 {
			return hand.Sum(), nil
		}
		return 0, nil

	case Chance:
		return hand.Sum(), nil

	case Yatzy:
		for face := 1; face <= dice.Sides; face++ {
			if counts[face] == dice.Count {
				return YatzyScore, nil
			}
		}
		return 0, nil
	}

	return 0, ErrInvalidCategory
}

// isStraight reports whether the hand is exactly the five consecutive
// faces starting at low.
func isStraight(counts [dice.Sides + 1]int, low int) bool {
	for face := low; face < low+dice.Count; face++ {
		if counts[face] != 1 {
			return false
		}
	}
	return true
}

// Sheet is a player's scorecard. A category is either unfilled or
// holds a committed score; committed scores never change.
type Sheet struct {
	scores [NumCategories]int
	filled [NumCategories]bool
}

// NewSheet returns an empty scorecard.
func NewSheet() *Sheet {
	return &Sheet{}
}

// Filled returns the committed score for c and whether one exists.
func (s *Sheet) Filled(c Category) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	return s.scores[c], s.filled[c]
}

// Commit fills category c with the score the hand yields there and
// returns the filled value. Committing to an already filled category
// fails with ErrAlreadyFilled and leaves the sheet untouched.
func (s *Sheet) Commit(c Category, hand dice.Hand) (int, error) {
	if !c.Valid() {
		return 0, ErrInvalidCategory
	}
	if s.filled[c] {
		return 0, ErrAlreadyFilled
	}
	pts, err := Preview(c, hand)
	if err != nil {
		return 0, err
	}
	s.scores[c] = pts
	s.filled[c] = true
	return pts, nil
}

// IsComplete reports whether every category has been filled.
func (s *Sheet) IsComplete() bool {
	for _, f := range s.filled {
		if !f {
			return false
		}
	}
	return true
}

// UpperSubtotal returns the sum of the filled upper-section scores.
func (s *Sheet) UpperSubtotal() int {
	total := 0
	for c := Ones; c <= Sixes; c++ {
		if s.filled[c] {
			total += s.scores[c]
		}
	}
	return total
}

// Total returns the sum of all filled scores plus the upper-section
// bonus once the subtotal reaches BonusThreshold.
func (s *Sheet) Total() int {
	total := 0
	for c, filled := range s.filled {
		if filled {
			total += s.scores[c]
		}
	}
	if s.UpperSubtotal() >= BonusThreshold {
		total += Bonus
	}
	return total
}
