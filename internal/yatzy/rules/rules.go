// Package rules evaluates Yatzy scoring categories against a set of dice.
//
// Every rule is a pure function of the dice and their face distribution. A
// rule either yields points or reports that the dice do not satisfy it.
package rules

import (
	"github.com/louisbranch/yatzy/internal/core/dice"
)

// Kind identifies a scoring rule family.
type Kind int

const (
	KindUnspecified Kind = iota
	// KindHomogeneous scores the dice showing one face (upper section).
	KindHomogeneous
	// KindOfAKind scores the highest face repeated at least Count times.
	KindOfAKind
	KindTwoPair
	KindSmallStraight
	KindLargeStraight
	KindFullHouse
	KindChance
)

func (k Kind) String() string {
	switch k {
	case KindHomogeneous:
		return "Homogeneous"
	case KindOfAKind:
		return "OfAKind"
	case KindTwoPair:
		return "TwoPair"
	case KindSmallStraight:
		return "SmallStraight"
	case KindLargeStraight:
		return "LargeStraight"
	case KindFullHouse:
		return "FullHouse"
	case KindChance:
		return "Chance"
	default:
		return "Unspecified"
	}
}

// Fixed scores for the straights.
const (
	SmallStraightPoints = 15
	LargeStraightPoints = 20
)

// Rule is one scoring rule. Face is used by KindHomogeneous; Count and
// Override by KindOfAKind, where a non-zero Override replaces count*face.
type Rule struct {
	Kind     Kind
	Face     int
	Count    int
	Override int
}

// Homogeneous scores distribution[face] * face.
func Homogeneous(face int) Rule {
	return Rule{Kind: KindHomogeneous, Face: face}
}

// OfAKind scores count * face for the highest face with at least count dice.
func OfAKind(count int) Rule {
	return Rule{Kind: KindOfAKind, Count: count}
}

// OfAKindFixed is OfAKind with a fixed score, used for Yatzy.
func OfAKindFixed(count, points int) Rule {
	return Rule{Kind: KindOfAKind, Count: count, Override: points}
}

// TwoPair scores the two highest distinct pairs.
func TwoPair() Rule { return Rule{Kind: KindTwoPair} }

// SmallStraight requires faces 1 through 5.
func SmallStraight() Rule { return Rule{Kind: KindSmallStraight} }

// LargeStraight requires faces 2 through 6.
func LargeStraight() Rule { return Rule{Kind: KindLargeStraight} }

// FullHouse requires a triple and a pair of different faces.
func FullHouse() Rule { return Rule{Kind: KindFullHouse} }

// Chance sums all dice and is always satisfied.
func Chance() Rule { return Rule{Kind: KindChance} }

// Evaluate scores values against the rule. dist must be the distribution of
// values. The second result is false when the dice do not satisfy the rule.
func (r Rule) Evaluate(values []int, dist dice.Distribution) (int, bool) {
	switch r.Kind {
	case KindHomogeneous:
		return homogeneous(dist, r.Face)
	case KindOfAKind:
		return ofAKind(dist, r.Count, r.Override)
	case KindTwoPair:
		return twoPair(dist)
	case KindSmallStraight:
		return straight(dist, 1, 5, SmallStraightPoints)
	case KindLargeStraight:
		return straight(dist, 2, 6, LargeStraightPoints)
	case KindFullHouse:
		return fullHouse(dist)
	case KindChance:
		return dice.Sum(values), true
	default:
		return 0, false
	}
}

// Score evaluates the rule for values, building the distribution itself.
func (r Rule) Score(values []int) (int, bool) {
	return r.Evaluate(values, dice.Distribute(values))
}

func homogeneous(dist dice.Distribution, face int) (int, bool) {
	sum := dist.Count(face) * face
	if sum == 0 {
		return 0, false
	}
	return sum, true
}

func ofAKind(dist dice.Distribution, count, override int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	for face := dice.Faces; face >= 1; face-- {
		if dist[face] < count {
			continue
		}
		if override != 0 {
			return override, true
		}
		return count * face, true
	}
	return 0, false
}

// twoPair stops at the second qualifying face, so only the two highest pairs count.
func twoPair(dist dice.Distribution) (int, bool) {
	first := 0
	for face := dice.Faces; face >= 1; face-- {
		if dist[face] < 2 {
			continue
		}
		if first == 0 {
			first = face
			continue
		}
		return (first + face) * 2, true
	}
	return 0, false
}

func straight(dist dice.Distribution, low, high, points int) (int, bool) {
	for face := low; face <= high; face++ {
		if dist[face] == 0 {
			return 0, false
		}
	}
	return points, true
}

func fullHouse(dist dice.Distribution) (int, bool) {
	triple, pair := 0, 0
	for face := dice.Faces; face >= 1; face-- {
		switch dist[face] {
		case 3:
			triple = face
		case 2:
			pair = face
		}
	}
	if triple == 0 || pair == 0 {
		return 0, false
	}
	return triple*3 + pair*2, true
}
