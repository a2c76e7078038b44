// Package score computes hand values for the 21-based games.
//
// # Ace-flex scoring
//
// An ace counts 11 or 1, whichever keeps the hand at or under Target. Score resolves this
// with a two-pass fold: the fixed cards are summed first (faces capped at FaceCap), then
// each ace adds AceHigh when that still leaves room for every remaining ace at AceLow,
// otherwise AceLow.
//
// This greedy pass yields the largest total that does not exceed Target, or the all-low
// total when every allocation busts. Two aces can never both count high, since 11+11 is
// already above Target, so the only candidates are "every ace low" and "one ace high, the
// rest low", which differ by exactly 10. The first ace takes the high value exactly when
// the second candidate fits, and no later ace can. Aces are resolved after all fixed
// cards, so the order of the hand never changes the result.
//
// Reserving room for the remaining aces matters: [10, A, A] is 12, not 22.
package score

import "github.com/rocketscienceinc/terminal-games/internal/entity"

const (
	Target  = 21
	AceHigh = 11
	AceLow  = 1
	FaceCap = 10
)

// Points - the fixed value of a non-ace rank.
func Points(rank int) int {
	if rank > FaceCap {
		return FaceCap
	}

	return rank
}

// Score - canonical value of a hand given as ranks (1 = ace, 11..13 = faces).
func Score(ranks []int) int {
	total := 0
	aces := 0

	for _, rank := range ranks {
		if rank == entity.RankAce {
			aces++
			continue
		}
		total += Points(rank)
	}

	for i := range aces {
		remaining := aces - i - 1
		if total+AceHigh+remaining*AceLow <= Target {
			total += AceHigh
		} else {
			total += AceLow
		}
	}

	return total
}

func Hand(hand entity.Hand) int {
	return Score(hand.Ranks())
}

func IsBust(total int) bool {
	return total > Target
}

// IsBlackjack - an ace plus a ten-valued card as the first two cards.
func IsBlackjack(hand entity.Hand) bool {
	return len(hand) == 2 && Hand(hand) == Target
}

// LineSum - plain sum with no ace or face adjustment, used by line scoring.
func LineSum(values []int) int {
	sum := 0
	for _, value := range values {
		sum += value
	}

	return sum
}

// IsTwentyOne - reports whether values add up to exactly Target.
func IsTwentyOne(values []int) bool {
	return LineSum(values) == Target
}
