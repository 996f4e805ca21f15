package sim

import (
	"golang.org/x/exp/constraints"

	"github.com/CarsonDavis/wordle-solver/internal/game"
)

// Minimax picks the candidate whose feedback patterns split the remaining
// candidates into the smallest worst-case bucket.
//
// The search is quadratic in the candidate count; above Limit (when set) the
// choice is delegated to Fallback.
type Minimax struct {
	Limit    int
	Scorer   game.Scorer
	Fallback Strategy
}

// Choose returns the minimax candidate. Ties go to the earliest word.
func (m Minimax) Choose(turn int, eng *game.Engine) (string, error) {
	cands := eng.Candidates()
	if len(cands) == 0 {
		return "", game.ErrEmptyCandidateSet
	}
	if len(cands) <= 2 {
		return cands[0], nil
	}
	if m.Limit > 0 && len(cands) > m.Limit && m.Fallback != nil {
		return m.Fallback.Choose(turn, eng)
	}
	scorer := m.Scorer
	if scorer == nil {
		scorer = game.Score
	}
	return MinBy(cands, func(guess string) int {
		return worstBucket(guess, cands, scorer)
	}), nil
}

// worstBucket is the size of the largest group of candidates that would give
// the same feedback for guess.
func worstBucket(guess string, cands []string, scorer game.Scorer) int {
	buckets := make(map[string]int)
	worst := 0
	for _, answer := range cands {
		turn, err := scorer(guess, answer)
		if err != nil {
			continue
		}
		p := turn.Pattern()
		buckets[p]++
		worst = max(worst, buckets[p])
	}
	return worst
}

// MinBy returns the first element with the smallest key, or the zero value
// for an empty slice.
func MinBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) T {
	if len(slice) == 0 {
		var zero T
		return zero
	}
	minItem := slice[0]
	minKey := keyFunc(minItem)
	for _, item := range slice[1:] {
		if k := keyFunc(item); k < minKey {
			minItem, minKey = item, k
		}
	}
	return minItem
}
