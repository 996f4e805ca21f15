package game

import (
	"fmt"
	"strings"
)

// Scorer compares a guess against a known answer.
type Scorer func(guess, answer string) (Turn, error)

// Scorer names accepted by ScorerFor.
const (
	ScorerSimple   = "simple"
	ScorerStandard = "standard"
)

// ScorerFor returns the scorer registered under name ("" means simple).
func ScorerFor(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerSimple:
		return Score, nil
	case ScorerStandard:
		return ScoreStandard, nil
	}
	return nil, fmt.Errorf("unknown scorer %q (want %s or %s)", name, ScorerSimple, ScorerStandard)
}

// Score classifies every slot independently: exact when the letters match,
// present when the guessed letter occurs anywhere in the answer, absent
// otherwise. Repeated letters are not consumed, so a letter guessed twice
// against an answer holding it once is reported present both times.
func Score(guess, answer string) (Turn, error) {
	if len(guess) != len(answer) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, guess, answer)
	}
	turn := make(Turn, len(guess))
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		switch {
		case c == answer[i]:
			turn[i] = LetterResult{Letter: c, Mark: MarkExact}
		case strings.IndexByte(answer, c) >= 0:
			turn[i] = LetterResult{Letter: c, Mark: MarkPresent}
		default:
			turn[i] = LetterResult{Letter: c, Mark: MarkAbsent}
		}
	}
	return turn, nil
}

// ScoreStandard implements the two-pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the remaining (non-exact) answer letters.
//
// Pass 2:
//   - For each non-exact guess letter: if a count remains for that letter,
//     mark present and decrement; otherwise mark absent.
func ScoreStandard(guess, answer string) (Turn, error) {
	if len(guess) != len(answer) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, guess, answer)
	}
	n := len(guess)
	turn := make(Turn, n)
	counts := make(map[byte]int, n)

	for i := 0; i < n; i++ {
		turn[i].Letter = guess[i]
		if guess[i] == answer[i] {
			turn[i].Mark = MarkExact
		} else {
			counts[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if turn[i].Mark == MarkExact {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			turn[i].Mark = MarkPresent
			counts[c]--
		} else {
			turn[i].Mark = MarkAbsent
		}
	}
	return turn, nil
}
