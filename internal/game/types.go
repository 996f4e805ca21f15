// internal/game/types.go
//
// Core type definitions for the constraint engine.
// Defines:
//   - Mark: per-letter feedback for a guess (exact/present/absent).
//   - LetterResult / Turn: one round of feedback, one entry per slot.
//   - LetterSet: bitmask over the a–z alphabet.

package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mark represents the feedback for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct slot.
//   - "present": letter exists in the answer but in a different slot.
//   - "absent":  letter does not correspond to any undiscovered occurrence.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// ParseMark accepts the canonical names, the legacy form values
// (right/position/wrong) and the single-letter pattern codes (g/y/b).
func ParseMark(s string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "right", "correct", "g", "2":
		return MarkExact, nil
	case "present", "position", "y", "1":
		return MarkPresent, nil
	case "absent", "wrong", "b", "-", ".", "0":
		return MarkAbsent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClassification, s)
}

// Valid reports whether m is one of the three enumerated marks.
func (m Mark) Valid() bool {
	return m == MarkExact || m == MarkPresent || m == MarkAbsent
}

// code is the pattern letter used by Turn.Pattern.
func (m Mark) code() byte {
	switch m {
	case MarkExact:
		return 'g'
	case MarkPresent:
		return 'y'
	case MarkAbsent:
		return '-'
	}
	return '?'
}

// LetterResult pairs a guessed letter with its mark.
type LetterResult struct {
	Letter byte `json:"letter"`
	Mark   Mark `json:"mark"`
}

// Turn is the ordered feedback for one guess, one entry per slot.
type Turn []LetterResult

// ParseTurn builds a turn from a guessed word and a pattern of the same
// length, e.g. ParseTurn("crane", "ggg-g").
func ParseTurn(word, pattern string) (Turn, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	pattern = strings.TrimSpace(pattern)
	if len(word) != len(pattern) {
		return nil, fmt.Errorf("%w: word %q has %d letters, pattern %q has %d",
			ErrLengthMismatch, word, len(word), pattern, len(pattern))
	}
	turn := make(Turn, len(word))
	for i := 0; i < len(word); i++ {
		m, err := ParseMark(pattern[i : i+1])
		if err != nil {
			return nil, err
		}
		turn[i] = LetterResult{Letter: word[i], Mark: m}
	}
	return turn, nil
}

// ParseNotation parses the "word:pattern" form produced by Turn.String.
func ParseNotation(s string) (Turn, error) {
	word, pattern, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("turn %q: expected word:pattern", s)
	}
	return ParseTurn(word, pattern)
}

// Word returns the guessed word.
func (t Turn) Word() string {
	b := make([]byte, len(t))
	for i, r := range t {
		b[i] = r.Letter
	}
	return string(b)
}

// Pattern renders the marks as g (exact), y (present) and - (absent).
func (t Turn) Pattern() string {
	b := make([]byte, len(t))
	for i, r := range t {
		b[i] = r.Mark.code()
	}
	return string(b)
}

// Solved reports whether every slot is exact.
func (t Turn) Solved() bool {
	if len(t) == 0 {
		return false
	}
	for _, r := range t {
		if r.Mark != MarkExact {
			return false
		}
	}
	return true
}

func (t Turn) String() string { return t.Word() + ":" + t.Pattern() }

// LetterSet is a bitmask over 'a'..'z'; bit i stands for 'a'+i.
type LetterSet uint32

// Alphabet holds every letter a slot can start with.
const Alphabet LetterSet = 1<<26 - 1

// letterBit maps a lowercase letter to its bit, or 0 outside a–z.
func letterBit(l byte) LetterSet {
	if l < 'a' || l > 'z' {
		return 0
	}
	return 1 << (l - 'a')
}

// LettersOf returns the set of distinct letters in w.
func LettersOf(w string) LetterSet {
	var s LetterSet
	for i := 0; i < len(w); i++ {
		s |= letterBit(w[i])
	}
	return s
}

// Has reports whether l is in the set.
func (s LetterSet) Has(l byte) bool {
	b := letterBit(l)
	return b != 0 && s&b != 0
}

// Add returns s with l added.
func (s LetterSet) Add(l byte) LetterSet { return s | letterBit(l) }

// Remove returns s without l.
func (s LetterSet) Remove(l byte) LetterSet { return s &^ letterBit(l) }

// Contains reports whether every letter of o is in s.
func (s LetterSet) Contains(o LetterSet) bool { return s&o == o }

// Len counts the letters in the set.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for l := byte('a'); l <= 'z'; l++ {
		if s.Has(l) {
			b.WriteByte(l)
		}
	}
	return b.String()
}

// IsWord reports whether s consists only of lowercase a–z.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
