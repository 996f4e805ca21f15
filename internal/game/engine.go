// internal/game/engine.go
//
// Constraint engine for a single solving session.
// Responsibilities:
//   - Keep one Position per slot plus the set of required letters.
//   - Apply feedback turns (exact → pin, present → eliminate + require,
//     absent → eliminate everywhere unless the same turn claims the letter).
//   - Narrow the candidate list to words consistent with every constraint.
//
// Notes:
//   - Candidates are a bitset over dictionary indices, so the list can only
//     shrink: recomputation clears bits, it never sets them.
//   - History is append-only and never consulted for filtering.
package game

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Engine tracks constraints and candidates for one game.
type Engine struct {
	dict       *Dictionary
	positions  []Position
	required   LetterSet
	candidates *bitset.BitSet
	history    []Turn
}

// NewEngine starts a session over dict with every slot open and every word a
// candidate.
func NewEngine(dict *Dictionary) *Engine {
	n := uint(dict.Len())
	cands := bitset.New(n)
	cands.FlipRange(0, n)

	positions := make([]Position, dict.WordLength())
	for i := range positions {
		positions[i] = NewPosition()
	}
	return &Engine{
		dict:       dict,
		positions:  positions,
		candidates: cands,
	}
}

// ApplyTurn folds one round of feedback into the slot constraints and the
// required-letter set, then records the turn in history.
//
// The whole turn is validated first, so a rejected turn leaves the engine
// untouched. An absent letter is removed from every slot only when no other
// entry in the same turn marks that letter exact or present; otherwise it is
// removed from its own slot only.
func (e *Engine) ApplyTurn(turn Turn) error {
	if len(turn) != len(e.positions) {
		return fmt.Errorf("%w: got %d entries, want %d", ErrInvalidTurnLength, len(turn), len(e.positions))
	}

	var claimed LetterSet
	for i, r := range turn {
		if !r.Mark.Valid() {
			return fmt.Errorf("%w: %q at slot %d", ErrUnknownClassification, r.Mark, i)
		}
		if letterBit(r.Letter) == 0 {
			return fmt.Errorf("%w: %q at slot %d", ErrInvalidLetter, r.Letter, i)
		}
		if r.Mark != MarkAbsent {
			claimed = claimed.Add(r.Letter)
		}
	}

	for i, r := range turn {
		switch r.Mark {
		case MarkAbsent:
			if claimed.Has(r.Letter) {
				e.positions[i].Eliminate(r.Letter)
				continue
			}
			for j := range e.positions {
				e.positions[j].Eliminate(r.Letter)
			}
		case MarkExact:
			e.positions[i].Pin(r.Letter)
		case MarkPresent:
			e.positions[i].Eliminate(r.Letter)
			e.required = e.required.Add(r.Letter)
		}
	}

	e.history = append(e.history, slices.Clone(turn))
	return nil
}

// Recompute drops candidates that lack a required letter or carry a letter a
// slot no longer allows. It returns the surviving words, and
// ErrEmptyCandidateSet when none survive.
func (e *Engine) Recompute() ([]string, error) {
	for i, ok := e.candidates.NextSet(0); ok; i, ok = e.candidates.NextSet(i + 1) {
		if !e.matches(int(i)) {
			e.candidates.Clear(i)
		}
	}
	words := e.Candidates()
	if len(words) == 0 {
		return words, ErrEmptyCandidateSet
	}
	return words, nil
}

// Update applies turn and recomputes the candidates.
func (e *Engine) Update(turn Turn) ([]string, error) {
	if err := e.ApplyTurn(turn); err != nil {
		return nil, err
	}
	return e.Recompute()
}

// matches checks the i-th dictionary word, required letters first since that
// test is a single mask comparison.
func (e *Engine) matches(i int) bool {
	if !e.dict.masks[i].Contains(e.required) {
		return false
	}
	return e.fits(e.dict.words[i])
}

// fits reports whether every letter of w is allowed at its slot.
func (e *Engine) fits(w string) bool {
	for j := range e.positions {
		if !e.positions[j].Allows(w[j]) {
			return false
		}
	}
	return true
}

// Admits reports whether w is consistent with the current constraints,
// whether or not it is in the dictionary.
func (e *Engine) Admits(w string) bool {
	if len(w) != len(e.positions) || !IsWord(w) {
		return false
	}
	return LettersOf(w).Contains(e.required) && e.fits(w)
}

// Candidates returns the current candidate words in dictionary order.
func (e *Engine) Candidates() []string {
	out := make([]string, 0, e.candidates.Count())
	for i, ok := e.candidates.NextSet(0); ok; i, ok = e.candidates.NextSet(i + 1) {
		out = append(out, e.dict.words[i])
	}
	return out
}

// Count is the number of remaining candidates.
func (e *Engine) Count() int { return int(e.candidates.Count()) }

// Required returns the letters known to be in the answer at an unknown slot.
func (e *Engine) Required() LetterSet { return e.required }

// Positions returns a copy of the per-slot constraints.
func (e *Engine) Positions() []Position { return slices.Clone(e.positions) }

// History returns the turns applied so far, oldest first.
func (e *Engine) History() []Turn {
	out := make([]Turn, len(e.history))
	for i, t := range e.history {
		out[i] = slices.Clone(t)
	}
	return out
}

// WordLength is the fixed word length of this session.
func (e *Engine) WordLength() int { return len(e.positions) }

// Dictionary returns the word list the session started from.
func (e *Engine) Dictionary() *Dictionary { return e.dict }
