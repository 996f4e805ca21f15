package game

// Position tracks the letters still possible at one slot.
//
// Positions are plain values; the engine keeps one per slot in a slice and
// never hands out pointers to them.
type Position struct {
	letters LetterSet
}

// NewPosition returns a slot that allows the whole alphabet.
func NewPosition() Position { return Position{letters: Alphabet} }

// Eliminate removes l from the slot. Removing a missing letter is a no-op.
func (p *Position) Eliminate(l byte) { p.letters = p.letters.Remove(l) }

// Pin narrows the slot to exactly l, discarding earlier eliminations.
func (p *Position) Pin(l byte) {
	if b := letterBit(l); b != 0 {
		p.letters = b
	}
}

// Letters returns the set of letters still possible here.
func (p Position) Letters() LetterSet { return p.letters }

// Allows reports whether l is still possible here.
func (p Position) Allows(l byte) bool { return p.letters.Has(l) }

// Pinned returns the slot's letter when exactly one remains.
func (p Position) Pinned() (byte, bool) {
	if p.letters.Len() != 1 {
		return 0, false
	}
	s := p.letters.String()
	return s[0], true
}

func (p Position) String() string { return p.letters.String() }
