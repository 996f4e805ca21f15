package game

// Dictionary is an immutable word list of a single word length.
// It is safe to share between engines running on different goroutines.
type Dictionary struct {
	length int
	words  []string
	masks  []LetterSet
	index  map[string]int
}

// NewDictionary keeps the words of the given length that consist of a–z,
// preserving their order. Duplicates are kept; the input is not modified.
func NewDictionary(length int, words []string) *Dictionary {
	d := &Dictionary{
		length: length,
		words:  make([]string, 0, len(words)),
		masks:  make([]LetterSet, 0, len(words)),
		index:  make(map[string]int, len(words)),
	}
	for _, w := range words {
		if len(w) != length || !IsWord(w) {
			continue
		}
		if _, ok := d.index[w]; !ok {
			d.index[w] = len(d.words)
		}
		d.words = append(d.words, w)
		d.masks = append(d.masks, LettersOf(w))
	}
	return d
}

// WordLength is the fixed length of every word in the dictionary.
func (d *Dictionary) WordLength() int { return d.length }

// Len is the number of words, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// Word returns the i-th word.
func (d *Dictionary) Word(i int) string { return d.words[i] }

// Words returns a copy of the word list.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[w]
	return ok
}
