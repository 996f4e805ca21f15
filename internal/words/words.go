// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Resolve a named source (official, knuth, external) to a word list.
//   - Read newline-delimited lists from files or the embedded defaults.
//   - Fold entries to lowercase a–z and keep only words of the wanted length.
//
// Sources:
//   - "official": embedded answer list, or Options.File when set.
//   - "knuth":    embedded extended list, or Options.File when set.
//   - "external": a corpus file (Options.File is required). "nltk" is
//     accepted as an alias.
//
// Constraints:
//   • Order is preserved; duplicates are kept.
//   • Accented letters are decomposed and their marks dropped ("café" → "cafe").

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/CarsonDavis/wordle-solver/assets"
	"github.com/CarsonDavis/wordle-solver/internal/game"
)

// Source names a dictionary.
type Source string

const (
	SourceOfficial Source = "official"
	SourceKnuth    Source = "knuth"
	SourceExternal Source = "external"
)

// DefaultWordLength is the classic Wordle word length.
const DefaultWordLength = 5

// ErrInvalidWordListSource is returned for an unrecognised source name.
var ErrInvalidWordListSource = errors.New("invalid word list source")

// Sources lists the accepted source names.
var Sources = []Source{SourceOfficial, SourceKnuth, SourceExternal}

// ParseSource maps a name to a Source ("" means official).
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SourceOfficial):
		return SourceOfficial, nil
	case string(SourceKnuth):
		return SourceKnuth, nil
	case string(SourceExternal), "nltk":
		return SourceExternal, nil
	}
	return "", fmt.Errorf("%w: %q (accepted: official, knuth, external)", ErrInvalidWordListSource, s)
}

// Options selects and shapes a word list.
type Options struct {
	Source     Source
	WordLength int    // 0 means DefaultWordLength
	File       string // overrides the embedded list; required for external
}

// Load returns the cleaned word list for opts.
func Load(opts Options) ([]string, error) {
	src, err := ParseSource(string(opts.Source))
	if err != nil {
		return nil, err
	}
	length := opts.WordLength
	if length <= 0 {
		length = DefaultWordLength
	}

	var raw []string
	switch {
	case opts.File != "":
		raw, err = readFile(opts.File)
	case src == SourceOfficial:
		raw, err = assets.OfficialList()
	case src == SourceKnuth:
		raw, err = assets.KnuthList()
	default:
		return nil, fmt.Errorf("words: source %s needs a corpus file", src)
	}
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", src, err)
	}

	out := Clean(raw, length)
	if len(out) == 0 {
		return nil, fmt.Errorf("words: %s list has no %d-letter words", src, length)
	}
	return out, nil
}

// LoadDictionary loads opts and wraps the result in a game.Dictionary.
func LoadDictionary(opts Options) (*game.Dictionary, error) {
	list, err := Load(opts)
	if err != nil {
		return nil, err
	}
	length := opts.WordLength
	if length <= 0 {
		length = DefaultWordLength
	}
	return game.NewDictionary(length, list), nil
}

// Read parses one word per line from r without filtering.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// readFile loads one word per line from a file.
func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Clean trims, folds and lowercases each entry and keeps the a–z words of
// the given length. Blank lines and # comments are skipped.
func Clean(list []string, length int) []string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if folded, _, err := transform.String(fold, w); err == nil {
			w = folded
		}
		w = strings.ToLower(w)
		if len(w) == length && game.IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}
