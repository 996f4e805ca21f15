package eval

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// RenderText writes a human-readable summary. With verbose set, every
// per-word result is listed as well.
func RenderText(w io.Writer, r *Report, verbose bool) error {
	var b strings.Builder
	s := r.Summary()

	fmt.Fprintf(&b, "run: %s\n", r.ID)
	fmt.Fprintf(&b, "strategy: %s\n", r.Strategy)
	fmt.Fprintf(&b, "source: %s\n", r.Source)
	fmt.Fprintf(&b, "scorer: %s\n", r.Scorer)
	if !r.StartedAt.IsZero() && !r.FinishedAt.IsZero() {
		fmt.Fprintf(&b, "elapsed: %s\n", r.FinishedAt.Sub(r.StartedAt))
	}
	fmt.Fprintf(&b, "words: %d\n", s.Words)
	fmt.Fprintf(&b, "solved: %d\n", s.Solved)
	fmt.Fprintf(&b, "failed: %d\n", s.Failed)
	fmt.Fprintf(&b, "mean: %.3f\n", s.Mean)

	if s.Solved > 0 {
		best, bestWords := r.Best()
		worst, worstWords := r.Worst()
		fmt.Fprintf(&b, "best: %d (%s)\n", best, strings.Join(bestWords, ", "))
		fmt.Fprintf(&b, "worst: %d (%s)\n", worst, strings.Join(worstWords, ", "))

		b.WriteString("distribution:\n")
		keys := make([]int, 0, len(s.Distribution))
		for k := range s.Distribution {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %d: %d\n", k, s.Distribution[k])
		}
	}

	if failures := r.Failures(); len(failures) > 0 {
		b.WriteString("failures:\n")
		for _, f := range failures {
			fmt.Fprintf(&b, "  %s: %s\n", f.Word, f.Err)
		}
	}

	if verbose {
		b.WriteString("results:\n")
		for _, res := range r.Results {
			if res.Failed() {
				fmt.Fprintf(&b, "  %s failed\n", res.Word)
				continue
			}
			fmt.Fprintf(&b, "  %s %d\n", res.Word, res.Guesses)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the report and its summary as indented JSON.
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Report  *Report `json:"report"`
		Summary Summary `json:"summary"`
	}{r, r.Summary()})
}

// MarshalZerologObject lets a summary be attached to a log event.
func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Int("words", s.Words).
		Int("solved", s.Solved).
		Int("failed", s.Failed).
		Float64("mean", s.Mean).
		Int("best", s.Best).
		Int("worst", s.Worst)
}
