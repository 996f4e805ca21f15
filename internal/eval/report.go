package eval

import (
	"sort"
	"time"

	"golang.org/x/exp/constraints"
)

// Meta names what a run measured.
type Meta struct {
	Strategy string `json:"strategy"`
	Source   string `json:"source"`
	Scorer   string `json:"scorer"`
}

// WordResult is the outcome for one hidden answer.
type WordResult struct {
	Word    string `json:"word"`
	Guesses int    `json:"guesses"`
	Err     string `json:"error,omitempty"`
}

// Failed reports whether the game ended without solving.
func (r WordResult) Failed() bool { return r.Err != "" }

// Report collects the results of one evaluation run, in answer order.
type Report struct {
	ID string `json:"id"`
	Meta
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	Results    []WordResult `json:"results"`
}

// Summary is the aggregate view of a report.
type Summary struct {
	Words        int         `json:"words"`
	Solved       int         `json:"solved"`
	Failed       int         `json:"failed"`
	Mean         float64     `json:"mean"`
	Best         int         `json:"best"`
	Worst        int         `json:"worst"`
	Distribution map[int]int `json:"distribution"`
}

// Mean returns the arithmetic mean of xs, or 0 when empty.
func Mean[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// guesses returns the guess counts of solved games.
func (r *Report) guesses() []int {
	out := make([]int, 0, len(r.Results))
	for _, res := range r.Results {
		if !res.Failed() {
			out = append(out, res.Guesses)
		}
	}
	return out
}

// Mean is the mean guess count over solved games.
func (r *Report) Mean() float64 { return Mean(r.guesses()) }

// Solved counts the games that reached the answer.
func (r *Report) Solved() int { return len(r.guesses()) }

// Failures returns the games that ended in an error.
func (r *Report) Failures() []WordResult {
	var out []WordResult
	for _, res := range r.Results {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// RunningMeans returns, for each result in order, the mean over the solved
// games up to and including it.
func (r *Report) RunningMeans() []float64 {
	out := make([]float64, len(r.Results))
	sum, n := 0, 0
	for i, res := range r.Results {
		if !res.Failed() {
			sum += res.Guesses
			n++
		}
		if n > 0 {
			out[i] = float64(sum) / float64(n)
		}
	}
	return out
}

// Distribution maps guess counts to the number of solved games.
func (r *Report) Distribution() map[int]int {
	out := make(map[int]int)
	for _, g := range r.guesses() {
		out[g]++
	}
	return out
}

// Best returns the lowest guess count and the words solved in it.
func (r *Report) Best() (int, []string) {
	return r.extreme(func(a, b int) bool { return a < b })
}

// Worst returns the highest guess count and the words that needed it.
func (r *Report) Worst() (int, []string) {
	return r.extreme(func(a, b int) bool { return a > b })
}

func (r *Report) extreme(better func(a, b int) bool) (int, []string) {
	var (
		best  int
		words []string
	)
	for _, res := range r.Results {
		if res.Failed() {
			continue
		}
		switch {
		case words == nil || better(res.Guesses, best):
			best, words = res.Guesses, []string{res.Word}
		case res.Guesses == best:
			words = append(words, res.Word)
		}
	}
	sort.Strings(words)
	return best, words
}

// Summary aggregates the report.
func (r *Report) Summary() Summary {
	best, _ := r.Best()
	worst, _ := r.Worst()
	return Summary{
		Words:        len(r.Results),
		Solved:       r.Solved(),
		Failed:       len(r.Results) - r.Solved(),
		Mean:         r.Mean(),
		Best:         best,
		Worst:        worst,
		Distribution: r.Distribution(),
	}
}
