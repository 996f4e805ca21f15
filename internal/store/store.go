// internal/store/store.go
//
// Persistence for evaluation reports.
// Two implementations share the Store interface:
//   - memory: map-backed, lost on restart (tests, one-shot CLI runs).
//   - SQLite: durable, schema from the embedded migrations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/CarsonDavis/wordle-solver/internal/eval"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("run not found")

// RunSummary is one row of a run listing.
type RunSummary struct {
	ID         string    `json:"id"`
	Strategy   string    `json:"strategy"`
	Source     string    `json:"source"`
	Scorer     string    `json:"scorer"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Words      int       `json:"words"`
	Failures   int       `json:"failures"`
	Mean       float64   `json:"mean"`
}

// Store persists evaluation reports.
type Store interface {
	// SaveRun stores a report, replacing any run with the same ID.
	SaveRun(ctx context.Context, r *eval.Report) error

	// GetRun loads a report with all its per-word results.
	// Returns ErrNotFound for an unknown ID.
	GetRun(ctx context.Context, id string) (*eval.Report, error)

	// ListRuns returns the most recent runs first. limit <= 0 means 20.
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
}

const defaultListLimit = 20

func summarize(r *eval.Report) RunSummary {
	return RunSummary{
		ID:         r.ID,
		Strategy:   r.Strategy,
		Source:     r.Source,
		Scorer:     r.Scorer,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Words:      len(r.Results),
		Failures:   len(r.Failures()),
		Mean:       r.Mean(),
	}
}
