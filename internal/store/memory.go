package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/CarsonDavis/wordle-solver/internal/eval"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex
	runs map[string]*eval.Report
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*eval.Report)}
}

func (m *memory) SaveRun(_ context.Context, r *eval.Report) error {
	cp := *r
	cp.Results = slices.Clone(r.Results)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = &cp
	return nil
}

func (m *memory) GetRun(_ context.Context, id string) (*eval.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	cp.Results = slices.Clone(r.Results)
	return &cp, nil
}

func (m *memory) ListRuns(_ context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	m.mu.RLock()
	out := make([]RunSummary, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, summarize(r))
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b RunSummary) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
