package compare

import (
	"sync"
	"time"
)

// accumulator collects breaks from the loaders and the reconciler.
type accumulator struct {
	mu     sync.Mutex
	breaks []BreakDetail
}

func (a *accumulator) add(b BreakDetail) {
	a.mu.Lock()
	a.breaks = append(a.breaks, b)
	a.mu.Unlock()
}

func (a *accumulator) snapshot() []BreakDetail {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]BreakDetail, len(a.breaks))
	copy(out, a.breaks)
	return out
}

// build assembles the final result of a run.
func (r *run) build(reference, candidate string) *Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := &Result{
		ReferenceSource: reference,
		CandidateSource: candidate,
		Date:            time.Now(),
		Breaks:          r.breaks.snapshot(),
		ReferenceRows:   r.rowCounts[referenceSide],
		CandidateRows:   r.rowCounts[candidateSide],
	}
	if r.header != nil {
		result.KeyDefinition = r.header.keyDefinition
	}
	return result
}
