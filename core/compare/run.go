package compare

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type side int

const (
	referenceSide side = iota
	candidateSide
)

func (s side) String() string {
	if s == referenceSide {
		return ReferenceLabel
	}
	return CandidateLabel
}

func (s side) other() side {
	return 1 - s
}

// rowQueue is a FIFO of rows produced by one loader.
type rowQueue struct {
	rows []Row
	head int
}

func (q *rowQueue) push(r Row) {
	q.rows = append(q.rows, r)
}

func (q *rowQueue) pop() (Row, bool) {
	if q.head == len(q.rows) {
		return Row{}, false
	}
	r := q.rows[q.head]
	q.rows[q.head] = Row{}
	q.head++
	if q.head == len(q.rows) {
		q.rows = q.rows[:0]
		q.head = 0
	}
	return r, true
}

func (q *rowQueue) empty() bool {
	return q.head == len(q.rows)
}

// run holds the state of a single CompareFiles call.
// Everything below mu is guarded by it.
type run struct {
	def    *compiledDefinition
	log    *zap.Logger
	breaks accumulator

	ready     chan struct{}
	readyOnce sync.Once

	mu             sync.Mutex
	cond           *sync.Cond
	queues         [2]rowQueue
	liveLoaders    int
	header         *headerInfo
	earlyTerminate bool
	aborted        bool
	rowCounts      [2]int64
}

func newRun(def *compiledDefinition, log *zap.Logger) *run {
	r := &run{
		def:         def,
		log:         log,
		ready:       make(chan struct{}),
		liveLoaders: 2,
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// watch wakes the reconciler when ctx is cancelled. The returned func stops watching.
func (r *run) watch(ctx context.Context) func() bool {
	return context.AfterFunc(ctx, func() {
		r.mu.Lock()
		r.aborted = true
		r.cond.Broadcast()
		r.mu.Unlock()
	})
}

func (r *run) signalReady() {
	r.readyOnce.Do(func() { close(r.ready) })
}

// installHeader records header metadata unless another loader already did.
func (r *run) installHeader(h *headerInfo) {
	r.mu.Lock()
	if r.header == nil {
		r.header = h
	}
	r.mu.Unlock()
}

// enqueue appends a row to its side's queue.
// It returns false once the run has stopped and no further rows are wanted.
func (r *run) enqueue(s side, row Row) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.earlyTerminate || r.aborted {
		return false
	}
	r.queues[s].push(row)
	r.cond.Broadcast()
	return true
}

// fail records a load failure and stops the run.
func (r *run) fail(source string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.breaks.add(processFailure(source, err))
	r.earlyTerminate = true
	r.cond.Broadcast()
}

func (r *run) terminate() {
	r.mu.Lock()
	r.earlyTerminate = true
	r.cond.Broadcast()
	r.mu.Unlock()
}

// loaderDone is called exactly once by each loader on exit.
func (r *run) loaderDone() {
	r.mu.Lock()
	r.liveLoaders--
	r.cond.Broadcast()
	r.mu.Unlock()

	r.signalReady()
}

type stepState int

const (
	stepRows stepState = iota
	stepDrained
	stepEarlyTerminated
	stepAborted
)

// step is what the reconciler takes from the queues in one iteration.
type step struct {
	state  stepState
	rows   [2]*Row
	header *headerInfo
}

// next pops at most one row from each queue, sleeping while both are empty and a loader is still running.
func (r *run) next() step {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		if r.aborted {
			return step{state: stepAborted}
		}
		if r.earlyTerminate {
			return step{state: stepEarlyTerminated}
		}

		var st step
		for _, s := range []side{referenceSide, candidateSide} {
			if row, ok := r.queues[s].pop(); ok {
				st.rows[s] = &row
				if row.Index != r.def.HeaderRowIndex {
					r.rowCounts[s]++
				}
			}
		}
		if st.rows[referenceSide] != nil || st.rows[candidateSide] != nil {
			st.state = stepRows
			st.header = r.header
			return st
		}

		if r.liveLoaders == 0 {
			return step{state: stepDrained}
		}
		r.cond.Wait()
	}
}

// waitReady blocks until a loader has produced its first row or exited.
func (r *run) waitReady(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
