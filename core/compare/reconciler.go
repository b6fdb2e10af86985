package compare

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// reconciler matches rows from both queues by key.
// The orphan maps are owned by the reconciler goroutine and need no locking.
type reconciler struct {
	run         *run
	values      valueComparer
	orphans     [2]map[string]Row
	headerCheck bool
}

func newReconciler(r *run) *reconciler {
	return &reconciler{
		run:         r,
		values:      valueComparer{def: r.def, breaks: &r.breaks},
		orphans:     [2]map[string]Row{make(map[string]Row), make(map[string]Row)},
		headerCheck: true,
	}
}

// reconcile drains both queues until the loaders finish or the run stops.
func (rc *reconciler) reconcile(ctx context.Context) error {
	if err := rc.run.waitReady(ctx); err != nil {
		return err
	}

	for {
		st := rc.run.next()
		switch st.state {
		case stepAborted:
			return ctx.Err()
		case stepEarlyTerminated:
			rc.run.log.Debug("Reconciliation terminated early")
			return nil
		case stepDrained:
			rc.reportOrphans()
			return nil
		}

		ref, cand := st.rows[referenceSide], st.rows[candidateSide]
		if ref != nil && cand != nil && ref.Key == cand.Key {
			rc.compare(st.header, ref.Key, ref, cand)
			continue
		}

		// Candidate first, then reference.
		if cand != nil {
			if err := rc.match(st.header, candidateSide, cand); err != nil {
				return err
			}
		}
		if ref != nil {
			if err := rc.match(st.header, referenceSide, ref); err != nil {
				return err
			}
		}
	}
}

// match compares row against its orphaned counterpart, or orphans it.
func (rc *reconciler) match(header *headerInfo, s side, row *Row) error {
	counterparts := rc.orphans[s.other()]
	if other, ok := counterparts[row.Key]; ok {
		delete(counterparts, row.Key)
		if s == referenceSide {
			rc.compare(header, row.Key, row, &other)
		} else {
			rc.compare(header, row.Key, &other, row)
		}
		return nil
	}

	own := rc.orphans[s]
	if _, exists := own[row.Key]; exists {
		return &DuplicateKeyError{Side: s.String(), Key: row.Key}
	}
	own[row.Key] = *row
	return nil
}

// compare checks a matched pair. The first pair is the header row; any
// difference there stops the run.
func (rc *reconciler) compare(header *headerInfo, key string, ref, cand *Row) {
	ok := rc.values.compareRows(header, key, ref, cand)
	if !rc.headerCheck {
		return
	}
	rc.headerCheck = false
	if !ok {
		rc.run.log.Debug("Header rows differ", zap.String("key", key))
		rc.run.terminate()
	}
}

// reportOrphans emits every unmatched row, candidate side first, each in row order.
func (rc *reconciler) reportOrphans() {
	rc.reportSide(candidateSide, BreakRowInCandidateNotInReference)
	rc.reportSide(referenceSide, BreakRowInReferenceNotInCandidate)
}

func (rc *reconciler) reportSide(s side, kind BreakType) {
	rows := make([]Row, 0, len(rc.orphans[s]))
	for _, row := range rc.orphans[s] {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Index < rows[j].Index
	})

	for _, row := range rows {
		if matchesAny(rc.values.def.orphanExclusions, row.Key) {
			continue
		}
		b := BreakDetail{
			Type:         kind,
			Key:          row.Key,
			ReferenceRow: -1,
			CandidateRow: -1,
			Description:  "Key missing: " + row.Key,
		}
		if s == referenceSide {
			b.ReferenceRow = row.Index
		} else {
			b.CandidateRow = row.Index
		}
		rc.run.breaks.add(b)
	}
}
