package compare

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// valueComparer compares the columns of two rows sharing a key.
type valueComparer struct {
	def    *compiledDefinition
	breaks *accumulator
}

// compareRows reports every difference between two rows and returns true when there was none.
// A suppressed mismatch still counts as a difference.
func (v *valueComparer) compareRows(header *headerInfo, key string, ref, cand *Row) bool {
	if len(ref.Columns) != len(cand.Columns) {
		v.breaks.add(BreakDetail{
			Type:         BreakColumnsDifferent,
			Key:          key,
			ReferenceRow: ref.Index,
			CandidateRow: cand.Index,
			Description: fmt.Sprintf("%s has %d columns, %s has %d columns",
				ReferenceLabel, len(ref.Columns), CandidateLabel, len(cand.Columns)),
		})
		return false
	}

	success := true
	for i := range ref.Columns {
		if _, skip := header.excluded[i]; skip {
			continue
		}

		refValue, candValue := ref.Columns[i], cand.Columns[i]
		if v.equal(refValue, candValue) {
			continue
		}

		success = false
		if matchesAny(v.def.keyExclusions, key) {
			continue
		}
		v.breaks.add(BreakDetail{
			Type:           BreakValueMismatch,
			Key:            key,
			ReferenceRow:   ref.Index,
			CandidateRow:   cand.Index,
			Column:         header.columnName(i),
			ReferenceValue: refValue,
			CandidateValue: candValue,
			Description: fmt.Sprintf("Key:%s, %s Row:%d, Value:%s != %s Row:%d, Value:%s",
				key, ReferenceLabel, ref.Index, refValue, CandidateLabel, cand.Index, candValue),
		})
	}
	return success
}

// equal applies the tolerance policy to a single pair of values.
func (v *valueComparer) equal(refValue, candValue string) bool {
	tolerance := v.def.Tolerance()
	if tolerance == ToleranceExact {
		return refValue == candValue
	}

	refNumber, refOK := parseNumber(refValue)
	candNumber, candOK := parseNumber(candValue)
	if !refOK || !candOK {
		return refValue == candValue
	}

	switch tolerance {
	case ToleranceAbsolute:
		return !(math.Abs(refNumber-candNumber) > v.def.ToleranceValue)
	case ToleranceRelative:
		// Division by the reference value only; a zero reference yields Inf or NaN.
		return !(math.Abs((refNumber-candNumber)/refNumber) > v.def.ToleranceValue)
	default:
		return refValue == candValue
	}
}

// parseNumber reads a finite number, ignoring surrounding quotes and whitespace.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (h *headerInfo) columnName(i int) string {
	if i < len(h.columns) {
		return h.columns[i]
	}
	return "#" + strconv.Itoa(i)
}
