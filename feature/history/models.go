package history

import (
	"time"

	"csv-comparison/core/compare"
)

// Run is one recorded comparison.
type Run struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time          `json:"created_at"`
	ReferenceSource string             `gorm:"size:1024" json:"reference_source"`
	CandidateSource string             `gorm:"size:1024" json:"candidate_source"`
	KeyDefinition   string             `gorm:"size:512" json:"key_definition"`
	ReferenceRows   int64              `json:"reference_rows"`
	CandidateRows   int64              `json:"candidate_rows"`
	BreakCount      int                `json:"break_count"`
	DurationMs      int64              `json:"duration_ms"`
	Definition      compare.Definition `gorm:"serializer:json;type:text" json:"definition"`
	Breaks          []Break            `gorm:"constraint:OnDelete:CASCADE" json:"breaks,omitempty"`
}

// Break is one discrepancy of a recorded run.
type Break struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	RunID          uint   `gorm:"index" json:"-"`
	Position       int    `json:"position"`
	Type           string `gorm:"size:64" json:"type"`
	Key            string `gorm:"column:break_key;size:1024" json:"key"`
	ReferenceRow   int    `json:"reference_row"`
	CandidateRow   int    `json:"candidate_row"`
	Column         string `gorm:"column:column_name;size:512" json:"column,omitempty"`
	ReferenceValue string `gorm:"type:text" json:"reference_value,omitempty"`
	CandidateValue string `gorm:"type:text" json:"candidate_value,omitempty"`
	Description    string `gorm:"type:text" json:"description"`
}

// newRun converts a comparison result into its stored form.
func newRun(def compare.Definition, result *compare.Result, elapsed time.Duration) *Run {
	run := &Run{
		CreatedAt:       result.Date,
		ReferenceSource: result.ReferenceSource,
		CandidateSource: result.CandidateSource,
		KeyDefinition:   result.KeyDefinition,
		ReferenceRows:   result.ReferenceRows,
		CandidateRows:   result.CandidateRows,
		BreakCount:      len(result.Breaks),
		DurationMs:      elapsed.Milliseconds(),
		Definition:      def,
		Breaks:          make([]Break, len(result.Breaks)),
	}
	for i, b := range result.Breaks {
		run.Breaks[i] = Break{
			Position:       i,
			Type:           string(b.Type),
			Key:            b.Key,
			ReferenceRow:   b.ReferenceRow,
			CandidateRow:   b.CandidateRow,
			Column:         b.Column,
			ReferenceValue: b.ReferenceValue,
			CandidateValue: b.CandidateValue,
			Description:    b.Description,
		}
	}
	return run
}

// Result rebuilds the comparison result of a run loaded with its breaks.
func (r *Run) Result() *compare.Result {
	result := &compare.Result{
		ReferenceSource: r.ReferenceSource,
		CandidateSource: r.CandidateSource,
		Date:            r.CreatedAt,
		ReferenceRows:   r.ReferenceRows,
		CandidateRows:   r.CandidateRows,
		KeyDefinition:   r.KeyDefinition,
		Breaks:          make([]compare.BreakDetail, len(r.Breaks)),
	}
	for i, b := range r.Breaks {
		result.Breaks[i] = compare.BreakDetail{
			Type:           compare.BreakType(b.Type),
			Key:            b.Key,
			ReferenceRow:   b.ReferenceRow,
			CandidateRow:   b.CandidateRow,
			Column:         b.Column,
			ReferenceValue: b.ReferenceValue,
			CandidateValue: b.CandidateValue,
			Description:    b.Description,
		}
	}
	return result
}
