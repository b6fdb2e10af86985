package compare

import (
	"fmt"
	"time"
)

// ToleranceType selects how two numeric values are judged equal.
type ToleranceType string

const (
	// ToleranceExact compares the raw text of both values.
	ToleranceExact ToleranceType = "Exact"
	// ToleranceAbsolute allows |reference - candidate| up to the tolerance value.
	ToleranceAbsolute ToleranceType = "Absolute"
	// ToleranceRelative allows |(reference - candidate) / reference| up to the tolerance value.
	ToleranceRelative ToleranceType = "Relative"
)

// Definition describes how two files are compared.
// It is supplied once per comparison and never modified by the engine.
type Definition struct {
	// Delimiter separates fields. It may be longer than one character,
	// in which case quoted fields are not recognised.
	Delimiter string `mapstructure:"delimiter" json:"delimiter" yaml:"delimiter" xml:"Delimiter"`

	// KeyColumns names the columns whose values, joined with ':', identify a row.
	KeyColumns []string `mapstructure:"key_columns" json:"key_columns" yaml:"key_columns" xml:"-"`

	// HeaderRowIndex is the zero-based line holding the column names.
	// Lines before it are skipped.
	HeaderRowIndex int `mapstructure:"header_row_index" json:"header_row_index" yaml:"header_row_index" xml:"HeaderRowIndex"`

	// ToleranceType selects the numeric comparison rule. Empty means Exact.
	ToleranceType ToleranceType `mapstructure:"tolerance_type" json:"tolerance_type" yaml:"tolerance_type" xml:"ToleranceType"`

	// ToleranceValue is the threshold used by Absolute and Relative tolerance.
	ToleranceValue float64 `mapstructure:"tolerance_value" json:"tolerance_value" yaml:"tolerance_value" xml:"ToleranceValue"`

	// ExcludedColumns names columns that are never compared.
	ExcludedColumns []string `mapstructure:"excluded_columns" json:"excluded_columns,omitempty" yaml:"excluded_columns,omitempty" xml:"-"`

	// IgnoreInvalidRows drops rows whose column count differs from the header,
	// which is typically used to skip trailer rows.
	IgnoreInvalidRows bool `mapstructure:"ignore_invalid_rows" json:"ignore_invalid_rows" yaml:"ignore_invalid_rows" xml:"IgnoreInvalidRows"`

	// OrphanExclusions are regular expressions; orphans whose key matches one are not reported.
	OrphanExclusions []string `mapstructure:"orphan_exclusions" json:"orphan_exclusions,omitempty" yaml:"orphan_exclusions,omitempty" xml:"-"`

	// KeyExclusions are regular expressions; value mismatches whose key matches one are not reported.
	KeyExclusions []string `mapstructure:"key_exclusions" json:"key_exclusions,omitempty" yaml:"key_exclusions,omitempty" xml:"-"`
}

// Row is one line of a file at or after its header row.
type Row struct {
	// Key is the composite key built from the key columns.
	Key string
	// Columns holds the raw field values.
	Columns []string
	// Index is the zero-based line number within the file.
	Index int
}

// BreakType classifies a discrepancy.
type BreakType string

const (
	// BreakColumnsDifferent means the two rows have a different number of columns.
	BreakColumnsDifferent BreakType = "ColumnsDifferent"
	// BreakRowInReferenceNotInCandidate means a reference row has no candidate counterpart.
	BreakRowInReferenceNotInCandidate BreakType = "RowInReferenceNotInCandidate"
	// BreakRowInCandidateNotInReference means a candidate row has no reference counterpart.
	BreakRowInCandidateNotInReference BreakType = "RowInCandidateNotInReference"
	// BreakValueMismatch means a column value differs beyond tolerance.
	BreakValueMismatch BreakType = "ValueMismatch"
	// BreakProcessFailure means a file could not be read.
	BreakProcessFailure BreakType = "ProcessFailure"
)

// Labels used in break descriptions.
const (
	ReferenceLabel = "Reference"
	CandidateLabel = "Candidate"
)

// BreakDetail records a single discrepancy between the two files.
type BreakDetail struct {
	// Type is the kind of break.
	Type BreakType `json:"type"`
	// Key is the composite key of the affected row, if any.
	Key string `json:"key"`
	// ReferenceRow is the reference line index, or -1 when not applicable.
	ReferenceRow int `json:"reference_row"`
	// CandidateRow is the candidate line index, or -1 when not applicable.
	CandidateRow int `json:"candidate_row"`
	// Column is the name of the mismatching column. Empty for orphans.
	Column string `json:"column,omitempty"`
	// ReferenceValue is the reference value of a mismatching column.
	ReferenceValue string `json:"reference_value,omitempty"`
	// CandidateValue is the candidate value of a mismatching column.
	CandidateValue string `json:"candidate_value,omitempty"`
	// Description is a single line summary of the break.
	Description string `json:"description"`
}

// String renders the break for console output.
func (b BreakDetail) String() string {
	return fmt.Sprintf("Break Type: %s. Description: %s", b.Type, b.Description)
}

// Result aggregates the outcome of one comparison.
type Result struct {
	// ReferenceSource identifies the reference input.
	ReferenceSource string `json:"reference_source"`
	// CandidateSource identifies the candidate input.
	CandidateSource string `json:"candidate_source"`
	// Date is when the comparison finished.
	Date time.Time `json:"date"`
	// Breaks holds every reported discrepancy in detection order.
	Breaks []BreakDetail `json:"breaks"`
	// ReferenceRows is the number of reference rows reconciled.
	ReferenceRows int64 `json:"reference_rows"`
	// CandidateRows is the number of candidate rows reconciled.
	CandidateRows int64 `json:"candidate_rows"`
	// KeyDefinition is the resolved key column names joined with ':'.
	KeyDefinition string `json:"key_definition"`
}

// HasBreaks reports whether any discrepancy was found.
func (r *Result) HasBreaks() bool {
	return len(r.Breaks) > 0
}

// CountByType returns the number of breaks per type.
func (r *Result) CountByType() map[BreakType]int {
	counts := make(map[BreakType]int)
	for _, b := range r.Breaks {
		counts[b.Type]++
	}
	return counts
}
