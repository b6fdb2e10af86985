// Package testdata generates reference and candidate files for exercising
// comparisons at scale.
//
// Both files share the header COL A,COL B,COL C,COL D. COL A holds the row
// number and is meant to be the key column; the other columns are drawn at
// random. Every 100th candidate row (excluding row 0) is drawn again, so it
// will usually differ from its reference row.
package testdata
