// Package batch compares every file of a reference directory with its
// counterpart in a candidate directory.
//
// Each reference file is matched against a definition catalog by file name.
// The candidate is the file of the same name or, failing that, the only
// candidate file matching the same pattern. Files without a unique definition
// or candidate are skipped and reported as such.
package batch
