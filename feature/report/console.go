package report

import (
	"fmt"
	"io"

	"csv-comparison/core/compare"
)

// Print writes a human readable summary of result to out, one line per break.
func Print(out io.Writer, result *compare.Result) {
	fmt.Fprintf(out, "Reference: %s\n", result.ReferenceSource)
	fmt.Fprintf(out, "Candidate: %s\n", result.CandidateSource)

	if !result.HasBreaks() {
		fmt.Fprintln(out, "No differences found.")
		return
	}

	fmt.Fprintf(out, "%d differences found\n", len(result.Breaks))
	for _, b := range result.Breaks {
		fmt.Fprintln(out, b.String())
	}
}
