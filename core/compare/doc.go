// Package compare reconciles two delimited text files that describe the same
// logical rows, possibly in a different order, and reports every difference
// between them.
//
// # Architecture
//
// A comparison runs three goroutines:
//
// 1. Two loaders, one per file, stream lines, split them with the tokenizer,
//    build each row's composite key and push rows onto their side's queue.
//
// 2. One reconciler drains both queues. Rows with equal keys are compared
//    directly; otherwise a row waits in an orphan map until its counterpart
//    arrives. Whatever is left in the orphan maps once both loaders finish is
//    reported as missing on the other side.
//
// Neither file is held in memory as a whole. Memory use is bounded by the
// orphan maps, which grow when the two files list their keys in a very
// different order.
//
// # Breaks
//
// Differences are reported as BreakDetail values: value mismatches (subject to
// the numeric tolerance policy), orphans, differing column counts and load
// failures. A mismatching header row stops the comparison early, as does a
// file that cannot be read.
//
// # Usage
//
//	cmp, err := compare.NewComparer(compare.Definition{
//	    Delimiter:  ",",
//	    KeyColumns: []string{"ID"},
//	}, compare.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	result, err := cmp.CompareFiles(ctx, "reference.csv", "candidate.csv")
package compare
