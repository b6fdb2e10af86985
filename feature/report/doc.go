// Package report writes comparison results to CSV report files.
//
// A report starts with the comparison definition as XML, followed by a summary
// block and, when there are breaks, one CSV row per break:
//
//	Date run,2024-01-02 15:04:05
//	Reference,/data/ref/trades.csv
//	Candidate,/data/cand/trades.csv
//	Number of Reference rows,1000
//	Number of Candidate rows,1001
//	Duration,42ms
//	Number of breaks,1
//
//	Break Type,Key (TradeId),Column Name,Reference Row,Reference Value,Candidate Row,Candidate Value
//	RowInCandidateNotInReference,T-1001,,-1,,1001,
//
// Reports containing breaks get a .BREAKS.csv suffix. When the same report file
// is written more than once by a Writer, later results are appended below the
// first one and the definition is not repeated.
//
// A Writer can also upload every report it writes to object storage.
package report
