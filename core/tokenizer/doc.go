// Package tokenizer splits a single line of delimited text into fields.
//
// The splitter is quote aware for single-byte delimiters: a delimiter inside a
// double-quoted span does not end the field. Quoted fields are returned
// exactly as they appear in the line, including the surrounding quotes and any
// escaped ("") quotes, so two fields only compare equal when their raw text
// matches.
//
// # Usage
//
//	fields := tokenizer.Split(`A,"B,C",D`, ",")
//	// fields == []string{"A", `"B,C"`, "D"}
package tokenizer
