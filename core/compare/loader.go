package compare

import (
	"bufio"
	"context"
	"fmt"

	"csv-comparison/core/tokenizer"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line read by a loader.
const maxLineSize = 16 * 1024 * 1024

// load streams one file into its side's queue.
// Read failures are recorded as ProcessFailure breaks; only configuration
// errors are returned.
func (r *run) load(ctx context.Context, opener Opener, s side, source string) error {
	defer r.loaderDone()

	rc, err := opener.Open(ctx, source)
	if err != nil {
		r.log.Warn("Failed to open source", zap.String("side", s.String()), zap.String("source", source), zap.Error(err))
		r.fail(source, err)
		return nil
	}
	defer rc.Close()

	// Honour a UTF-8 or UTF-16 byte order mark, defaulting to UTF-8.
	decoded := transform.NewReader(rc, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var header *headerInfo
	rowIndex := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		if rowIndex < r.def.HeaderRowIndex {
			rowIndex++
			continue
		}

		columns := tokenizer.Split(scanner.Text(), r.def.Delimiter)

		if rowIndex == r.def.HeaderRowIndex {
			header, err = r.def.resolveHeader(columns)
			if err != nil {
				return err
			}
			r.installHeader(header)
		}

		if len(columns) == len(header.columns) || !r.def.IgnoreInvalidRows {
			row := Row{Key: header.key(columns), Columns: columns, Index: rowIndex}
			if !r.enqueue(s, row) {
				r.log.Debug("Loader stopped early", zap.String("side", s.String()), zap.Int("row", rowIndex))
				return nil
			}
		}
		r.signalReady()
		rowIndex++
	}

	if err := scanner.Err(); err != nil {
		r.log.Warn("Failed to read source", zap.String("side", s.String()), zap.String("source", source), zap.Error(err))
		r.fail(source, err)
		return nil
	}

	r.log.Debug("Loader finished", zap.String("side", s.String()), zap.Int("lines", rowIndex))
	return nil
}

func processFailure(source string, err error) BreakDetail {
	return BreakDetail{
		Type:         BreakProcessFailure,
		ReferenceRow: -1,
		CandidateRow: -1,
		Description:  fmt.Sprintf("Problem loading %s : %s", source, err),
	}
}
