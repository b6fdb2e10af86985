package tokenizer

import "strings"

const quote = '"'

// Split breaks line into fields separated by delimiter.
// A line ending in the delimiter produces one trailing empty field.
func Split(line, delimiter string) []string {
	// Multi-character delimiters never take the quote-aware path.
	if len(delimiter) != 1 || strings.IndexByte(line, quote) < 0 {
		return strings.Split(line, delimiter)
	}
	return splitQuoted(line, delimiter[0])
}

// splitQuoted scans for the next delimiter, skipping over quoted spans that
// open before it.
func splitQuoted(line string, delimiter byte) []string {
	fields := make([]string, 0, strings.Count(line, string(delimiter))+1)
	start, pos := 0, 0

	for {
		d := strings.IndexByte(line[pos:], delimiter)
		if d < 0 {
			break
		}
		d += pos

		q := strings.IndexByte(line[pos:d], quote)
		if q < 0 {
			fields = append(fields, line[start:d])
			start, pos = d+1, d+1
			continue
		}

		end := closingQuote(line, pos+q)
		if end < 0 {
			// Unterminated: the rest of the line is one field.
			fields = append(fields, line[start:])
			if line[len(line)-1] == delimiter {
				fields = append(fields, "")
			}
			return fields
		}
		pos = end + 1
	}

	return append(fields, line[start:])
}

// closingQuote returns the index of the quote closing the span opened at open,
// or -1 when the span never closes. A doubled quote is an escaped literal.
func closingQuote(line string, open int) int {
	pos := open + 1
	for pos < len(line) {
		q := strings.IndexByte(line[pos:], quote)
		if q < 0 {
			return -1
		}
		q += pos
		if q+1 < len(line) && line[q+1] == quote {
			pos = q + 2
			continue
		}
		return q
	}
	return -1
}
