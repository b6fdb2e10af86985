package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		delimiter string
		expected  []string
	}{
		{
			name:      "Simple",
			line:      "A,B,C",
			delimiter: ",",
			expected:  []string{"A", "B", "C"},
		},
		{
			name:      "Empty columns",
			line:      "A,,",
			delimiter: ",",
			expected:  []string{"A", "", ""},
		},
		{
			name:      "Quoted delimiter",
			line:      `A,"B contains a quote, comma",C`,
			delimiter: ",",
			expected:  []string{"A", `"B contains a quote, comma"`, "C"},
		},
		{
			name:      "Several delimiters inside quotes",
			line:      `A,"B contains a quote, comma, and another, and another",C`,
			delimiter: ",",
			expected:  []string{"A", `"B contains a quote, comma, and another, and another"`, "C"},
		},
		{
			name:      "Several quoted fields",
			line:      `A,"B contains a quote, comma","Also contains a,comma",D`,
			delimiter: ",",
			expected:  []string{"A", `"B contains a quote, comma"`, `"Also contains a,comma"`, "D"},
		},
		{
			name:      "Quote not closed",
			line:      `A,"B contains a quote, comma,C,D`,
			delimiter: ",",
			expected:  []string{"A", `"B contains a quote, comma,C,D`},
		},
		{
			name:      "Unterminated quote",
			line:      `A,"B,C`,
			delimiter: ",",
			expected:  []string{"A", `"B,C`},
		},
		{
			name:      "Quote as last character",
			line:      `A,B,"C,D"`,
			delimiter: ",",
			expected:  []string{"A", "B", `"C,D"`},
		},
		{
			name:      "Escaped quote inside a field",
			line:      `A,B,"C A Field with "" quotes",D`,
			delimiter: ",",
			expected:  []string{"A", "B", `"C A Field with "" quotes"`, "D"},
		},
		{
			name:      "Escaped quote and delimiter inside a field",
			line:      `A,B,"C A Field with "" quotes, and comma",D`,
			delimiter: ",",
			expected:  []string{"A", "B", `"C A Field with "" quotes, and comma"`, "D"},
		},
		{
			name:      "Several escaped quotes",
			line:      `A,B,"C A Field with """" quotes",D`,
			delimiter: ",",
			expected:  []string{"A", "B", `"C A Field with """" quotes"`, "D"},
		},
		{
			name:      "Escaped quotes at start of field",
			line:      `A,B,"""C A Field with starting quotes",D`,
			delimiter: ",",
			expected:  []string{"A", "B", `"""C A Field with starting quotes"`, "D"},
		},
		{
			name:      "Quoted field followed by trailing delimiter",
			line:      `A,"B,C",`,
			delimiter: ",",
			expected:  []string{"A", `"B,C"`, ""},
		},
		{
			name:      "Pipe delimiter",
			line:      "COL1|COL2",
			delimiter: "|",
			expected:  []string{"COL1", "COL2"},
		},
		{
			name:      "Multi character delimiter ignores quotes",
			line:      `A::"B::C"::D`,
			delimiter: "::",
			expected:  []string{"A", `"B`, `C"`, "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.line, tt.delimiter))
		})
	}
}

func TestSplit_FieldCountWithoutQuotes(t *testing.T) {
	lines := []string{"", "A", "A,B", ",", "A,,B,", ",,,", "x,y,z,"}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			assert.Len(t, Split(line, ","), strings.Count(line, ",")+1)
		})
	}
}
