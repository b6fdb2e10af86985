package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "1.5", want: 1.5, wantOK: true},
		{in: " -2 ", want: -2, wantOK: true},
		{in: `"3.25"`, want: 3.25, wantOK: true},
		{in: "1e3", want: 1000, wantOK: true},
		{in: "", wantOK: false},
		{in: "abc", wantOK: false},
		{in: "NaN", wantOK: false},
		{in: "Inf", wantOK: false},
		{in: "1,000", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestValueComparer_MonotonicTolerance(t *testing.T) {
	pairs := [][2]string{{"1.0", "1.2"}, {"10", "10.5"}, {"100", "100"}, {"5", "5.05"}, {"x", "y"}}

	count := func(tolerance ToleranceType, value float64) int {
		def, err := compileDefinition(Definition{Delimiter: ",", ToleranceType: tolerance, ToleranceValue: value})
		require.NoError(t, err)
		v := valueComparer{def: def}

		n := 0
		for _, p := range pairs {
			if !v.equal(p[0], p[1]) {
				n++
			}
		}
		return n
	}

	exact := count(ToleranceExact, 0)
	absolute := count(ToleranceAbsolute, 0.1)
	relative := count(ToleranceRelative, 0.1)

	assert.Equal(t, 4, exact)
	assert.GreaterOrEqual(t, exact, absolute)
	assert.GreaterOrEqual(t, absolute, relative)
}

func TestValueComparer_CompareRows(t *testing.T) {
	def, err := compileDefinition(Definition{Delimiter: ",", KeyExclusions: []string{"^skip"}})
	require.NoError(t, err)

	header := &headerInfo{
		columns:  []string{"ID", "A", "B"},
		excluded: map[int]struct{}{2: {}},
	}

	t.Run("excluded column ignored", func(t *testing.T) {
		var acc accumulator
		v := valueComparer{def: def, breaks: &acc}

		ok := v.compareRows(header, "1", &Row{Key: "1", Columns: []string{"1", "a", "b"}, Index: 4}, &Row{Key: "1", Columns: []string{"1", "a", "c"}, Index: 7})
		assert.True(t, ok)
		assert.Empty(t, acc.snapshot())
	})

	t.Run("suppressed mismatch still fails", func(t *testing.T) {
		var acc accumulator
		v := valueComparer{def: def, breaks: &acc}

		ok := v.compareRows(header, "skip-1", &Row{Columns: []string{"1", "a", "b"}}, &Row{Columns: []string{"1", "z", "b"}})
		assert.False(t, ok)
		assert.Empty(t, acc.snapshot())
	})

	t.Run("mismatch recorded", func(t *testing.T) {
		var acc accumulator
		v := valueComparer{def: def, breaks: &acc}

		ok := v.compareRows(header, "1", &Row{Columns: []string{"1", "a", "b"}, Index: 4}, &Row{Columns: []string{"1", "z", "b"}, Index: 7})
		assert.False(t, ok)

		breaks := acc.snapshot()
		require.Len(t, breaks, 1)
		assert.Equal(t, "A", breaks[0].Column)
		assert.Equal(t, "Key:1, Reference Row:4, Value:a != Candidate Row:7, Value:z", breaks[0].Description)
	})

	t.Run("column count differs", func(t *testing.T) {
		var acc accumulator
		v := valueComparer{def: def, breaks: &acc}

		ok := v.compareRows(header, "skip-1", &Row{Columns: []string{"1", "a"}}, &Row{Columns: []string{"1", "a", "b"}})
		assert.False(t, ok)

		breaks := acc.snapshot()
		require.Len(t, breaks, 1)
		assert.Equal(t, BreakColumnsDifferent, breaks[0].Type)
		assert.Equal(t, "Reference has 2 columns, Candidate has 3 columns", breaks[0].Description)
	})
}

func TestRowQueue(t *testing.T) {
	var q rowQueue
	assert.True(t, q.empty())

	q.push(Row{Key: "a"})
	q.push(Row{Key: "b"})

	r, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, "a", r.Key)

	q.push(Row{Key: "c"})
	r, _ = q.pop()
	assert.Equal(t, "b", r.Key)
	r, _ = q.pop()
	assert.Equal(t, "c", r.Key)

	_, ok = q.pop()
	assert.False(t, ok)
	assert.True(t, q.empty())
}

func TestResolveHeader(t *testing.T) {
	def, err := compileDefinition(Definition{
		Delimiter:       ",",
		KeyColumns:      []string{"B", "A"},
		ExcludedColumns: []string{"C"},
	})
	require.NoError(t, err)

	h, err := def.resolveHeader([]string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, h.keyIndexes)
	assert.Equal(t, "A:B", h.keyDefinition)
	assert.Contains(t, h.excluded, 2)
	assert.Equal(t, "x:y", h.key([]string{"x", "y", "z"}))
	assert.Equal(t, "x:", h.key([]string{"x"}))

	_, err = def.resolveHeader([]string{"X", "Y"})
	assert.ErrorIs(t, err, ErrNoKeyColumns)
}
