package definition

import (
	"bytes"
	"testing"

	"csv-comparison/core/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"XML": FormatXML, "yml": FormatYAML, "yaml": FormatYAML, " json ": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestEncodeDefinition_RoundTrip(t *testing.T) {
	def := compare.Definition{
		Delimiter:        "|",
		KeyColumns:       []string{"Account", "Date"},
		HeaderRowIndex:   2,
		ToleranceType:    compare.ToleranceAbsolute,
		ToleranceValue:   0.05,
		ExcludedColumns:  []string{"Timestamp"},
		OrphanExclusions: []string{"^TEST"},
	}

	for _, format := range []Format{FormatXML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeDefinition(&buf, format, def))

			loaded, err := Load(writeFile(t, "definition."+string(format), buf.String()))
			require.NoError(t, err)
			assert.Equal(t, def, loaded)
		})
	}
}

func TestEncodeCatalog_RoundTrip(t *testing.T) {
	original, err := LoadCatalog(writeFile(t, "catalog.xml", catalogXML))
	require.NoError(t, err)

	for _, format := range []Format{FormatXML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeCatalog(&buf, format, original))

			loaded, err := LoadCatalog(writeFile(t, "catalog."+string(format), buf.String()))
			require.NoError(t, err)
			require.Len(t, loaded.Definitions, 2)
			for i := range original.Definitions {
				assert.Equal(t, original.Definitions[i].Key, loaded.Definitions[i].Key)
				assert.Equal(t, original.Definitions[i].FilePattern, loaded.Definitions[i].FilePattern)
			}
			assert.Equal(t, []string{"TradeId"}, loaded.Definitions[1].Definition.KeyColumns)
			assert.InDelta(t, 0.01, loaded.Definitions[1].Definition.ToleranceValue, 1e-12)
		})
	}
}
