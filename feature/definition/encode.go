package definition

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"csv-comparison/core/compare"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a definition file encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts xml, yaml (or yml) and json, case insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported definition format %q", s)
	}
}

// EncodeDefinition writes def to w in the given format. The output is readable by Load.
func EncodeDefinition(w io.Writer, format Format, def compare.Definition) error {
	if format == FormatXML {
		data, err := MarshalXML(def)
		if err != nil {
			return err
		}
		return writeLine(w, data)
	}
	return encode(w, format, def)
}

// EncodeCatalog writes c to w in the given format. The output is readable by LoadCatalog.
func EncodeCatalog(w io.Writer, format Format, c *Catalog) error {
	if format == FormatXML {
		x := xmlCatalog{Definitions: make([]xmlFileDefinition, len(c.Definitions))}
		for i, entry := range c.Definitions {
			x.Definitions[i] = xmlFileDefinition{
				Key:         entry.Key,
				FilePattern: entry.FilePattern,
				Definition:  fromDefinition(entry.Definition),
			}
		}
		body, err := xml.MarshalIndent(x, "", "  ")
		if err != nil {
			return err
		}
		return writeLine(w, append([]byte(xml.Header), body...))
	}
	return encode(w, format, c)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		return writeLine(w, data)
	default:
		return fmt.Errorf("unsupported definition format %q", format)
	}
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
