package definition

import (
	"encoding/xml"
	"strconv"
	"strings"

	"csv-comparison/core/compare"
)

// xmlList accepts any child element name for list items (<Column>, <string>, ...).
type xmlList struct {
	Items []xmlItem `xml:",any"`
}

type xmlItem struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

func (l *xmlList) values() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, item.Value)
	}
	return out
}

func newXMLList(values []string) *xmlList {
	if len(values) == 0 {
		return nil
	}
	l := &xmlList{Items: make([]xmlItem, len(values))}
	for i, v := range values {
		l.Items[i] = xmlItem{XMLName: xml.Name{Local: "string"}, Value: v}
	}
	return l
}

type xmlDefinition struct {
	XMLName           xml.Name `xml:"ComparisonDefinition"`
	Delimiter         string   `xml:"Delimiter"`
	KeyColumns        *xmlList `xml:"KeyColumns"`
	HeaderRowIndex    string   `xml:"HeaderRowIndex,omitempty"`
	ToleranceValue    string   `xml:"ToleranceValue,omitempty"`
	ToleranceType     string   `xml:"ToleranceType,omitempty"`
	ExcludedColumns   *xmlList `xml:"ExcludedColumns"`
	IgnoreInvalidRows string   `xml:"IgnoreInvalidRows,omitempty"`
	OrphanExclusions  *xmlList `xml:"OrphanExclusions"`
	KeyExclusions     *xmlList `xml:"KeyExclusions"`
}

type xmlFileDefinition struct {
	Key         string        `xml:"Key"`
	FilePattern string        `xml:"FilePattern"`
	Definition  xmlDefinition `xml:"ComparisonDefinition"`
}

type xmlCatalog struct {
	XMLName     xml.Name            `xml:"MultipleComparisonDefinition"`
	Definitions []xmlFileDefinition `xml:"FileComparisonDefinitions>FileComparisonDefinition"`
}

// toDefinition converts the XML form, parsing numeric and boolean elements.
// The delimiter keeps surrounding whitespace so that tab or space delimiters survive.
func (x xmlDefinition) toDefinition() (compare.Definition, error) {
	def := compare.Definition{
		Delimiter:        x.Delimiter,
		KeyColumns:       x.KeyColumns.values(),
		ToleranceType:    compare.ToleranceType(strings.TrimSpace(x.ToleranceType)),
		ExcludedColumns:  x.ExcludedColumns.values(),
		OrphanExclusions: x.OrphanExclusions.values(),
		KeyExclusions:    x.KeyExclusions.values(),
	}

	var err error
	if s := strings.TrimSpace(x.HeaderRowIndex); s != "" {
		if def.HeaderRowIndex, err = strconv.Atoi(s); err != nil {
			return def, xmlFieldError("HeaderRowIndex", err)
		}
	}
	if s := strings.TrimSpace(x.ToleranceValue); s != "" {
		if def.ToleranceValue, err = strconv.ParseFloat(s, 64); err != nil {
			return def, xmlFieldError("ToleranceValue", err)
		}
	}
	if s := strings.TrimSpace(x.IgnoreInvalidRows); s != "" {
		if def.IgnoreInvalidRows, err = strconv.ParseBool(s); err != nil {
			return def, xmlFieldError("IgnoreInvalidRows", err)
		}
	}
	return def, nil
}

func fromDefinition(def compare.Definition) xmlDefinition {
	tolerance := def.ToleranceType
	if tolerance == "" {
		tolerance = compare.ToleranceExact
	}
	return xmlDefinition{
		Delimiter:         def.Delimiter,
		KeyColumns:        newXMLList(def.KeyColumns),
		HeaderRowIndex:    strconv.Itoa(def.HeaderRowIndex),
		ToleranceValue:    strconv.FormatFloat(def.ToleranceValue, 'g', -1, 64),
		ToleranceType:     string(tolerance),
		ExcludedColumns:   newXMLList(def.ExcludedColumns),
		IgnoreInvalidRows: strconv.FormatBool(def.IgnoreInvalidRows),
		OrphanExclusions:  newXMLList(def.OrphanExclusions),
		KeyExclusions:     newXMLList(def.KeyExclusions),
	}
}

// MarshalXML renders def as an indented ComparisonDefinition document,
// the same layout Load reads back.
func MarshalXML(def compare.Definition) ([]byte, error) {
	body, err := xml.MarshalIndent(fromDefinition(def), "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
