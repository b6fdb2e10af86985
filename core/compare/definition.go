package compare

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate checks the definition for problems that would make a comparison meaningless.
func (d Definition) Validate() error {
	if d.Delimiter == "" {
		return fmt.Errorf("%w: delimiter is required", ErrInvalidDefinition)
	}
	if d.HeaderRowIndex < 0 {
		return fmt.Errorf("%w: header row index %d is negative", ErrInvalidDefinition, d.HeaderRowIndex)
	}
	if d.ToleranceValue < 0 {
		return fmt.Errorf("%w: tolerance value %v is negative", ErrInvalidDefinition, d.ToleranceValue)
	}
	switch d.ToleranceType {
	case "", ToleranceExact, ToleranceAbsolute, ToleranceRelative:
	default:
		return fmt.Errorf("%w: unknown tolerance type %q", ErrInvalidDefinition, d.ToleranceType)
	}
	return nil
}

// Tolerance returns the effective tolerance type.
func (d Definition) Tolerance() ToleranceType {
	if d.ToleranceType == "" {
		return ToleranceExact
	}
	return d.ToleranceType
}

// compiledDefinition is a validated definition with its patterns compiled.
type compiledDefinition struct {
	Definition
	orphanExclusions []*regexp.Regexp
	keyExclusions    []*regexp.Regexp
	keyColumns       map[string]struct{}
	excludedColumns  map[string]struct{}
}

func compileDefinition(d Definition) (*compiledDefinition, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	orphans, err := compilePatterns(d.OrphanExclusions)
	if err != nil {
		return nil, err
	}
	keys, err := compilePatterns(d.KeyExclusions)
	if err != nil {
		return nil, err
	}

	return &compiledDefinition{
		Definition:       d,
		orphanExclusions: orphans,
		keyExclusions:    keys,
		keyColumns:       toSet(d.KeyColumns),
		excludedColumns:  toSet(d.ExcludedColumns),
	}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: exclusion pattern %q: %v", ErrInvalidDefinition, p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func matchesAny(patterns []*regexp.Regexp, key string) bool {
	for _, re := range patterns {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// headerInfo is derived from a header row.
type headerInfo struct {
	columns       []string
	keyIndexes    []int
	excluded      map[int]struct{}
	keyDefinition string
}

// resolveHeader computes key and excluded column positions from a header row.
func (c *compiledDefinition) resolveHeader(header []string) (*headerInfo, error) {
	info := &headerInfo{
		columns:  header,
		excluded: make(map[int]struct{}),
	}

	var keyNames []string
	for i, name := range header {
		if _, ok := c.keyColumns[name]; ok {
			info.keyIndexes = append(info.keyIndexes, i)
			keyNames = append(keyNames, name)
		}
		if _, ok := c.excludedColumns[name]; ok {
			info.excluded[i] = struct{}{}
		}
	}

	if len(c.KeyColumns) > 0 && len(info.keyIndexes) == 0 {
		return nil, ErrNoKeyColumns
	}

	info.keyDefinition = strings.Join(keyNames, ":")
	return info, nil
}

// key joins the key column values of a row in header order.
func (h *headerInfo) key(columns []string) string {
	parts := make([]string, len(h.keyIndexes))
	for i, idx := range h.keyIndexes {
		if idx < len(columns) {
			parts[i] = columns[idx]
		}
	}
	return strings.Join(parts, ":")
}
