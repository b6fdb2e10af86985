package definition

import (
	"errors"
	"fmt"
	"regexp"

	"csv-comparison/core/compare"
)

var (
	// ErrNoMatch means no catalog entry matches a file name.
	ErrNoMatch = errors.New("no comparison definition matches")
	// ErrAmbiguous means more than one catalog entry matches a file name.
	ErrAmbiguous = errors.New("more than one comparison definition matches")
)

// FileDefinition binds a definition to the files it applies to.
type FileDefinition struct {
	// Key names the entry; batch reports are named after it.
	Key string `mapstructure:"key" json:"key" yaml:"key"`
	// FilePattern is a regular expression matched against file names.
	FilePattern string `mapstructure:"file_pattern" json:"file_pattern" yaml:"file_pattern"`
	// Definition is the comparison applied to matching files.
	Definition compare.Definition `mapstructure:"definition" json:"definition" yaml:"definition"`

	pattern *regexp.Regexp
}

// Matches reports whether name matches the entry's file pattern.
func (f *FileDefinition) Matches(name string) bool {
	return f.pattern != nil && f.pattern.MatchString(name)
}

// Catalog is a set of file definitions used for batch comparisons.
type Catalog struct {
	Definitions []FileDefinition `mapstructure:"definitions" json:"definitions" yaml:"definitions"`
}

// LoadCatalog reads a catalog file and validates every entry.
func LoadCatalog(path string) (*Catalog, error) {
	var c Catalog

	if isXML(path) {
		var x xmlCatalog
		if err := decodeXML(path, &x); err != nil {
			return nil, err
		}
		for _, entry := range x.Definitions {
			def, err := entry.Definition.toDefinition()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", entry.Key, err)
			}
			c.Definitions = append(c.Definitions, FileDefinition{Key: entry.Key, FilePattern: entry.FilePattern, Definition: def})
		}
	} else {
		v, err := readViper(path)
		if err != nil {
			return nil, err
		}
		if err := v.Unmarshal(&c); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFile, path, err)
		}
	}

	if err := c.compile(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// NewCatalog builds a catalog from entries, validating each.
func NewCatalog(entries ...FileDefinition) (*Catalog, error) {
	c := &Catalog{Definitions: entries}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) compile() error {
	for i := range c.Definitions {
		entry := &c.Definitions[i]
		if entry.Key == "" {
			return fmt.Errorf("%w: entry %d has no key", ErrInvalidFile, i)
		}
		re, err := regexp.Compile(entry.FilePattern)
		if err != nil {
			return fmt.Errorf("%w: %s: file pattern: %v", ErrInvalidFile, entry.Key, err)
		}
		entry.pattern = re
		if err := entry.Definition.Validate(); err != nil {
			return fmt.Errorf("%s: %w", entry.Key, err)
		}
	}
	return nil
}

// Match returns the single entry whose pattern matches name.
func (c *Catalog) Match(name string) (*FileDefinition, error) {
	var found *FileDefinition
	count := 0
	for i := range c.Definitions {
		if c.Definitions[i].Matches(name) {
			found = &c.Definitions[i]
			count++
		}
	}

	switch count {
	case 0:
		return nil, fmt.Errorf("%w %s", ErrNoMatch, name)
	case 1:
		return found, nil
	default:
		return nil, fmt.Errorf("%w %s: found %d", ErrAmbiguous, name, count)
	}
}

// Lookup returns the entry named key.
func (c *Catalog) Lookup(key string) (*FileDefinition, error) {
	for i := range c.Definitions {
		if c.Definitions[i].Key == key {
			return &c.Definitions[i], nil
		}
	}
	return nil, fmt.Errorf("%w key %s", ErrNoMatch, key)
}
