package definition

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csv-comparison/core/compare"

	"github.com/spf13/viper"
)

// ErrInvalidFile is returned when a definition file cannot be decoded.
var ErrInvalidFile = errors.New("invalid definition file")

func xmlFieldError(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidFile, field, err)
}

// Load reads a single comparison definition and validates it.
func Load(path string) (compare.Definition, error) {
	var def compare.Definition

	if isXML(path) {
		var x xmlDefinition
		if err := decodeXML(path, &x); err != nil {
			return def, err
		}
		var err error
		if def, err = x.toDefinition(); err != nil {
			return def, err
		}
	} else {
		v, err := readViper(path)
		if err != nil {
			return def, err
		}
		if err := v.Unmarshal(&def); err != nil {
			return def, fmt.Errorf("%w: %s: %v", ErrInvalidFile, path, err)
		}
	}

	if err := def.Validate(); err != nil {
		return def, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func isXML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func decodeXML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definition: %w", err)
	}
	if err := xml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFile, path, err)
	}
	return nil
}

func readViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read definition: %w", err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFile, path, err)
	}
	return v, nil
}
