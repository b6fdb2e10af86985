package server

import (
	"path/filepath"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SourceRoot restricts local file sources to this directory. Empty allows any path.
	SourceRoot string `mapstructure:"source_root" default:""`
	// BodyLimit is the maximum request body size in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"1048576"`
}

// ObjectScheme prefixes sources that live in object storage.
const ObjectScheme = "s3://"

// AllowsSource reports whether a comparison source may be opened by API callers.
// Object storage sources are always allowed; local paths must resolve inside SourceRoot.
func (c Config) AllowsSource(source string) bool {
	if source == "" {
		return false
	}
	if strings.HasPrefix(source, ObjectScheme) {
		return true
	}
	if c.SourceRoot == "" {
		return true
	}

	root, err := filepath.Abs(c.SourceRoot)
	if err != nil {
		return false
	}
	path, err := filepath.Abs(source)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
