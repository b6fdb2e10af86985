package compare

import "time"

// Config holds the defaults applied to comparisons started from the CLI and the API.
type Config struct {
	// DefinitionFile is the definition or catalog used when none is given explicitly.
	DefinitionFile string `mapstructure:"definition_file" default:""`
	// DefinitionTTLSeconds is how long the HTTP API caches DefinitionFile.
	DefinitionTTLSeconds int `mapstructure:"definition_ttl_seconds" default:"60"`
	// OutputDir is where report files are written. Empty disables report files.
	OutputDir string `mapstructure:"output_dir" default:""`
	// ReportPrefix is the object prefix for reports uploaded to the storage bucket.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// TimeoutSeconds bounds a single comparison. Zero means no limit.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0"`
}

// DefinitionTTL returns how long a loaded definition catalog stays cached.
func (c Config) DefinitionTTL() time.Duration {
	return time.Duration(c.DefinitionTTLSeconds) * time.Second
}

// Timeout returns the per-comparison limit, or zero for none.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
