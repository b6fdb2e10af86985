package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"csv-comparison/core/compare"
	"csv-comparison/core/database"
	"csv-comparison/core/logger"
	"csv-comparison/core/server"
	"csv-comparison/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional settings file (csv-comparison.yaml, .json or .toml).
const FileName = "csv-comparison"

// Config is the complete application configuration, one section per package.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Compare holds defaults for comparison runs.
	Compare compare.Config `mapstructure:"compare"`
}

// LoadConfig builds the configuration found in dir. Sources are layered from
// lowest to highest precedence: struct tag defaults, the optional settings
// file, the .env file and finally the process environment.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
	}

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would only fail later, deep inside a run.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if c.Database.Enabled && c.Database.Driver != database.DriverMySQL && c.Database.Driver != database.DriverSQLite {
		errs = append(errs, fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver))
	}
	if c.Compare.TimeoutSeconds < 0 {
		errs = append(errs, errors.New("compare.timeout_seconds: must not be negative"))
	}
	if c.Compare.DefinitionTTLSeconds < 0 {
		errs = append(errs, errors.New("compare.definition_ttl_seconds: must not be negative"))
	}
	if c.Server.BodyLimit <= 0 {
		errs = append(errs, errors.New("server.body_limit: must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// registerDefaults walks the mapstructure tree and registers every leaf key
// with its `default` tag. Registering empty defaults too is what lets
// AutomaticEnv find keys that have no default value.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for field := range fieldsOf(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

func fieldsOf(t reflect.Type) func(func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for i := range t.NumField() {
			if !yield(t.Field(i)) {
				return
			}
		}
	}
}
