package logger

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger from cfg. The debug level switches to zap's
// development preset, which adds caller information and stack traces on warnings.
func New(cfg *Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	default:
		zc.Encoding = "json"
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"

	return zc.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}

// WithSources tags l with the pair of sources being compared.
func WithSources(l *zap.Logger, reference, candidate string) *zap.Logger {
	return l.With(zap.String("reference", reference), zap.String("candidate", candidate))
}
