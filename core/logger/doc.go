// Package logger provides a structured logging facility based on Zap.
//
// New builds a zap logger from Config. Debug level uses zap's development preset;
// every other level uses the production preset.
//
// # Context Awareness
//
// WithRayID attaches the request's ray id from a Fiber context, and WithSources
// attaches the reference and candidate of a comparison, so one run's entries can
// be correlated across the handler, the service and the engine.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Comparison started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Comparison failed", zap.Error(err))
package logger
