// Package database handles connections to the comparison history database and
// schema inspection.
//
// It wraps GORM and configures either a MySQL server or a SQLite file based on
// the application's configuration.
//
// # Connect
//
// Connect opens the configured database and verifies it with a ping bounded by
// TimeoutSeconds. History is optional; callers log and continue without it when
// the connection fails.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns compare an existing table against the columns
// a model expects, which lets the history store report drift before writing.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
package database
