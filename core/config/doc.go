// Package config provides configuration management for the comparison service.
//
// Settings come from struct tag defaults, an optional csv-comparison.yaml (or
// .json/.toml) file, an optional .env file and the environment, in increasing
// order of precedence. LoadConfig validates the result before returning it. Comparison definitions are not part of this configuration;
// they live in their own files (see feature/definition).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, source root)
//   - Storage: S3/MinIO credentials and the report bucket
//   - Log: Logging level and format
//   - Database: history store connection
//   - Compare: default definition file, report directory and timeout
//
// Environment variables map onto nested keys, so SERVER_PORT sets server.port.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
