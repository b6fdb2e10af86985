// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings and the rule deciding
// which comparison sources API callers may open.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, request body limit and the
// directory local sources must live in.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the comparison feature to vet requested sources.
package server
