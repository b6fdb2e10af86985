// Package history records comparison runs in a database.
//
// Each run is stored with its definition, summary counts and every break, so
// that results can be listed and inspected after the fact through the API or
// the history command. The store works with any GORM dialect configured by
// core/database; MySQL and SQLite are supported.
package history
