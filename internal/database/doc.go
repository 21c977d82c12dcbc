// Package database provides SQLite-based storage for decoded boards.
//
// The board index stores one row per repair file, keyed by the
// SHA3-256 digest of the raw container. Bill-of-materials rows are
// kept in a child table so the index can be queried without loading
// whole reports.
package database
