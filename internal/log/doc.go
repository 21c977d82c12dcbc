// Package log provides slog-based logging for pcbrepair.
//
// Decoding stages routinely attach raw container bytes and payload
// slices to their log records. The handler in this package truncates
// those attributes so debug output stays readable instead of dumping
// whole boards to the terminal.
package log
