// Package config provides configuration structures and utilities for
// pcbrepair. It defines the options controlling decoding, report
// generation, and board index storage.
package config
