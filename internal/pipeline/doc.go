// Package pipeline orchestrates the decode stages for one or many
// PCB repair files.
//
// A Pipeline runs an ordered list of Steps (decode, parse, interpret)
// against a single BoardReport. A BatchProcessor runs one pipeline per
// input file with bounded concurrency for directory scans.
package pipeline
