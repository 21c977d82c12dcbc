// Package main provides the entry point for the pcbrepair CLI.
//
// pcbrepair decodes encrypted PCB repair files, parses the board data
// inside, and turns the pin tables into usable footprints.
//
// Usage:
//
//	pcbrepair parse <file>
//	pcbrepair scan <dir>
//
// See --help for all available options.
package main

// main is the entry point for pcbrepair.
func main() {
	Execute()
}
