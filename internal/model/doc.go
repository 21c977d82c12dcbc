// Package model defines the core data structures used throughout pcbrepair.
//
// This package contains the following main types:
//   - Content: Typed records parsed from the content document
//   - Description: Board identity and bill-of-materials
//   - Footprint: A component's pins in millimeters, centered on its origin
//   - BoardReport: The aggregate result of one decode/parse/interpret run
//
// The models are shared by the parser, interpreter, report, and database
// packages; centralizing them prevents import cycles. All types are
// serializable to JSON for report output and database storage.
package model
