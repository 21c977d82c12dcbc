// Package interpreter turns parsed pin records into per-component
// footprints: it repairs missing pin numbers, converts coordinates to
// millimeters with exact decimal arithmetic, groups pins by reference
// designator, and recenters each group on its own centroid so every
// footprint is independent of its original board placement.
package interpreter
