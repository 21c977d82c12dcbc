// Package report renders BoardReports for humans and tools.
//
// Three output forms exist: a Markdown summary (board identity, bill of
// materials, footprint overview), a JSON dump for programmatic use, and
// a KiCad footprint export that writes one .kicad_mod file per
// component into a .pretty library directory.
package report
