// Package parser turns decoded container payloads into typed records.
//
// The content document is a line-oriented dialect with '!'-separated
// fields. Annotation rows ("A") name the section that follows; data
// rows ("S") are interpreted according to the most recently seen
// section tag, so the parse loop carries an explicit state value.
//
// The description document is two-layered: a '|'-separated header line
// with the board identity, followed by a tab-separated bill-of-materials
// table whose first two rows are titles.
package parser
