package model

import (
	"sort"
	"time"
)

// BoardReport is the aggregate result of decoding, parsing, and
// interpreting one PCB repair file. It is what the report writers
// render and what the board index stores.
type BoardReport struct {
	// File is the path of the input container.
	File string `json:"file"`

	// Digest is the SHA3-256 digest of the raw container bytes, in hex.
	// It identifies a board file independent of its name.
	Digest string `json:"digest,omitempty"`

	// KeyVariant names the trial that decoded the container:
	// "plaintext", "fz", or "cae".
	KeyVariant string `json:"key_variant,omitempty"`

	// DateScanned is when the file was processed.
	DateScanned time.Time `json:"date_scanned"`

	// Raw holds the container bytes between reading and decoding.
	// It is not serialized.
	Raw []byte `json:"-"`

	// ContentBytes and DescriptionBytes are the decompressed payloads.
	// They are kept for the decode command's dump output and are not
	// serialized.
	ContentBytes     []byte `json:"-"`
	DescriptionBytes []byte `json:"-"`

	// Content is the parsed content document.
	Content *Content `json:"content,omitempty"`

	// Description is the parsed description document.
	Description *Description `json:"description,omitempty"`

	// Footprints maps reference designators to interpreted footprints.
	Footprints map[string]Footprint `json:"footprints,omitempty"`

	// Error records a failure for batch runs where one bad file must
	// not abort the rest.
	Error string `json:"error,omitempty"`
}

// NewBoardReport creates a report for the given input path with the
// scan time set to now.
func NewBoardReport(file string) *BoardReport {
	return &BoardReport{
		File:        file,
		DateScanned: time.Now(),
	}
}

// BoardModel returns the board model from the description, or "" when
// the description stage has not run.
func (r *BoardReport) BoardModel() string {
	if r.Description == nil {
		return ""
	}
	return r.Description.BoardModel
}

// PinCount returns the number of parsed pin records.
func (r *BoardReport) PinCount() int {
	if r.Content == nil {
		return 0
	}
	return len(r.Content.Pins)
}

// FootprintNames returns the footprint refdes keys in sorted order,
// for deterministic report output.
func (r *BoardReport) FootprintNames() []string {
	names := make([]string, 0, len(r.Footprints))
	for name := range r.Footprints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
