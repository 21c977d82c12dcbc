package model

import "github.com/shopspring/decimal"

// FootprintPin is one pin of an interpreted footprint. All values are
// in millimeters and relative to the footprint's own centroid.
type FootprintPin struct {
	// Name is the display name chosen by the interpreter: the raw pin
	// name when it adds information over the number, else the net name.
	Name string `json:"name"`

	// Number is the effective pin number after the empty/"0" repair.
	Number string `json:"number"`

	// XMM and YMM are the pin coordinates in millimeters.
	XMM decimal.Decimal `json:"x_mm"`
	YMM decimal.Decimal `json:"y_mm"`

	// RadiusMM is the pad radius in millimeters.
	RadiusMM decimal.Decimal `json:"radius_mm"`
}

// Footprint is a single component's pin cloud, unit-normalized and
// centered so the arithmetic mean of the pin coordinates is (0, 0).
type Footprint struct {
	// Pins lists the footprint's pins. Never empty: components without
	// pins are dropped during interpretation.
	Pins []FootprintPin `json:"pins"`
}
