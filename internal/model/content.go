package model

import "github.com/shopspring/decimal"

// Units is the unit system a content document declares for its
// coordinate and radius fields.
type Units int

const (
	// Mils is thousandths of an inch. Documents that never declare a
	// unit are mils.
	Mils Units = iota

	// Millimeters.
	Millimeters
)

// String returns the unit name as it appears in vendor files.
func (u Units) String() string {
	if u == Millimeters {
		return "mm"
	}
	return "mils"
}

// Symbol is a component placement record.
type Symbol struct {
	// Refdes is the reference designator (e.g., "U1").
	Refdes string `json:"refdes"`

	// CompInsertionCode is the component insertion code.
	CompInsertionCode uint64 `json:"comp_insertion_code"`

	// SymName is the name of the placed symbol.
	SymName string `json:"sym_name"`

	// SymMirror is true when the symbol is mirrored (back side).
	SymMirror bool `json:"sym_mirror"`

	// SymRotate is the rotation angle in degrees.
	SymRotate uint16 `json:"sym_rotate"`
}

// Pin is a board pin record. Coordinates and radius are in the
// document's declared units; the interpreter converts them.
type Pin struct {
	// NetName is the net this pin is connected to.
	NetName string `json:"net_name"`

	// Refdes is the component this pin belongs to.
	Refdes string `json:"refdes"`

	// PinNumber is the raw pin number. Vendor data sometimes leaves it
	// empty or "0"; the interpreter repairs those cases.
	PinNumber string `json:"pin_number"`

	// PinName is the raw pin name.
	PinName string `json:"pin_name"`

	// PinX and PinY are the pin's board coordinates.
	PinX decimal.Decimal `json:"pin_x"`
	PinY decimal.Decimal `json:"pin_y"`

	// TestPoint is the test-point label, if any.
	TestPoint string `json:"test_point"`

	// Radius is the pin's pad radius.
	Radius decimal.Decimal `json:"radius"`
}

// TestVia is a test via record. Captured but not interpreted further.
type TestVia struct {
	TestVia   string          `json:"testvia"`
	NetName   string          `json:"net_name"`
	Refdes    string          `json:"refdes"`
	PinNumber string          `json:"pin_number"`
	PinName   string          `json:"pin_name"`
	ViaX      decimal.Decimal `json:"via_x"`
	ViaY      decimal.Decimal `json:"via_y"`
	TestPoint string          `json:"test_point"`
	Radius    decimal.Decimal `json:"radius"`
}

// GraphicData is a graphics record. Captured but not interpreted further.
type GraphicData struct {
	GraphicDataName   string    `json:"graphic_data_name"`
	GraphicDataNumber uint64    `json:"graphic_data_number"`
	RecordTag         string    `json:"record_tag"`
	GraphicData       [9]string `json:"graphic_data"`
	Subclass          string    `json:"subclass"`
	SymName           string    `json:"sym_name"`
	Refdes            string    `json:"refdes"`
}

// ClassedGraphicData is a graphics record grouped under a layer class.
// Captured but not interpreted further.
type ClassedGraphicData struct {
	Class             string    `json:"class"`
	Subclass          string    `json:"subclass"`
	GraphicDataName   string    `json:"graphic_data_name"`
	GraphicDataNumber uint64    `json:"graphic_data_number"`
	RecordTag         string    `json:"record_tag"`
	GraphicData       [9]string `json:"graphic_data"`
	NetName           string    `json:"net_name"`
}

// Content is the typed form of a decoded content document.
type Content struct {
	// Units is the unit system for every coordinate and radius field.
	Units Units `json:"units"`

	// Symbols lists component placements in document order.
	Symbols []Symbol `json:"symbols"`

	// Pins lists board pins in document order.
	Pins []Pin `json:"pins"`

	// TestVias lists test vias in document order.
	TestVias []TestVia `json:"testvias"`

	// GraphicData lists graphics records in document order.
	GraphicData []GraphicData `json:"graphic_data"`

	// ClassedGraphicData lists classed graphics records in document order.
	ClassedGraphicData []ClassedGraphicData `json:"classed_graphic_data"`
}
