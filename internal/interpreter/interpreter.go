package interpreter

import (
	"github.com/shopspring/decimal"

	"github.com/pcblab/pcbrepair/internal/model"
)

// mmPerMil is the exact conversion factor: 1 mil = 0.0254 mm.
// Defined as a fixed decimal so repeated conversions cannot drift.
var mmPerMil = decimal.New(254, -4)

// Interpret converts parsed content into footprints keyed by reference
// designator. Groups that end up without pins are omitted.
func Interpret(content *model.Content) (map[string]model.Footprint, error) {
	grouped := make(map[string][]model.FootprintPin)
	order := make([]string, 0)

	for _, boardPin := range content.Pins {
		pin := interpretPin(boardPin, content.Units)

		if _, seen := grouped[boardPin.Refdes]; !seen {
			order = append(order, boardPin.Refdes)
		}
		grouped[boardPin.Refdes] = append(grouped[boardPin.Refdes], pin)
	}

	footprints := make(map[string]model.Footprint, len(grouped))
	for _, refdes := range order {
		pins := grouped[refdes]
		if len(pins) == 0 {
			continue
		}
		footprints[refdes] = model.Footprint{Pins: center(pins)}
	}

	return footprints, nil
}

// interpretPin applies the identifier repairs and unit conversion to a
// single pin record.
func interpretPin(boardPin model.Pin, units model.Units) model.FootprintPin {
	// Vendor data leaves the pin number empty or "0" for some
	// component classes; the pin name is the usable identifier then.
	number := boardPin.PinNumber
	if number == "" || number == "0" {
		number = boardPin.PinName
	}

	// The name only earns its place when it says something the number
	// does not; otherwise the net name is more descriptive.
	name := boardPin.PinName
	if number == boardPin.PinName {
		name = boardPin.NetName
	}

	x, y, radius := boardPin.PinX, boardPin.PinY, boardPin.Radius
	if units == model.Mils {
		x = x.Mul(mmPerMil)
		y = y.Mul(mmPerMil)
		radius = radius.Mul(mmPerMil)
	}

	return model.FootprintPin{
		Name:     name,
		Number:   number,
		XMM:      x,
		YMM:      y,
		RadiusMM: radius,
	}
}

// center shifts a pin group so the arithmetic mean of its coordinates
// is (0, 0).
func center(pins []model.FootprintPin) []model.FootprintPin {
	var totalX, totalY decimal.Decimal
	for _, p := range pins {
		totalX = totalX.Add(p.XMM)
		totalY = totalY.Add(p.YMM)
	}

	count := decimal.NewFromInt(int64(len(pins)))
	avgX := totalX.Div(count)
	avgY := totalY.Div(count)

	centered := make([]model.FootprintPin, len(pins))
	for i, p := range pins {
		p.XMM = p.XMM.Sub(avgX)
		p.YMM = p.YMM.Sub(avgY)
		centered[i] = p
	}

	return centered
}
