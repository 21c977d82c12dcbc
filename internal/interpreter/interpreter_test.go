package interpreter

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pcblab/pcbrepair/internal/model"
)

// pin builds a pin record with coordinates given as decimal strings.
func pin(net, refdes, number, name, x, y, radius string) model.Pin {
	return model.Pin{
		NetName:   net,
		Refdes:    refdes,
		PinNumber: number,
		PinName:   name,
		PinX:      decimal.RequireFromString(x),
		PinY:      decimal.RequireFromString(y),
		Radius:    decimal.RequireFromString(radius),
	}
}

// wantEqual fails unless got equals the decimal encoded in want.
func wantEqual(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// TestInterpretUnitConversion tests the exact mil conversion and the
// millimeter passthrough.
func TestInterpretUnitConversion(t *testing.T) {
	t.Parallel()

	t.Run("mils convert at exactly 0.0254", func(t *testing.T) {
		t.Parallel()

		content := &model.Content{
			Units: model.Mils,
			Pins:  []model.Pin{pin("N1", "U1", "1", "A", "100", "-200", "10")},
		}

		footprints, err := Interpret(content)
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}

		got := footprints["U1"].Pins[0]
		// A single pin is its own centroid, so only the radius shows
		// the conversion directly.
		wantEqual(t, "radius", got.RadiusMM, "0.254")
		wantEqual(t, "x", got.XMM, "0")
		wantEqual(t, "y", got.YMM, "0")
	})

	t.Run("two mil pins keep exact spacing", func(t *testing.T) {
		t.Parallel()

		content := &model.Content{
			Units: model.Mils,
			Pins: []model.Pin{
				pin("N1", "U1", "1", "A", "0", "0", "5"),
				pin("N2", "U1", "2", "B", "100", "0", "5"),
			},
		}

		footprints, err := Interpret(content)
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}

		pins := footprints["U1"].Pins
		// 100 mils is exactly 2.54 mm; centered, the pins sit at ±1.27.
		wantEqual(t, "pin 1 x", pins[0].XMM, "-1.27")
		wantEqual(t, "pin 2 x", pins[1].XMM, "1.27")
	})

	t.Run("millimeters pass through", func(t *testing.T) {
		t.Parallel()

		content := &model.Content{
			Units: model.Millimeters,
			Pins: []model.Pin{
				pin("N1", "U1", "1", "A", "0", "0", "0.3"),
				pin("N2", "U1", "2", "B", "3", "0", "0.3"),
			},
		}

		footprints, err := Interpret(content)
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}

		pins := footprints["U1"].Pins
		wantEqual(t, "pin 1 x", pins[0].XMM, "-1.5")
		wantEqual(t, "pin 2 x", pins[1].XMM, "1.5")
		wantEqual(t, "radius", pins[0].RadiusMM, "0.3")
	})
}

// TestInterpretCentering tests the centroid math from the documented
// three-pin example.
func TestInterpretCentering(t *testing.T) {
	t.Parallel()

	content := &model.Content{
		Units: model.Millimeters,
		Pins: []model.Pin{
			pin("N1", "U1", "1", "A", "0", "0", "1"),
			pin("N2", "U1", "2", "B", "2", "0", "1"),
			pin("N3", "U1", "3", "C", "1", "3", "1"),
		},
	}

	footprints, err := Interpret(content)
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	pins := footprints["U1"].Pins
	want := [][2]string{{"-1", "-1"}, {"1", "-1"}, {"0", "2"}}
	for i, w := range want {
		wantEqual(t, "x", pins[i].XMM, w[0])
		wantEqual(t, "y", pins[i].YMM, w[1])
	}

	var sumX, sumY decimal.Decimal
	for _, p := range pins {
		sumX = sumX.Add(p.XMM)
		sumY = sumY.Add(p.YMM)
	}
	wantEqual(t, "sum x", sumX, "0")
	wantEqual(t, "sum y", sumY, "0")
}

// TestInterpretPinIdentity tests the number repair and name selection
// rules.
func TestInterpretPinIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         model.Pin
		wantNumber string
		wantName   string
	}{
		{
			name:       "empty number falls back to pin name",
			in:         pin("NET_A", "U1", "", "GPIO3", "0", "0", "1"),
			wantNumber: "GPIO3",
			wantName:   "NET_A",
		},
		{
			name:       "zero number falls back to pin name",
			in:         pin("NET_B", "U1", "0", "GPIO4", "0", "0", "1"),
			wantNumber: "GPIO4",
			wantName:   "NET_B",
		},
		{
			name:       "distinct name is kept",
			in:         pin("NET_C", "U1", "7", "GPIO5", "0", "0", "1"),
			wantNumber: "7",
			wantName:   "GPIO5",
		},
		{
			name:       "name equal to number is replaced by net",
			in:         pin("NET_D", "U1", "7", "7", "0", "0", "1"),
			wantNumber: "7",
			wantName:   "NET_D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			footprints, err := Interpret(&model.Content{
				Units: model.Millimeters,
				Pins:  []model.Pin{tt.in},
			})
			if err != nil {
				t.Fatalf("Interpret: %v", err)
			}

			got := footprints["U1"].Pins[0]
			if got.Number != tt.wantNumber {
				t.Errorf("number = %q, want %q", got.Number, tt.wantNumber)
			}
			if got.Name != tt.wantName {
				t.Errorf("name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

// TestInterpretGrouping tests grouping by refdes.
func TestInterpretGrouping(t *testing.T) {
	t.Parallel()

	t.Run("pins split by refdes", func(t *testing.T) {
		t.Parallel()

		content := &model.Content{
			Units: model.Millimeters,
			Pins: []model.Pin{
				pin("N1", "U1", "1", "A", "0", "0", "1"),
				pin("N2", "C3", "1", "P", "5", "5", "1"),
				pin("N3", "U1", "2", "B", "1", "0", "1"),
			},
		}

		footprints, err := Interpret(content)
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}

		if len(footprints) != 2 {
			t.Fatalf("got %d footprints, want 2", len(footprints))
		}
		if len(footprints["U1"].Pins) != 2 || len(footprints["C3"].Pins) != 1 {
			t.Errorf("unexpected grouping: U1=%d C3=%d",
				len(footprints["U1"].Pins), len(footprints["C3"].Pins))
		}
	})

	t.Run("no pins yields no footprints", func(t *testing.T) {
		t.Parallel()

		footprints, err := Interpret(&model.Content{Units: model.Mils})
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}
		if len(footprints) != 0 {
			t.Errorf("got %d footprints, want 0", len(footprints))
		}
	})
}
