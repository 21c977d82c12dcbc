package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pcblab/pcbrepair/internal/model"
)

// state is the section a data row belongs to, set by the most recently
// seen annotation row.
type state int

const (
	stateUnknown state = iota
	stateSymbol
	statePin
	stateVia
	stateTestVia
	stateGraphicData
	stateClassedGraphicData
)

// maxLineSize bounds a single content row. Vendor files stay far below
// this; the limit only guards against scanning garbage as one line.
const maxLineSize = 1 << 20

// ParseContent parses a decoded content document into typed records.
//
// Rows are '!'-separated. "A" rows select the section for subsequent
// "S" rows; "S" rows in an unrecognized section (and in the VIAID
// section, which defines no record type) are discarded. The unit
// defaults to mils until a UNIT annotation says otherwise.
func ParseContent(content []byte) (*model.Content, error) {
	result := &model.Content{Units: model.Mils}

	st := stateUnknown
	lineNo := 0

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "!")
		switch fields[0] {
		case "A":
			var err error
			st, err = applyAnnotation(result, st, fields, lineNo)
			if err != nil {
				return nil, err
			}
		case "S":
			if err := applyData(result, st, fields, lineNo); err != nil {
				return nil, err
			}
		default:
			// Rows that are neither annotations nor data are ignored.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan content: %w", err)
	}

	return result, nil
}

// applyAnnotation handles an "A" row and returns the section state for
// the rows that follow.
func applyAnnotation(result *model.Content, st state, fields []string, lineNo int) (state, error) {
	if len(fields) < 2 {
		return st, fmt.Errorf("line %d: annotation without a section tag: %w", lineNo, ErrMalformedRecord)
	}

	switch fields[1] {
	case "UNIT":
		if len(fields) < 3 {
			return st, fmt.Errorf("line %d: UNIT annotation without a value: %w", lineNo, ErrMalformedRecord)
		}
		if fields[2] == "mils" {
			result.Units = model.Mils
		} else {
			result.Units = model.Millimeters
		}
		return st, nil
	case "REFDES":
		return stateSymbol, nil
	case "NET_NAME":
		return statePin, nil
	case "VIAID":
		return stateVia, nil
	case "TESTVIA":
		return stateTestVia, nil
	case "GRAPHIC_DATA_NAME":
		return stateGraphicData, nil
	case "CLASS":
		return stateClassedGraphicData, nil
	case "LOGOInfo", "UnDrawSym":
		// Sub-annotations inside the current section; the state stays.
		return st, nil
	default:
		// Unfamiliar sections are skipped rather than misparsed.
		return stateUnknown, nil
	}
}

// applyData handles an "S" row according to the current section.
func applyData(result *model.Content, st state, fields []string, lineNo int) error {
	switch st {
	case stateSymbol:
		sym, err := parseSymbol(fields, lineNo)
		if err != nil {
			return err
		}
		result.Symbols = append(result.Symbols, sym)
	case statePin:
		pin, err := parsePin(fields, lineNo)
		if err != nil {
			return err
		}
		result.Pins = append(result.Pins, pin)
	case stateTestVia:
		via, err := parseTestVia(fields, lineNo)
		if err != nil {
			return err
		}
		result.TestVias = append(result.TestVias, via)
	case stateGraphicData:
		gd, err := parseGraphicData(fields, lineNo)
		if err != nil {
			return err
		}
		result.GraphicData = append(result.GraphicData, gd)
	case stateClassedGraphicData:
		cgd, err := parseClassedGraphicData(fields, lineNo)
		if err != nil {
			return err
		}
		result.ClassedGraphicData = append(result.ClassedGraphicData, cgd)
	case stateUnknown, stateVia:
		// VIAID defines no record type; its data rows are dropped, as
		// are rows in unrecognized sections.
	}
	return nil
}

func parseSymbol(fields []string, lineNo int) (model.Symbol, error) {
	if len(fields) < 6 {
		return model.Symbol{}, fmt.Errorf("line %d: symbol row has %d fields: %w",
			lineNo, len(fields), ErrMalformedRecord)
	}

	insertionCode, err := parseUint(fields[2], 64, lineNo)
	if err != nil {
		return model.Symbol{}, err
	}
	rotate, err := parseUint(fields[5], 16, lineNo)
	if err != nil {
		return model.Symbol{}, err
	}

	return model.Symbol{
		Refdes:            fields[1],
		CompInsertionCode: insertionCode,
		SymName:           fields[3],
		SymMirror:         fields[4] == "YES",
		SymRotate:         uint16(rotate),
	}, nil
}

func parsePin(fields []string, lineNo int) (model.Pin, error) {
	if len(fields) < 9 {
		return model.Pin{}, fmt.Errorf("line %d: pin row has %d fields: %w",
			lineNo, len(fields), ErrMalformedRecord)
	}

	x, err := parseDecimal(fields[5], lineNo)
	if err != nil {
		return model.Pin{}, err
	}
	y, err := parseDecimal(fields[6], lineNo)
	if err != nil {
		return model.Pin{}, err
	}
	radius, err := parseDecimal(fields[8], lineNo)
	if err != nil {
		return model.Pin{}, err
	}

	return model.Pin{
		NetName:   fields[1],
		Refdes:    fields[2],
		PinNumber: fields[3],
		PinName:   fields[4],
		PinX:      x,
		PinY:      y,
		TestPoint: fields[7],
		Radius:    radius,
	}, nil
}

func parseTestVia(fields []string, lineNo int) (model.TestVia, error) {
	if len(fields) < 10 {
		return model.TestVia{}, fmt.Errorf("line %d: test via row has %d fields: %w",
			lineNo, len(fields), ErrMalformedRecord)
	}

	x, err := parseDecimal(fields[6], lineNo)
	if err != nil {
		return model.TestVia{}, err
	}
	y, err := parseDecimal(fields[7], lineNo)
	if err != nil {
		return model.TestVia{}, err
	}
	radius, err := parseDecimal(fields[9], lineNo)
	if err != nil {
		return model.TestVia{}, err
	}

	return model.TestVia{
		TestVia:   fields[1],
		NetName:   fields[2],
		Refdes:    fields[3],
		PinNumber: fields[4],
		PinName:   fields[5],
		ViaX:      x,
		ViaY:      y,
		TestPoint: fields[8],
		Radius:    radius,
	}, nil
}

func parseGraphicData(fields []string, lineNo int) (model.GraphicData, error) {
	if len(fields) < 16 {
		return model.GraphicData{}, fmt.Errorf("line %d: graphic data row has %d fields: %w",
			lineNo, len(fields), ErrMalformedRecord)
	}

	number, err := parseUint(fields[2], 64, lineNo)
	if err != nil {
		return model.GraphicData{}, err
	}

	gd := model.GraphicData{
		GraphicDataName:   fields[1],
		GraphicDataNumber: number,
		RecordTag:         fields[3],
		Subclass:          fields[13],
		SymName:           fields[14],
		Refdes:            fields[15],
	}
	copy(gd.GraphicData[:], fields[4:13])

	return gd, nil
}

func parseClassedGraphicData(fields []string, lineNo int) (model.ClassedGraphicData, error) {
	if len(fields) < 16 {
		return model.ClassedGraphicData{}, fmt.Errorf("line %d: classed graphic data row has %d fields: %w",
			lineNo, len(fields), ErrMalformedRecord)
	}

	number, err := parseUint(fields[4], 64, lineNo)
	if err != nil {
		return model.ClassedGraphicData{}, err
	}

	cgd := model.ClassedGraphicData{
		Class:             fields[1],
		Subclass:          fields[2],
		GraphicDataName:   fields[3],
		GraphicDataNumber: number,
		RecordTag:         fields[5],
		NetName:           fields[15],
	}
	copy(cgd.GraphicData[:], fields[6:15])

	return cgd, nil
}

// parseUint parses a strict base-10 unsigned integer of the given bit size.
func parseUint(s string, bitSize int, lineNo int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("line %d: integer field %q: %w", lineNo, s, ErrBadInteger)
	}
	return v, nil
}

// parseDecimal parses a decimal field, normalizing the comma decimal
// separator some vendor locales emit.
func parseDecimal(s string, lineNo int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("line %d: decimal field %q: %w", lineNo, s, ErrBadDecimal)
	}
	return d, nil
}
