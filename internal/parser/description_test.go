package parser

import (
	"errors"
	"reflect"
	"testing"
)

// TestParseDescription tests header extraction and the BOM table.
func TestParseDescription(t *testing.T) {
	t.Parallel()

	raw := []byte("B760M|1.02|B760M-PLUS|1.02A|90MB1D00\r\n" +
		"Bill Of Materials\r\n" +
		"Part Number\tDescription\tQty\tLocation\tPart Number2\r\n" +
		"CAP-001\t10uF 0402\t3\tC1 C2 C7\tCAP-001A\r\n" +
		"RES-014\t10K 0603\t1\tR4\t\r\n" +
		"\r\n")

	desc, err := ParseDescription(raw)
	if err != nil {
		t.Fatalf("ParseDescription: %v", err)
	}

	if desc.BoardModel != "B760M" || desc.Revision != "1.02" {
		t.Errorf("board %q rev %q, want B760M 1.02", desc.BoardModel, desc.Revision)
	}
	if desc.ExtendedBoardModel != "B760M-PLUS" || desc.ExtendedRevision != "1.02A" {
		t.Errorf("extended %q/%q, want B760M-PLUS/1.02A", desc.ExtendedBoardModel, desc.ExtendedRevision)
	}
	if desc.PartNumber != "90MB1D00" {
		t.Errorf("part number = %q, want 90MB1D00", desc.PartNumber)
	}

	if len(desc.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(desc.Components))
	}

	first := desc.Components[0]
	if first.PartNumber != "CAP-001" || first.Description != "10uF 0402" || first.Quantity != 3 {
		t.Errorf("unexpected component: %+v", first)
	}
	if !reflect.DeepEqual(first.Location, []string{"C1", "C2", "C7"}) {
		t.Errorf("location = %v, want [C1 C2 C7]", first.Location)
	}
	if first.PartNumber2 != "CAP-001A" {
		t.Errorf("alternate part = %q, want CAP-001A", first.PartNumber2)
	}

	res := desc.Components[1]
	if res.Quantity != 1 || len(res.Location) != 1 || res.Location[0] != "R4" {
		t.Errorf("unexpected component: %+v", res)
	}
}

// TestParseDescriptionHeaderTooShort tests the five-field requirement.
func TestParseDescriptionHeaderTooShort(t *testing.T) {
	t.Parallel()

	raw := []byte("B760M|1.02|B760M-PLUS\r\n")
	if _, err := ParseDescription(raw); !errors.Is(err, ErrMissingHeader) {
		t.Errorf("got %v, want ErrMissingHeader", err)
	}
}

// TestParseDescriptionSkipsTitleRows tests that the first two table
// rows never become components even when they have enough fields.
func TestParseDescriptionSkipsTitleRows(t *testing.T) {
	t.Parallel()

	raw := []byte("M|R|EM|ER|PN\r\n" +
		"a\tb\tc\td\te\r\n" +
		"CAP-001\t10uF\t3\tC1\tALT\r\n")

	desc, err := ParseDescription(raw)
	if err != nil {
		t.Fatalf("ParseDescription: %v", err)
	}
	if len(desc.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(desc.Components))
	}
	if desc.Components[0].PartNumber != "CAP-001" {
		t.Errorf("component = %+v, want CAP-001 row", desc.Components[0])
	}
}

// TestParseDescriptionBadQuantity tests the hard error on quantities.
func TestParseDescriptionBadQuantity(t *testing.T) {
	t.Parallel()

	raw := []byte("M|R|EM|ER|PN\r\n" +
		"title\r\n" +
		"headers\r\n" +
		"CAP-001\t10uF\tthree\tC1\tALT\r\n")

	if _, err := ParseDescription(raw); !errors.Is(err, ErrBadInteger) {
		t.Errorf("got %v, want ErrBadInteger", err)
	}
}

// TestParseDescriptionGBKFallback tests that non-UTF-8 vendor text is
// decoded instead of mangled.
func TestParseDescriptionGBKFallback(t *testing.T) {
	t.Parallel()

	// 0xB5 0xE7 0xC8 0xDD is GBK for the two CJK characters in the
	// component description below; the bytes are not valid UTF-8.
	raw := append([]byte("M|R|EM|ER|PN\r\ntitle\r\nheaders\r\nCAP-001\t"),
		0xB5, 0xE7, 0xC8, 0xDD)
	raw = append(raw, []byte("\t3\tC1\tALT\r\n")...)

	desc, err := ParseDescription(raw)
	if err != nil {
		t.Fatalf("ParseDescription: %v", err)
	}
	if len(desc.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(desc.Components))
	}
	if desc.Components[0].Description != "电容" {
		t.Errorf("description = %q, want 电容", desc.Components[0].Description)
	}
}
