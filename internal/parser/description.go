package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pcblab/pcbrepair/internal/model"
)

// headerFields is the number of '|'-separated fields the description
// header line must carry.
const headerFields = 5

// tableSkipRows is the number of leading table rows (title and column
// headers) that precede the first bill-of-materials entry.
const tableSkipRows = 2

// ParseDescription parses a decoded description document.
//
// Line 0 is a '|'-separated header with the board identity. The whole
// buffer is then re-read as a tab-separated table: the first two rows
// are titles, every later row with at least five fields is a
// bill-of-materials entry, and shorter rows (trailing blanks) are
// skipped.
func ParseDescription(raw []byte) (*model.Description, error) {
	text := decodeText(raw)

	headerLine, _, _ := strings.Cut(text, "\r\n")
	header := strings.Split(headerLine, "|")
	if len(header) < headerFields {
		return nil, fmt.Errorf("header has %d fields, need %d: %w",
			len(header), headerFields, ErrMissingHeader)
	}

	result := &model.Description{
		BoardModel:         header[0],
		Revision:           header[1],
		ExtendedBoardModel: header[2],
		ExtendedRevision:   header[3],
		PartNumber:         header[4],
	}

	for i, row := range strings.Split(text, "\n") {
		if i < tableSkipRows {
			continue
		}

		fields := strings.Split(strings.TrimSuffix(row, "\r"), "\t")
		if len(fields) < 5 {
			continue
		}

		quantity, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity %q: %w", i+1, fields[2], ErrBadInteger)
		}

		result.Components = append(result.Components, model.Component{
			PartNumber:  fields[0],
			Description: fields[1],
			Quantity:    quantity,
			Location:    strings.Fields(fields[3]),
			PartNumber2: fields[4],
		})
	}

	return result, nil
}
