package model

// Component is one bill-of-materials row from the description document.
type Component struct {
	// PartNumber is the component's part number.
	PartNumber string `json:"part_number"`

	// Description is the component's free-text description.
	Description string `json:"description"`

	// Quantity is the number of times the component appears on the board.
	Quantity uint64 `json:"quantity"`

	// Location lists the reference designators where the component is placed.
	Location []string `json:"location"`

	// PartNumber2 is an alternate part number.
	PartNumber2 string `json:"part_number2"`
}

// Description is the typed form of a decoded description document:
// board identity from the header line plus the bill-of-materials table.
type Description struct {
	// BoardModel is the PCB model number.
	BoardModel string `json:"board_model"`

	// Revision is the PCB revision.
	Revision string `json:"revision"`

	// ExtendedBoardModel is the longer form of the model number.
	ExtendedBoardModel string `json:"extended_board_model"`

	// ExtendedRevision is the longer form of the revision.
	ExtendedRevision string `json:"extended_revision"`

	// PartNumber is the part number of the PCB itself.
	PartNumber string `json:"part_number"`

	// Components lists the bill-of-materials rows in document order.
	Components []Component `json:"components"`
}
