package container

import "errors"

// Decoding errors.
// ErrInvalidMagic is recoverable inside Decode (the next key is tried);
// everything else aborts the decode immediately.
var (
	// ErrInvalidMagic is returned by a single trial when byte 4 of the
	// candidate plaintext is not the zlib magic byte 0x78. It is the
	// only cheap signal that a trial used the wrong key.
	ErrInvalidMagic = errors.New("invalid zlib magic byte")

	// ErrSizeMismatch is returned when a payload decompresses to a
	// length other than the one its header declares.
	ErrSizeMismatch = errors.New("decompressed size mismatch")

	// ErrFramingOutOfBounds is returned when a length or pointer field
	// resolves outside the buffer.
	ErrFramingOutOfBounds = errors.New("framing offset out of bounds")
)
