package container

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pcblab/pcbrepair/internal/crypto"
)

// zlibMagic is the first byte of every zlib stream with a 32K window.
// It is the only cheap signal that a decryption trial used the right key.
const zlibMagic = 0x78

// Decoded holds the two decompressed payloads of a container and the
// name of the key trial that produced them.
type Decoded struct {
	// Content is the decompressed content document (board geometry).
	Content []byte

	// Description is the decompressed description document (board
	// identity and bill-of-materials).
	Description []byte

	// KeyVariant is "plaintext", "fz", or "cae".
	KeyVariant string
}

// trial is one entry of the fixed decryption trial order.
type trial struct {
	name string
	key  *[crypto.ScheduleWords]uint32
}

// trials is the fixed order in which Decode attempts to read a
// container: as-is first, then each vendor key schedule.
var trials = []trial{
	{name: "plaintext", key: nil},
	{name: "fz", key: &crypto.KeyFZ},
	{name: "cae", key: &crypto.KeyCAE},
}

// Decode decrypts and decompresses a raw container.
//
// Unencrypted and encrypted containers are indistinguishable up front,
// so Decode enumerates the trial order and accepts the first candidate
// whose framing validates. Errors inside a trial select the next trial;
// once all trials fail, the last failure is returned.
func Decode(raw []byte) (*Decoded, error) {
	var lastErr error
	for _, tr := range trials {
		data := raw
		if tr.key != nil {
			data = crypto.Decrypt(raw, tr.key)
		}

		content, description, err := frame(data)
		if err != nil {
			lastErr = err
			continue
		}

		return &Decoded{
			Content:     content,
			Description: description,
			KeyVariant:  tr.name,
		}, nil
	}

	return nil, fmt.Errorf("no key variant decodes the container: %w", lastErr)
}

// frame resolves the container layout on a plaintext candidate buffer:
//
//	[0:4]            content length (LE32)
//	[4:]             content zlib stream
//	[len-4:]         backward distance to the pointer slot (LE32)
//	[len-d-4:len-d]  pointer slot: absolute offset of the description block
//	[ptr:ptr+4]      description length (LE32)
//	[ptr+4:len-4]    description zlib stream
//
// The two pointer lookups are bounds-checked independently so a bad
// distance and a bad absolute offset fail the same way but at the
// precise step that went wrong.
func frame(p []byte) (content, description []byte, err error) {
	if len(p) < 5 {
		return nil, nil, fmt.Errorf("container shorter than header: %w", ErrInvalidMagic)
	}
	if p[4] != zlibMagic {
		return nil, nil, fmt.Errorf("byte 4 is %#02x: %w", p[4], ErrInvalidMagic)
	}

	contentLen := binary.LittleEndian.Uint32(p[0:4])
	content, err = decompress(int(contentLen), p[4:])
	if err != nil {
		return nil, nil, fmt.Errorf("content: %w", err)
	}

	backDistance := binary.LittleEndian.Uint32(p[len(p)-4:])

	pointerSlot := len(p) - int(backDistance) - 4
	pointer, err := readLE32(p, pointerSlot)
	if err != nil {
		return nil, nil, fmt.Errorf("pointer slot: %w", err)
	}

	descriptionLen, err := readLE32(p, int(pointer))
	if err != nil {
		return nil, nil, fmt.Errorf("description length: %w", err)
	}

	start := int(pointer) + 4
	end := len(p) - 4
	if start > end {
		return nil, nil, fmt.Errorf("description stream starts at %d past %d: %w",
			start, end, ErrFramingOutOfBounds)
	}

	description, err = decompress(int(descriptionLen), p[start:end])
	if err != nil {
		return nil, nil, fmt.Errorf("description: %w", err)
	}

	return content, description, nil
}

// readLE32 reads a little-endian uint32 at off, reporting
// ErrFramingOutOfBounds instead of panicking on bad offsets.
func readLE32(p []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(p) {
		return 0, fmt.Errorf("offset %d in %d-byte buffer: %w", off, len(p), ErrFramingOutOfBounds)
	}
	return binary.LittleEndian.Uint32(p[off : off+4]), nil
}

// decompress inflates a zlib stream and enforces the declared output
// size exactly. A mismatch means the framing selected the wrong bytes,
// so truncated or padded data is never returned.
func decompress(expected int, data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open zlib stream: %w", err)
	}
	defer zr.Close() //nolint:errcheck // read side, nothing to flush

	var buf bytes.Buffer
	// Pre-size from the declared length, but never trust a corrupt
	// header enough to allocate unbounded memory up front.
	if expected > 0 && expected <= 64<<20 {
		buf.Grow(expected)
	}
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}

	if buf.Len() != expected {
		return nil, fmt.Errorf("got %d bytes, declared %d: %w", buf.Len(), expected, ErrSizeMismatch)
	}

	return buf.Bytes(), nil
}
