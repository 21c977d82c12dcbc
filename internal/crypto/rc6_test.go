package crypto

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// TestEncryptBlock verifies the block cipher against the published
// RC6-32/20 test vector for an all-zero key and all-zero plaintext.
func TestEncryptBlock(t *testing.T) {
	t.Parallel()

	var plaintext [16]byte
	var userKey [16]byte

	want := []byte{
		0x8f, 0xc3, 0xa5, 0x36, 0x56, 0xb1, 0xf7, 0x78,
		0xc1, 0x29, 0xdf, 0x4e, 0x98, 0x48, 0xa4, 0x1e,
	}

	schedule := ExpandKey(&userKey)
	a, b, c, d := encryptBlock(&plaintext, &schedule)

	got := make([]byte, 0, 16)
	got = binary.LittleEndian.AppendUint32(got, a)
	got = binary.LittleEndian.AppendUint32(got, b)
	got = binary.LittleEndian.AppendUint32(got, c)
	got = binary.LittleEndian.AppendUint32(got, d)

	if !bytes.Equal(got, want) {
		t.Errorf("encryptBlock = %x, want %x", got, want)
	}
}

// TestDecryptInvertsEncrypt checks CFB-8 symmetry for both vendor
// schedules across the boundary lengths of the feedback register.
func TestDecryptInvertsEncrypt(t *testing.T) {
	t.Parallel()

	keys := map[string]*[ScheduleWords]uint32{
		"fz":  &KeyFZ,
		"cae": &KeyCAE,
	}

	for name, key := range keys {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, n := range []int{0, 1, 16, 17, 1000} {
				data := make([]byte, n)
				for i := range data {
					data[i] = byte(i*7 + 13)
				}

				encrypted := Encrypt(data, key)
				decrypted := Decrypt(encrypted, key)

				if !bytes.Equal(decrypted, data) {
					t.Errorf("length %d: round trip mismatch", n)
				}
				if n > 0 && bytes.Equal(encrypted, data) {
					t.Errorf("length %d: ciphertext equals plaintext", n)
				}
			}
		})
	}
}

// TestDecryptKnownBytes pins the keystream so a schedule regression
// cannot pass the round-trip test by failing symmetrically.
func TestDecryptKnownBytes(t *testing.T) {
	t.Parallel()

	// The first keystream byte is the low byte of the first output word
	// of the cipher run over an all-zero register. Decrypting zeros
	// therefore yields the raw keystream prefix.
	zeros := make([]byte, 4)
	a, _, _, _ := encryptBlock(&[16]byte{}, &KeyFZ)

	got := Decrypt(zeros, &KeyFZ)
	if got[0] != byte(a) {
		t.Errorf("first keystream byte = %#02x, want %#02x", got[0], byte(a))
	}
}

// TestEncryptFeedsCiphertext distinguishes CFB from OFB: keystream bytes
// after the first must depend on earlier ciphertext bytes.
func TestEncryptFeedsCiphertext(t *testing.T) {
	t.Parallel()

	msgA := make([]byte, 17)
	msgB := make([]byte, 17)
	msgB[0] = 0xff

	ctA := Encrypt(msgA, &KeyFZ)
	ctB := Encrypt(msgB, &KeyFZ)

	if bytes.Equal(ctA[1:], ctB[1:]) {
		t.Error("keystream tail did not change with first ciphertext byte")
	}
}
