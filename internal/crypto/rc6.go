package crypto

import (
	"encoding/binary"
	"math/bits"
)

// RC6-32/20/16 parameters: 32-bit words, 20 rounds, 16-byte user keys.
const (
	logW   = 5
	rounds = 20
)

// encryptBlock runs the RC6 encrypt direction on a 16-byte block and
// returns the four little-endian output words. The keystream generator
// only ever needs the encrypt direction, so no decrypt counterpart exists.
func encryptBlock(block *[16]byte, key *[ScheduleWords]uint32) (a, b, c, d uint32) {
	a = binary.LittleEndian.Uint32(block[0:4])
	b = binary.LittleEndian.Uint32(block[4:8])
	c = binary.LittleEndian.Uint32(block[8:12])
	d = binary.LittleEndian.Uint32(block[12:16])

	b += key[0]
	d += key[1]

	for i := 1; i <= rounds; i++ {
		t := bits.RotateLeft32(b*(2*b+1), logW)
		u := bits.RotateLeft32(d*(2*d+1), logW)
		a = bits.RotateLeft32(a^t, int(u)) + key[2*i]
		c = bits.RotateLeft32(c^u, int(t)) + key[2*i+1]

		a, b, c, d = b, c, d, a
	}

	a += key[2*rounds+2]
	c += key[2*rounds+3]

	return a, b, c, d
}

// Decrypt applies the CFB-8 keystream to data and returns the plaintext.
//
// The 16-byte feedback register starts at all zeros. For each input byte
// the cipher is run forward over the register, the low 8 bits of the
// first output word become the keystream byte, and the register is then
// shifted left by one with the ciphertext byte appended. The register
// therefore always holds the 16 most recent ciphertext bytes.
func Decrypt(data []byte, key *[ScheduleWords]uint32) []byte {
	result := make([]byte, len(data))
	var register [16]byte

	for i, ct := range data {
		a, _, _, _ := encryptBlock(&register, key)

		copy(register[0:15], register[1:16])
		register[15] = ct

		result[i] = ct ^ byte(a)
	}

	return result
}

// Encrypt is the inverse of Decrypt. The container format never needs it
// in production; it exists so tests and fixture builders can produce
// ciphertext that Decrypt must invert.
func Encrypt(data []byte, key *[ScheduleWords]uint32) []byte {
	result := make([]byte, len(data))
	var register [16]byte

	for i, pt := range data {
		a, _, _, _ := encryptBlock(&register, key)

		ct := pt ^ byte(a)
		result[i] = ct

		copy(register[0:15], register[1:16])
		register[15] = ct
	}

	return result
}

// Key schedule constants from the RC6 specification.
const (
	p32 = 0xB7E15163
	q32 = 0x9E3779B9
)

// ExpandKey derives the 44-word schedule from a 128-bit user key.
// Production decoding uses the fixed pre-expanded schedules; this is
// kept so the schedule constants can be cross-checked against known
// RC6 test vectors.
func ExpandKey(userKey *[16]byte) [ScheduleWords]uint32 {
	var l [4]uint32
	for i := range l {
		l[i] = binary.LittleEndian.Uint32(userKey[4*i : 4*i+4])
	}

	var s [ScheduleWords]uint32
	s[0] = p32
	for i := 1; i <= 2*rounds+3; i++ {
		s[i] = s[i-1] + q32
	}

	var a, b uint32
	var i, j int
	for k := 0; k < 3*ScheduleWords; k++ {
		s[i] = bits.RotateLeft32(s[i]+a+b, 3)
		a = s[i]
		l[j] = bits.RotateLeft32(l[j]+a+b, int(a+b))
		b = l[j]
		i = (i + 1) % ScheduleWords
		j = (j + 1) % 4
	}

	return s
}
