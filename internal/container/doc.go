// Package container decodes the outer byte format of PCB repair files.
//
// A container is optionally RC6/CFB-8 encrypted and holds two
// independently zlib-compressed payloads: the content document (board
// geometry) and the description document (board identity and BOM).
// Decode tries the plaintext and both vendor key schedules in a fixed
// order, validates the zlib magic byte, resolves the length/pointer
// framing, and decompresses both payloads with exact-size enforcement.
package container
