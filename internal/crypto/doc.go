// Package crypto implements the RC6-based stream cipher used to encrypt
// PCB repair containers.
//
// Both vendor tools encrypt files with RC6-32/20/16 run in 8-bit
// cipher-feedback (CFB-8) mode with an all-zero initialization vector.
// The key schedules are fixed per vendor and shipped pre-expanded, so
// production decoding never derives a schedule from a user key.
package crypto
