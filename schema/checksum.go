package schema

import "math/bits"

// Decrypt recovers the 32-bit value of a checksum protected field.
// A value whose checksum half does not match its key decodes to 0.
func Decrypt(value, key uint64) uint32 {
	if expand(uint32(value), key) != value {
		return 0
	}
	s := uint32(value) ^ 0x1D
	r := int(s & 31)
	return (uint32(bits.RotateLeft64(key, r)) &^ 31) ^ s
}

// Encrypt is the inverse of Decrypt: it produces the 64-bit value that
// Decrypt(Encrypt(v, key), key) maps back to v.
func Encrypt(v uint32, key uint64) uint64 {
	r := int(v & 31)
	e := v ^ 0x1D ^ (uint32(bits.RotateLeft64(key, r)) &^ 31)
	return expand(e, key)
}

// expand appends the checksum of in as the upper 32 bits
func expand(in uint32, key uint64) uint64 {
	var sum uint32
	si := in
	for shift := 0; shift < 32; shift += 8 {
		sum ^= si ^ uint32(bits.RotateLeft64(key, shift+8))
		si >>= 8
	}
	if sum == 0 {
		sum = 1
	}
	return uint64(in) | uint64(sum)<<32
}
