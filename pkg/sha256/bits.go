package sha256

import (
	"encoding/binary"
	"math/bits"
)

// Logical functions from FIPS 180-4 Section 4.1.2.
// All operate on 32-bit words; addition elsewhere wraps modulo 2^32.

// rotr rotates x right by n bits (ROTR^n).
func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// shr shifts x right by n bits (SHR^n).
func shr(x uint32, n int) uint32 {
	return x >> n
}

// ch chooses bits from y where x is set and from z where it is not.
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj takes the bitwise majority of x, y and z.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// bigSigma0 is Σ0, applied to working variable a in each round.
func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

// bigSigma1 is Σ1, applied to working variable e in each round.
func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

// smallSigma0 is σ0, used by the message schedule.
func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ shr(x, 3)
}

// smallSigma1 is σ1, used by the message schedule.
func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ shr(x, 10)
}

// beUint32 reads a word from b[0:4] with b[0] as the most significant byte.
func beUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// putBEUint32 writes v into b[0:4], most significant byte first.
func putBEUint32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// putBEUint64 writes v into b[0:8], most significant byte first.
func putBEUint64(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, v)
}
