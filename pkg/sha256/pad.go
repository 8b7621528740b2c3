package sha256

// pad builds the final block(s) of a message from FIPS 180-4 Section 5.1.1.
//
// tail is the unprocessed remainder of the message (fewer than BlockSize
// bytes) and totalBits is the bit length of the whole message. The layout is:
//
//	tail || 0x80 || zero fill || totalBits (8 bytes, big-endian)
//
// If the tail leaves no room for the 0x80 byte before the length field
// (len(tail) >= 56), the first block is zero filled to 64 bytes and a second
// block carries only zeros and the length. n is 1 or 2.
func pad(tail []byte, totalBits uint64) (blocks [2][BlockSize]byte, n int) {
	if len(tail) >= BlockSize {
		panic(ErrBufferInvariant)
	}

	copy(blocks[0][:], tail)
	blocks[0][len(tail)] = 0x80

	n = 1
	if len(tail) >= lengthOffset {
		n = 2
	}

	// Remaining bytes are already zero.
	putBEUint64(blocks[n-1][lengthOffset:], totalBits)
	return blocks, n
}
