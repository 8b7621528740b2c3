package sha256

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a SHA-256 hash value.
type Digest [Size]byte

// serialize converts the final hash words into a digest. Each word is written
// most significant byte first, words 0 through 7 in order (FIPS 180-4
// Section 6.2.2, final step).
func serialize(words [8]uint32) Digest {
	var d Digest
	for i, w := range words {
		putBEUint32(d[i*4:], w)
	}
	return d
}

// ParseDigest decodes a 64-character hex string into a Digest.
// Upper and lower case hex are both accepted.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(Size) {
		return d, fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidDigest, hex.EncodedLen(Size), len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	return d, nil
}

// Bytes returns the digest as a slice.
func (d Digest) Bytes() []byte {
	return d[:]
}

// String renders the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal compares two digests in constant time.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}
