package sha256

import (
	"encoding/binary"
	"fmt"
)

// Serialized session layout, shared with the Go standard library's
// crypto/sha256 so checkpoints can move between the two:
//
//	magic "sha\x03" (4) || H0..H7 big-endian (32) || buffer (64) || byte count big-endian (8)
const (
	stateMagic       = "sha\x03"
	marshaledSize    = len(stateMagic) + 8*4 + BlockSize + 8
	marshaledWordsAt = len(stateMagic)
	marshaledBufAt   = marshaledWordsAt + 8*4
	marshaledLenAt   = marshaledBufAt + BlockSize
)

// MarshalBinary checkpoints an unfinalized session.
func (s *State) MarshalBinary() ([]byte, error) {
	s.lazyInit()
	if s.finalized {
		return nil, ErrFinalized
	}

	b := make([]byte, marshaledSize)
	copy(b, stateMagic)
	for i, w := range s.words {
		putBEUint32(b[marshaledWordsAt+i*4:], w)
	}
	// Bytes past the buffered length stay zero.
	copy(b[marshaledBufAt:], s.buf.bytes())
	putBEUint64(b[marshaledLenAt:], s.Len())
	return b, nil
}

// UnmarshalBinary restores a session checkpointed by MarshalBinary.
// The session is left untouched if b is not a valid checkpoint.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidState, marshaledSize, len(b))
	}
	if string(b[:len(stateMagic)]) != stateMagic {
		return fmt.Errorf("%w: bad magic", ErrInvalidState)
	}

	n := binary.BigEndian.Uint64(b[marshaledLenAt:])
	if n > MaxMessageBytes {
		return fmt.Errorf("%w: byte count %d out of range", ErrInvalidState, n)
	}

	var words [8]uint32
	for i := range words {
		words[i] = beUint32(b[marshaledWordsAt+i*4:])
	}

	tail := n % BlockSize
	s.words = words
	s.buf.reset()
	s.buf.fill(b[marshaledBufAt : marshaledBufAt+int(tail)])
	s.totalBits = (n - tail) * 8
	s.initialized = true
	s.finalized = false
	return nil
}
