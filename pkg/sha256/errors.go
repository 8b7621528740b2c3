package sha256

import "errors"

// SHA-256 engine errors.
var (
	// Session lifecycle errors
	ErrFinalized      = errors.New("sha256: session already finalized")
	ErrMessageTooLong = errors.New("sha256: message exceeds 2^61-1 bytes")

	// Decoding errors
	ErrInvalidDigest = errors.New("sha256: invalid digest encoding")
	ErrInvalidState  = errors.New("sha256: invalid serialized state")

	// ErrBufferInvariant is the panic value when the block buffer is
	// driven outside 0 <= len <= BlockSize. It indicates a bug, not bad input.
	ErrBufferInvariant = errors.New("sha256: block buffer invariant violated")
)
