package sha256

import "hash"

// hasher adapts State to hash.Hash. Sum works on a copy so the running
// session keeps accepting writes, as the hash.Hash contract requires.
type hasher struct {
	s State
}

// New returns a new hash.Hash computing SHA-256 with this package's engine.
// It can be passed anywhere a func() hash.Hash is expected.
// Write only fails, with ErrMessageTooLong, once more than MaxMessageBytes
// have been written.
//
// Usage:
//
//	h := sha256.New()
//	h.Write(data1)
//	h.Write(data2)
//	digest := h.Sum(nil)
func New() hash.Hash {
	h := &hasher{}
	h.s.Reset()
	return h
}

func (h *hasher) Write(p []byte) (int, error) {
	if err := h.s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *hasher) Sum(b []byte) []byte {
	c := h.s
	d, _ := c.Finalize()
	return append(b, d[:]...)
}

func (h *hasher) Reset() { h.s.Reset() }

func (h *hasher) Size() int { return Size }

func (h *hasher) BlockSize() int { return BlockSize }

func (h *hasher) MarshalBinary() ([]byte, error) { return h.s.MarshalBinary() }

func (h *hasher) UnmarshalBinary(b []byte) error { return h.s.UnmarshalBinary(b) }
