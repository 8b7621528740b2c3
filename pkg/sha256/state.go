package sha256

// State is a single SHA-256 hashing session.
//
// Lifecycle: Initialize -> Update (any number of times) -> Finalize.
// Finalize is terminal; further Update or Finalize calls return ErrFinalized
// until Reset is called.
//
// The zero value is ready to use and behaves as if Initialize had been called.
//
// A State must not be used from more than one goroutine at a time. Hash
// independent inputs concurrently with independent States.
type State struct {
	// words is the running hash value H(i). Only Compress produces new values.
	words [8]uint32

	// buf holds the tail of the input that does not fill a block yet.
	buf blockBuffer

	// totalBits counts the message bits already compressed. Buffered bytes
	// are added only at Finalize.
	totalBits uint64

	initialized bool
	finalized   bool
}

// Initialize returns a session set to the initial hash value with an empty
// buffer and a zero length counter.
func Initialize() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns the session to its freshly initialized state.
func (s *State) Reset() {
	s.words = IV
	s.buf.reset()
	s.totalBits = 0
	s.initialized = true
	s.finalized = false
}

// lazyInit turns a zero-value State into an initialized one.
func (s *State) lazyInit() {
	if !s.initialized {
		s.Reset()
	}
}

// Len returns the number of message bytes ingested so far.
func (s *State) Len() uint64 {
	s.lazyInit()
	return s.totalBits/8 + uint64(s.buf.len())
}

// Update appends data to the message. Each time the internal buffer fills a
// block it is compressed into the running state. The resulting digest does not
// depend on how the message is split across calls.
//
// Returns ErrFinalized if the session was already finalized and
// ErrMessageTooLong if the message would exceed MaxMessageBytes. In both cases
// the session is left unchanged.
func (s *State) Update(data []byte) error {
	s.lazyInit()
	if s.finalized {
		return ErrFinalized
	}
	if uint64(len(data)) > MaxMessageBytes-s.Len() {
		return ErrMessageTooLong
	}

	// Top up a partially filled buffer first.
	if s.buf.len() > 0 {
		data = data[s.buf.fill(data):]
		if !s.buf.full() {
			return nil
		}
		s.compress(s.buf.block())
		s.buf.reset()
	}

	// Whole blocks are compressed straight from the caller's slice.
	for len(data) >= BlockSize {
		s.compress((*[BlockSize]byte)(data[:BlockSize]))
		data = data[BlockSize:]
	}

	s.buf.fill(data)
	return nil
}

// compress folds one block into the running state and accounts for its bits.
func (s *State) compress(block *[BlockSize]byte) {
	s.words = Compress(s.words, block)
	s.totalBits += blockBits
}

// Finalize pads the message, compresses the final block(s) and returns the
// digest. The session becomes terminal: a second call returns ErrFinalized.
func (s *State) Finalize() (Digest, error) {
	s.lazyInit()
	if s.finalized {
		return Digest{}, ErrFinalized
	}

	totalBits := s.totalBits + uint64(s.buf.len())*8
	blocks, n := pad(s.buf.bytes(), totalBits)
	for i := 0; i < n; i++ {
		s.words = Compress(s.words, &blocks[i])
	}

	s.totalBits = totalBits
	s.buf.reset()
	s.finalized = true

	return serialize(s.words), nil
}

// Clone returns an independent copy of the session.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) Digest {
	s := Initialize()
	// A single in-memory slice cannot exceed MaxMessageBytes.
	_ = s.Update(data)
	d, _ := s.Finalize()
	return d
}
