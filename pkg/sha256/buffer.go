package sha256

// blockBuffer holds input bytes that do not yet form a complete block.
// Its capacity is fixed at BlockSize and 0 <= n <= BlockSize holds after
// every mutation; the engine drains it whenever it fills, so between calls
// n < BlockSize.
type blockBuffer struct {
	data [BlockSize]byte
	n    int
}

// fill copies as much of p as fits and returns the number of bytes taken.
func (b *blockBuffer) fill(p []byte) int {
	b.check()
	taken := copy(b.data[b.n:], p)
	b.n += taken
	b.check()
	return taken
}

func (b *blockBuffer) full() bool {
	return b.n == BlockSize
}

func (b *blockBuffer) len() int {
	return b.n
}

// bytes returns the buffered, not yet compressed, input.
func (b *blockBuffer) bytes() []byte {
	return b.data[:b.n]
}

// block exposes the backing array for compression. Only valid when full.
func (b *blockBuffer) block() *[BlockSize]byte {
	if !b.full() {
		panic(ErrBufferInvariant)
	}
	return &b.data
}

// reset empties the buffer and clears stale input.
func (b *blockBuffer) reset() {
	b.data = [BlockSize]byte{}
	b.n = 0
}

func (b *blockBuffer) check() {
	if b.n < 0 || b.n > BlockSize {
		panic(ErrBufferInvariant)
	}
}
