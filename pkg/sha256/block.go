package sha256

// schedule expands one block into the 64-word message schedule
// (FIPS 180-4 Section 6.2.2 step 1).
func schedule(block *[BlockSize]byte) [64]uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = beUint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = smallSigma1(w[i-2]) + w[i-7] + smallSigma0(w[i-15]) + w[i-16]
	}
	return w
}

// Compress runs the SHA-256 compression function over a single block and
// returns the updated hash state. It implements FIPS 180-4 Section 6.2.2
// steps 1 through 4 and does not modify its inputs.
func Compress(h [8]uint32, block *[BlockSize]byte) [8]uint32 {
	w := schedule(block)

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + K[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
	return h
}
