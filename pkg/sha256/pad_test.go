package sha256

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPad_BlockCount(t *testing.T) {
	tests := []struct {
		tailLen int
		blocks  int
	}{
		{0, 1},
		{3, 1},
		{55, 1},
		{56, 2},
		{57, 2},
		{63, 2},
	}

	for _, tc := range tests {
		tail := bytes.Repeat([]byte{0xaa}, tc.tailLen)
		totalBits := uint64(1024 + tc.tailLen*8)

		blocks, n := pad(tail, totalBits)
		if n != tc.blocks {
			t.Errorf("tail %d: got %d blocks, want %d", tc.tailLen, n, tc.blocks)
			continue
		}

		first := blocks[0]
		if !bytes.Equal(first[:tc.tailLen], tail) {
			t.Errorf("tail %d: message bytes not preserved", tc.tailLen)
		}
		if first[tc.tailLen] != 0x80 {
			t.Errorf("tail %d: byte after message = %#02x, want 0x80", tc.tailLen, first[tc.tailLen])
		}

		last := blocks[n-1]
		if got := binary.BigEndian.Uint64(last[lengthOffset:]); got != totalBits {
			t.Errorf("tail %d: length suffix = %d, want %d", tc.tailLen, got, totalBits)
		}

		// Everything between the 0x80 byte and the suffix is zero.
		var padded []byte
		for i := 0; i < n; i++ {
			padded = append(padded, blocks[i][:]...)
		}
		for i := tc.tailLen + 1; i < n*BlockSize-8; i++ {
			if padded[i] != 0 {
				t.Errorf("tail %d: padding byte %d = %#02x, want 0", tc.tailLen, i, padded[i])
				break
			}
		}
	}
}

func TestPad_ABC(t *testing.T) {
	blocks, n := pad([]byte("abc"), 24)
	if n != 1 {
		t.Fatalf("got %d blocks, want 1", n)
	}
	if blocks[0] != *abcBlock() {
		t.Errorf("padded block mismatch\ngot:  %x\nwant: %x", blocks[0], *abcBlock())
	}
}

func TestPad_FullTailPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrBufferInvariant {
			t.Errorf("recover() = %v, want ErrBufferInvariant", r)
		}
	}()
	pad(make([]byte, BlockSize), 512)
}
