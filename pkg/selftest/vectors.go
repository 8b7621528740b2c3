package selftest

import "bytes"

// Vector is a known-answer test case.
type Vector struct {
	// Name identifies the vector in reports and logs.
	Name string

	// Message is the input to hash.
	Message []byte

	// Expected is the expected digest as 64 hex characters.
	Expected string
}

// AbcVector returns FIPS 180-4 Example B.1, the classic "abc" check.
func AbcVector() Vector {
	return Vector{
		Name:     "FIPS180-4_B1_abc",
		Message:  []byte("abc"),
		Expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}
}

// DefaultVectors returns a quick known-answer set covering the empty message,
// single and double final padding blocks and multi-block input.
func DefaultVectors() []Vector {
	return []Vector{
		AbcVector(),
		{
			Name:     "CAVP_empty",
			Message:  []byte{},
			Expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			// 56 bytes: the length suffix spills into a second padding block.
			Name:     "FIPS180-4_B2_448bit",
			Message:  []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			Expected: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			Name:     "FIPS_896bit",
			Message:  []byte("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
			Expected: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
		},
		{
			Name:     "CAVP_56bit",
			Message:  []byte{0x06, 0xe0, 0x76, 0xf5, 0xa4, 0x42, 0xd5},
			Expected: "3fd877e27450e6bbd5d74bb82f9870c64c66e109418baa8e6bbcff355e287926",
		},
		{
			Name: "CAVP_512bit",
			Message: []byte{
				0x5a, 0x86, 0xb7, 0x37, 0xea, 0xea, 0x8e, 0xe9, 0x76, 0xa0, 0xa2, 0x4d, 0xa6, 0x3e, 0x7e, 0xd7,
				0xee, 0xfa, 0xd1, 0x8a, 0x10, 0x1c, 0x12, 0x11, 0xe2, 0xb3, 0x65, 0x0c, 0x51, 0x87, 0xc2, 0xa8,
				0xa6, 0x50, 0x54, 0x72, 0x08, 0x25, 0x1f, 0x6d, 0x42, 0x37, 0xe6, 0x61, 0xc7, 0xbf, 0x4c, 0x77,
				0xf3, 0x35, 0x39, 0x03, 0x94, 0xc3, 0x7f, 0xa1, 0xa9, 0xf9, 0xbe, 0x83, 0x6a, 0xc2, 0x85, 0x09,
			},
			Expected: "42e61e174fbb3897d6dd6cef3dd2802fe67b331953b06114a65c772859dfc1aa",
		},
	}
}

// ExtendedVectors returns DefaultVectors plus the FIPS one million 'a' message.
func ExtendedVectors() []Vector {
	return append(DefaultVectors(), Vector{
		Name:     "FIPS_million_a",
		Message:  bytes.Repeat([]byte{'a'}, 1000000),
		Expected: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	})
}
