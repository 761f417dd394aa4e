package schedule

import "math/bits"

func s0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func s1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// Expand derives the 64 word message schedule for one block from its 16
// big-endian input words.
func Expand(w *[16]uint32, m *[64]uint32) {
	copy(m[:16], w[:])
	for i := 16; i < 64; i++ {
		m[i] = s1(m[i-2]) + m[i-7] + s0(m[i-15]) + m[i-16]
	}
}
