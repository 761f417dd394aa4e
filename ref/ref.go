// Package ref is a plain implementation of SHA-256 used to check the unrolled
// compression variants. It favors clarity over speed.
package ref

import (
	"encoding/binary"
	"math/bits"
)

type state struct{ a, b, c, d, e, f, g, h uint32 }

func round(s state, k, m uint32) state {
	ep1 := bits.RotateLeft32(s.e, -6) ^ bits.RotateLeft32(s.e, -11) ^ bits.RotateLeft32(s.e, -25)
	ch := (s.e & s.f) ^ (^s.e & s.g)
	t1 := s.h + ep1 + ch + k + m

	ep0 := bits.RotateLeft32(s.a, -2) ^ bits.RotateLeft32(s.a, -13) ^ bits.RotateLeft32(s.a, -22)
	maj := (s.a & s.b) ^ (s.a & s.c) ^ (s.b & s.c)
	t2 := ep0 + maj

	return state{
		a: t1 + t2, b: s.a, c: s.b, d: s.c,
		e: s.d + t1, f: s.e, g: s.f, h: s.g,
	}
}

// Compress applies the 64 rounds to chain using the schedule m and the
// constants k, one round at a time.
func Compress(chain *[8]uint32, m, k *[64]uint32) {
	s := state{chain[0], chain[1], chain[2], chain[3], chain[4], chain[5], chain[6], chain[7]}
	for i := range m {
		s = round(s, k[i], m[i])
	}
	*chain = [8]uint32{s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h}
}

// Expand computes the message schedule for one block.
func Expand(block *[64]byte, m *[64]uint32) {
	for i := 0; i < 16; i++ {
		m[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		x, y := m[i-15], m[i-2]
		s0 := bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
		s1 := bits.RotateLeft32(y, -17) ^ bits.RotateLeft32(y, -19) ^ y>>10
		m[i] = s1 + m[i-7] + s0 + m[i-16]
	}
}

// Sum256 pads data, chains every block through Compress with the given
// initial value and constants, and returns the digest.
func Sum256(data []byte, iv *[8]uint32, k *[64]uint32) (sum [32]byte) {
	msg := append([]byte(nil), data...)
	msg = append(msg, 0x80)
	for len(msg)%64 != 56 {
		msg = append(msg, 0)
	}
	msg = binary.BigEndian.AppendUint64(msg, uint64(len(data))*8)

	chain := *iv
	var m [64]uint32
	for len(msg) > 0 {
		Expand((*[64]byte)(msg[:64]), &m)

		v := chain
		Compress(&v, &m, k)
		for i := range chain {
			chain[i] += v[i]
		}
		msg = msg[64:]
	}

	for i, w := range chain {
		binary.BigEndian.PutUint32(sum[4*i:], w)
	}
	return sum
}
