package sha256x

import (
	"fmt"
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	k := RoundConstants()
	state := InitialState()
	var m [64]uint32
	for i := range &m {
		m[i] = uint32(i) * 0x9e3779b9
	}

	for _, u := range Unrolls() {
		u := u
		b.Run(u.String(), func(b *testing.B) {
			b.SetBytes(64)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				u.Compress(&state, &m, &k)
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	sizes := []int64{0, 64, 256, 1024, 8 * 1024, 64 * 1024}

	for _, u := range Unrolls() {
		for _, size := range sizes {
			u, size := u, size
			input := make([]byte, size)

			b.Run(fmt.Sprintf("%s/%d", u, size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(size)

				for i := 0; i < b.N; i++ {
					_, _ = SumUnrolled(u, input)
				}
			})
		}
	}
}

func BenchmarkIncremental(b *testing.B) {
	run := func(b *testing.B, size int) {
		h := New()
		out := make([]byte, 0, Size)
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			h.Write(buf)
			out = h.Sum(out[:0])
			h.Reset()
		}
	}

	for _, n := range []int{1, 4, 16, 64} {
		b.Run(fmt.Sprintf("%04d_block", n), func(b *testing.B) { run(b, n*64) })
	}
}
