package sha256x

import (
	"github.com/tunaminer/sha256x/internal/alg/compress/compress_pure"
	"github.com/tunaminer/sha256x/internal/alg/schedule"
	"github.com/tunaminer/sha256x/internal/consts"
)

// Compress1x applies the 64 SHA-256 rounds to state in place, using the
// expanded message schedule m and the round constants k. It does not add the
// result back into the previous chaining value.
func Compress1x(state *[8]uint32, m, k *[64]uint32) { compress_pure.Compress1(state, m, k) }

// Compress2x is Compress1x with two rounds inlined per loop iteration.
func Compress2x(state *[8]uint32, m, k *[64]uint32) { compress_pure.Compress2(state, m, k) }

// Compress4x is Compress1x with four rounds inlined per loop iteration.
func Compress4x(state *[8]uint32, m, k *[64]uint32) { compress_pure.Compress4(state, m, k) }

// Compress8x is Compress1x with eight rounds inlined per loop iteration.
func Compress8x(state *[8]uint32, m, k *[64]uint32) { compress_pure.Compress8(state, m, k) }

// Expand fills m with the message schedule for one block of 16 big-endian
// words.
func Expand(block *[16]uint32, m *[64]uint32) { schedule.Expand(block, m) }

// RoundConstants returns a copy of the standard round constant table.
func RoundConstants() [64]uint32 { return consts.K }

// InitialState returns a copy of the SHA-256 initial hash value.
func InitialState() [8]uint32 { return consts.IV }
