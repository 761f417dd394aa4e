package alg

import (
	"fmt"

	"github.com/tunaminer/sha256x/internal/alg/compress/compress_pure"
	"github.com/tunaminer/sha256x/internal/alg/schedule"
	"github.com/tunaminer/sha256x/internal/consts"
	"github.com/tunaminer/sha256x/internal/utils"
)

// Compress runs the variant with the given unroll factor. The factor must be
// one of 1, 2, 4 or 8.
func Compress(unroll int, s *[8]uint32, m *[64]uint32) {
	switch unroll {
	case 1:
		compress_pure.Compress1(s, m, &consts.K)
	case 2:
		compress_pure.Compress2(s, m, &consts.K)
	case 4:
		compress_pure.Compress4(s, m, &consts.K)
	case 8:
		compress_pure.Compress8(s, m, &consts.K)
	default:
		panic(fmt.Sprintf("invalid unroll factor: %d", unroll))
	}
}

// Block chains every complete block in p into the hash state s. Trailing
// bytes past the last multiple of the block length are ignored.
func Block(unroll int, s *[8]uint32, p []byte) {
	var w [16]uint32
	var m [64]uint32

	for len(p) >= consts.BlockLen {
		utils.BytesToWords((*[consts.BlockLen]byte)(p[:consts.BlockLen]), &w)
		schedule.Expand(&w, &m)

		v := *s
		Compress(unroll, &v, &m)

		s[0] += v[0]
		s[1] += v[1]
		s[2] += v[2]
		s[3] += v[3]
		s[4] += v[4]
		s[5] += v[5]
		s[6] += v[6]
		s[7] += v[7]

		p = p[consts.BlockLen:]
	}
}
