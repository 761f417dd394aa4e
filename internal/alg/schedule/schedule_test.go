package schedule

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestExpand(t *testing.T) {
	for n := 0; n < 100; n++ {
		var w [16]uint32
		for i := range &w {
			w[i] = pcg.Uint32()
		}

		var m [64]uint32
		Expand(&w, &m)

		assert.DeepEqual(t, m[:16], w[:])
		for i := 16; i < 64; i++ {
			x, y := m[i-15], m[i-2]
			sig0 := (x>>7 | x<<25) ^ (x>>18 | x<<14) ^ (x >> 3)
			sig1 := (y>>17 | y<<15) ^ (y>>19 | y<<13) ^ (y >> 10)
			assert.Equal(t, m[i], sig1+m[i-7]+sig0+m[i-16])
		}
	}
}

func TestExpandABC(t *testing.T) {
	// "abc" padded to one block
	w := [16]uint32{0x61626380, 15: 0x18}

	var m [64]uint32
	Expand(&w, &m)

	assert.Equal(t, m[16], uint32(0x61626380))
	assert.Equal(t, m[17], uint32(0x000f0000))
	assert.Equal(t, m[63], uint32(0x12b1edeb))
}
