package sha256x

import (
	"reflect"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestParseUnroll(t *testing.T) {
	for _, u := range Unrolls() {
		got, err := ParseUnroll(u.String())
		assert.NoError(t, err)
		assert.Equal(t, got, u)
	}

	for in, exp := range map[string]Unroll{
		"1": Unroll1, "2": Unroll2, " 4 ": Unroll4, "8X": Unroll8,
		"auto": DefaultUnroll(), "": DefaultUnroll(),
	} {
		got, err := ParseUnroll(in)
		assert.NoError(t, err)
		assert.Equal(t, got, exp)
	}

	for _, in := range []string{"0", "3", "16", "x", "fast", "-1"} {
		_, err := ParseUnroll(in)
		assert.Error(t, err)
	}
}

func TestUnrollString(t *testing.T) {
	assert.Equal(t, Unroll4.String(), "4x")
	assert.Equal(t, Unroll(5).String(), "Unroll(5)")
	assert.Equal(t, DefaultUnroll().Valid(), true)
}

func TestUnrollCompressAgrees(t *testing.T) {
	k := RoundConstants()

	for n := 0; n < 100; n++ {
		var s [8]uint32
		var m [64]uint32
		for i := range &s {
			s[i] = pcg.Uint32()
		}
		for i := range &m {
			m[i] = pcg.Uint32()
		}

		exp := s
		Compress1x(&exp, &m, &k)

		for _, u := range Unrolls() {
			got := s
			u.Compress(&got, &m, &k)
			assert.Equal(t, got, exp)
		}
	}
}

func TestUnrollCompressInvalid(t *testing.T) {
	defer func() { assert.Equal(t, recover() != nil, true) }()

	var s [8]uint32
	var m, k [64]uint32
	Unroll(7).Compress(&s, &m, &k)
}

func TestCompressABC(t *testing.T) {
	block := [16]uint32{0x61626380, 15: 0x18}

	var m [64]uint32
	Expand(&block, &m)
	k := RoundConstants()

	for _, u := range Unrolls() {
		s := InitialState()
		u.Compress(&s, &m, &k)

		iv := InitialState()
		for i := range s {
			s[i] += iv[i]
		}
		assert.Equal(t, s, [8]uint32{
			0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223,
			0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad,
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	block := [16]uint32{0x80000000}

	var m [64]uint32
	Expand(&block, &m)
	k := RoundConstants()

	for _, u := range Unrolls() {
		s := InitialState()
		u.Compress(&s, &m, &k)

		iv := InitialState()
		for i := range s {
			s[i] += iv[i]
		}
		assert.Equal(t, s, [8]uint32{
			0xe3b0c442, 0x98fc1c14, 0x9afbf4c8, 0x996fb924,
			0x27ae41e4, 0x649b934c, 0xa495991b, 0x7852b855,
		})
	}
}

func TestCompressFixedSizes(t *testing.T) {
	for _, fn := range []interface{}{Compress1x, Compress2x, Compress4x, Compress8x, Unroll1.Compress} {
		typ := reflect.TypeOf(fn)
		assert.Equal(t, typ.NumIn(), 3)

		state := typ.In(0)
		assert.Equal(t, state.Kind(), reflect.Ptr)
		assert.Equal(t, state.Elem().Kind(), reflect.Array)
		assert.Equal(t, state.Elem().Len(), 8)

		for _, in := range []reflect.Type{typ.In(1), typ.In(2)} {
			assert.Equal(t, in.Kind(), reflect.Ptr)
			assert.Equal(t, in.Elem().Kind(), reflect.Array)
			assert.Equal(t, in.Elem().Len(), 64)
		}
	}
}

func TestRoundConstantsCopy(t *testing.T) {
	k := RoundConstants()
	k[0] = 0
	assert.Equal(t, RoundConstants()[0], uint32(0x428a2f98))

	iv := InitialState()
	iv[0] = 0
	assert.Equal(t, InitialState()[0], uint32(0x6a09e667))
}
