package sha256x

import (
	"errors"

	"github.com/tunaminer/sha256x/internal/consts"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = consts.Size

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = consts.BlockLen

// Hasher is a hash.Hash for SHA-256 that compresses with a chosen unroll
// factor. The zero value is ready to use and compresses with DefaultUnroll.
type Hasher struct {
	h hasher
}

// New returns a new Hasher using DefaultUnroll.
func New() *Hasher {
	h := &Hasher{h: hasher{unroll: DefaultUnroll()}}
	h.h.reset()
	return h
}

// NewUnrolled returns a new Hasher that compresses with the given unroll
// factor.
func NewUnrolled(u Unroll) (*Hasher, error) {
	if !u.Valid() {
		return nil, errors.New("invalid unroll factor")
	}
	h := &Hasher{h: hasher{unroll: u}}
	h.h.reset()
	return h, nil
}

// Unroll returns the unroll factor the Hasher compresses with.
func (h *Hasher) Unroll() Unroll {
	h.h.setup()
	return h.h.unroll
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (h *Hasher) WriteString(s string) (int, error) {
	h.h.update([]byte(s))
	return len(s), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	var tmp [Size]byte
	h.h.finalize(&tmp)
	return append(b, tmp[:]...)
}

// Sum256 returns the SHA-256 digest of the data.
func Sum256(data []byte) (sum [Size]byte) {
	h := hasher{unroll: DefaultUnroll()}
	h.reset()
	h.update(data)
	h.finalize(&sum)
	return sum
}

// SumUnrolled returns the SHA-256 digest of the data computed with the given
// unroll factor.
func SumUnrolled(u Unroll, data []byte) (sum [Size]byte, err error) {
	if !u.Valid() {
		return sum, errors.New("invalid unroll factor")
	}
	h := hasher{unroll: u}
	h.reset()
	h.update(data)
	h.finalize(&sum)
	return sum, nil
}

// SumDouble256 returns SHA-256(SHA-256(data)), the form used for block and
// share hashes by proof of work miners.
func SumDouble256(data []byte) [Size]byte {
	first := Sum256(data)
	return Sum256(first[:])
}

// SumDoubleUnrolled is SumDouble256 with both passes computed with the given
// unroll factor.
func SumDoubleUnrolled(u Unroll, data []byte) (sum [Size]byte, err error) {
	first, err := SumUnrolled(u, data)
	if err != nil {
		return sum, err
	}
	return SumUnrolled(u, first[:])
}
