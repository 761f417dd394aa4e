package sha256x

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tunaminer/sha256x/internal/alg"
	"github.com/tunaminer/sha256x/internal/consts"
)

// Unroll selects how many rounds of the compression function are expanded
// inline per loop iteration. Every value produces identical output; they only
// differ in speed on a given machine.
type Unroll int

const (
	Unroll1 Unroll = 1
	Unroll2 Unroll = 2
	Unroll4 Unroll = 4
	Unroll8 Unroll = 8
)

// Unrolls returns every supported unroll factor in ascending order.
func Unrolls() []Unroll {
	return []Unroll{Unroll1, Unroll2, Unroll4, Unroll8}
}

// DefaultUnroll returns the factor used by New. Cores that can keep many
// rounds in flight get the widest variant.
func DefaultUnroll() Unroll {
	if consts.HasWideIssue {
		return Unroll8
	}
	return Unroll4
}

// Valid reports whether u is a supported unroll factor.
func (u Unroll) Valid() bool {
	switch u {
	case Unroll1, Unroll2, Unroll4, Unroll8:
		return true
	}
	return false
}

func (u Unroll) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unroll(%d)", int(u))
	}
	return fmt.Sprintf("%dx", int(u))
}

// Compress runs the 64 rounds of the SHA-256 compression function over state
// with the variant selected by u. It panics if u is not valid.
func (u Unroll) Compress(state *[8]uint32, m, k *[64]uint32) {
	switch u {
	case Unroll1:
		Compress1x(state, m, k)
	case Unroll2:
		Compress2x(state, m, k)
	case Unroll4:
		Compress4x(state, m, k)
	case Unroll8:
		Compress8x(state, m, k)
	default:
		panic("invalid unroll factor")
	}
}

// ParseUnroll parses an unroll factor such as "4" or "4x". The value "auto"
// (or the empty string) returns DefaultUnroll.
func ParseUnroll(s string) (Unroll, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "auto" {
		return DefaultUnroll(), nil
	}

	n, err := strconv.Atoi(strings.TrimSuffix(v, "x"))
	if err != nil || !Unroll(n).Valid() {
		return 0, fmt.Errorf("invalid unroll factor: %q", s)
	}
	return Unroll(n), nil
}

// block chains the complete blocks of p into state with the standard constants.
func (u Unroll) block(state *[8]uint32, p []byte) {
	alg.Block(int(u), state, p)
}
