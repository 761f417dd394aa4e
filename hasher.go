package sha256x

import (
	"encoding/binary"

	"github.com/tunaminer/sha256x/internal/consts"
	"github.com/tunaminer/sha256x/internal/utils"
)

//
// hasher contains state for a sha256 hash
//

type hasher struct {
	unroll Unroll
	len    uint64
	chain  [8]uint32
	buf    [consts.BlockLen]byte
	bufn   int
}

func (a *hasher) reset() {
	a.len = 0
	a.chain = consts.IV
	a.bufn = 0
}

// setup makes the zero hasher behave like a freshly reset default one.
func (a *hasher) setup() {
	if a.unroll == 0 {
		a.unroll = DefaultUnroll()
		a.reset()
	}
}

func (a *hasher) update(buf []byte) {
	a.setup()
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]
		if a.bufn < consts.BlockLen {
			return
		}
		a.unroll.block(&a.chain, a.buf[:])
		a.bufn = 0
	}

	// consume whole blocks directly with no copy
	if full := len(buf) &^ (consts.BlockLen - 1); full > 0 {
		a.unroll.block(&a.chain, buf[:full])
		buf = buf[full:]
	}

	a.bufn = copy(a.buf[:], buf)
}

// finalize pads a copy of the state and writes the digest to out. The
// hasher itself is left untouched so more data can be written afterwards.
func (a *hasher) finalize(out *[consts.Size]byte) {
	a.setup()
	chain := a.chain

	var tail [2 * consts.BlockLen]byte
	n := copy(tail[:], a.buf[:a.bufn])
	tail[n] = 0x80

	// the length goes in the last 8 bytes of one or two blocks
	end := consts.BlockLen
	if n >= consts.BlockLen-8 {
		end = 2 * consts.BlockLen
	}
	binary.BigEndian.PutUint64(tail[end-8:end], a.len<<3)

	a.unroll.block(&chain, tail[:end])
	utils.WordsToBytes(&chain, out)
}
