// Package lcg implements Intel's SSE2 linear congruential generator
// ("rand_sse"), four 32-bit lanes advanced with widening multiplies.
//
// SSE2 has no 32-bit lane multiply, only a widening multiply of the even
// lanes, so odd lanes are swapped into even positions, multiplied
// separately and merged back. The period of each lane is 2^32 and the low
// bits are weak; callers that care should discard the low 16 bits.
package lcg

import (
	"encoding/binary"
	"io"

	"vrand.dev/lane"
)

var (
	mult = lane.U32x4{214013, 17405, 214013, 69069}
	incr = lane.U32x4{2531011, 10395331, 13737667, 1}
	even = lane.U32x4{0xffffffff, 0, 0xffffffff, 0}
)

// LCG is the generator state. The zero value is not seeded and must not
// be used.
type LCG struct {
	state lane.U32x4
}

// NewUint32 seeds a generator with s in every lane, offset by one in the
// odd lanes.
func NewUint32(s uint32) *LCG {
	var z lane.U32x4
	return &LCG{state: z.Broadcast(s).Add(lane.U32x4{0, 1, 0, 1})}
}

// FromSeed seeds a generator from 4 big-endian seed bytes.
func FromSeed(seed [4]byte) *LCG {
	return NewUint32(binary.BigEndian.Uint32(seed[:]))
}

// New seeds a generator from 4 bytes of src.
func New(src io.Reader) (*LCG, error) {
	var seed [4]byte
	if _, err := io.ReadFull(src, seed[:]); err != nil {
		return nil, err
	}
	return FromSeed(seed), nil
}

// swap exchanges the lanes of each even/odd pair, _MM_SHUFFLE(2, 3, 0, 1).
func swap(x lane.U32x4) lane.U32x4 {
	return lane.U32x4{x[1], x[0], x[3], x[2]}
}

func (g *LCG) Generate() lane.U32x4 {
	split := swap(g.state)
	cur := g.state.MulEven(mult).And(even)
	split = split.MulEven(swap(mult)).And(even)
	g.state = cur.Or(swap(split)).Add(incr)
	return g.state
}
