// Package sfc implements Chris Doty-Humphrey's Small Fast Chaotic
// generator SFC64 over vectors of independent 64-bit lanes.
package sfc

import (
	"io"

	"vrand.dev/lane"
	"vrand.dev/seed"
)

// warmup is the number of outputs discarded after seeding.
const warmup = 12

// SFC64 runs one SFC64 stream per lane of V. Each lane has a period of at
// least 2^64 thanks to the counter w.
type SFC64[V lane.Vector64[V]] struct {
	a, b, c, w V
	one        V
}

type (
	SFC64x2 = SFC64[lane.U64x2]
	SFC64x4 = SFC64[lane.U64x4]
	SFC64x8 = SFC64[lane.U64x8]
)

// New seeds a, b and c from src and the counter with 1, then discards the
// first outputs.
func New[V lane.Vector64[V]](src io.Reader) (*SFC64[V], error) {
	g := new(SFC64[V])
	var abc [3]V
	if err := seed.Fill(src, abc[:]); err != nil {
		return nil, err
	}
	g.a, g.b, g.c = abc[0], abc[1], abc[2]
	g.one = g.one.Broadcast(1)
	g.w = g.one
	for range warmup {
		g.Generate()
	}
	return g, nil
}

func (g *SFC64[V]) Generate() V {
	out := g.a.Add(g.b).Add(g.w)
	g.w = g.w.Add(g.one)
	g.a, g.b, g.c = g.b.Xor(g.b.Shr(11)), g.c.Add(g.c.Shl(3)), g.c.RotateLeft24().Add(out)
	return out
}
