// Package mwc implements multiply-with-carry generators over pairs of
// 64-bit lanes, each lane holding a 32-bit value in its low half and a
// 32-bit carry in its high half.
//
// The wider variants rotate between several multiplier sets, one state
// vector per set, to spread the short cycles of any single multiplier
// over a longer combined period.
package mwc

import (
	"io"

	"vrand.dev/lane"
	"vrand.dev/seed"
)

// factors holds the multipliers, two lanes per parameter set.
var factors = [4]lane.U64x2{
	{4294963023, 3947008974},
	{4162943475, 2654432763},
	{3874257210, 2936881968},
	{4294957665, 2811536238},
}

// MWC is a multiply-with-carry generator. The zero value is not seeded
// and must not be used.
type MWC struct {
	state [len(factors)]lane.U64x2
	sets  int
	idx   int
}

// NewX2 returns a generator of 2 streams using a single parameter set.
func NewX2(src io.Reader) (*MWC, error) {
	return newMWC(src, 1)
}

// NewX4 returns a generator of 4 streams over 2 parameter sets.
func NewX4(src io.Reader) (*MWC, error) {
	return newMWC(src, 2)
}

// NewX8 returns a generator of 8 streams over 4 parameter sets.
func NewX8(src io.Reader) (*MWC, error) {
	return newMWC(src, 4)
}

// FromSeed always fails with seed.ErrUnsupported.
func FromSeed(b []byte) (*MWC, error) {
	return nil, seed.ErrUnsupported
}

// newMWC fills the state from src as is. Degenerate states aren't
// rejected; the carry usually moves the generator away from them in a
// few steps.
func newMWC(src io.Reader, sets int) (*MWC, error) {
	g := &MWC{sets: sets}
	if err := seed.Fill(src, g.state[:sets]); err != nil {
		return nil, err
	}
	return g, nil
}

// Index returns the parameter set the next call to Generate uses.
func (g *MWC) Index() int {
	return g.idx
}

func (g *MWC) Generate() lane.U64x2 {
	x := g.state[g.idx]
	// Widening multiply of the values plus the old carries.
	y := x.MulLow32(factors[g.idx]).Add(x.Shr(32))
	g.state[g.idx] = y

	// The high carry bits are poor; scramble the output.
	y = y.Xor(y.Shl(30))
	y = y.Xor(y.Shr(35))
	y = y.Xor(y.Shl(13))

	g.idx++
	if g.idx == g.sets {
		g.idx = 0
	}
	return y
}
