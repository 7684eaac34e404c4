// Package lfsr implements L'Ecuyer's combined Tausworthe generators
// LFSR113 and LFSR258 over vectors of independent lanes.
//
// Each generator xors several xorshift registers with maximal periods.
// The parameters are those of the reference implementation at
// https://www-labs.iro.umontreal.ca/~simul.
package lfsr

import (
	"io"

	"vrand.dev/lane"
	"vrand.dev/seed"
)

type tap[T lane.Word] struct {
	s1, s2, s3 uint
	mask       T
	// floor is the largest value a register lane may not hold.
	floor T
}

var taps113 = [4]tap[uint32]{
	{6, 13, 18, 0xfffffffe, 1},
	{2, 27, 2, 0xfffffff8, 7},
	{13, 21, 7, 0xfffffff0, 15},
	{3, 12, 13, 0xffffff80, 127},
}

var taps258 = [5]tap[uint64]{
	{1, 53, 10, 0xfffffffffffffffe, 1},
	{24, 50, 5, 0xfffffffffffffe00, 511},
	{3, 23, 29, 0xfffffffffffff000, 4095},
	{5, 24, 23, 0xfffffffffffe0000, 131071},
	{3, 33, 8, 0xffffffffff800000, 8388607},
}

// LFSR113 has a period of 2^113 in each 32-bit lane.
type LFSR113[V lane.Vector[V, uint32]] struct {
	z    [4]V
	mask [4]V
}

type (
	LFSR113x2  = LFSR113[lane.U32x2]
	LFSR113x4  = LFSR113[lane.U32x4]
	LFSR113x8  = LFSR113[lane.U32x8]
	LFSR113x16 = LFSR113[lane.U32x16]
)

// LFSR258 has a period of 2^258 in each 64-bit lane.
type LFSR258[V lane.Vector[V, uint64]] struct {
	z    [5]V
	mask [5]V
}

type (
	LFSR258x2 = LFSR258[lane.U64x2]
	LFSR258x4 = LFSR258[lane.U64x4]
	LFSR258x8 = LFSR258[lane.U64x8]
)

// New113 seeds an LFSR113 generator from src. Register lanes at or below
// the register's minimum are redrawn, a whole register at a time.
func New113[V lane.Vector[V, uint32]](src io.Reader) (*LFSR113[V], error) {
	g := new(LFSR113[V])
	if err := seedRegisters(src, g.z[:], g.mask[:], taps113[:]); err != nil {
		return nil, err
	}
	return g, nil
}

// New258 seeds an LFSR258 generator from src, like New113.
func New258[V lane.Vector[V, uint64]](src io.Reader) (*LFSR258[V], error) {
	g := new(LFSR258[V])
	if err := seedRegisters(src, g.z[:], g.mask[:], taps258[:]); err != nil {
		return nil, err
	}
	return g, nil
}

// FromSeed113 always fails with seed.ErrUnsupported: arbitrary seed
// bytes can't be guaranteed to satisfy the register minimums.
func FromSeed113[V lane.Vector[V, uint32]](b []byte) (*LFSR113[V], error) {
	return nil, seed.ErrUnsupported
}

// FromSeed258 always fails with seed.ErrUnsupported.
func FromSeed258[V lane.Vector[V, uint64]](b []byte) (*LFSR258[V], error) {
	return nil, seed.ErrUnsupported
}

func seedRegisters[V lane.Vector[V, T], T lane.Word](src io.Reader, z, mask []V, taps []tap[T]) error {
	floors := make([]T, len(taps))
	for i, t := range taps {
		floors[i] = t.floor
		mask[i] = mask[i].Broadcast(t.mask)
	}
	_, err := seed.Above(src, z, floors)
	return err
}

func (g *LFSR113[V]) Generate() V {
	return step(g.z[:], g.mask[:], taps113[:])
}

func (g *LFSR258[V]) Generate() V {
	return step(g.z[:], g.mask[:], taps258[:])
}

// step advances every register and returns their xor.
func step[V lane.Vector[V, T], T lane.Word](z, mask []V, taps []tap[T]) V {
	var out V
	for i, t := range taps {
		b := z[i].Shl(t.s1).Xor(z[i]).Shr(t.s2)
		z[i] = z[i].And(mask[i]).Shl(t.s3).Xor(b)
		out = out.Xor(z[i])
	}
	return out
}
