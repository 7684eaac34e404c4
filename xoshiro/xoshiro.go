// Package xoshiro implements the xoshiro256** pseudo-random number
// generator, both as a scalar Source and over vectors of independent
// 64-bit lanes. The implementation is based on the public domain
// [C implementation].
//
// [C implementation]: https://xoshiro.di.unimi.it/xoshiro256starstar.c
package xoshiro

import (
	"encoding/binary"
	"io"
	"math/bits"

	"vrand.dev/lane"
	"vrand.dev/seed"
)

// jump advances a state by 2^128 steps.
var jump = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}

// Source is the scalar generator. Lane i of a Xoshiro256 produces the
// sequence of a Source holding lane i of each register. A Source must
// not start from the all-zero state.
type Source struct {
	s [4]uint64
}

// NewSource returns a Source with the given state words.
func NewSource(s0, s1, s2, s3 uint64) *Source {
	return &Source{s: [4]uint64{s0, s1, s2, s3}}
}

// Seed sets the state from 4 big-endian words.
func (s *Source) Seed(seed [32]byte) {
	for i := range s.s {
		s.s[i] = binary.BigEndian.Uint64(seed[8*i:])
	}
}

func (s *Source) Uint64() uint64 {
	x := &s.s
	out := bits.RotateLeft64(x[1]*5, 7) * 9
	t := x[1] << 17
	x[2] ^= x[0]
	x[3] ^= x[1]
	x[1] ^= x[2]
	x[0] ^= x[3]
	x[2] ^= t
	x[3] = bits.RotateLeft64(x[3], 45)
	return out
}

// Jump is equivalent to 2^128 calls to Uint64.
func (s *Source) Jump() {
	var acc [4]uint64
	for _, j := range jump {
		for b := range 64 {
			if j>>b&1 == 1 {
				for i := range acc {
					acc[i] ^= s.s[i]
				}
			}
			s.Uint64()
		}
	}
	s.s = acc
}

// Xoshiro256 runs one xoshiro256** stream per 64-bit lane of V.
type Xoshiro256[V lane.Vector[V, uint64]] struct {
	s          [4]V
	five, nine V
}

type (
	Xoshiro256x2 = Xoshiro256[lane.U64x2]
	Xoshiro256x4 = Xoshiro256[lane.U64x4]
	Xoshiro256x8 = Xoshiro256[lane.U64x8]
)

// New seeds a generator from src. The all-zero state never leaves zero,
// so the whole state is redrawn while any lane is zero in all registers.
func New[V lane.Vector[V, uint64]](src io.Reader) (*Xoshiro256[V], error) {
	g := new(Xoshiro256[V])
	if _, err := seed.NonZero(src, g.s[:]); err != nil {
		return nil, err
	}
	g.five = g.five.Broadcast(5)
	g.nine = g.nine.Broadcast(9)
	return g, nil
}

func (g *Xoshiro256[V]) Generate() V {
	s := &g.s
	result := lane.ShiftRotateLeft(s[1].Mul(g.five), 7, 64).Mul(g.nine)

	t := s[1].Shl(17)

	s[2] = s[2].Xor(s[0])
	s[3] = s[3].Xor(s[1])
	s[1] = s[1].Xor(s[2])
	s[0] = s[0].Xor(s[3])

	s[2] = s[2].Xor(t)

	s[3] = lane.ShiftRotateLeft(s[3], 45, 64)

	return result
}

// Jump advances every lane by 2^128 steps. It can be used to split one
// seeded generator into non-overlapping sequences.
func (g *Xoshiro256[V]) Jump() {
	var acc [4]V
	for _, j := range jump {
		for b := range 64 {
			if j&(1<<b) != 0 {
				for i := range acc {
					acc[i] = acc[i].Xor(g.s[i])
				}
			}
			g.Generate()
		}
	}
	g.s = acc
}
