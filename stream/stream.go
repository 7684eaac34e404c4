// Package stream turns a vector generator into a scalar source of
// integers and bytes, handing out lanes in lane order.
package stream

import (
	"encoding/binary"
	"math"

	"vrand.dev/lane"
)

// Generator produces a vector of lanes per call.
type Generator[V any] interface {
	Generate() V
}

// Source buffers the output of a Generator. It implements
// math/rand/v2.Source and io.Reader.
type Source[V lane.Vector[V, T], T lane.Word] struct {
	gen  Generator[V]
	buf  V
	next int
}

func New[V lane.Vector[V, T], T lane.Word](gen Generator[V]) *Source[V, T] {
	s := &Source[V, T]{gen: gen}
	s.next = s.buf.Lanes()
	return s
}

func (s *Source[V, T]) lane() T {
	if s.next == s.buf.Lanes() {
		s.buf = s.gen.Generate()
		s.next = 0
	}
	v := s.buf.Lane(s.next)
	s.next++
	return v
}

func wide[T lane.Word]() bool {
	return uint64(^T(0)) == math.MaxUint64
}

// Uint32 returns the low 32 bits of the next lane.
func (s *Source[V, T]) Uint32() uint32 {
	return uint32(s.lane())
}

// Uint64 returns the next 64-bit lane, or the next two 32-bit lanes with
// the first in the low half.
func (s *Source[V, T]) Uint64() uint64 {
	lo := uint64(s.lane())
	if wide[T]() {
		return lo
	}
	return lo | uint64(s.lane())<<32
}

// Read fills p with lanes encoded big-endian. A lane only partially
// needed to fill p is discarded. Read never fails.
func (s *Source[V, T]) Read(p []byte) (int, error) {
	n := len(p)
	var b [8]byte
	for len(p) > 0 {
		var enc []byte
		if wide[T]() {
			binary.BigEndian.PutUint64(b[:], uint64(s.lane()))
			enc = b[:8]
		} else {
			binary.BigEndian.PutUint32(b[:], uint32(s.lane()))
			enc = b[:4]
		}
		p = p[copy(p, enc):]
	}
	return n, nil
}
