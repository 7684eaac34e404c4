// Package seed draws generator state from an entropy source and enforces
// the minimum-magnitude invariants some generators need.
package seed

import (
	"errors"
	"io"

	"vrand.dev/lane"
)

// ErrUnsupported is returned when a generator is asked to start from a
// caller-supplied fixed-size seed but can only be seeded from an entropy
// source.
var ErrUnsupported = errors.New("seed: fixed-size seeding is unsupported, seed from an entropy source")

type loader[V any] interface {
	Size() int
	Load(b []byte) V
}

// Fill sets every register from a single read of src. Errors from src are
// returned unchanged.
func Fill[V loader[V]](src io.Reader, regs []V) error {
	if len(regs) == 0 {
		return nil
	}
	n := regs[0].Size()
	buf := make([]byte, n*len(regs))
	if _, err := io.ReadFull(src, buf); err != nil {
		return err
	}
	for i := range regs {
		regs[i] = regs[i].Load(buf[i*n:])
	}
	return nil
}

// Above fills regs from src and then, register by register, redraws the
// whole register until every one of its lanes is greater than the
// register's floor. It returns the number of draws spent on each register,
// counting the initial fill.
func Above[V lane.Vector[V, T], T lane.Word](src io.Reader, regs []V, floors []T) ([]int, error) {
	if len(floors) != len(regs) {
		panic("seed: floors and registers differ in length")
	}
	if err := Fill(src, regs); err != nil {
		return nil, err
	}
	draws := make([]int, len(regs))
	for i := range regs {
		draws[i] = 1
		floor := regs[i].Broadcast(floors[i])
		for regs[i].Le(floor).Any() {
			if err := Fill(src, regs[i:i+1]); err != nil {
				return nil, err
			}
			draws[i]++
		}
	}
	return draws, nil
}

type combiner[V any] interface {
	loader[V]
	Or(y V) V
	Eq(y V) lane.Mask
}

// NonZero fills regs from src, redrawing all of them while any lane is
// zero in every register.
func NonZero[V combiner[V]](src io.Reader, regs []V) (int, error) {
	for draws := 1; ; draws++ {
		if err := Fill(src, regs); err != nil {
			return 0, err
		}
		var acc, zero V
		for _, r := range regs {
			acc = acc.Or(r)
		}
		if !acc.Eq(zero).Any() {
			return draws, nil
		}
	}
}
