package main

import (
	"fmt"
	"io"

	"golang.org/x/sys/cpu"
	"vrand.dev/lane"
	"vrand.dev/lcg"
	"vrand.dev/lfsr"
	"vrand.dev/mwc"
	"vrand.dev/sfc"
	"vrand.dev/stream"
	"vrand.dev/xoshiro"
)

// source is a seeded generator seen both as raw vectors and as a byte
// stream. Only one of the two views should be used.
type source struct {
	io.Reader
	// next returns the lanes of the next vector, widened to 64 bits.
	next func() []uint64
}

type algorithm struct {
	name  string
	bits  int
	lanes int
	open  func(src io.Reader) (*source, error)
}

func wrap[V lane.Vector[V, T], T lane.Word](g stream.Generator[V], err error) (*source, error) {
	if err != nil {
		return nil, err
	}
	return &source{
		Reader: stream.New[V, T](g),
		next: func() []uint64 {
			v := g.Generate()
			lanes := make([]uint64, v.Lanes())
			for i := range lanes {
				lanes[i] = uint64(v.Lane(i))
			}
			return lanes
		},
	}, nil
}

var algorithms = []algorithm{
	{"lfsr113x2", 32, 2, func(r io.Reader) (*source, error) { return wrap[lane.U32x2, uint32](lfsr.New113[lane.U32x2](r)) }},
	{"lfsr113x4", 32, 4, func(r io.Reader) (*source, error) { return wrap[lane.U32x4, uint32](lfsr.New113[lane.U32x4](r)) }},
	{"lfsr113x8", 32, 8, func(r io.Reader) (*source, error) { return wrap[lane.U32x8, uint32](lfsr.New113[lane.U32x8](r)) }},
	{"lfsr113x16", 32, 16, func(r io.Reader) (*source, error) { return wrap[lane.U32x16, uint32](lfsr.New113[lane.U32x16](r)) }},
	{"lfsr258x2", 64, 2, func(r io.Reader) (*source, error) { return wrap[lane.U64x2, uint64](lfsr.New258[lane.U64x2](r)) }},
	{"lfsr258x4", 64, 4, func(r io.Reader) (*source, error) { return wrap[lane.U64x4, uint64](lfsr.New258[lane.U64x4](r)) }},
	{"lfsr258x8", 64, 8, func(r io.Reader) (*source, error) { return wrap[lane.U64x8, uint64](lfsr.New258[lane.U64x8](r)) }},
	{"mwcx2", 64, 2, func(r io.Reader) (*source, error) { return wrap[lane.U64x2, uint64](mwc.NewX2(r)) }},
	{"mwcx4", 64, 2, func(r io.Reader) (*source, error) { return wrap[lane.U64x2, uint64](mwc.NewX4(r)) }},
	{"mwcx8", 64, 2, func(r io.Reader) (*source, error) { return wrap[lane.U64x2, uint64](mwc.NewX8(r)) }},
	{"lcg", 32, 4, func(r io.Reader) (*source, error) { return wrap[lane.U32x4, uint32](lcg.New(r)) }},
	{"xoshiro256x2", 64, 2, func(r io.Reader) (*source, error) { return wrap[lane.U64x2, uint64](xoshiro.New[lane.U64x2](r)) }},
	{"xoshiro256x4", 64, 4, func(r io.Reader) (*source, error) { return wrap[lane.U64x4, uint64](xoshiro.New[lane.U64x4](r)) }},
	{"xoshiro256x8", 64, 8, func(r io.Reader) (*source, error) { return wrap[lane.U64x8, uint64](xoshiro.New[lane.U64x8](r)) }},
	{"sfc64x2", 64, 2, func(r io.Reader) (*source, error) { return wrap[lane.U64x2, uint64](sfc.New[lane.U64x2](r)) }},
	{"sfc64x4", 64, 4, func(r io.Reader) (*source, error) { return wrap[lane.U64x4, uint64](sfc.New[lane.U64x4](r)) }},
	{"sfc64x8", 64, 8, func(r io.Reader) (*source, error) { return wrap[lane.U64x8, uint64](sfc.New[lane.U64x8](r)) }},
}

func lookup(name string) (algorithm, error) {
	if name == "" {
		name = defaultAlgorithm()
	}
	for _, a := range algorithms {
		if a.name == name {
			return a, nil
		}
	}
	return algorithm{}, fmt.Errorf("unknown algorithm: %q", name)
}

// defaultAlgorithm picks the LFSR113 width matching the widest vector
// registers of the machine.
func defaultAlgorithm() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "lfsr113x16"
	case cpu.X86.HasAVX2:
		return "lfsr113x8"
	default:
		return "lfsr113x4"
	}
}

type feature struct {
	name string
	has  bool
}

func features() []feature {
	return []feature{
		{"sse2", cpu.X86.HasSSE2},
		{"ssse3", cpu.X86.HasSSSE3},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"avx512bw", cpu.X86.HasAVX512BW},
		{"asimd", cpu.ARM64.HasASIMD},
	}
}
