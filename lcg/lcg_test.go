package lcg

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"vrand.dev/lane"
)

func TestGolden(t *testing.T) {
	// Seed 1 gives the state {1, 2, 1, 2}; by hand:
	//	1*214013 + 2531011   = 2745024
	//	2*17405  + 10395331  = 10430141
	//	1*214013 + 13737667  = 13951680
	//	2*69069  + 1         = 138139
	g := NewUint32(1)
	want := lane.U32x4{2745024, 10430141, 13951680, 138139}
	if got := g.Generate(); got != want {
		t.Errorf("first output for seed 1: %v, expected %v", got, want)
	}
}

func TestLanes(t *testing.T) {
	// Every lane is an independent 32-bit LCG.
	const s = 0xdeadbeef
	g := NewUint32(s)
	ref := [4]uint32{s, s + 1, s, s + 1}
	for n := range 1000 {
		v := g.Generate()
		for i := range ref {
			ref[i] = ref[i]*mult[i] + incr[i]
			if v[i] != ref[i] {
				t.Fatalf("output %d lane %d: %#x, expected %#x", n, i, v[i], ref[i])
			}
		}
	}
}

func TestSeeding(t *testing.T) {
	g, err := New(bytes.NewReader([]byte{0x12, 0x34, 0x56, 0x78}))
	if err != nil {
		t.Fatal(err)
	}
	if want := (lane.U32x4{0x12345678, 0x12345679, 0x12345678, 0x12345679}); g.state != want {
		t.Errorf("state %#x, expected %#x", g.state, want)
	}
	if FromSeed([4]byte{0, 0, 0, 1}).state != NewUint32(1).state {
		t.Error("FromSeed and NewUint32 disagree")
	}
	errSource := errors.New("entropy exhausted")
	if _, err := New(iotest.ErrReader(errSource)); err != errSource {
		t.Errorf("New returned %v, expected %v", err, errSource)
	}
	// Wrap around in the odd lanes.
	if got := NewUint32(0xffffffff).state; got != (lane.U32x4{0xffffffff, 0, 0xffffffff, 0}) {
		t.Errorf("state for seed 0xffffffff: %#x", got)
	}
}

func BenchmarkLCG(b *testing.B) {
	g := NewUint32(1)
	b.SetBytes(16)
	for range b.N {
		g.Generate()
	}
}
