package seed

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"
	"testing/iotest"

	"vrand.dev/lane"
)

func TestAboveRedraw(t *testing.T) {
	var regs [2]lane.U32x2
	floors := []uint32{1, 127}
	// Register 1 starts with a lane at its floor and is redrawn once.
	src := bytes.NewReader([]byte{
		0, 0, 0, 2, 0xff, 0, 0, 0,
		0, 0, 0, 0x7f, 1, 0, 0, 0,
		0, 0, 0, 0x80, 0, 0, 1, 0,
	})
	draws, err := Above(src, regs[:], floors)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2}; !slices.Equal(draws, want) {
		t.Errorf("draws = %v, expected %v", draws, want)
	}
	if want := (lane.U32x2{2, 0xff000000}); regs[0] != want {
		t.Errorf("register 0 = %#x, expected %#x", regs[0], want)
	}
	if want := (lane.U32x2{0x80, 0x100}); regs[1] != want {
		t.Errorf("register 1 = %#x, expected %#x", regs[1], want)
	}
	if src.Len() != 0 {
		t.Errorf("%d entropy bytes left unread", src.Len())
	}
}

func TestAboveRedrawsWholeRegister(t *testing.T) {
	var regs [1]lane.U32x2
	// The first lane is fine but the second is not; both are replaced.
	src := bytes.NewReader([]byte{
		0, 0, 1, 0, 0, 0, 0, 1,
		0, 0, 2, 0, 0, 0, 3, 0,
	})
	draws, err := Above(src, regs[:], []uint32{1})
	if err != nil {
		t.Fatal(err)
	}
	if draws[0] != 2 || regs[0] != (lane.U32x2{0x200, 0x300}) {
		t.Errorf("got register %#x after %d draws", regs[0], draws[0])
	}
}

func TestEntropyErrors(t *testing.T) {
	errSource := errors.New("source failed")
	var regs [4]lane.U64x2
	if _, err := Above(iotest.ErrReader(errSource), regs[:], []uint64{1, 2, 3, 4}); !errors.Is(err, errSource) {
		t.Errorf("Above returned %v, expected %v", err, errSource)
	}
	if err := Fill(iotest.ErrReader(errSource), regs[:]); err != errSource {
		t.Errorf("Fill returned %v, expected %v unchanged", err, errSource)
	}
	// An exhausted source stops the rejection loop.
	short := bytes.NewReader(make([]byte, 4*16))
	if _, err := Above(short, regs[:], []uint64{1, 2, 3, 4}); err != io.EOF {
		t.Errorf("Above on exhausted source returned %v, expected %v", err, io.EOF)
	}
	if _, err := NonZero(bytes.NewReader(make([]byte, 10)), regs[:]); err != io.ErrUnexpectedEOF {
		t.Errorf("NonZero on short source returned %v, expected %v", err, io.ErrUnexpectedEOF)
	}
}

func TestNonZero(t *testing.T) {
	var regs [2]lane.U64x2
	buf := make([]byte, 2*2*16)
	// First draw: lane 1 is zero in both registers.
	buf[7] = 1
	// Second draw: lane 0 is set in the first register, lane 1 in the
	// second.
	buf[32+7] = 1
	buf[32+16+15] = 1
	draws, err := NonZero(bytes.NewReader(buf), regs[:])
	if err != nil {
		t.Fatal(err)
	}
	if draws != 2 {
		t.Errorf("NonZero took %d draws, expected 2", draws)
	}
	if want := [2]lane.U64x2{{1, 0}, {0, 1}}; regs != want {
		t.Errorf("registers = %#x, expected %#x", regs, want)
	}
}
