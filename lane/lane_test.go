package lane

import (
	"math/rand/v2"
	"testing"

	"vrand.dev/internal/permute"
)

func rotl[T Word](v T, k, w uint) T {
	k %= w
	return v<<k | v>>(w-k)
}

func rotr[T Word](v T, k, w uint) T {
	k %= w
	return v>>k | v<<(w-k)
}

func random[V Vector[V, T], T Word](rnd *rand.ChaCha8) V {
	var z V
	buf := make([]byte, z.Size())
	rnd.Read(buf)
	return z.Load(buf)
}

// checkRotate compares the dispatcher against the shift-or formula and
// the derived byte permutation for every rotation amount.
func checkRotate[V Vector[V, T], T Word](t *testing.T, name string, bits uint) {
	t.Helper()
	rnd := rand.NewChaCha8([32]byte{byte(bits), 1})
	for range 200 {
		x := random[V, T](rnd)
		for k := range bits {
			left, right := x.RotateLeft(k), x.RotateRight(k)
			for i := range x.Lanes() {
				if got, want := left.Lane(i), rotl(x.Lane(i), k, bits); got != want {
					t.Fatalf("%s: lane %d of RotateLeft(%v, %d) = %#x, expected %#x", name, i, x, k, got, want)
				}
				if got, want := right.Lane(i), rotr(x.Lane(i), k, bits); got != want {
					t.Fatalf("%s: lane %d of RotateRight(%v, %d) = %#x, expected %#x", name, i, x, k, got, want)
				}
			}
			if got := left.RotateRight(k); got != x {
				t.Fatalf("%s: RotateRight(RotateLeft(%v, %d)) = %v", name, x, k, got)
			}
			if got := right.RotateLeft(k); got != x {
				t.Fatalf("%s: RotateLeft(RotateRight(%v, %d)) = %v", name, x, k, got)
			}
			if k%8 != 0 {
				continue
			}
			enc := x.Append(nil)
			block := int(bits / 8)
			for _, dir := range []bool{true, false} {
				idx := permute.RotateIndices(len(enc), block, int(k/8), dir)
				perm := make([]byte, len(enc))
				for i, j := range idx {
					perm[i] = enc[j]
				}
				want, got := x.Load(perm), right
				if dir {
					got = left
				}
				if got != want {
					t.Fatalf("%s: rotation by %d (left=%v) = %v, byte table gives %v", name, k, dir, got, want)
				}
			}
		}
		if got := x.RotateLeft(0); got != x {
			t.Fatalf("%s: RotateLeft(%v, 0) = %v", name, x, got)
		}
		if got := x.RotateLeft(bits); got != x {
			t.Fatalf("%s: RotateLeft(%v, %d) = %v", name, x, bits, got)
		}
	}
}

func TestRotate(t *testing.T) {
	checkRotate[U32x2, uint32](t, "U32x2", 32)
	checkRotate[U32x4, uint32](t, "U32x4", 32)
	checkRotate[U32x8, uint32](t, "U32x8", 32)
	checkRotate[U32x16, uint32](t, "U32x16", 32)
	checkRotate[U64x2, uint64](t, "U64x2", 64)
	checkRotate[U64x4, uint64](t, "U64x4", 64)
	checkRotate[U64x8, uint64](t, "U64x8", 64)
}

// checkFixed compares each byte-aligned rotation method with RotateLeft
// and RotateRight by the same amount.
func checkFixed[V Vector[V, T], T Word](t *testing.T, name string, left, right map[uint]func(V) V) {
	t.Helper()
	rnd := rand.NewChaCha8([32]byte{byte(len(left)), 2})
	for range 50 {
		x := random[V, T](rnd)
		for k, f := range left {
			if got, want := f(x), x.RotateLeft(k); got != want {
				t.Fatalf("%s: RotateLeft%d(%v) = %v, expected %v", name, k, x, got, want)
			}
		}
		for k, f := range right {
			if got, want := f(x), x.RotateRight(k); got != want {
				t.Fatalf("%s: RotateRight%d(%v) = %v, expected %v", name, k, x, got, want)
			}
		}
	}
}

func fixed32[V Vector32[V]](t *testing.T, name string) {
	t.Helper()
	checkFixed[V, uint32](t, name, map[uint]func(V) V{
		8:  func(x V) V { return x.RotateLeft8() },
		16: func(x V) V { return x.RotateLeft16() },
		24: func(x V) V { return x.RotateLeft24() },
	}, map[uint]func(V) V{
		8:  func(x V) V { return x.RotateRight8() },
		16: func(x V) V { return x.RotateRight16() },
		24: func(x V) V { return x.RotateRight24() },
	})
}

func fixed64[V Vector64[V]](t *testing.T, name string) {
	t.Helper()
	checkFixed[V, uint64](t, name, map[uint]func(V) V{
		8:  func(x V) V { return x.RotateLeft8() },
		16: func(x V) V { return x.RotateLeft16() },
		24: func(x V) V { return x.RotateLeft24() },
		32: func(x V) V { return x.RotateLeft32() },
		40: func(x V) V { return x.RotateLeft40() },
		48: func(x V) V { return x.RotateLeft48() },
		56: func(x V) V { return x.RotateLeft56() },
	}, map[uint]func(V) V{
		8:  func(x V) V { return x.RotateRight8() },
		16: func(x V) V { return x.RotateRight16() },
		24: func(x V) V { return x.RotateRight24() },
		32: func(x V) V { return x.RotateRight32() },
		40: func(x V) V { return x.RotateRight40() },
		48: func(x V) V { return x.RotateRight48() },
		56: func(x V) V { return x.RotateRight56() },
	})
}

func TestFixedRotations(t *testing.T) {
	fixed32[U32x2](t, "U32x2")
	fixed32[U32x4](t, "U32x4")
	fixed32[U32x8](t, "U32x8")
	fixed32[U32x16](t, "U32x16")
	fixed64[U64x2](t, "U64x2")
	fixed64[U64x4](t, "U64x4")
	fixed64[U64x8](t, "U64x8")
}

func TestShiftRotate(t *testing.T) {
	x := U64x2{0x0123456789abcdef, 1 << 63}
	for _, k := range []uint{1, 7, 13, 45, 63} {
		if got, want := ShiftRotateLeft(x, k, 64), x.RotateLeft(k); got != want {
			t.Errorf("ShiftRotateLeft(%#x, %d) = %#x, expected %#x", x, k, got, want)
		}
		if got, want := ShiftRotateRight(x, k, 64), x.RotateRight(k); got != want {
			t.Errorf("ShiftRotateRight(%#x, %d) = %#x, expected %#x", x, k, got, want)
		}
	}
}

func TestRotateKnown(t *testing.T) {
	x := U32x4{0x11223344, 0xaabbccdd, 0x00000001, 0x80000000}
	tests := []struct {
		k     uint
		left  U32x4
		right U32x4
	}{
		{8, U32x4{0x22334411, 0xbbccddaa, 0x00000100, 0x00000080}, U32x4{0x44112233, 0xddaabbcc, 0x01000000, 0x00800000}},
		{16, U32x4{0x33441122, 0xccddaabb, 0x00010000, 0x00008000}, U32x4{0x33441122, 0xccddaabb, 0x00010000, 0x00008000}},
		{4, U32x4{0x12233441, 0xabbccdda, 0x00000010, 0x00000008}, U32x4{0x41122334, 0xdaabbccd, 0x10000000, 0x08000000}},
	}
	for _, test := range tests {
		if got := x.RotateLeft(test.k); got != test.left {
			t.Errorf("RotateLeft(%#x, %d) = %#x, expected %#x", x, test.k, got, test.left)
		}
		if got := x.RotateRight(test.k); got != test.right {
			t.Errorf("RotateRight(%#x, %d) = %#x, expected %#x", x, test.k, got, test.right)
		}
	}
	y := U64x2{0x0102030405060708, 0xf0e0d0c0b0a09080}
	if got, want := y.RotateLeft(24), (U64x2{0x0405060708010203, 0xc0b0a09080f0e0d0}); got != want {
		t.Errorf("RotateLeft(%#x, 24) = %#x, expected %#x", y, got, want)
	}
}

func TestShuffle(t *testing.T) {
	x := U32x4{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f}
	var idx [16]uint8
	for i, j := range permute.RotateIndices(16, 4, 1, true) {
		idx[i] = uint8(j)
	}
	if got, want := x.Bytes().Shuffle(&idx).U32x4(), x.RotateLeft(8); got != want {
		t.Errorf("shuffled %#x to %#x, expected %#x", x, got, want)
	}
	b := x.Bytes()
	for i := range b {
		if b[i] != byte(i) {
			t.Fatalf("byte %d of %#x is %#x, expected most significant byte first", i, x, b[i])
		}
	}
	if got := b.U64x2(); got != (U64x2{0x0001020304050607, 0x08090a0b0c0d0e0f}) {
		t.Errorf("U64x2 view of %#x is %#x", x, got)
	}
}

func TestMulEven(t *testing.T) {
	x := U32x4{0xffffffff, 7, 3, 9}
	y := U32x4{0xffffffff, 11, 5, 13}
	// 0xffffffff^2 = 0xfffffffe_00000001.
	want := U32x4{0x00000001, 0xfffffffe, 15, 0}
	if got := x.MulEven(y); got != want {
		t.Errorf("MulEven(%#x, %#x) = %#x, expected %#x", x, y, got, want)
	}
}

func TestMulLow32(t *testing.T) {
	x := U64x2{0xdead_beef_ffffffff, 1 << 32}
	y := U64x2{0x1234_5678_ffffffff, 5}
	want := U64x2{0xfffffffe_00000001, 0}
	if got := x.MulLow32(y); got != want {
		t.Errorf("MulLow32(%#x, %#x) = %#x, expected %#x", x, y, got, want)
	}
}

func TestCompare(t *testing.T) {
	x := U32x4{1, 7, 8, 0}
	var z U32x4
	le := x.Le(z.Broadcast(7))
	if !le.Any() || le.All(4) || !le.Lane(0) || !le.Lane(1) || le.Lane(2) || !le.Lane(3) {
		t.Errorf("Le(%v, 7) = %04b", x, le)
	}
	if m := x.Le(z.Broadcast(0xffffffff)); !m.All(4) {
		t.Errorf("Le(%v, max) = %04b, expected all lanes", x, m)
	}
	if m := x.Eq(z); m != 0b1000 {
		t.Errorf("Eq(%v, 0) = %04b", x, m)
	}
	var w U32x16
	if m := w.Eq(w); !m.All(16) {
		t.Errorf("Eq of equal 16-lane vectors = %016b", m)
	}
}

func FuzzRotate(f *testing.F) {
	f.Add(uint64(0x0123456789abcdef), uint64(0xfedcba9876543210), uint(13))
	f.Add(uint64(1), uint64(1<<63), uint(32))
	f.Fuzz(func(t *testing.T, a, b uint64, k uint) {
		x := U64x2{a, b}
		if got, want := x.RotateLeft(k), ShiftRotateLeft(x, k%64, 64); k%64 != 0 && got != want {
			t.Errorf("RotateLeft(%#x, %d) = %#x, expected %#x", x, k, got, want)
		}
		if got := x.RotateLeft(k).RotateRight(k); got != x {
			t.Errorf("RotateRight(RotateLeft(%#x, %d)) = %#x", x, k, got)
		}
		y := U32x4{uint32(a), uint32(a >> 32), uint32(b), uint32(b >> 32)}
		if got := y.RotateRight(k).RotateLeft(k); got != y {
			t.Errorf("RotateLeft(RotateRight(%#x, %d)) = %#x", y, k, got)
		}
	})
}

func BenchmarkRotate(b *testing.B) {
	x := U64x4{1, 2, 3, 4}
	b.Run("bytes", func(b *testing.B) {
		for range b.N {
			x = x.RotateLeft(24)
		}
	})
	b.Run("shift", func(b *testing.B) {
		for range b.N {
			x = x.RotateLeft(23)
		}
	})
}
