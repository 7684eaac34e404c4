// Package lane implements fixed-width vectors of unsigned integer lanes
// and the element-wise operations the generators in this module are
// built from.
//
// Vectors are arrays, so they are values: every operation returns a new
// vector and never aliases its operands. The byte view of a lane is
// big-endian; byte 0 of a lane is its most significant byte.
package lane

//go:generate go run gen.go

// Word is the set of lane element types.
type Word interface {
	~uint32 | ~uint64
}

// Vector is the operation set shared by every vector type V with lanes of
// type T.
type Vector[V any, T Word] interface {
	comparable

	// Lanes returns the number of lanes.
	Lanes() int
	// Size returns the size of the vector in bytes.
	Size() int
	// Lane returns lane i.
	Lane(i int) T
	// Broadcast returns a vector with v in every lane. The receiver is
	// not used.
	Broadcast(v T) V
	// Load decodes a vector from the first Size bytes of b. The receiver
	// is not used.
	Load(b []byte) V
	// Append appends the encoding of the vector to b.
	Append(b []byte) []byte

	Add(y V) V
	Sub(y V) V
	Mul(y V) V
	And(y V) V
	Or(y V) V
	Xor(y V) V
	Shl(n uint) V
	Shr(n uint) V

	// Eq reports the lanes equal to the corresponding lane of y.
	Eq(y V) Mask
	// Le reports the lanes less than or equal to the corresponding lane
	// of y.
	Le(y V) Mask

	RotateLeft(k uint) V
	RotateRight(k uint) V
}

// Mask is the result of a lane-wise comparison. Bit i is set when the
// comparison holds for lane i.
type Mask uint16

// Any reports whether the comparison holds for at least one lane.
func (m Mask) Any() bool {
	return m != 0
}

// All reports whether the comparison holds for all of the first n lanes.
func (m Mask) All(n int) bool {
	want := Mask(1<<n - 1)
	return m&want == want
}

// Lane reports whether the comparison holds for lane i.
func (m Mask) Lane(i int) bool {
	return m&(1<<i) != 0
}

// Vector32 is a Vector of 32-bit lanes with the byte-aligned rotations
// as methods. Generic code calling them directly pays no dispatch.
type Vector32[V any] interface {
	Vector[V, uint32]

	RotateLeft8() V
	RotateLeft16() V
	RotateLeft24() V
	RotateRight8() V
	RotateRight16() V
	RotateRight24() V
}

// Vector64 is the 64-bit counterpart of Vector32.
type Vector64[V any] interface {
	Vector[V, uint64]

	RotateLeft8() V
	RotateLeft16() V
	RotateLeft24() V
	RotateLeft32() V
	RotateLeft40() V
	RotateLeft48() V
	RotateLeft56() V
	RotateRight8() V
	RotateRight16() V
	RotateRight24() V
	RotateRight32() V
	RotateRight40() V
	RotateRight48() V
	RotateRight56() V
}

type shifter[V any] interface {
	Shl(n uint) V
	Shr(n uint) V
	Or(y V) V
}

// ShiftRotateLeft rotates the lanes of x, each w bits wide, left by k
// using two shifts and an or. 0 < k < w. Call sites with an amount that
// isn't a multiple of 8 can use it to skip the dispatch in RotateLeft.
func ShiftRotateLeft[V shifter[V]](x V, k, w uint) V {
	return x.Shl(k).Or(x.Shr(w - k))
}

// ShiftRotateRight is the mirror of ShiftRotateLeft.
func ShiftRotateRight[V shifter[V]](x V, k, w uint) V {
	return x.Shr(k).Or(x.Shl(w - k))
}
