//go:build ignore

// Command gen emits zlane.go: the vector types, their element-wise
// operations and one byte-permutation rotation method per supported
// (amount, lane width, vector width) triple, named RotateLeftK and
// RotateRightK.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"

	"vrand.dev/internal/permute"
)

var output = flag.String("o", "zlane.go", "output file")

type vector struct {
	bits  int // lane width
	lanes int
}

func (v vector) name() string { return fmt.Sprintf("U%dx%d", v.bits, v.lanes) }
func (v vector) elem() string { return fmt.Sprintf("uint%d", v.bits) }
func (v vector) block() int { return v.bits / 8 }
func (v vector) size() int { return v.lanes * v.block() }
func (v vector) view() string { return fmt.Sprintf("U8x%d", v.size()) }

var vectors = []vector{
	{32, 2}, {32, 4}, {32, 8}, {32, 16},
	{64, 2}, {64, 4}, {64, 8},
}

var views = []int{8, 16, 32, 64}

func main() {
	flag.Parse()
	w := new(bytes.Buffer)
	fmt.Fprintf(w, "// Code generated by gen.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package lane\n\n")
	fmt.Fprintf(w, "import \"encoding/binary\"\n")
	for _, v := range vectors {
		genVector(w, v)
	}
	for _, n := range views {
		genView(w, n)
	}
	src, err := format.Source(w.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen: failed to format output: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
}

var binops = []struct{ name, op string }{
	{"Add", "+="}, {"Sub", "-="}, {"Mul", "*="},
	{"And", "&="}, {"Or", "|="}, {"Xor", "^="},
}

func genVector(w *bytes.Buffer, v vector) {
	n, t := v.name(), v.elem()
	fmt.Fprintf(w, "\n// %s is a vector of %d %s lanes.\ntype %s [%d]%s\n", n, v.lanes, t, n, v.lanes, t)
	fmt.Fprintf(w, "\nfunc (x %s) Lanes() int { return %d }\n", n, v.lanes)
	fmt.Fprintf(w, "\nfunc (x %s) Size() int { return %d }\n", n, v.size())
	fmt.Fprintf(w, "\nfunc (x %s) Lane(i int) %s { return x[i] }\n", n, t)
	fmt.Fprintf(w, "\nfunc (%s) Broadcast(v %s) %s {\n\tvar r %s\n\tfor i := range r {\n\t\tr[i] = v\n\t}\n\treturn r\n}\n", n, t, n, n)
	fmt.Fprintf(w, "\nfunc (%s) Load(b []byte) %s {\n\t_ = b[%d]\n\tvar r %s\n\tfor i := range r {\n\t\tr[i] = binary.BigEndian.Uint%d(b[i*%d:])\n\t}\n\treturn r\n}\n",
		n, n, v.size()-1, n, v.bits, v.block())
	fmt.Fprintf(w, "\nfunc (x %s) Append(b []byte) []byte {\n\tfor _, v := range x {\n\t\tb = binary.BigEndian.AppendUint%d(b, v)\n\t}\n\treturn b\n}\n", n, v.bits)
	fmt.Fprintf(w, "\n// Bytes returns the byte view of x.\nfunc (x %s) Bytes() %s {\n\tvar b %s\n\tfor i, v := range x {\n\t\tbinary.BigEndian.PutUint%d(b[i*%d:], v)\n\t}\n\treturn b\n}\n",
		n, v.view(), v.view(), v.bits, v.block())
	for _, op := range binops {
		fmt.Fprintf(w, "\nfunc (x %s) %s(y %s) %s {\n\tfor i := range x {\n\t\tx[i] %s y[i]\n\t}\n\treturn x\n}\n", n, op.name, n, n, op.op)
	}
	fmt.Fprintf(w, "\nfunc (x %s) Shl(n uint) %s {\n\tfor i := range x {\n\t\tx[i] <<= n\n\t}\n\treturn x\n}\n", n, n)
	fmt.Fprintf(w, "\nfunc (x %s) Shr(n uint) %s {\n\tfor i := range x {\n\t\tx[i] >>= n\n\t}\n\treturn x\n}\n", n, n)
	fmt.Fprintf(w, "\nfunc (x %s) Eq(y %s) Mask {\n\tvar m Mask\n\tfor i := range x {\n\t\tif x[i] == y[i] {\n\t\t\tm |= 1 << i\n\t\t}\n\t}\n\treturn m\n}\n", n, n)
	fmt.Fprintf(w, "\nfunc (x %s) Le(y %s) Mask {\n\tvar m Mask\n\tfor i := range x {\n\t\tif x[i] <= y[i] {\n\t\t\tm |= 1 << i\n\t\t}\n\t}\n\treturn m\n}\n", n, n)
	switch v.bits {
	case 32:
		fmt.Fprintf(w, "\n// MulEven multiplies the even lanes of x and y into full 64-bit\n// products, stored low half first in each lane pair.\nfunc (x %s) MulEven(y %s) %s {\n\tfor i := 0; i < len(x); i += 2 {\n\t\tp := uint64(x[i]) * uint64(y[i])\n\t\tx[i], x[i+1] = uint32(p), uint32(p>>32)\n\t}\n\treturn x\n}\n", n, n, n)
	case 64:
		fmt.Fprintf(w, "\n// MulLow32 multiplies the low 32 bits of each lane of x and y into\n// full 64-bit products.\nfunc (x %s) MulLow32(y %s) %s {\n\tfor i := range x {\n\t\tx[i] = (x[i] & 0xffffffff) * (y[i] & 0xffffffff)\n\t}\n\treturn x\n}\n", n, n, n)
	}
	genRotate(w, v, "Left", true)
	genRotate(w, v, "Right", false)
}

func genRotate(w *bytes.Buffer, v vector, dir string, left bool) {
	n := v.name()
	fn := "Rotate" + dir
	fmt.Fprintf(w, "\nfunc (x %s) Rotate%s(k uint) %s {\n\tswitch k %%= %d; k {\n\tcase 0:\n\t\treturn x\n", n, dir, n, v.bits)
	for k := 8; k < v.bits; k += 8 {
		fmt.Fprintf(w, "\tcase %d:\n\t\treturn x.%s%d()\n", k, fn, k)
	}
	fmt.Fprintf(w, "\tdefault:\n\t\treturn ShiftRotate%s(x, k, %d)\n\t}\n}\n", dir, v.bits)
	for k := 8; k < v.bits; k += 8 {
		idx := permute.RotateIndices(v.size(), v.block(), k/8, left)
		elems := make([]string, len(idx))
		for i, j := range idx {
			elems[i] = fmt.Sprintf("b[%d]", j)
		}
		fmt.Fprintf(w, "\nfunc (x %s) %s%d() %s {\n\tb := x.Bytes()\n\treturn %s{%s}.%s()\n}\n",
			n, fn, k, n, v.view(), strings.Join(elems, ", "), n)
	}
}

func genView(w *bytes.Buffer, size int) {
	n := fmt.Sprintf("U8x%d", size)
	fmt.Fprintf(w, "\n// %s is the byte view of a %d-byte vector.\ntype %s [%d]uint8\n", n, size, n, size)
	fmt.Fprintf(w, "\n// Shuffle gathers the bytes of b by idx: out[i] = b[idx[i]].\nfunc (b %s) Shuffle(idx *[%d]uint8) %s {\n\tvar r %s\n\tfor i, j := range idx {\n\t\tr[i] = b[j]\n\t}\n\treturn r\n}\n", n, size, n, n)
	for _, v := range vectors {
		if v.size() != size {
			continue
		}
		fmt.Fprintf(w, "\n// %s returns the vector whose byte view is b.\nfunc (b %s) %s() %s {\n\tvar z %s\n\treturn z.Load(b[:])\n}\n", v.name(), n, v.name(), v.name(), v.name())
	}
}
