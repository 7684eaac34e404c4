package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/image/bmp"
	"vrand.dev/entropy"
	"vrand.dev/lane"
	"vrand.dev/lcg"
	"vrand.dev/stream"
)

func TestRandSystemEntropy(t *testing.T) {
	oldr := rand.Reader
	defer func() {
		rand.Reader = oldr
	}()
	randBytes := make([]byte, 1000)
	if _, err := io.ReadFull(rand.Reader, randBytes); err != nil {
		t.Fatal(err)
	}
	rand.Reader = bytes.NewReader(randBytes)
	const n = 64
	out := exec(t, nil, "rand -alg lcg -n %d", n)
	g, err := lcg.New(bytes.NewReader(randBytes))
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, n)
	stream.New[lane.U32x4, uint32](g).Read(want)
	if !bytes.Equal(out, want) {
		t.Errorf("command rand did not seed from crypto/rand.Reader")
	}
}

func TestRandSeeded(t *testing.T) {
	for _, a := range algorithms {
		out1 := exec(t, nil, "rand -alg %s -n 96 -seed 00ff10", a.name)
		out2 := exec(t, nil, "rand -alg %s -n 96 -seed 00ff10", a.name)
		if len(out1) != 96 {
			t.Fatalf("%s: got %d bytes, want 96", a.name, len(out1))
		}
		if !bytes.Equal(out1, out2) {
			t.Errorf("%s: equal seeds produced different output", a.name)
		}
		other := exec(t, nil, "rand -alg %s -n 96 -seed 00ff11", a.name)
		if bytes.Equal(out1, other) {
			t.Errorf("%s: different seeds produced equal output", a.name)
		}
	}
}

func TestRandStdinSeed(t *testing.T) {
	seed := []byte{0x00, 0xff, 0x10}
	got := exec(t, seed, "rand -alg sfc64x4 -n 48 -seed -")
	want := exec(t, nil, "rand -alg sfc64x4 -n 48 -seed %x", seed)
	if !bytes.Equal(got, want) {
		t.Errorf("seed from standard in differs from -seed %x", seed)
	}
}

func TestRandMatchesLibrary(t *testing.T) {
	seed := []byte("vrand")
	out := exec(t, nil, "rand -alg lcg -n 32 -seed %x", seed)
	g, err := lcg.New(entropy.NewStream(seed))
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 32)
	stream.New[lane.U32x4, uint32](g).Read(want)
	if !bytes.Equal(out, want) {
		t.Errorf("rand output %x, want %x", out, want)
	}
}

func TestDump(t *testing.T) {
	tests := []struct {
		alg    string
		lanes  int
		digits int
	}{
		{"lfsr113x16", 16, 8},
		{"lfsr258x4", 4, 16},
		{"mwcx8", 2, 16},
		{"lcg", 4, 8},
	}
	for _, test := range tests {
		out := exec(t, nil, "dump -alg %s -count 3 -seed 01", test.alg)
		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		if len(lines) != 3 {
			t.Fatalf("%s: got %d lines, want 3", test.alg, len(lines))
		}
		for _, l := range lines {
			fields := strings.Fields(l)
			if len(fields) != test.lanes {
				t.Errorf("%s: line %q has %d lanes, want %d", test.alg, l, len(fields), test.lanes)
			}
			for _, f := range fields {
				if len(f) != test.digits {
					t.Errorf("%s: lane %q has %d digits, want %d", test.alg, f, len(f), test.digits)
				}
			}
		}
	}
}

func TestDumpCBOR(t *testing.T) {
	out := exec(t, nil, "dump -alg xoshiro256x4 -count 5 -seed 02 -format cbor")
	var rec dumpRecord
	if err := cbor.Unmarshal(out, &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Algorithm != "xoshiro256x4" || rec.Bits != 64 || len(rec.Vectors) != 5 {
		t.Fatalf("got record %s/%d with %d vectors", rec.Algorithm, rec.Bits, len(rec.Vectors))
	}
	hexOut := exec(t, nil, "dump -alg xoshiro256x4 -count 5 -seed 02")
	var lines []string
	for _, v := range rec.Vectors {
		lanes := make([]string, len(v))
		for i, l := range v {
			lanes[i] = fmt.Sprintf("%016x", l)
		}
		lines = append(lines, strings.Join(lanes, " "))
	}
	if got, want := strings.Join(lines, "\n")+"\n", string(hexOut); got != want {
		t.Errorf("cbor dump:\n%s\nhex dump:\n%s", got, want)
	}
	again := exec(t, nil, "dump -alg xoshiro256x4 -count 5 -seed 02 -format cbor")
	if !bytes.Equal(out, again) {
		t.Error("cbor encoding is not deterministic")
	}
}

func TestBitmap(t *testing.T) {
	const w, h = 16, 16
	out := exec(t, nil, "bitmap -alg lfsr113x8 -w %d -h %d -seed 03", w, h)
	img, err := bmp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bitmap is %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
	bits := exec(t, nil, "rand -alg lfsr113x8 -n %d -seed 03", w*h/8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			want := bits[i/8]>>(7-i%8)&1 == 1
			r, _, _, _ := img.At(x, y).RGBA()
			if got := r != 0; got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBitmapFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "noise.bmp")
	if out := exec(t, nil, "bitmap -alg sfc64x2 -w 33 -h 7 -seed 04 -o %s", name); len(out) > 0 {
		t.Errorf("bitmap wrote %d bytes to standard out", len(out))
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 33 || cfg.Height != 7 {
		t.Errorf("bitmap is %dx%d, want 33x7", cfg.Width, cfg.Height)
	}
}

func TestInfo(t *testing.T) {
	out := string(exec(t, nil, "info"))
	for _, a := range algorithms {
		if !strings.Contains(out, a.name) {
			t.Errorf("info does not list %s", a.name)
		}
	}
	if !strings.Contains(out, defaultAlgorithm()+" ") || !strings.Contains(out, "(default)") {
		t.Errorf("info does not mark the default algorithm %s", defaultAlgorithm())
	}
}

func TestErrors(t *testing.T) {
	tests := []string{
		"",
		"frob",
		"rand -alg lfsr113x3",
		"rand -n -1",
		"rand -seed 0g",
		"dump -format json",
		"dump -count -2",
		"bitmap -w 0",
		"rand -undefined",
	}
	for _, test := range tests {
		var args []string
		if test != "" {
			args = strings.Split(test, " ")
		}
		if err := run(io.Discard, bytes.NewReader(nil), args); err == nil {
			t.Errorf("'vrand %s' succeeded, want error", test)
		}
	}
}

func TestEmptyStdinSeed(t *testing.T) {
	if _, err := execErr(nil, "rand -seed -"); err == nil {
		t.Error("empty seed on standard in accepted")
	}
}

func TestDefaultAlgorithm(t *testing.T) {
	a, err := lookup("")
	if err != nil {
		t.Fatal(err)
	}
	switch a.name {
	case "lfsr113x4", "lfsr113x8", "lfsr113x16":
	default:
		t.Errorf("default algorithm %s, want a 32-bit LFSR113", a.name)
	}
}

func exec(t *testing.T, stdin []byte, cmd string, args ...any) []byte {
	t.Helper()
	cmdline := fmt.Sprintf(cmd, args...)
	stdout, err := execErr(stdin, cmdline)
	if err != nil {
		t.Fatalf("'vrand %s' reported '%v'", cmdline, err)
	}
	return stdout
}

func execErr(stdin []byte, cmd string) ([]byte, error) {
	stdout := new(bytes.Buffer)
	err := run(stdout, bytes.NewReader(stdin), strings.Split(cmd, " "))
	return stdout.Bytes(), err
}
