// Command vrand runs the vectorized generators. It writes raw output,
// dumps generated vectors, renders bitmaps of the output bits and reports
// the vector features of the machine.
//
// Without -seed, generators are seeded from the operating system. With
// -seed, the hex-encoded seed (or standard in, for "-seed -") is expanded
// into a deterministic entropy stream.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/bmp"
	"vrand.dev/entropy"
)

var log = zerolog.Nop()

func main() {
	if err := run(os.Stdout, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vrand: %v\n", err)
		os.Exit(2)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// common holds the flags shared by the generating commands.
type common struct {
	alg     string
	seed    string
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.alg, "alg", "", "algorithm (default depends on the CPU, see info)")
	fs.StringVar(&c.seed, "seed", "", "hex-encoded seed, or - to read the seed from standard in")
	fs.BoolVar(&c.verbose, "v", false, "log diagnostics to standard error")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func run(stdout io.Writer, stdin io.Reader, args []string) error {
	if len(args) == 0 {
		return errors.New("missing command (rand, dump, bitmap, info)")
	}
	cmd := args[0]
	args = args[1:]
	var c common
	switch cmd {
	case "rand":
		fs := newFlagSet("rand")
		c.register(fs)
		n := fs.Int("n", 32, "number of bytes to generate")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("rand: %w", err)
		}
		if *n < 0 {
			return fmt.Errorf("rand: negative length: %d", *n)
		}
		src, err := c.open(stdin)
		if err != nil {
			return fmt.Errorf("rand: %w", err)
		}
		_, err = io.CopyN(stdout, src, int64(*n))
		return err
	case "dump":
		fs := newFlagSet("dump")
		c.register(fs)
		count := fs.Int("count", 4, "number of vectors to generate")
		format := fs.String("format", "hex", "output format (hex, cbor)")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		if *count < 0 {
			return fmt.Errorf("dump: negative count: %d", *count)
		}
		return c.dump(stdout, stdin, *count, *format)
	case "bitmap":
		fs := newFlagSet("bitmap")
		c.register(fs)
		w := fs.Int("w", 256, "image width in pixels")
		h := fs.Int("h", 256, "image height in pixels")
		out := fs.String("o", "", "output file (default standard out)")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("bitmap: %w", err)
		}
		if *w <= 0 || *h <= 0 {
			return fmt.Errorf("bitmap: invalid dimensions: %dx%d", *w, *h)
		}
		return c.bitmap(stdout, stdin, *w, *h, *out)
	case "info":
		return info(stdout)
	default:
		return fmt.Errorf("unknown command: %q", cmd)
	}
}

// open seeds the selected algorithm.
func (c *common) open(stdin io.Reader) (*source, error) {
	log = newLogger(c.verbose)
	a, err := lookup(c.alg)
	if err != nil {
		return nil, err
	}
	var ent io.Reader
	kind := "system"
	switch c.seed {
	case "":
		ent = entropy.System()
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, errors.New("empty seed on standard in")
		}
		ent = entropy.NewStream(b)
		kind = "stdin"
	default:
		b, err := hex.DecodeString(c.seed)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		if len(b) == 0 {
			return nil, errors.New("empty seed")
		}
		ent = entropy.NewStream(b)
		kind = "seed"
	}
	cnt := &entropy.Counter{R: ent}
	src, err := a.open(cnt)
	if err != nil {
		return nil, fmt.Errorf("%s: seeding: %w", a.name, err)
	}
	log.Debug().
		Str("alg", a.name).
		Int("bits", a.bits).
		Int("lanes", a.lanes).
		Str("entropy", kind).
		Int64("seed_bytes", cnt.N).
		Msg("seeded")
	return src, nil
}

type dumpRecord struct {
	_         struct{} `cbor:",toarray"`
	Algorithm string
	Bits      int
	Vectors   [][]uint64
}

func (c *common) dump(stdout io.Writer, stdin io.Reader, count int, format string) error {
	if format != "hex" && format != "cbor" {
		return fmt.Errorf("dump: unknown format: %q", format)
	}
	src, err := c.open(stdin)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	a, _ := lookup(c.alg)
	rec := dumpRecord{Algorithm: a.name, Bits: a.bits}
	for i := 0; i < count; i++ {
		rec.Vectors = append(rec.Vectors, src.next())
	}
	if format == "cbor" {
		enc, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			panic(err)
		}
		b, err := enc.Marshal(rec)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		_, err = stdout.Write(b)
		return err
	}
	w := bufio.NewWriter(stdout)
	digits := a.bits / 4
	for _, v := range rec.Vectors {
		lanes := make([]string, len(v))
		for i, l := range v {
			lanes[i] = fmt.Sprintf("%0*x", digits, l)
		}
		fmt.Fprintln(w, strings.Join(lanes, " "))
	}
	return w.Flush()
}

// bitmap renders one output bit per pixel, most significant bit first,
// in row order.
func (c *common) bitmap(stdout io.Writer, stdin io.Reader, width, height int, out string) error {
	src, err := c.open(stdin)
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	bits := make([]byte, (width*height+7)/8)
	if _, err := io.ReadFull(src, bits); err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	img := image.NewPaletted(image.Rect(0, 0, width, height), color.Palette{color.Black, color.White})
	for i := range img.Pix {
		img.Pix[i] = bits[i/8] >> (7 - i%8) & 1
	}
	if out == "" {
		return bmp.Encode(stdout, img)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("bitmap: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	log.Debug().Str("file", out).Int("width", width).Int("height", height).Msg("wrote bitmap")
	return nil
}

func info(stdout io.Writer) error {
	w := bufio.NewWriter(stdout)
	fmt.Fprintln(w, "features:")
	for _, f := range features() {
		fmt.Fprintf(w, "\t%-10s %v\n", f.name, f.has)
	}
	def := defaultAlgorithm()
	fmt.Fprintln(w, "algorithms:")
	for _, a := range algorithms {
		mark := ""
		if a.name == def {
			mark = " (default)"
		}
		fmt.Fprintf(w, "\t%-14s %2d x %d-bit%s\n", a.name, a.lanes, a.bits, mark)
	}
	return w.Flush()
}
