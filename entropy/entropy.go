// Package entropy provides the byte sources generators are seeded from.
package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

// System returns the operating system's cryptographically secure source.
func System() io.Reader {
	return rand.Reader
}

const streamInfo = "vrand.dev/entropy stream v1"

// Stream is a deterministic, unbounded byte source expanded from a seed.
// Equal seeds produce equal streams.
type Stream struct {
	cipher *chacha20.Cipher
}

// NewStream derives a ChaCha20 key and nonce from seed with HKDF-SHA256.
// The stream panics after 256 GiB, when the ChaCha20 block counter
// overflows.
func NewStream(seed []byte) *Stream {
	kdf := hkdf.New(sha256.New, seed, nil, []byte(streamInfo))
	var key [chacha20.KeySize + chacha20.NonceSize]byte
	if _, err := io.ReadFull(kdf, key[:]); err != nil {
		// Only fails past 255 hash lengths of output.
		panic(err)
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:chacha20.KeySize], key[chacha20.KeySize:])
	if err != nil {
		panic(err)
	}
	return &Stream{cipher: c}
}

// Read fills p with the next len(p) bytes of the stream. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	clear(p)
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Counter counts the bytes read through it.
type Counter struct {
	R io.Reader
	N int64
}

func (c *Counter) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += int64(n)
	return n, err
}
