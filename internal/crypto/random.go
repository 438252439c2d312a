package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrRandomSourceUnavailable is returned when the entropy source cannot supply bytes.
var ErrRandomSourceUnavailable = errors.New("random source unavailable")

// Random draws unbiased integers from a cryptographically secure byte source.
type Random struct {
	src io.Reader
}

// NewRandom returns a Random reading from src. src must be a cryptographically
// secure stream; nothing weaker is ever substituted when it fails.
func NewRandom(src io.Reader) *Random {
	return &Random{src: src}
}

// DefaultRandom returns a Random backed by crypto/rand. It is safe for concurrent use.
func DefaultRandom() *Random {
	return NewRandom(rand.Reader)
}

// UniformInt returns an integer uniformly distributed in [0, maxExclusive).
// A non-positive maxExclusive returns 0 without reading from the source.
//
// Out-of-range draws are rejected and redrawn. At most half of the 32-bit space is
// ever rejected, so the expected number of draws per call is below 2.
func (g *Random) UniformInt(maxExclusive int) (int, error) {
	if maxExclusive <= 0 {
		return 0, nil
	}

	n := uint64(maxExclusive)
	if n > 1<<32 {
		return g.uniformInt64(n)
	}

	limit := (1 << 32) / n * n
	for {
		r, err := g.uint32()
		if err != nil {
			return 0, err
		}
		if uint64(r) < limit {
			return int(uint64(r) % n), nil
		}
	}
}

// uniformInt64 handles ranges wider than 32 bits by rejecting the low
// 2^64 mod n values of each 64-bit draw.
func (g *Random) uniformInt64(n uint64) (int, error) {
	threshold := -n % n
	for {
		r, err := g.uint64()
		if err != nil {
			return 0, err
		}
		if r >= threshold {
			return int(r % n), nil
		}
	}
}

func (g *Random) uint32() (uint32, error) {
	var buf [4]byte
	if err := g.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (g *Random) uint64() (uint64, error) {
	var buf [8]byte
	if err := g.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (g *Random) read(buf []byte) error {
	if g.src == nil {
		return ErrRandomSourceUnavailable
	}
	if _, err := io.ReadFull(g.src, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return nil
}
