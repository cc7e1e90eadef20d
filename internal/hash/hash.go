// Package hash provides xxHash64 based fingerprints for sample data.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates float64 values into a streaming xxHash64.
//
// Values are hashed by their IEEE-754 bit pattern in little-endian order, with negative
// zero folded into positive zero so numerically equal datasets share a fingerprint.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteFloat64 adds v to the digest.
func (h *Digest) WriteFloat64(v float64) {
	if v == 0 {
		v = 0
	}
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.d.Write(h.buf[:])
}

// WritePair adds an (x, y) pair to the digest.
func (h *Digest) WritePair(x, y float64) {
	h.WriteFloat64(x)
	h.WriteFloat64(y)
}

// Sum64 returns the current hash value.
func (h *Digest) Sum64() uint64 {
	return h.d.Sum64()
}
