// Package snapshot persists a dataset and its regression result in a compact binary form.
//
// The regression core keeps no state of its own; a caller that wants to keep the current
// dataset across restarts encodes it with this package and decodes it later instead of
// re-reading the original input.
//
// # Layout
//
// A snapshot is a fixed 32-byte little-endian header followed by the payload:
//
//	offset  size  field
//	0       2     magic (bits 4-15) | flags (bits 0-3)
//	2       1     compression type
//	3       1     reserved, zero
//	4       4     sample count
//	8       8     xxHash64 of the uncompressed payload
//	16      8     slope (IEEE-754)
//	24      8     intercept (IEEE-754)
//
// The payload stores every x followed by every y as float64 values and is compressed with
// the codec named in the header. Decode verifies the payload length and checksum before
// returning any data.
package snapshot
