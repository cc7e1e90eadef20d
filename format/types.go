// Package format defines the identifiers stored in linefit snapshot headers.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/linefit/errs"
)

// CompressionType identifies the codec applied to a snapshot payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Snapshot header layout.
const (
	MagicMask        = 0xFFF0 // Mask for the magic number (bits 4-15)
	FlagMask         = 0x000F // Mask for flag bits (bits 0-3)
	MagicSnapshotV1  = 0xEC10 // MagicSnapshotV1 marks a version 1 snapshot.
	FlagResult       = 0x0001 // FlagResult is set when a regression result is stored.
	HeaderSize       = 32     // HeaderSize is the fixed snapshot header size in bytes.
	BytesPerSample   = 16     // BytesPerSample is the payload size of one (x, y) sample.
	MaxSnapshotCount = 1<<32 - 1
)

// String returns the name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2", "lz4") to its type.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}
