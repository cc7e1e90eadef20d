//go:build cgo

package compress

import (
	"bytes"
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a zstd frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSize decodes a zstd stream that must expand to exactly size bytes. The stream
// is cut off after size+1 bytes.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkZstdSize(data, size); err != nil {
		return nil, err
	}
	if size == 0 && len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	return readExactly(zr, size)
}
