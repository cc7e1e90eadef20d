package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize bounds the output buffer when a block fails to fit.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads as raw LZ4 blocks.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into one LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block.
//
// Blocks carry no decompressed size, so the output buffer starts at four times the input
// and doubles on ErrInvalidSourceShortBuffer up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= lz4MaxDecompressedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return nil, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}

// DecompressSize decodes an LZ4 block whose decompressed length is known in advance.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 && size == 0 {
		return nil, nil
	}
	if size < 0 || size > lz4MaxDecompressedSize {
		return nil, fmt.Errorf("lz4 decompression failed: declared size %d out of range", size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("lz4 decompression failed: block expands to %d bytes, expected %d", n, size)
	}

	return buf, nil
}
