package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses payloads with S2, a faster Snappy-compatible format.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSize decodes an S2 block after checking that its header declares exactly
// size bytes.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 && size == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("s2 decompression failed: block declares %d bytes, expected %d", n, size)
	}

	return c.Decompress(data)
}
