package compress

import (
	"fmt"
	"io"
)

// ZstdCompressor compresses payloads with Zstandard.
//
// With cgo enabled it uses valyala/gozstd (libzstd bindings); otherwise it falls back
// to the pure Go encoder from klauspost/compress. Both produce standard zstd frames, so a
// snapshot written by one build decodes with the other.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// zstdLevel is the compression level used by both implementations.
const zstdLevel = 3

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// readExactly reads a decompressed stream that must hold exactly size bytes. At most
// size+1 bytes are ever buffered, whatever the stream would expand to.
func readExactly(r io.Reader, size int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) > size {
		return nil, fmt.Errorf("zstd decompression failed: payload expands beyond %d bytes", size)
	}
	if len(out) < size {
		return nil, fmt.Errorf("zstd decompression failed: payload expands to %d bytes, expected %d", len(out), size)
	}

	return out, nil
}

func checkZstdSize(data []byte, size int) error {
	if size < 0 {
		return fmt.Errorf("zstd decompression failed: declared size %d out of range", size)
	}
	if len(data) == 0 && size != 0 {
		return fmt.Errorf("zstd decompression failed: empty payload, expected %d bytes", size)
	}

	return nil
}
