//go:build !cgo

package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are reused; EncodeAll and DecodeAll keep no state between calls.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
			zstd.WithEncoderCRC(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses data with a pooled zstd encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses a zstd frame with a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSize decodes a zstd stream that must expand to exactly size bytes.
//
// A frame header declaring a different content size is rejected before anything is
// decoded; frames without one are streamed and cut off after size+1 bytes.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkZstdSize(data, size); err != nil {
		return nil, err
	}
	if size == 0 && len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if header.HasFCS && header.FrameContentSize > uint64(size) {
		return nil, fmt.Errorf("zstd decompression failed: frame declares %d bytes, expected %d",
			header.FrameContentSize, size)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	if err := decoder.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	defer func() { _ = decoder.Reset(nil) }()

	return readExactly(decoder, size)
}
