package compress

import (
	"fmt"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/format"
)

// Compressor compresses a payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec is both a Compressor and a Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs whose format does not record the
// decompressed length and can use it when the caller knows it.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// DecompressSize decompresses data with d, passing the expected size to codecs that
// implement SizedDecompressor.
func DecompressSize(d Decompressor, data []byte, size int) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSize(data, size)
	}

	return d.Decompress(data)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}
