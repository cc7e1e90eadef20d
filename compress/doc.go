// Package compress provides the codecs applied to linefit snapshot payloads.
//
// A snapshot payload is the columnar float64 encoding of a dataset. Sample columns from
// real measurements often repeat exponents and leading mantissa bytes, so general-purpose
// compressors shrink them noticeably:
//
//   - None: payload stored as is
//   - Zstd: best ratio; pure Go (klauspost/compress) or cgo (valyala/gozstd)
//   - S2: fast, moderate ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4)
//
// Codecs are stateless values and safe for concurrent use:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
