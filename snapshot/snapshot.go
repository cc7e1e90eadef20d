package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/arloliu/linefit/compress"
	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/internal/hash"
	"github.com/arloliu/linefit/internal/options"
	"github.com/arloliu/linefit/internal/pool"
	"github.com/arloliu/linefit/regression"
)

// Snapshot is the decoded content of a snapshot.
type Snapshot struct {
	// Samples is the stored dataset in its original order.
	Samples []dataset.Sample
	// Result is the stored regression result; valid only when HasResult is true.
	Result    regression.Result
	HasResult bool
	// Compression is the codec the payload was stored with.
	Compression format.CompressionType
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64
}

// Config holds encoding options.
type Config struct {
	Compression format.CompressionType
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, uint8(ct))
		}
		cfg.Compression = ct

		return nil
	})
}

func defaultConfig() Config {
	return Config{Compression: format.CompressionZstd}
}

// Encode stores samples together with their regression result.
func Encode(samples []dataset.Sample, result regression.Result, opts ...Option) ([]byte, error) {
	return encode(samples, &result, opts)
}

// EncodeSamples stores samples without a regression result.
func EncodeSamples(samples []dataset.Sample, opts ...Option) ([]byte, error) {
	return encode(samples, nil, opts)
}

func encode(samples []dataset.Sample, result *regression.Result, opts []Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if uint64(len(samples)) > format.MaxSnapshotCount {
		return nil, fmt.Errorf("%w: %d samples exceed the snapshot limit", errs.ErrInvalidInput, len(samples))
	}
	if err := dataset.Validate(samples); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.Grow(len(samples) * format.BytesPerSample)
	for _, s := range samples {
		buf.AppendFloat64(s.X)
	}
	for _, s := range samples {
		buf.AppendFloat64(s.Y)
	}

	raw := buf.Bytes()
	checksum := hash.Bytes(raw)

	packed, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	magic := uint16(format.MagicSnapshotV1)
	var slope, intercept float64
	if result != nil {
		magic |= format.FlagResult
		slope, intercept = result.Slope, result.Intercept
	}

	out := make([]byte, format.HeaderSize, format.HeaderSize+len(packed))
	binary.LittleEndian.PutUint16(out[0:2], magic)
	out[2] = uint8(cfg.Compression)
	out[3] = 0
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(samples)))
	binary.LittleEndian.PutUint64(out[8:16], checksum)
	binary.LittleEndian.PutUint64(out[16:24], math.Float64bits(slope))
	binary.LittleEndian.PutUint64(out[24:32], math.Float64bits(intercept))

	// packed may alias the pooled buffer (no-op codec), so copy before it is released.
	out = append(out, packed...)

	return out, nil
}

// Decode parses a snapshot produced by Encode or EncodeSamples.
//
// Returns errs.ErrInvalidSnapshot for malformed input, errs.ErrUnsupportedCompression for
// an unknown codec and errs.ErrChecksumMismatch when the payload was altered.
func Decode(data []byte) (Snapshot, error) {
	if len(data) < format.HeaderSize {
		return Snapshot{}, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header",
			errs.ErrInvalidSnapshot, len(data), format.HeaderSize)
	}

	magic := binary.LittleEndian.Uint16(data[0:2])
	if magic&format.MagicMask != format.MagicSnapshotV1 {
		return Snapshot{}, fmt.Errorf("%w: bad magic 0x%04x", errs.ErrInvalidSnapshot, magic&format.MagicMask)
	}
	flags := magic & format.FlagMask
	if flags&^format.FlagResult != 0 {
		return Snapshot{}, fmt.Errorf("%w: unknown flags 0x%x", errs.ErrInvalidSnapshot, flags)
	}

	ct := format.CompressionType(data[2])
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return Snapshot{}, err
	}

	count := int(binary.LittleEndian.Uint32(data[4:8]))
	checksum := binary.LittleEndian.Uint64(data[8:16])

	raw, err := compress.DecompressSize(codec, data[format.HeaderSize:], count*format.BytesPerSample)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}
	if len(raw) != count*format.BytesPerSample {
		return Snapshot{}, fmt.Errorf("%w: payload has %d bytes, header declares %d samples",
			errs.ErrInvalidSnapshot, len(raw), count)
	}
	if got := hash.Bytes(raw); got != checksum {
		return Snapshot{}, fmt.Errorf("%w: payload hash 0x%016x, header 0x%016x", errs.ErrChecksumMismatch, got, checksum)
	}

	samples := make([]dataset.Sample, count)
	ys := raw[count*8:]
	for i := range samples {
		samples[i] = dataset.Sample{
			X: math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(ys[i*8:])),
		}
	}

	snap := Snapshot{
		Samples:     samples,
		Compression: ct,
		Checksum:    checksum,
	}

	if flags&format.FlagResult != 0 {
		result, err := regression.NewResult(
			math.Float64frombits(binary.LittleEndian.Uint64(data[16:24])),
			math.Float64frombits(binary.LittleEndian.Uint64(data[24:32])),
		)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
		}
		snap.Result = result
		snap.HasResult = true
	}

	return snap, nil
}

// WriteFile encodes samples and result and writes them to path.
func WriteFile(path string, samples []dataset.Sample, result regression.Result, opts ...Option) error {
	data, err := Encode(samples, result, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadFile reads and decodes the snapshot at path.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}

	return Decode(data)
}
