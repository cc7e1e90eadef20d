package compress

// NoOpCompressor passes payloads through unchanged.
//
// Both methods return the input slice itself, so callers must not modify it afterwards.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as is.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as is.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
