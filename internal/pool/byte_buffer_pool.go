package pool

import (
	"encoding/binary"
	"math"
	"sync"
)

// Snapshot buffer sizing. A 1024-sample dataset needs 16KiB of raw payload.
const (
	SnapshotBufferDefaultSize  = 1024 * 16       // 16KiB
	SnapshotBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a reusable, append-only byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// newByteBuffer creates a new ByteBuffer with the specified capacity.
func newByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can hold n more bytes without reallocating.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := SnapshotBufferDefaultSize
	if cap(bb.B) > 4*SnapshotBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// AppendFloat64 appends v as a little-endian IEEE-754 value.
func (bb *ByteBuffer) AppendFloat64(v float64) {
	bb.B = binary.LittleEndian.AppendUint64(bb.B, math.Float64bits(v))
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers grown past a threshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers have defaultSize capacity.
// A maxThreshold of zero keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return newByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var snapshotPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)

// GetSnapshotBuffer retrieves a ByteBuffer from the snapshot pool.
func GetSnapshotBuffer() *ByteBuffer {
	return snapshotPool.Get()
}

// PutSnapshotBuffer returns a ByteBuffer to the snapshot pool.
func PutSnapshotBuffer(bb *ByteBuffer) {
	snapshotPool.Put(bb)
}
