// Package pool provides pooled byte buffers for the allocating convenience
// layer. The core encoders never allocate; only Sprint-style helpers that
// own their output draw from this pool.
package pool

import "sync"

const (
	// BufferDefaultSize is the initial capacity of a pooled buffer, sized
	// for typical composed display strings.
	BufferDefaultSize = 256

	// BufferMaxThreshold is the largest capacity returned to the pool.
	// Buffers grown beyond it are dropped to keep pooled memory bounded.
	BufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a reusable byte slice with an amortized growth strategy.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Sized sets the buffer length to exactly n bytes, reallocating when the
// current capacity is insufficient, and returns the resulting slice. The
// contents of the returned slice are unspecified.
func (bb *ByteBuffer) Sized(n int) []byte {
	if cap(bb.B) < n {
		grown := cap(bb.B) * 2
		if grown < n {
			grown = n
		}
		bb.B = make([]byte, 0, grown)
	}
	bb.B = bb.B[:n]

	return bb.B
}

var bufferPool = sync.Pool{
	New: func() any { return NewByteBuffer(BufferDefaultSize) },
}

// GetBuffer retrieves an empty ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a ByteBuffer to the pool. Buffers grown beyond
// BufferMaxThreshold are dropped instead of pooled.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > BufferMaxThreshold {
		return
	}
	bufferPool.Put(bb)
}
