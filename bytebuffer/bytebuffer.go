package bytebuffer

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ByteBuffer is a simple wrapper over a heap allocated byte slice
type ByteBuffer struct {
	buffer []byte
}

// NewByteBuffer creates a new ByteBuffer of the specified size
func NewByteBuffer(n int) *ByteBuffer {
	return &ByteBuffer{
		buffer: make([]byte, n),
	}
}

// NewByteBufferSlice creates a new ByteBuffer using the passed slice, the
// slice is adopted as is and not copied
func NewByteBufferSlice(buffer []byte) *ByteBuffer {
	return &ByteBuffer{
		buffer: buffer,
	}
}

// Len returns the size of the ByteBuffer
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// Bytes returns the internal byte array of the ByteBuffer
func (b *ByteBuffer) Bytes() []byte { return b.buffer }

// Resize allocates a new region of n bytes and copies over the old contents
func (b *ByteBuffer) Resize(n int) error {
	if n < 0 {
		return errors.Errorf("cannot resize to a negative length %d", n)
	}

	if n <= cap(b.buffer) {
		// shrinking, or growing into spare capacity of an adopted slice
		b.buffer = b.buffer[:n]
		return nil
	}

	buffer := make([]byte, n)
	copy(buffer, b.buffer)
	b.buffer = buffer
	return nil
}

// Slice returns a view of [start, end)
func (b *ByteBuffer) Slice(start, end int) ([]byte, error) {
	if err := checkRange(start, end-start, len(b.buffer)); err != nil {
		return nil, err
	}
	return b.buffer[start:end], nil
}

// WriteAt copies p into the buffer at off, nothing is written if p does not
// fit entirely
func (b *ByteBuffer) WriteAt(p []byte, off int) (int, error) {
	if err := checkRange(off, len(p), len(b.buffer)); err != nil {
		return 0, err
	}
	return copy(b.buffer[off:], p), nil
}

// MustWriteAt is a WriteAt that will panic on failure
func (b *ByteBuffer) MustWriteAt(p []byte, off int) {
	if _, err := b.WriteAt(p, off); err != nil {
		panic(err)
	}
}

// PutUint8 writes a byte at off
func (b *ByteBuffer) PutUint8(off int, v uint8) error {
	if err := checkRange(off, 1, len(b.buffer)); err != nil {
		return err
	}
	b.buffer[off] = v
	return nil
}

// PutUint16 writes a uint16 at off in the given byte order
func (b *ByteBuffer) PutUint16(off int, v uint16, order binary.ByteOrder) error {
	if err := checkRange(off, 2, len(b.buffer)); err != nil {
		return err
	}
	order.PutUint16(b.buffer[off:], v)
	return nil
}

// PutUint32 writes a uint32 at off in the given byte order
func (b *ByteBuffer) PutUint32(off int, v uint32, order binary.ByteOrder) error {
	if err := checkRange(off, 4, len(b.buffer)); err != nil {
		return err
	}
	order.PutUint32(b.buffer[off:], v)
	return nil
}

// PutUint64 writes a uint64 at off in the given byte order
func (b *ByteBuffer) PutUint64(off int, v uint64, order binary.ByteOrder) error {
	if err := checkRange(off, 8, len(b.buffer)); err != nil {
		return err
	}
	order.PutUint64(b.buffer[off:], v)
	return nil
}

// Uint8 reads the byte at off
func (b *ByteBuffer) Uint8(off int) (uint8, error) {
	if err := checkRange(off, 1, len(b.buffer)); err != nil {
		return 0, err
	}
	return b.buffer[off], nil
}

// Uint16 reads a uint16 at off in the given byte order
func (b *ByteBuffer) Uint16(off int, order binary.ByteOrder) (uint16, error) {
	if err := checkRange(off, 2, len(b.buffer)); err != nil {
		return 0, err
	}
	return order.Uint16(b.buffer[off:]), nil
}

// Uint32 reads a uint32 at off in the given byte order
func (b *ByteBuffer) Uint32(off int, order binary.ByteOrder) (uint32, error) {
	if err := checkRange(off, 4, len(b.buffer)); err != nil {
		return 0, err
	}
	return order.Uint32(b.buffer[off:]), nil
}

// Uint64 reads a uint64 at off in the given byte order
func (b *ByteBuffer) Uint64(off int, order binary.ByteOrder) (uint64, error) {
	if err := checkRange(off, 8, len(b.buffer)); err != nil {
		return 0, err
	}
	return order.Uint64(b.buffer[off:]), nil
}
