// Package bytebuffer implements the backing stores used by bytestream
//
// a backing store is a contiguous, resizable byte region that knows how to
// read and write fixed width values at an arbitrary offset. It does not keep
// any cursor of its own, positions are owned by whoever drives it, which
// keeps the store free to be swapped without touching the codecs.
//
// two stores are provided, ByteBuffer over an ordinary heap slice and
// MemoryMappedBuffer over a file mapped into memory. Which one is used is
// decided by the caller at construction time.
package bytebuffer

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrOutOfRange is returned whenever an access falls outside the store
var ErrOutOfRange = errors.New("offset out of range")

// Buffer defines an abstraction for a resizable region that allows reading and
// writing of binary values anywhere within its length
type Buffer interface {
	// Len returns the current size of the region
	Len() int

	// Bytes returns the whole region, the slice is invalidated by Resize
	Bytes() []byte

	// Resize reallocates the region to n bytes keeping the common prefix
	Resize(n int) error

	// Slice returns the sub region [start, end) without copying
	Slice(start, end int) ([]byte, error)

	// WriteAt copies p into the region starting at off
	WriteAt(p []byte, off int) (int, error)

	PutUint8(off int, v uint8) error
	PutUint16(off int, v uint16, order binary.ByteOrder) error
	PutUint32(off int, v uint32, order binary.ByteOrder) error
	PutUint64(off int, v uint64, order binary.ByteOrder) error

	Uint8(off int) (uint8, error)
	Uint16(off int, order binary.ByteOrder) (uint16, error)
	Uint32(off int, order binary.ByteOrder) (uint32, error)
	Uint64(off int, order binary.ByteOrder) (uint64, error)
}

func checkRange(off, n, l int) error {
	if off < 0 || n < 0 || off > l || n > l-off {
		return errors.Wrapf(ErrOutOfRange, "access of %d bytes at %d in a region of %d", n, off, l)
	}
	return nil
}

var (
	_ Buffer = (*ByteBuffer)(nil)
	_ Buffer = (*MemoryMappedBuffer)(nil)
)
