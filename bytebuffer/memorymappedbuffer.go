package bytebuffer

import (
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedBuffer is a ByteBuffer whose region is a file mapped into memory
type MemoryMappedBuffer struct {
	*ByteBuffer
	loc  string   // location of the memory mapped file
	f    *os.File // backing file, kept open for remapping
	m    mmap.MMap
	size int // size in bytes
}

// NewMemoryMappedBuffer will create and return a new instance of a
// MemoryMappedBuffer, any file already present at loc is replaced
func NewMemoryMappedBuffer(loc string, size int) (*MemoryMappedBuffer, error) {
	if size <= 0 {
		return nil, errors.Errorf("cannot map a region of %d bytes", size)
	}

	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, errors.Wrap(err, "cannot remove existing file")
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(filepath.Dir(loc), 0700); err != nil {
		return nil, errors.Wrap(err, "cannot create destination directory")
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create file")
	}

	if err = f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "could not initialize %d bytes", size)
	}

	m, err := mmap.MapRegion(f, size, mmap.RDWR, 0, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "cannot map file")
	}

	return &MemoryMappedBuffer{
		ByteBuffer: NewByteBufferSlice(m),
		loc:        loc,
		f:          f,
		m:          m,
		size:       size,
	}, nil
}

// Location returns the path of the mapped file
func (b *MemoryMappedBuffer) Location() string { return b.loc }

// Resize grows or shrinks the file and maps it again. The old mapping stays
// valid until the new one is in place, so a failure leaves the buffer as it was.
func (b *MemoryMappedBuffer) Resize(n int) error {
	if n <= 0 {
		return errors.Errorf("cannot map a region of %d bytes", n)
	}

	if err := b.m.Flush(); err != nil {
		return errors.Wrap(err, "cannot flush mapping")
	}

	if err := b.f.Truncate(int64(n)); err != nil {
		return errors.Wrapf(err, "cannot resize file to %d bytes", n)
	}

	m, err := mmap.MapRegion(b.f, n, mmap.RDWR, 0, 0)
	if err != nil {
		// restore the old length so the file matches the live mapping
		_ = b.f.Truncate(int64(b.size))
		return errors.Wrap(err, "cannot remap file")
	}

	if err = b.m.Unmap(); err != nil {
		_ = m.Unmap()
		_ = b.f.Truncate(int64(b.size))
		return errors.Wrap(err, "cannot unmap old region")
	}

	b.m = m
	b.buffer = m
	b.size = n
	return nil
}

// Flush writes any pending changes of the mapping back to the file
func (b *MemoryMappedBuffer) Flush() error {
	return b.m.Flush()
}

// Unmap will manually delete the memory mapping of a mapped buffer, removing
// the backing file if asked to
func (b *MemoryMappedBuffer) Unmap(removefile bool) error {
	if err := b.m.Unmap(); err != nil {
		return errors.Wrap(err, "cannot unmap")
	}
	b.buffer = nil

	if err := b.f.Close(); err != nil {
		return errors.Wrap(err, "cannot close file")
	}

	if removefile {
		if err := os.Remove(b.loc); err != nil {
			return errors.Wrap(err, "cannot remove file")
		}
	}

	return nil
}
