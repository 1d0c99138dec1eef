package bytestream

import (
	"bytes"
	"io"

	"github.com/performancecopilot/bytestream/bytebuffer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ByteStream is a growable byte region with a write cursor, where values are
// appended, and a read cursor, where values are consumed from.
//
// writePos never exceeds the capacity of the store and the capacity never
// exceeds the guard limit. Every method either completes and advances its
// cursor by exactly the number of bytes it handled, or fails and leaves the
// stream as it was.
type ByteStream struct {
	store      bytebuffer.Buffer
	guardLimit int
	writePos   int
	readPos    int
	adopted    int // length of caller supplied content that is readable
	growth     *growthRecorder
	closed     bool
}

// New creates a ByteStream from DefaultConfig
func New() *ByteStream {
	s, err := NewWithConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig only ever holds validated values
		panic(err)
	}
	return s
}

// NewFromBuffer creates a ByteStream that adopts buf as its storage without
// copying it. The contents of buf are readable, writes start at offset 0.
func NewFromBuffer(buf []byte) (*ByteStream, error) {
	c := DefaultConfig()
	c.Storage = buf
	return NewWithConfig(c)
}

// NewWithConfig creates a ByteStream from the passed Config. A zero
// GuardLimit means DefaultGuardLimit.
func NewWithConfig(c Config) (*ByteStream, error) {
	guard := c.GuardLimit
	if guard == 0 {
		guard = DefaultGuardLimit
	}

	if guard < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "guard limit %d", guard)
	}

	var (
		store   bytebuffer.Buffer
		adopted int
	)

	switch {
	case c.Buffer != nil:
		store = c.Buffer
	case c.Storage != nil:
		store = bytebuffer.NewByteBufferSlice(c.Storage)
		adopted = len(c.Storage)
	default:
		size := c.InitialSize
		if size <= 0 {
			size = DefaultAllocSize
		}
		if size > guard {
			size = guard
		}
		store = bytebuffer.NewByteBuffer(size)
	}

	if store.Len() > guard {
		return nil, errors.Wrapf(ErrInvalidArgument, "storage of %d bytes is larger than the guard limit %d", store.Len(), guard)
	}

	s := &ByteStream{
		store:      store,
		guardLimit: guard,
		adopted:    adopted,
	}

	if c.TrackGrowth {
		s.growth = newGrowthRecorder(guard)
	}

	return s, nil
}

// NewMemoryMapped creates a ByteStream backed by a file at loc mapped into
// memory, starting with size bytes. Growth resizes the file. The stream must
// be closed to release the mapping.
func NewMemoryMapped(loc string, size int, c Config) (*ByteStream, error) {
	b, err := bytebuffer.NewMemoryMappedBuffer(loc, size)
	if err != nil {
		return nil, err
	}

	if logging {
		logger.Info("created memory mapped storage",
			zap.String("location", loc),
			zap.Int("size", size),
		)
	}

	c.Buffer = b
	c.Storage = nil

	s, err := NewWithConfig(c)
	if err != nil {
		_ = b.Unmap(true)
		return nil, err
	}

	return s, nil
}

// Close releases the storage of a memory mapped stream, keeping the file. It
// is a no-op for heap backed streams. A closed memory mapped stream has no
// readable data and refuses writes with ErrClosed.
func (s *ByteStream) Close() error {
	if s.closed {
		return nil
	}

	if m, ok := s.store.(*bytebuffer.MemoryMappedBuffer); ok {
		if err := m.Flush(); err != nil {
			return errors.Wrap(err, "cannot flush memory mapped storage")
		}

		if err := m.Unmap(false); err != nil {
			return err
		}

		s.store = bytebuffer.NewByteBuffer(0)
		s.Reset()
		s.closed = true

		if logging {
			logger.Info("unmapped memory mapped storage", zap.String("location", m.Location()))
		}
	}

	return nil
}

// ensureCapacity makes sure n more bytes can be written at writePos, growing
// the store if needed. Nothing changes when it fails.
func (s *ByteStream) ensureCapacity(n int) error {
	if s.closed {
		return errors.Wrapf(ErrClosed, "writing %d bytes", n)
	}

	capacity := s.store.Len()
	if n <= capacity-s.writePos {
		return nil
	}

	// compared against the room left so a huge n cannot wrap the sum
	if n > s.guardLimit-s.writePos {
		if logging {
			logger.Error("refusing to grow past the guard limit",
				zap.Int("requested", n),
				zap.Int("written", s.writePos),
				zap.Int("guardLimit", s.guardLimit),
			)
		}

		return errors.Wrapf(ErrBufferLimitExceeded, "writing %d bytes at %d, limit is %d", n, s.writePos, s.guardLimit)
	}

	need := s.writePos + n

	newCap := capacity * 2
	if newCap < need {
		newCap = need
	}
	if newCap > s.guardLimit {
		newCap = s.guardLimit
	}

	if err := s.store.Resize(newCap); err != nil {
		return errors.Wrap(err, "cannot grow storage")
	}

	if s.growth != nil {
		s.growth.record(newCap, s.writePos)
	}

	if logging {
		logger.Info("grew storage",
			zap.Int("from", capacity),
			zap.Int("to", newCap),
			zap.Int("written", s.writePos),
		)
	}

	return nil
}

// readLimit is the end of the readable data
func (s *ByteStream) readLimit() int {
	if s.adopted > s.writePos {
		return s.adopted
	}
	return s.writePos
}

// checkRead makes sure n bytes can be read at readPos
func (s *ByteStream) checkRead(n int) error {
	if limit := s.readLimit(); n < 0 || n > limit-s.readPos {
		return errors.Wrapf(ErrOutOfBounds, "reading %d bytes at %d, readable limit is %d", n, s.readPos, limit)
	}
	return nil
}

// readable returns a view of [readPos, readLimit)
func (s *ByteStream) readable() []byte {
	limit := s.readLimit()
	if s.readPos >= limit {
		return nil
	}
	return s.store.Bytes()[s.readPos:limit]
}

// ReadPos returns the current read position
func (s *ByteStream) ReadPos() int { return s.readPos }

// WritePos returns the current write position
func (s *ByteStream) WritePos() int { return s.writePos }

// Len returns the number of bytes written
func (s *ByteStream) Len() int { return s.writePos }

// Cap returns the current capacity of the storage
func (s *ByteStream) Cap() int { return s.store.Len() }

// GuardLimit returns the maximum capacity of the stream
func (s *ByteStream) GuardLimit() int { return s.guardLimit }

// Remaining returns the number of bytes left to read
func (s *ByteStream) Remaining() int {
	if r := s.readLimit() - s.readPos; r > 0 {
		return r
	}
	return 0
}

// SetReadPos moves the read cursor to position, which must lie within the
// readable data
func (s *ByteStream) SetReadPos(position int) error {
	if position < 0 || position > s.readLimit() {
		return errors.Wrapf(ErrOutOfBounds, "read position %d, readable limit is %d", position, s.readLimit())
	}

	s.readPos = position
	return nil
}

// MustSetReadPos will try to set the read position and panic on error
func (s *ByteStream) MustSetReadPos(position int) {
	if err := s.SetReadPos(position); err != nil {
		panic(err)
	}
}

// SetWritePos moves the write cursor to position, which must lie within the
// current capacity
func (s *ByteStream) SetWritePos(position int) error {
	if position < 0 || position > s.store.Len() {
		return errors.Wrapf(ErrOutOfBounds, "write position %d, capacity is %d", position, s.store.Len())
	}

	s.writePos = position
	return nil
}

// MustSetWritePos will try to set the write position and panic on error
func (s *ByteStream) MustSetWritePos(position int) {
	if err := s.SetWritePos(position); err != nil {
		panic(err)
	}
}

// Reset moves both cursors back to the start and forgets any adopted
// content, the storage is kept for reuse
func (s *ByteStream) Reset() {
	s.readPos = 0
	s.writePos = 0
	s.adopted = 0
}

// Bytes returns the written region [0, WritePos). The slice shares the
// storage and is invalidated by the next write that grows the stream.
func (s *ByteStream) Bytes() []byte {
	return s.store.Bytes()[:s.writePos]
}

// Peek returns the byte at the read position without consuming it
func (s *ByteStream) Peek() (byte, error) {
	if err := s.checkRead(1); err != nil {
		return 0, err
	}
	return s.store.Uint8(s.readPos)
}

// PeekUint8 is an alias of Peek
func (s *ByteStream) PeekUint8() (uint8, error) { return s.Peek() }

// ReadByte consumes a single byte, implementing io.ByteReader
func (s *ByteStream) ReadByte() (byte, error) {
	return s.ReadUint8()
}

// WriteByte appends a single byte, implementing io.ByteWriter
func (s *ByteStream) WriteByte(c byte) error {
	return s.WriteUint8(c)
}

// Write appends p verbatim, implementing io.Writer. Either all of p is
// written or nothing is.
func (s *ByteStream) Write(p []byte) (int, error) {
	if err := s.WriteBuffer(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// MustWrite is a Write that will panic on failure
func (s *ByteStream) MustWrite(p []byte) {
	if _, err := s.Write(p); err != nil {
		panic(err)
	}
}

// Read consumes up to len(p) readable bytes, implementing io.Reader
func (s *ByteStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	src := s.readable()
	if len(src) == 0 {
		return 0, io.EOF
	}

	n := copy(p, src)
	s.readPos += n
	return n, nil
}

// Equal compares the written regions of two streams by content
func (s *ByteStream) Equal(o *ByteStream) bool {
	return StreamsEqual(s, o)
}

// BuffersEqual reports whether a and b hold the same bytes
func BuffersEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// StreamsEqual reports whether the written regions of a and b hold the same
// bytes, regardless of cursors and spare capacity
func StreamsEqual(a, b *ByteStream) bool {
	return BuffersEqual(a.Bytes(), b.Bytes())
}
