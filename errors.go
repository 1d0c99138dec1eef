package bytestream

import "github.com/pkg/errors"

// error kinds returned by a ByteStream, wrapped with context. Compare with
// errors.Cause(err) == ErrX or errors.Is(err, ErrX).
var (
	// ErrBufferLimitExceeded is returned when growing the storage would take
	// it past the guard limit
	ErrBufferLimitExceeded = errors.New("buffer size exceeded guard limit")

	// ErrOutOfBounds is returned when a read runs past the readable data, or
	// a cursor is moved outside its valid range
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidFormat is returned for malformed input, e.g. a bad UUID string
	// or an unterminated string
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidArgument is returned when a value of an unsupported
	// representation is passed
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed is returned when writing to a memory mapped stream after
	// Close
	ErrClosed = errors.New("stream is closed")
)
