// Package varint implements the LEB128 style variable length integer encoding
// used by bytestream, along with the zigzag transform for signed values.
//
// An unsigned value is written 7 bits at a time, least significant group
// first. Every byte except the last has its most significant bit (0x80) set to
// signal that more bytes follow.
//
// For example, 300 (0b1_0010_1100) is encoded as
//
//	0xac 0x02
//
// Signed values that tend to be small in magnitude are first mapped through
// zigzag, which interleaves negative and positive numbers
//
//	0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, 2 -> 4 ...
//
// so that -1 takes a single byte instead of the maximum length.
//
// The decoders are bounded by the width of the domain being decoded, 5 bytes
// for 32 bit values and 10 bytes for 64 bit values.
package varint

import "github.com/pkg/errors"

// maximum encoded lengths for each domain
const (
	MaxLen32 = 5
	MaxLen64 = 10
)

var (
	// ErrOverflow is returned when an encoding has more continuation bytes than
	// the domain allows
	ErrOverflow = errors.New("varint overflows the target width")

	// ErrTruncated is returned when the data ends before a byte with the
	// continuation bit cleared
	ErrTruncated = errors.New("varint is truncated")
)

// UvarintLen returns the number of bytes needed to encode v
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// PutUvarint encodes v into buf and returns the number of bytes written.
// It panics if buf is too small, use UvarintLen to size it.
func PutUvarint(buf []byte, v uint64) int {
	i := 0
	for v&^0x7f != 0 {
		buf[i] = byte(v&0x7f) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// AppendUvarint appends the encoding of v to dst
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// uvarint decodes at most max bytes of buf
func uvarint(buf []byte, max int) (uint64, int, error) {
	var (
		x uint64
		s uint
	)

	for i, b := range buf {
		if i == max {
			return 0, 0, ErrOverflow
		}

		x |= uint64(b&0x7f) << s
		if b&0x80 == 0 {
			return x, i + 1, nil
		}

		s += 7
	}

	if len(buf) >= max {
		return 0, 0, ErrOverflow
	}

	return 0, 0, ErrTruncated
}

// Uvarint32 decodes a 32 bit unsigned varint from the start of buf, returning
// the value and the number of bytes consumed. Payload bits beyond 32 in the
// fifth byte are dropped.
func Uvarint32(buf []byte) (uint32, int, error) {
	v, n, err := uvarint(buf, MaxLen32)
	return uint32(v), n, err
}

// Uvarint64 decodes a 64 bit unsigned varint from the start of buf, returning
// the value and the number of bytes consumed.
func Uvarint64(buf []byte) (uint64, int, error) {
	return uvarint(buf, MaxLen64)
}

// ZigZagEncode32 maps a signed 32 bit value onto the unsigned domain
func ZigZagEncode32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// ZigZagDecode32 reverses ZigZagEncode32
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// ZigZagEncode64 maps a signed 64 bit value onto the unsigned domain
func ZigZagEncode64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// ZigZagDecode64 reverses ZigZagEncode64
func ZigZagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
