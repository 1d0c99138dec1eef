package bytestream

import (
	"github.com/performancecopilot/bytestream/varint"
	"github.com/pkg/errors"
)

func (s *ByteStream) writeUvarint(v uint64) error {
	n := varint.UvarintLen(v)
	if err := s.ensureCapacity(n); err != nil {
		return err
	}

	dst, err := s.store.Slice(s.writePos, s.writePos+n)
	if err != nil {
		return err
	}

	varint.PutUvarint(dst, v)
	s.writePos += n
	return nil
}

func (s *ByteStream) readUvarint(max int) (uint64, error) {
	src := s.readable()

	var (
		v   uint64
		n   int
		err error
	)

	if max == varint.MaxLen32 {
		var v32 uint32
		v32, n, err = varint.Uvarint32(src)
		v = uint64(v32)
	} else {
		v, n, err = varint.Uvarint64(src)
	}

	switch errors.Cause(err) {
	case nil:
	case varint.ErrTruncated:
		return 0, errors.Wrapf(ErrOutOfBounds, "varint at %d runs past the readable limit %d", s.readPos, s.readLimit())
	default:
		return 0, errors.Wrapf(ErrInvalidFormat, "varint at %d: %v", s.readPos, err)
	}

	s.readPos += n
	return v, nil
}

// WriteVarInt writes the two's complement bits of v as an unsigned 32 bit
// varint, negative values always take 5 bytes
func (s *ByteStream) WriteVarInt(v int32) error {
	return s.writeUvarint(uint64(uint32(v)))
}

// ReadVarInt reads a 32 bit varint
func (s *ByteStream) ReadVarInt() (int32, error) {
	v, err := s.readUvarint(varint.MaxLen32)
	return int32(uint32(v)), err
}

// WriteVarLong writes the two's complement bits of v as an unsigned 64 bit
// varint, negative values always take 10 bytes
func (s *ByteStream) WriteVarLong(v int64) error {
	return s.writeUvarint(uint64(v))
}

// ReadVarLong reads a 64 bit varint
func (s *ByteStream) ReadVarLong() (int64, error) {
	v, err := s.readUvarint(varint.MaxLen64)
	return int64(v), err
}

// WriteVarUint32 writes an unsigned 32 bit varint
func (s *ByteStream) WriteVarUint32(v uint32) error {
	return s.writeUvarint(uint64(v))
}

// ReadVarUint32 reads an unsigned 32 bit varint
func (s *ByteStream) ReadVarUint32() (uint32, error) {
	v, err := s.readUvarint(varint.MaxLen32)
	return uint32(v), err
}

// WriteVarUint64 writes an unsigned 64 bit varint
func (s *ByteStream) WriteVarUint64(v uint64) error {
	return s.writeUvarint(v)
}

// ReadVarUint64 reads an unsigned 64 bit varint
func (s *ByteStream) ReadVarUint64() (uint64, error) {
	return s.readUvarint(varint.MaxLen64)
}

// WriteZigZagVarInt writes v zigzag mapped as a 32 bit varint, so small
// negative values stay short
func (s *ByteStream) WriteZigZagVarInt(v int32) error {
	return s.writeUvarint(uint64(varint.ZigZagEncode32(v)))
}

// ReadZigZagVarInt reads a zigzag mapped 32 bit varint
func (s *ByteStream) ReadZigZagVarInt() (int32, error) {
	v, err := s.readUvarint(varint.MaxLen32)
	if err != nil {
		return 0, err
	}
	return varint.ZigZagDecode32(uint32(v)), nil
}

// WriteZigZagVarLong writes v zigzag mapped as a 64 bit varint
func (s *ByteStream) WriteZigZagVarLong(v int64) error {
	return s.writeUvarint(varint.ZigZagEncode64(v))
}

// ReadZigZagVarLong reads a zigzag mapped 64 bit varint
func (s *ByteStream) ReadZigZagVarLong() (int64, error) {
	v, err := s.readUvarint(varint.MaxLen64)
	if err != nil {
		return 0, err
	}
	return varint.ZigZagDecode64(v), nil
}
