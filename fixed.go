package bytestream

import (
	"encoding/binary"
	"math"
)

func (s *ByteStream) writeUint16(v uint16, order binary.ByteOrder) error {
	if err := s.ensureCapacity(2); err != nil {
		return err
	}
	if err := s.store.PutUint16(s.writePos, v, order); err != nil {
		return err
	}
	s.writePos += 2
	return nil
}

func (s *ByteStream) writeUint32(v uint32, order binary.ByteOrder) error {
	if err := s.ensureCapacity(4); err != nil {
		return err
	}
	if err := s.store.PutUint32(s.writePos, v, order); err != nil {
		return err
	}
	s.writePos += 4
	return nil
}

func (s *ByteStream) writeUint64(v uint64, order binary.ByteOrder) error {
	if err := s.ensureCapacity(8); err != nil {
		return err
	}
	if err := s.store.PutUint64(s.writePos, v, order); err != nil {
		return err
	}
	s.writePos += 8
	return nil
}

func (s *ByteStream) readUint16(order binary.ByteOrder) (uint16, error) {
	if err := s.checkRead(2); err != nil {
		return 0, err
	}
	v, err := s.store.Uint16(s.readPos, order)
	if err != nil {
		return 0, err
	}
	s.readPos += 2
	return v, nil
}

func (s *ByteStream) readUint32(order binary.ByteOrder) (uint32, error) {
	if err := s.checkRead(4); err != nil {
		return 0, err
	}
	v, err := s.store.Uint32(s.readPos, order)
	if err != nil {
		return 0, err
	}
	s.readPos += 4
	return v, nil
}

func (s *ByteStream) readUint64(order binary.ByteOrder) (uint64, error) {
	if err := s.checkRead(8); err != nil {
		return 0, err
	}
	v, err := s.store.Uint64(s.readPos, order)
	if err != nil {
		return 0, err
	}
	s.readPos += 8
	return v, nil
}

// WriteUint8 writes a byte
func (s *ByteStream) WriteUint8(v uint8) error {
	if err := s.ensureCapacity(1); err != nil {
		return err
	}
	if err := s.store.PutUint8(s.writePos, v); err != nil {
		return err
	}
	s.writePos++
	return nil
}

// WriteInt8 writes a signed byte
func (s *ByteStream) WriteInt8(v int8) error { return s.WriteUint8(uint8(v)) }

// ReadUint8 reads a byte
func (s *ByteStream) ReadUint8() (uint8, error) {
	if err := s.checkRead(1); err != nil {
		return 0, err
	}
	v, err := s.store.Uint8(s.readPos)
	if err != nil {
		return 0, err
	}
	s.readPos++
	return v, nil
}

// ReadInt8 reads a signed byte
func (s *ByteStream) ReadInt8() (int8, error) {
	v, err := s.ReadUint8()
	return int8(v), err
}

// WriteUint16LE writes an unsigned 16 bit integer in little-endian order
func (s *ByteStream) WriteUint16LE(v uint16) error { return s.writeUint16(v, binary.LittleEndian) }

// ReadUint16LE reads an unsigned 16 bit integer in little-endian order
func (s *ByteStream) ReadUint16LE() (uint16, error) { return s.readUint16(binary.LittleEndian) }

// WriteUint16BE writes an unsigned 16 bit integer in big-endian order
func (s *ByteStream) WriteUint16BE(v uint16) error { return s.writeUint16(v, binary.BigEndian) }

// ReadUint16BE reads an unsigned 16 bit integer in big-endian order
func (s *ByteStream) ReadUint16BE() (uint16, error) { return s.readUint16(binary.BigEndian) }

// WriteInt16LE writes a signed 16 bit integer in little-endian order
func (s *ByteStream) WriteInt16LE(v int16) error { return s.writeUint16(uint16(v), binary.LittleEndian) }

// ReadInt16LE reads a signed 16 bit integer in little-endian order
func (s *ByteStream) ReadInt16LE() (int16, error) {
	v, err := s.readUint16(binary.LittleEndian)
	return int16(v), err
}

// WriteInt16BE writes a signed 16 bit integer in big-endian order
func (s *ByteStream) WriteInt16BE(v int16) error { return s.writeUint16(uint16(v), binary.BigEndian) }

// ReadInt16BE reads a signed 16 bit integer in big-endian order
func (s *ByteStream) ReadInt16BE() (int16, error) {
	v, err := s.readUint16(binary.BigEndian)
	return int16(v), err
}

// WriteUint32LE writes an unsigned 32 bit integer in little-endian order
func (s *ByteStream) WriteUint32LE(v uint32) error { return s.writeUint32(v, binary.LittleEndian) }

// ReadUint32LE reads an unsigned 32 bit integer in little-endian order
func (s *ByteStream) ReadUint32LE() (uint32, error) { return s.readUint32(binary.LittleEndian) }

// WriteUint32BE writes an unsigned 32 bit integer in big-endian order
func (s *ByteStream) WriteUint32BE(v uint32) error { return s.writeUint32(v, binary.BigEndian) }

// ReadUint32BE reads an unsigned 32 bit integer in big-endian order
func (s *ByteStream) ReadUint32BE() (uint32, error) { return s.readUint32(binary.BigEndian) }

// WriteInt32LE writes a signed 32 bit integer in little-endian order
func (s *ByteStream) WriteInt32LE(v int32) error { return s.writeUint32(uint32(v), binary.LittleEndian) }

// ReadInt32LE reads a signed 32 bit integer in little-endian order
func (s *ByteStream) ReadInt32LE() (int32, error) {
	v, err := s.readUint32(binary.LittleEndian)
	return int32(v), err
}

// WriteInt32BE writes a signed 32 bit integer in big-endian order
func (s *ByteStream) WriteInt32BE(v int32) error { return s.writeUint32(uint32(v), binary.BigEndian) }

// ReadInt32BE reads a signed 32 bit integer in big-endian order
func (s *ByteStream) ReadInt32BE() (int32, error) {
	v, err := s.readUint32(binary.BigEndian)
	return int32(v), err
}

// WriteUint64LE writes an unsigned 64 bit integer in little-endian order
func (s *ByteStream) WriteUint64LE(v uint64) error { return s.writeUint64(v, binary.LittleEndian) }

// ReadUint64LE reads an unsigned 64 bit integer in little-endian order
func (s *ByteStream) ReadUint64LE() (uint64, error) { return s.readUint64(binary.LittleEndian) }

// WriteUint64BE writes an unsigned 64 bit integer in big-endian order
func (s *ByteStream) WriteUint64BE(v uint64) error { return s.writeUint64(v, binary.BigEndian) }

// ReadUint64BE reads an unsigned 64 bit integer in big-endian order
func (s *ByteStream) ReadUint64BE() (uint64, error) { return s.readUint64(binary.BigEndian) }

// WriteInt64LE writes a signed 64 bit integer in little-endian order
func (s *ByteStream) WriteInt64LE(v int64) error { return s.writeUint64(uint64(v), binary.LittleEndian) }

// ReadInt64LE reads a signed 64 bit integer in little-endian order
func (s *ByteStream) ReadInt64LE() (int64, error) {
	v, err := s.readUint64(binary.LittleEndian)
	return int64(v), err
}

// WriteInt64BE writes a signed 64 bit integer in big-endian order
func (s *ByteStream) WriteInt64BE(v int64) error { return s.writeUint64(uint64(v), binary.BigEndian) }

// ReadInt64BE reads a signed 64 bit integer in big-endian order
func (s *ByteStream) ReadInt64BE() (int64, error) {
	v, err := s.readUint64(binary.BigEndian)
	return int64(v), err
}

// WriteFloat32LE writes an IEEE-754 single precision float in little-endian order
func (s *ByteStream) WriteFloat32LE(v float32) error { return s.writeUint32(math.Float32bits(v), binary.LittleEndian) }

// ReadFloat32LE reads an IEEE-754 single precision float in little-endian order
func (s *ByteStream) ReadFloat32LE() (float32, error) {
	v, err := s.readUint32(binary.LittleEndian)
	return math.Float32frombits(v), err
}

// WriteFloat32BE writes an IEEE-754 single precision float in big-endian order
func (s *ByteStream) WriteFloat32BE(v float32) error { return s.writeUint32(math.Float32bits(v), binary.BigEndian) }

// ReadFloat32BE reads an IEEE-754 single precision float in big-endian order
func (s *ByteStream) ReadFloat32BE() (float32, error) {
	v, err := s.readUint32(binary.BigEndian)
	return math.Float32frombits(v), err
}

// WriteFloat64LE writes an IEEE-754 double precision float in little-endian order
func (s *ByteStream) WriteFloat64LE(v float64) error { return s.writeUint64(math.Float64bits(v), binary.LittleEndian) }

// ReadFloat64LE reads an IEEE-754 double precision float in little-endian order
func (s *ByteStream) ReadFloat64LE() (float64, error) {
	v, err := s.readUint64(binary.LittleEndian)
	return math.Float64frombits(v), err
}

// WriteFloat64BE writes an IEEE-754 double precision float in big-endian order
func (s *ByteStream) WriteFloat64BE(v float64) error { return s.writeUint64(math.Float64bits(v), binary.BigEndian) }

// ReadFloat64BE reads an IEEE-754 double precision float in big-endian order
func (s *ByteStream) ReadFloat64BE() (float64, error) {
	v, err := s.readUint64(binary.BigEndian)
	return math.Float64frombits(v), err
}

// WriteUint64Halves writes a 64 bit value given as two 32 bit halves. The
// halves are placed so the result is identical to writing hi<<32|lo as a
// single 64 bit value in the same byte order.
func (s *ByteStream) WriteUint64Halves(hi, lo uint32, order binary.ByteOrder) error {
	if err := s.ensureCapacity(8); err != nil {
		return err
	}

	first, second := hi, lo
	if order == binary.LittleEndian {
		first, second = lo, hi
	}

	if err := s.store.PutUint32(s.writePos, first, order); err != nil {
		return err
	}
	if err := s.store.PutUint32(s.writePos+4, second, order); err != nil {
		return err
	}

	s.writePos += 8
	return nil
}
