package bytestream

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// UUIDLength is the byte length of a UUID
const UUIDLength = 16

// FormatUUID renders u as lowercase hex in the 8-4-4-4-12 grouping
func FormatUUID(u [UUIDLength]byte) string {
	var buf [36]byte

	hex.Encode(buf[0:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], u[10:])

	return string(buf[:])
}

// ParseUUID parses 32 hex characters, dashes anywhere are ignored
func ParseUUID(s string) ([UUIDLength]byte, error) {
	var u [UUIDLength]byte

	h := strings.Replace(s, "-", "", -1)
	if len(h) != 2*UUIDLength {
		return u, errors.Wrapf(ErrInvalidFormat, "uuid %q has %d hex characters, expected %d", s, len(h), 2*UUIDLength)
	}

	if _, err := hex.Decode(u[:], []byte(h)); err != nil {
		return u, errors.Wrapf(ErrInvalidFormat, "uuid %q: %v", s, err)
	}

	return u, nil
}

// WriteUUID writes the 16 bytes of u as given, most significant first
func (s *ByteStream) WriteUUID(u [UUIDLength]byte) error {
	return s.WriteBuffer(u[:])
}

// WriteUUIDBytes writes a UUID held in a slice, which must be 16 bytes long
func (s *ByteStream) WriteUUIDBytes(b []byte) error {
	if len(b) != UUIDLength {
		return errors.Wrapf(ErrInvalidArgument, "uuid must be %d bytes, got %d", UUIDLength, len(b))
	}
	return s.WriteBuffer(b)
}

// WriteUUIDString writes a UUID given as hex text, with or without dashes
func (s *ByteStream) WriteUUIDString(str string) error {
	u, err := ParseUUID(str)
	if err != nil {
		return err
	}
	return s.WriteUUID(u)
}

// ReadUUIDBytes reads the 16 bytes of a UUID
func (s *ByteStream) ReadUUIDBytes() ([UUIDLength]byte, error) {
	var u [UUIDLength]byte

	if err := s.checkRead(UUIDLength); err != nil {
		return u, err
	}

	copy(u[:], s.readable())
	s.readPos += UUIDLength
	return u, nil
}

// ReadUUID reads a UUID and renders it with FormatUUID
func (s *ByteStream) ReadUUID() (string, error) {
	u, err := s.ReadUUIDBytes()
	if err != nil {
		return "", err
	}
	return FormatUUID(u), nil
}
