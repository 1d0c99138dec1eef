package bytestream

import (
	"bytes"

	"github.com/pkg/errors"
)

// WriteBuffer copies p verbatim to the stream
func (s *ByteStream) WriteBuffer(p []byte) error {
	if err := s.ensureCapacity(len(p)); err != nil {
		return err
	}

	if _, err := s.store.WriteAt(p, s.writePos); err != nil {
		return err
	}

	s.writePos += len(p)
	return nil
}

// ReadBuffer reads exactly n bytes, returning a copy
func (s *ByteStream) ReadBuffer(n int) ([]byte, error) {
	if err := s.checkRead(n); err != nil {
		return nil, err
	}

	b := make([]byte, n)
	copy(b, s.readable())
	s.readPos += n
	return b, nil
}

// ReadRemaining returns a copy of everything left to read and moves the read
// position to the end of the readable data
func (s *ByteStream) ReadRemaining() []byte {
	src := s.readable()

	b := make([]byte, len(src))
	copy(b, src)
	s.readPos += len(src)
	return b
}

// ReadRemainingWritten returns the whole written region and moves the read
// position to the write position. The slice shares the storage, like Bytes.
func (s *ByteStream) ReadRemainingWritten() []byte {
	s.readPos = s.writePos
	return s.Bytes()
}

func encodingOrDefault(enc TextEncoding) TextEncoding {
	if enc == nil {
		return UTF8
	}
	return enc
}

// WriteStringNT writes s as UTF-8 followed by a zero byte
func (s *ByteStream) WriteStringNT(str string) error {
	return s.WriteEncodedStringNT(str, UTF8)
}

// WriteEncodedStringNT writes str in the passed encoding followed by a zero
// byte. Strings whose encoding contains a zero byte are rejected, as they
// could not be read back.
func (s *ByteStream) WriteEncodedStringNT(str string, enc TextEncoding) error {
	enc = encodingOrDefault(enc)

	b, err := enc.Encode(str)
	if err != nil {
		return err
	}

	if i := bytes.IndexByte(b, 0); i >= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s encoding of %q has a zero byte at %d", enc.Name(), str, i)
	}

	if err = s.ensureCapacity(len(b) + 1); err != nil {
		return err
	}

	if _, err = s.store.WriteAt(b, s.writePos); err != nil {
		return err
	}

	if err = s.store.PutUint8(s.writePos+len(b), 0); err != nil {
		return err
	}

	s.writePos += len(b) + 1
	return nil
}

// ReadStringNT reads a zero terminated UTF-8 string
func (s *ByteStream) ReadStringNT() (string, error) {
	return s.ReadEncodedStringNT(UTF8)
}

// ReadEncodedStringNT reads a zero terminated string in the passed encoding.
// The terminator is consumed but not returned.
func (s *ByteStream) ReadEncodedStringNT(enc TextEncoding) (string, error) {
	enc = encodingOrDefault(enc)

	src := s.readable()
	end := bytes.IndexByte(src, 0)
	if end < 0 {
		return "", errors.Wrapf(ErrInvalidFormat, "no string terminator between %d and %d", s.readPos, s.readLimit())
	}

	str, err := enc.Decode(src[:end])
	if err != nil {
		return "", err
	}

	s.readPos += end + 1
	return str, nil
}

// WriteStringRaw writes str as UTF-8 without any terminator or length
func (s *ByteStream) WriteStringRaw(str string) error {
	return s.WriteEncodedStringRaw(str, UTF8)
}

// WriteEncodedStringRaw writes str in the passed encoding without any
// terminator or length
func (s *ByteStream) WriteEncodedStringRaw(str string, enc TextEncoding) error {
	b, err := encodingOrDefault(enc).Encode(str)
	if err != nil {
		return err
	}
	return s.WriteBuffer(b)
}

// ReadStringRaw reads n bytes as a UTF-8 string
func (s *ByteStream) ReadStringRaw(n int) (string, error) {
	return s.ReadEncodedStringRaw(n, UTF8)
}

// ReadEncodedStringRaw reads n bytes as a string in the passed encoding
func (s *ByteStream) ReadEncodedStringRaw(n int, enc TextEncoding) (string, error) {
	if err := s.checkRead(n); err != nil {
		return "", err
	}

	str, err := encodingOrDefault(enc).Decode(s.readable()[:n])
	if err != nil {
		return "", err
	}

	s.readPos += n
	return str, nil
}
