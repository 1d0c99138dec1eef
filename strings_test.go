package bytestream

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringNT(t *testing.T) {
	s := newTestStream(t, 4, 64)

	require.NoError(t, s.WriteStringNT("hello world!"))
	assert.Equal(t, 13, s.Len())
	assert.Equal(t, byte(0), s.Bytes()[12])

	require.NoError(t, s.WriteStringNT(""))
	assert.Equal(t, 14, s.Len())

	str, err := s.ReadStringNT()
	require.NoError(t, err)
	assert.Equal(t, "hello world!", str)
	assert.Equal(t, 13, s.ReadPos())

	str, err = s.ReadStringNT()
	require.NoError(t, err)
	assert.Equal(t, "", str)
}

func TestStringNTRejectsZeroByte(t *testing.T) {
	s := newTestStream(t, 4, 64)

	err := s.WriteStringNT("a\x00b")
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	assert.Equal(t, 0, s.Len())

	// utf16 encodes ascii with a zero high byte
	err = s.WriteEncodedStringNT("a", UTF16LE)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestStringNTUnterminated(t *testing.T) {
	s, err := NewFromBuffer([]byte("abc"))
	require.NoError(t, err)

	_, err = s.ReadStringNT()
	assert.Equal(t, ErrInvalidFormat, errors.Cause(err))
	assert.Equal(t, 0, s.ReadPos())
}

func TestStringNTScanStopsAtWritten(t *testing.T) {
	s := newTestStream(t, 16, 64)
	require.NoError(t, s.WriteStringRaw("abc"))

	// spare capacity is zeroed but not readable
	_, err := s.ReadStringNT()
	assert.Equal(t, ErrInvalidFormat, errors.Cause(err))
}

func TestStringRaw(t *testing.T) {
	s := newTestStream(t, 1, 64)

	require.NoError(t, s.WriteStringRaw("héllo"))
	assert.Equal(t, 6, s.Len())

	str, err := s.ReadStringRaw(6)
	require.NoError(t, err)
	assert.Equal(t, "héllo", str)

	_, err = s.ReadStringRaw(1)
	assert.Equal(t, ErrOutOfBounds, errors.Cause(err))
}

func TestEncodedStrings(t *testing.T) {
	cases := []struct {
		enc      TextEncoding
		text     string
		expected []byte
	}{
		{UTF8, "é", []byte{0xc3, 0xa9}},
		{Latin1, "é", []byte{0xe9}},
		{UTF16LE, "hi", []byte{'h', 0, 'i', 0}},
		{Hex, "cafe", []byte{0xca, 0xfe}},
		{Base64, "AQID", []byte{1, 2, 3}},
	}

	for _, c := range cases {
		s := newTestStream(t, 1, 64)

		require.NoError(t, s.WriteEncodedStringRaw(c.text, c.enc), c.enc.Name())
		assert.Equal(t, c.expected, s.Bytes(), c.enc.Name())

		str, err := s.ReadEncodedStringRaw(len(c.expected), c.enc)
		require.NoError(t, err, c.enc.Name())
		assert.Equal(t, c.text, str, c.enc.Name())
	}
}

func TestEncodedStringNT(t *testing.T) {
	s := newTestStream(t, 1, 64)

	require.NoError(t, s.WriteEncodedStringNT("café", Latin1))
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9, 0}, s.Bytes())

	str, err := s.ReadEncodedStringNT(Latin1)
	require.NoError(t, err)
	assert.Equal(t, "café", str)

	// a nil encoding means utf8
	require.NoError(t, s.WriteEncodedStringNT("ok", nil))
	str, err = s.ReadEncodedStringNT(nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", str)
}

func TestEncodingErrors(t *testing.T) {
	s := newTestStream(t, 1, 64)

	err := s.WriteEncodedStringRaw("€", Latin1)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	err = s.WriteEncodedStringRaw("zz", Hex)
	assert.Equal(t, ErrInvalidFormat, errors.Cause(err))

	assert.Equal(t, 0, s.Len())
}

func TestEncodingByName(t *testing.T) {
	cases := map[string]TextEncoding{
		"":       UTF8,
		"UTF-8":  UTF8,
		"binary": Latin1,
		"ucs2":   UTF16LE,
		"hex":    Hex,
		"base64": Base64,
	}

	for name, expected := range cases {
		enc, err := EncodingByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected.Name(), enc.Name(), name)
	}

	_, err := EncodingByName("ebcdic")
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestBuffers(t *testing.T) {
	s := newTestStream(t, 1, 64)

	src := []byte{1, 2, 3}
	require.NoError(t, s.WriteBuffer(src))
	require.NoError(t, s.WriteBuffer(nil))
	assert.Equal(t, 3, s.Len())

	got, err := s.ReadBuffer(3)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	// the result does not share the storage
	got[0] = 9
	assert.Equal(t, byte(1), s.Bytes()[0])

	empty, err := s.ReadBuffer(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
