package bytestream

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWriter struct {
	message string
	t       testing.TB
}

func (w *testWriter) Write(b []byte) (int, error) {
	s := string(b)
	if !strings.Contains(s, w.message) {
		w.t.Error("expected log'", string(b), "' to contain", w.message)
	}

	return len(b), nil
}

func TestSetLogWriters(t *testing.T) {
	cases := []string{
		"a",
		"abcdefghijklmnopqrstuvwxyz",
		"aaaaaaaaaaaaaaaaaaaaaaaaaa",
	}

	for _, s := range cases {
		w := &testWriter{s, t}
		SetLogWriters(w)

		if len(logWriters) != 1 {
			t.Error("expected the length of logWriters to be 1")
		}

		logger.Info(s)
	}
}

func TestAddLogWriters(t *testing.T) {
	SetLogWriters(&testWriter{"", t})

	AddLogWriter(&testWriter{"", t})

	if len(logWriters) != 2 {
		t.Error("expected the length of logWriters to be 2")
	}

	AddLogWriter(&testWriter{"", t})

	if len(logWriters) != 3 {
		t.Error("expected the length of logWriters to be 3")
	}
}

func TestGrowthIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogWriters(&buf)
	EnableLogging(true)
	defer func() {
		EnableLogging(false)
		SetLogWriters(os.Stdout)
	}()

	s := newTestStream(t, 1, 4)
	require.NoError(t, s.WriteUint16LE(1))
	assert.Contains(t, buf.String(), "grew storage")

	assert.Error(t, s.WriteUint32LE(1))
	assert.Contains(t, buf.String(), "refusing to grow past the guard limit")
}

func TestMemoryMappedStream(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "stream.bin")

	s, err := NewMemoryMapped(loc, 4, Config{GuardLimit: 64})
	require.NoError(t, err)

	require.NoError(t, s.WriteUint32BE(0xcafebabe))
	require.NoError(t, s.WriteStringNT("mapped"))
	assert.Equal(t, 11, s.Len())
	assert.Equal(t, 11, s.Cap())
	assert.Equal(t, []byte{0xca, 0xfe, 0xba, 0xbe}, s.Bytes()[:4])

	v, err := s.ReadUint32BE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xcafebabe), v)

	require.NoError(t, s.Close())

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, 11, len(data))
	assert.Equal(t, "mapped\x00", string(data[4:11]))
}

func TestMemoryMappedStreamAfterClose(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "stream.bin")

	s, err := NewMemoryMapped(loc, 8, Config{GuardLimit: 64})
	require.NoError(t, err)

	require.NoError(t, s.WriteUint64LE(42))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.Empty(t, s.Bytes())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Remaining())

	_, err = s.ReadUint64LE()
	assert.Equal(t, ErrOutOfBounds, errors.Cause(err))

	err = s.WriteUint8(1)
	assert.Equal(t, ErrClosed, errors.Cause(err))
	assert.Equal(t, 0, s.Len())

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestMemoryMappedStreamLargerThanGuard(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "stream.bin")

	_, err := NewMemoryMapped(loc, 128, Config{GuardLimit: 64})
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	_, err = os.Stat(loc)
	assert.True(t, os.IsNotExist(err))
}
