package bytebuffer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestPutUint32(t *testing.T) {
	cases := []uint32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647, 4294967295}

	for _, val := range cases {
		b := NewByteBuffer(4)

		err := b.PutUint32(0, val, binary.LittleEndian)
		if err != nil {
			t.Error(err)
			return
		}

		e := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		for i := 0; i < 4; i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}

		got, err := b.Uint32(0, binary.LittleEndian)
		if err != nil {
			t.Error(err)
			return
		}

		if got != val {
			t.Errorf("expected %v, got %v", val, got)
		}
	}
}

func TestPutUint64BigEndian(t *testing.T) {
	cases := []uint64{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647,
		4294967295, 10000000000000, 100000000000000000, 9223372036854775807, 18446744073709551615}

	for _, val := range cases {
		b := NewByteBuffer(8)

		err := b.PutUint64(0, val, binary.BigEndian)
		if err != nil {
			t.Error(err)
			return
		}

		e := []byte{
			byte(val >> 56),
			byte((val >> 48) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}

		for i := 0; i < 8; i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}

		got, err := b.Uint64(0, binary.BigEndian)
		if err != nil {
			t.Error(err)
			return
		}

		if got != val {
			t.Errorf("expected %v, got %v", val, got)
		}
	}
}

func TestWriteAt(t *testing.T) {
	cases := []string{"MMV", "Suyash", "This is a little long string"}
	for _, val := range cases {
		b := NewByteBuffer(len(val))

		n, err := b.WriteAt([]byte(val), 0)
		if err != nil {
			t.Error(err)
			return
		}

		if n != len(val) {
			t.Errorf("Expected to write %v bytes, writing %v bytes", len(val), n)
			return
		}

		if string(b.Bytes()) != val {
			t.Errorf("expected %q, got %q", val, b.Bytes())
		}
	}
}

func TestOutOfRange(t *testing.T) {
	b := NewByteBuffer(4)

	if err := b.PutUint8(2, 'a'); err != nil {
		t.Error("Did not Expect error in writing a value inside the buffer")
		return
	}

	if b.Bytes()[2] != 'a' {
		t.Error("Value was not written at the expected position")
		return
	}

	err := b.PutUint32(2, 10, binary.LittleEndian)
	if errors.Cause(err) != ErrOutOfRange {
		t.Errorf("Expected ErrOutOfRange in writing a value guaranteed to overflow, got %v", err)
	}

	if b.Bytes()[2] != 'a' || b.Bytes()[3] != 0 {
		t.Error("failed write modified the buffer")
	}

	if _, err = b.Uint16(3, binary.LittleEndian); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange reading past the end, got %v", err)
	}

	if _, err = b.Uint8(-1); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange reading a negative offset, got %v", err)
	}

	if _, err = b.WriteAt([]byte("abc"), 2); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange writing past the end, got %v", err)
	}

	if _, err = b.Slice(3, 5); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange slicing past the end, got %v", err)
	}
}

func TestResize(t *testing.T) {
	b := NewByteBuffer(4)
	b.MustWriteAt([]byte{1, 2, 3, 4}, 0)

	if err := b.Resize(16); err != nil {
		t.Fatal(err)
	}

	if b.Len() != 16 {
		t.Errorf("expected length 16, got %v", b.Len())
	}

	s, err := b.Slice(0, 4)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range []byte{1, 2, 3, 4} {
		if s[i] != v {
			t.Errorf("pos: %v, expected: %v, got %v", i, v, s[i])
		}
	}

	if err := b.Resize(-1); err == nil {
		t.Error("expected an error resizing to a negative length")
	}
}

func TestResizeAdoptedCapacity(t *testing.T) {
	backing := make([]byte, 2, 8)
	b := NewByteBufferSlice(backing)

	if err := b.Resize(8); err != nil {
		t.Fatal(err)
	}

	if err := b.PutUint8(7, 9); err != nil {
		t.Fatal(err)
	}

	if backing[:8][7] != 9 {
		t.Error("expected growth within capacity to reuse the adopted array")
	}
}

func TestHugeRangeIsOutOfRange(t *testing.T) {
	b := NewByteBuffer(4)

	if _, err := b.Slice(1, math.MaxInt); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange for a huge slice, got %v", err)
	}

	if err := checkRange(1, math.MaxInt, b.Len()); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange when off+n wraps, got %v", err)
	}

	if err := checkRange(5, 0, b.Len()); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange for an offset past the end, got %v", err)
	}

	if err := checkRange(4, 0, b.Len()); err != nil {
		t.Errorf("expected an empty access at the end to be valid, got %v", err)
	}
}
