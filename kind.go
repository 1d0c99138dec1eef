package bytestream

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Kind is an enumerated type representing every shape of value a ByteStream
// can encode
type Kind int32

// Possible values for a Kind
const (
	NoKind Kind = iota - 1
	Uint8Kind
	Int8Kind
	Uint16LEKind
	Uint16BEKind
	Int16LEKind
	Int16BEKind
	Uint32LEKind
	Uint32BEKind
	Int32LEKind
	Int32BEKind
	Uint64LEKind
	Uint64BEKind
	Int64LEKind
	Int64BEKind
	Float32LEKind
	Float32BEKind
	Float64LEKind
	Float64BEKind
	VarIntKind
	VarLongKind
	VarUint32Kind
	VarUint64Kind
	ZigZagVarIntKind
	ZigZagVarLongKind
	StringNTKind
	StringRawKind
	BufferKind
	UUIDKind
)

var kindNames = [...]string{
	"uint8", "int8",
	"uint16le", "uint16be", "int16le", "int16be",
	"uint32le", "uint32be", "int32le", "int32be",
	"uint64le", "uint64be", "int64le", "int64be",
	"float32le", "float32be", "float64le", "float64be",
	"varint", "varlong", "varuint32", "varuint64", "zigzagvarint", "zigzagvarlong",
	"stringnt", "stringraw", "buffer", "uuid",
}

var kindAliases = map[string]Kind{
	"byte":     Uint8Kind,
	"floatle":  Float32LEKind,
	"floatbe":  Float32BEKind,
	"doublele": Float64LEKind,
	"doublebe": Float64BEKind,
	"bytes":    BufferKind,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// ParseKind resolves the name of a Kind, as returned by String, case
// insensitively
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(name)

	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	if k, ok := kindAliases[name]; ok {
		return k, nil
	}

	return NoKind, errors.Wrapf(ErrInvalidArgument, "unknown kind %q", name)
}

// Size returns the encoded width of fixed size kinds, and -1 for kinds whose
// size depends on the value
func (k Kind) Size() int {
	switch k {
	case Uint8Kind, Int8Kind:
		return 1
	case Uint16LEKind, Uint16BEKind, Int16LEKind, Int16BEKind:
		return 2
	case Uint32LEKind, Uint32BEKind, Int32LEKind, Int32BEKind, Float32LEKind, Float32BEKind:
		return 4
	case Uint64LEKind, Uint64BEKind, Int64LEKind, Int64BEKind, Float64LEKind, Float64BEKind:
		return 8
	case UUIDKind:
		return UUIDLength
	}
	return -1
}

func (k Kind) isInteger() bool {
	return (k >= Uint8Kind && k <= Int64BEKind) || (k >= VarIntKind && k <= ZigZagVarLongKind)
}

func (k Kind) isFloat() bool {
	return k >= Float32LEKind && k <= Float64BEKind
}

func (k Kind) order() binary.ByteOrder {
	switch k {
	case Uint16BEKind, Int16BEKind, Uint32BEKind, Int32BEKind,
		Uint64BEKind, Int64BEKind, Float32BEKind, Float64BEKind:
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsCompatible checks if the passed value can be written as the current Kind
func (k Kind) IsCompatible(val interface{}) bool {
	switch {
	case k.isInteger():
		_, ok := integerBits(val)
		return ok
	case k.isFloat():
		_, ok := floatValue(val)
		return ok
	}

	switch k {
	case StringNTKind, StringRawKind:
		_, ok := val.(string)
		return ok
	case BufferKind:
		switch val.(type) {
		case []byte, string:
			return true
		}
	case UUIDKind:
		switch val.(type) {
		case [UUIDLength]byte, []byte, string, fmt.Stringer:
			return true
		}
	}

	return false
}

///////////////////////////////////////////////////////////////////////////////

// the largest magnitude a float64 holds without losing integer precision
const maxSafeInteger = 1<<53 - 1

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// integerBits resolves any integer representation to its 64 bit two's
// complement bits. Wide values keep their low 64 bits, floats are accepted
// only when they hold an integer that is exactly representable.
func integerBits(val interface{}) (uint64, bool) {
	switch v := val.(type) {
	case int:
		return uint64(v), true
	case int8:
		return uint64(v), true
	case int16:
		return uint64(v), true
	case int32:
		return uint64(v), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case *big.Int:
		if v == nil {
			return 0, false
		}
		return new(big.Int).And(v, mask64).Uint64(), true
	case float32:
		return floatBits(float64(v))
	case float64:
		return floatBits(v)
	}
	return 0, false
}

func floatBits(f float64) (uint64, bool) {
	if f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return uint64(int64(f)), true
}

// floatValue resolves a numeric value to a float64
func floatValue(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

///////////////////////////////////////////////////////////////////////////////

// WriteValue writes val as the passed Kind. Integers of any Go type, as well
// as *big.Int and floats holding an exact integer, are accepted for integer
// kinds and are truncated to the width of the kind, so 300 written as
// Uint8Kind gives 0x2c. Strings are written as UTF-8.
func (s *ByteStream) WriteValue(k Kind, val interface{}) error {
	return s.WriteValueWith(k, val, UTF8)
}

// MustWriteValue panics if WriteValue fails
func (s *ByteStream) MustWriteValue(k Kind, val interface{}) {
	if err := s.WriteValue(k, val); err != nil {
		panic(err)
	}
}

// WriteValueWith is WriteValue with a text encoding for string kinds
func (s *ByteStream) WriteValueWith(k Kind, val interface{}, enc TextEncoding) error {
	if !k.IsCompatible(val) {
		return errors.Wrapf(ErrInvalidArgument, "cannot write %T as %v", val, k)
	}

	if k.isInteger() {
		bits, _ := integerBits(val)
		return s.writeInteger(k, bits)
	}

	if k.isFloat() {
		f, _ := floatValue(val)
		switch k {
		case Float32LEKind, Float32BEKind:
			return s.writeUint32(math.Float32bits(float32(f)), k.order())
		default:
			return s.writeUint64(math.Float64bits(f), k.order())
		}
	}

	switch k {
	case StringNTKind:
		return s.WriteEncodedStringNT(val.(string), enc)
	case StringRawKind:
		return s.WriteEncodedStringRaw(val.(string), enc)
	case BufferKind:
		if str, ok := val.(string); ok {
			return s.WriteBuffer([]byte(str))
		}
		return s.WriteBuffer(val.([]byte))
	}

	// UUIDKind
	switch v := val.(type) {
	case [UUIDLength]byte:
		return s.WriteUUID(v)
	case []byte:
		return s.WriteUUIDBytes(v)
	case string:
		return s.WriteUUIDString(v)
	default:
		return s.WriteUUIDString(v.(fmt.Stringer).String())
	}
}

func (s *ByteStream) writeInteger(k Kind, bits uint64) error {
	switch k {
	case Uint8Kind, Int8Kind:
		return s.WriteUint8(uint8(bits))
	case Uint16LEKind, Uint16BEKind, Int16LEKind, Int16BEKind:
		return s.writeUint16(uint16(bits), k.order())
	case Uint32LEKind, Uint32BEKind, Int32LEKind, Int32BEKind:
		return s.writeUint32(uint32(bits), k.order())
	case Uint64LEKind, Uint64BEKind, Int64LEKind, Int64BEKind:
		return s.writeUint64(bits, k.order())
	case VarIntKind:
		return s.WriteVarInt(int32(uint32(bits)))
	case VarLongKind:
		return s.WriteVarLong(int64(bits))
	case VarUint32Kind:
		return s.WriteVarUint32(uint32(bits))
	case VarUint64Kind:
		return s.WriteVarUint64(bits)
	case ZigZagVarIntKind:
		return s.WriteZigZagVarInt(int32(uint32(bits)))
	case ZigZagVarLongKind:
		return s.WriteZigZagVarLong(int64(bits))
	}
	return errors.Wrapf(ErrInvalidArgument, "%v is not an integer kind", k)
}

// ReadValue reads a value of the passed Kind, n is the byte length for
// StringRawKind and BufferKind and is ignored otherwise. Strings are read as
// UTF-8 and UUIDs are returned formatted.
func (s *ByteStream) ReadValue(k Kind, n int) (interface{}, error) {
	return s.ReadValueWith(k, n, UTF8)
}

// ReadValueWith is ReadValue with a text encoding for string kinds
func (s *ByteStream) ReadValueWith(k Kind, n int, enc TextEncoding) (interface{}, error) {
	switch k {
	case Uint8Kind:
		return s.ReadUint8()
	case Int8Kind:
		return s.ReadInt8()
	case Uint16LEKind:
		return s.ReadUint16LE()
	case Uint16BEKind:
		return s.ReadUint16BE()
	case Int16LEKind:
		return s.ReadInt16LE()
	case Int16BEKind:
		return s.ReadInt16BE()
	case Uint32LEKind:
		return s.ReadUint32LE()
	case Uint32BEKind:
		return s.ReadUint32BE()
	case Int32LEKind:
		return s.ReadInt32LE()
	case Int32BEKind:
		return s.ReadInt32BE()
	case Uint64LEKind:
		return s.ReadUint64LE()
	case Uint64BEKind:
		return s.ReadUint64BE()
	case Int64LEKind:
		return s.ReadInt64LE()
	case Int64BEKind:
		return s.ReadInt64BE()
	case Float32LEKind:
		return s.ReadFloat32LE()
	case Float32BEKind:
		return s.ReadFloat32BE()
	case Float64LEKind:
		return s.ReadFloat64LE()
	case Float64BEKind:
		return s.ReadFloat64BE()
	case VarIntKind:
		return s.ReadVarInt()
	case VarLongKind:
		return s.ReadVarLong()
	case VarUint32Kind:
		return s.ReadVarUint32()
	case VarUint64Kind:
		return s.ReadVarUint64()
	case ZigZagVarIntKind:
		return s.ReadZigZagVarInt()
	case ZigZagVarLongKind:
		return s.ReadZigZagVarLong()
	case StringNTKind:
		return s.ReadEncodedStringNT(enc)
	case StringRawKind:
		return s.ReadEncodedStringRaw(n, enc)
	case BufferKind:
		return s.ReadBuffer(n)
	case UUIDKind:
		return s.ReadUUID()
	}

	return nil, errors.Wrapf(ErrInvalidArgument, "cannot read %v", k)
}
