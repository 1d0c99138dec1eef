package bytestream

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// TextEncoding converts between strings and their byte representation
type TextEncoding interface {
	Name() string
	Encode(s string) ([]byte, error)
	Decode(b []byte) (string, error)
}

// supported text encodings
var (
	UTF8    TextEncoding = utf8Encoding{}
	Latin1  TextEncoding = xtextEncoding{"latin1", charmap.ISO8859_1}
	UTF16LE TextEncoding = xtextEncoding{"utf16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}
	Hex     TextEncoding = hexEncoding{}
	Base64  TextEncoding = base64Encoding{}
)

var encodingNames = map[string]TextEncoding{
	"":         UTF8,
	"utf8":     UTF8,
	"utf-8":    UTF8,
	"latin1":   Latin1,
	"binary":   Latin1,
	"utf16le":  UTF16LE,
	"utf-16le": UTF16LE,
	"ucs2":     UTF16LE,
	"ucs-2":    UTF16LE,
	"hex":      Hex,
	"base64":   Base64,
}

// EncodingByName resolves an encoding name such as "utf8", "latin1" or
// "hex", an empty name means UTF8
func EncodingByName(name string) (TextEncoding, error) {
	if e, ok := encodingNames[strings.ToLower(name)]; ok {
		return e, nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown text encoding %q", name)
}

type utf8Encoding struct{}

func (utf8Encoding) Name() string                    { return "utf8" }
func (utf8Encoding) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (utf8Encoding) Decode(b []byte) (string, error) { return string(b), nil }

type xtextEncoding struct {
	name string
	enc  encoding.Encoding
}

func (e xtextEncoding) Name() string { return e.name }

func (e xtextEncoding) Encode(s string) ([]byte, error) {
	b, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot encode %q as %s: %v", s, e.name, err)
	}
	return b, nil
}

func (e xtextEncoding) Decode(b []byte) (string, error) {
	d, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidFormat, "cannot decode %s: %v", e.name, err)
	}
	return string(d), nil
}

// hexEncoding treats the string as hex text, Encode parses it into bytes
type hexEncoding struct{}

func (hexEncoding) Name() string { return "hex" }

func (hexEncoding) Encode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "hex text %q: %v", s, err)
	}
	return b, nil
}

func (hexEncoding) Decode(b []byte) (string, error) { return hex.EncodeToString(b), nil }

// base64Encoding treats the string as base64 text, padded or not
type base64Encoding struct{}

func (base64Encoding) Name() string { return "base64" }

func (base64Encoding) Encode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		b, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "base64 text %q: %v", s, err)
	}
	return b, nil
}

func (base64Encoding) Decode(b []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}
