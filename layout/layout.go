// Package layout describes a binary record as an ordered list of typed fields
// and encodes or decodes such records through a bytestream.ByteStream.
//
// Layouts are written in YAML
//
//	name: header
//	fields:
//	  - {name: id, kind: varint}
//	  - {name: label, kind: stringnt, encoding: latin1}
//	  - {name: blob, kind: buffer, length: 5, encoding: hex}
//
// kind is any name accepted by bytestream.ParseKind. length is required for
// the stringraw and buffer kinds, which carry no length of their own. encoding
// applies to string kinds, and to buffers, whose values are then given as
// text in that encoding (hex or base64, say) instead of raw bytes.
package layout

import (
	"fmt"
	"io/ioutil"

	"github.com/performancecopilot/bytestream"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Field is a single named value in a Layout
type Field struct {
	Name     string `yaml:"name"`
	KindName string `yaml:"kind"`
	Encoding string `yaml:"encoding,omitempty"`
	Length   int    `yaml:"length,omitempty"`

	kind bytestream.Kind
	enc  bytestream.TextEncoding
}

// Kind returns the resolved kind of the field
func (f *Field) Kind() bytestream.Kind { return f.kind }

func (f *Field) hasLength() bool {
	return f.kind == bytestream.StringRawKind || f.kind == bytestream.BufferKind
}

func (f *Field) hasEncoding() bool {
	return f.hasLength() || f.kind == bytestream.StringNTKind
}

func (f *Field) compile() error {
	if f.Name == "" {
		return errors.New("field without a name")
	}

	k, err := bytestream.ParseKind(f.KindName)
	if err != nil {
		return errors.Wrapf(err, "field %s", f.Name)
	}
	f.kind = k

	switch {
	case f.hasLength() && f.Length <= 0:
		return errors.Errorf("field %s of kind %v needs a positive length", f.Name, k)
	case !f.hasLength() && f.Length != 0:
		return errors.Errorf("field %s of kind %v cannot have a length", f.Name, k)
	case !f.hasEncoding() && f.Encoding != "":
		return errors.Errorf("field %s of kind %v cannot have an encoding", f.Name, k)
	}

	if f.Encoding != "" {
		if f.enc, err = bytestream.EncodingByName(f.Encoding); err != nil {
			return errors.Wrapf(err, "field %s", f.Name)
		}
	}

	return nil
}

// Layout is an ordered list of fields
type Layout struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Parse reads a Layout from YAML and validates it
func Parse(data []byte) (*Layout, error) {
	l := new(Layout)
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, errors.Wrap(err, "cannot parse layout")
	}

	if err := l.compile(); err != nil {
		return nil, err
	}

	return l, nil
}

// Load reads a Layout from a YAML file
func Load(file string) (*Layout, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read layout")
	}
	return Parse(data)
}

func (l *Layout) compile() error {
	if len(l.Fields) == 0 {
		return errors.Errorf("layout %q has no fields", l.Name)
	}

	seen := make(map[string]bool, len(l.Fields))
	for i := range l.Fields {
		f := &l.Fields[i]
		if err := f.compile(); err != nil {
			return errors.Wrapf(err, "layout %q", l.Name)
		}

		if seen[f.Name] {
			return errors.Errorf("layout %q has a duplicate field %s", l.Name, f.Name)
		}
		seen[f.Name] = true
	}

	return nil
}

// Size returns the encoded size of the layout, or -1 if a field has no fixed
// size
func (l *Layout) Size() int {
	size := 0
	for i := range l.Fields {
		f := &l.Fields[i]

		n := f.kind.Size()
		if f.hasLength() {
			n = f.Length
		}
		if n < 0 {
			return -1
		}

		size += n
	}
	return size
}

// ParseValues reads a YAML mapping of field names to values
func ParseValues(data []byte) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}
	return values, nil
}

// LoadValues reads a YAML mapping of field names to values from a file
func LoadValues(file string) (map[string]interface{}, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read values")
	}
	return ParseValues(data)
}

// Encode writes values, keyed by field name, in the order of the layout into
// a stream created from c, returning the written bytes
func (l *Layout) Encode(values map[string]interface{}, c bytestream.Config) ([]byte, error) {
	s, err := bytestream.NewWithConfig(c)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	for i := range l.Fields {
		f := &l.Fields[i]

		val, ok := values[f.Name]
		if !ok {
			return nil, errors.Errorf("no value for field %s", f.Name)
		}

		if err = l.encodeField(s, f, val); err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
	}

	b := make([]byte, s.Len())
	copy(b, s.Bytes())
	return b, nil
}

func (l *Layout) encodeField(s *bytestream.ByteStream, f *Field, val interface{}) error {
	val, err := f.normalize(val)
	if err != nil {
		return err
	}

	start := s.WritePos()
	if err = s.WriteValueWith(f.kind, val, f.enc); err != nil {
		return err
	}

	if n := s.WritePos() - start; f.hasLength() && n != f.Length {
		return errors.Wrapf(bytestream.ErrInvalidArgument, "value takes %d bytes, field length is %d", n, f.Length)
	}

	return nil
}

// normalize converts values as they come out of YAML into ones the field kind
// accepts
func (f *Field) normalize(val interface{}) (interface{}, error) {
	if f.kind != bytestream.BufferKind {
		return val, nil
	}

	switch v := val.(type) {
	case string:
		if f.enc == nil {
			return []byte(v), nil
		}
		return f.enc.Encode(v)
	case []interface{}:
		b := make([]byte, len(v))
		for i, e := range v {
			n, ok := e.(int)
			if !ok || n < 0 || n > 0xff {
				return nil, errors.Wrapf(bytestream.ErrInvalidArgument, "element %d (%v) is not a byte", i, e)
			}
			b[i] = byte(n)
		}
		return b, nil
	}

	return val, nil
}

// Record is a single decoded field
type Record struct {
	Field  string
	Kind   bytestream.Kind
	Offset int
	Size   int
	Value  interface{}
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%v) = %s", r.Field, r.Kind, formatValue(r.Value))
}

// Dump is the result of decoding a record
type Dump struct {
	Layout   string
	Size     int
	Records  []Record
	Trailing []byte
}

// Decode reads every field of the layout from data, which is adopted as the
// storage of a stream created from c. Bytes left after the last field are
// returned in Dump.Trailing.
func (l *Layout) Decode(data []byte, c bytestream.Config) (*Dump, error) {
	c.Buffer = nil
	c.Storage = data

	s, err := bytestream.NewWithConfig(c)
	if err != nil {
		return nil, err
	}

	d := &Dump{
		Layout:  l.Name,
		Size:    len(data),
		Records: make([]Record, 0, len(l.Fields)),
	}

	for i := range l.Fields {
		f := &l.Fields[i]

		start := s.ReadPos()
		val, err := s.ReadValueWith(f.kind, f.Length, f.enc)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s at %d", f.Name, start)
		}

		if f.kind == bytestream.BufferKind && f.enc != nil {
			if val, err = f.enc.Decode(val.([]byte)); err != nil {
				return nil, errors.Wrapf(err, "field %s at %d", f.Name, start)
			}
		}

		d.Records = append(d.Records, Record{
			Field:  f.Name,
			Kind:   f.kind,
			Offset: start,
			Size:   s.ReadPos() - start,
			Value:  val,
		})
	}

	d.Trailing = s.ReadRemaining()
	return d, nil
}

// Values returns the decoded values keyed by field name, in the form Encode
// accepts
func (d *Dump) Values() map[string]interface{} {
	values := make(map[string]interface{}, len(d.Records))
	for _, r := range d.Records {
		values[r.Field] = r.Value
	}
	return values
}
