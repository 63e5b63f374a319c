// Package serial implements the byte layout used for contract parameters,
// return values, events and state: little-endian fixed-width integers,
// u32 length-prefixed UTF-8 strings, tag-prefixed options and structs as
// their fields in order.
package serial

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/uint128"
)

// ErrMalformed is returned when input bytes do not decode to the expected type.
const ErrMalformed = errs.Malformed

const (
	optionNone byte = 0
	optionSome byte = 1
)

// Serializer writes itself to w.
type Serializer interface {
	Serial(w *Writer)
}

// Deserializer reads itself from c.
type Deserializer interface {
	Deserial(c *Cursor) error
}

// Cursor reads values sequentially from a byte slice.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

func (c *Cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, errors.Wrapf(ErrMalformed, "%s: need %d bytes at offset %d, have %d", field, n, c.pos, c.Remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) U8(field string) (uint8, error) {
	b, err := c.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) U32(field string) (uint32, error) {
	b, err := c.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) U64(field string) (uint64, error) {
	b, err := c.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) U128(field string) (uint128.Uint128, error) {
	b, err := c.take(16, field)
	if err != nil {
		return uint128.Zero, err
	}
	return uint128.New(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])), nil
}

func (c *Cursor) String(field string) (string, error) {
	n, err := c.U32(field + ".length")
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(c.Remaining()) {
		return "", errors.Wrapf(ErrMalformed, "%s: length %d exceeds remaining %d bytes", field, n, c.Remaining())
	}
	b, err := c.take(int(n), field)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrMalformed, "%s: invalid utf-8", field)
	}
	return string(b), nil
}

// OptionTag reads an option tag and reports whether a value follows.
func (c *Cursor) OptionTag(field string) (bool, error) {
	tag, err := c.U8(field + ".tag")
	if err != nil {
		return false, err
	}
	switch tag {
	case optionNone:
		return false, nil
	case optionSome:
		return true, nil
	default:
		return false, errors.Wrapf(ErrMalformed, "%s: invalid option tag %d", field, tag)
	}
}

// Writer appends values to a growing byte slice.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) U8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) U32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) U64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) U128(v uint128.Uint128) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v.Lo)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v.Hi)
}

// String writes s with a u32 length prefix. Strings longer than 2^32-1 bytes are not representable.
func (w *Writer) String(s string) {
	w.U32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) OptionTag(some bool) {
	if some {
		w.U8(optionSome)
		return
	}
	w.U8(optionNone)
}

// Encode serializes v into a new byte slice.
func Encode(v Serializer) []byte {
	w := NewWriter()
	v.Serial(w)
	return w.Bytes()
}

// Decode deserializes data into v. Bytes left after v is read are ignored.
func Decode(data []byte, v Deserializer) error {
	return v.Deserial(NewCursor(data))
}

// String is a Serializer/Deserializer for a bare string value.
type String string

func (s String) Serial(w *Writer) {
	w.String(string(s))
}

func (s *String) Deserial(c *Cursor) error {
	v, err := c.String("string")
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// EncodeOption serializes v as an option: none when v is nil.
func EncodeOption[T Serializer](v *T) []byte {
	w := NewWriter()
	w.OptionTag(v != nil)
	if v != nil {
		(*v).Serial(w)
	}
	return w.Bytes()
}

// DecodeOption deserializes an option of T; none decodes to nil.
func DecodeOption[T any, PT interface {
	*T
	Deserializer
}](data []byte) (*T, error) {
	c := NewCursor(data)
	some, err := c.OptionTag("option")
	if err != nil {
		return nil, err
	}
	if !some {
		return nil, nil
	}
	v := new(T)
	if err := PT(v).Deserial(c); err != nil {
		return nil, err
	}
	return v, nil
}
