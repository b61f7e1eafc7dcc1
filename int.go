package pgcodec

import (
	"github.com/jackc/pgio"
)

// Int4Codec encodes and decodes int4. It is the element codec of int4range.
type Int4Codec struct{}

func (Int4Codec) AppendBinary(buf []byte, v int32) ([]byte, error) {
	return pgio.AppendInt32(buf, v), nil
}

func (Int4Codec) DecodeBinary(src []byte) (int32, error) {
	r := NewValueReader("int4", src)
	n := r.ReadInt32()
	if err := r.Finish(); err != nil {
		return 0, err
	}
	return n, nil
}

// Int8Codec encodes and decodes int8. It is the element codec of int8range.
type Int8Codec struct{}

func (Int8Codec) AppendBinary(buf []byte, v int64) ([]byte, error) {
	return pgio.AppendInt64(buf, v), nil
}

func (Int8Codec) DecodeBinary(src []byte) (int64, error) {
	r := NewValueReader("int8", src)
	n := r.ReadInt64()
	if err := r.Finish(); err != nil {
		return 0, err
	}
	return n, nil
}
