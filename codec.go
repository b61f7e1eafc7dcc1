package pgcodec

import (
	"math"

	"github.com/jackc/pgio"
)

// Codec converts between a Go value of type T and its PostgreSQL binary encoding.
type Codec[T any] interface {
	// AppendBinary appends the binary encoding of v to buf and returns the extended buffer.
	AppendBinary(buf []byte, v T) ([]byte, error)

	// DecodeBinary decodes src. src must contain exactly one encoded value.
	DecodeBinary(src []byte) (T, error)
}

// Encode returns the binary encoding of v in a newly allocated buffer.
func Encode[T any](c Codec[T], v T) ([]byte, error) {
	return c.AppendBinary(nil, v)
}

// Decode decodes src with c.
func Decode[T any](c Codec[T], src []byte) (T, error) {
	return c.DecodeBinary(src)
}

func appendFloat64(buf []byte, f float64) []byte {
	return pgio.AppendUint64(buf, math.Float64bits(f))
}

func appendFloat32(buf []byte, f float32) []byte {
	return pgio.AppendUint32(buf, math.Float32bits(f))
}

func appendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, 1)
	}
	return append(buf, 0)
}
