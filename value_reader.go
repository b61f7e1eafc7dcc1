package pgcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// ValueReader reads big-endian values from the binary encoding of a single value. Every read is bounds checked. The
// first failure is recorded and all subsequent reads return zero values, so a decoder can perform a sequence of reads
// and check Err once.
type ValueReader struct {
	typeName string
	src      []byte
	rp       int
	err      *Error
}

// NewValueReader returns a ValueReader over src. typeName is used in errors.
func NewValueReader(typeName string, src []byte) *ValueReader {
	return &ValueReader{typeName: typeName, src: src}
}

// Err returns the first error r has experienced. It returns a nil error interface, not a typed nil, when there is no
// error.
func (r *ValueReader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Fail records a failure of kind at the current offset. Only the first failure is kept.
func (r *ValueReader) Fail(kind ErrorKind, detail string) {
	r.fail(&Error{TypeName: r.typeName, Kind: kind, Offset: r.rp, Detail: detail})
}

// FailWrap records an ErrElementDecodeFailed wrapping err.
func (r *ValueReader) FailWrap(err error, detail string) {
	r.fail(&Error{TypeName: r.typeName, Kind: ErrElementDecodeFailed, Offset: r.rp, Detail: detail, Err: err})
}

func (r *ValueReader) fail(err *Error) {
	if r.err == nil {
		r.err = err
	}
}

// Len returns the number of unread bytes.
func (r *ValueReader) Len() int {
	return len(r.src) - r.rp
}

// Offset returns the number of bytes read so far.
func (r *ValueReader) Offset() int {
	return r.rp
}

// Finish records ErrTrailingBytes if any bytes are unread and returns Err.
func (r *ValueReader) Finish() error {
	if r.err == nil && r.Len() > 0 {
		r.Fail(ErrTrailingBytes, fmt.Sprintf("%d unread bytes", r.Len()))
	}
	return r.Err()
}

func (r *ValueReader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.Len() < n {
		r.Fail(ErrTruncated, fmt.Sprintf("need %d bytes, have %d", n, r.Len()))
		return nil
	}
	b := r.src[r.rp : r.rp+n]
	r.rp += n
	return b
}

func (r *ValueReader) ReadUint8() uint8 {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *ValueReader) ReadInt8() int8 {
	return int8(r.ReadUint8())
}

func (r *ValueReader) ReadUint16() uint16 {
	b := r.next(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *ValueReader) ReadInt16() int16 {
	return int16(r.ReadUint16())
}

func (r *ValueReader) ReadUint32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *ValueReader) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

func (r *ValueReader) ReadUint64() uint64 {
	b := r.next(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func (r *ValueReader) ReadInt64() int64 {
	return int64(r.ReadUint64())
}

func (r *ValueReader) ReadFloat32() float32 {
	return math.Float32frombits(r.ReadUint32())
}

func (r *ValueReader) ReadFloat64() float64 {
	return math.Float64frombits(r.ReadUint64())
}

// ReadBytes returns the next n bytes. The returned slice aliases the source buffer.
func (r *ValueReader) ReadBytes(n int) []byte {
	return r.next(n)
}

// ReadCString reads bytes up to a NUL terminator and consumes the terminator. A missing terminator is ErrTruncated.
// Text that is not valid UTF-8 is ErrInvalidUTF8.
func (r *ValueReader) ReadCString() string {
	if r.err != nil {
		return ""
	}
	idx := bytes.IndexByte(r.src[r.rp:], 0)
	if idx < 0 {
		r.Fail(ErrTruncated, "missing NUL terminator")
		return ""
	}
	b := r.src[r.rp : r.rp+idx]
	if !utf8.Valid(b) {
		r.Fail(ErrInvalidUTF8, "")
		return ""
	}
	r.rp += idx + 1
	return string(b)
}

// ReadLengthPrefixed reads a 32-bit length followed by that many bytes. A length of -1 is SQL NULL and returns a nil
// slice with isNull set. Any other negative length is ErrLengthMismatch.
func (r *ValueReader) ReadLengthPrefixed() (b []byte, isNull bool) {
	n := r.ReadInt32()
	if r.err != nil {
		return nil, false
	}
	if n == -1 {
		return nil, true
	}
	if n < 0 {
		r.Fail(ErrLengthMismatch, fmt.Sprintf("invalid length %d", n))
		return nil, false
	}
	b = r.next(int(n))
	if b == nil {
		return nil, false
	}
	return b, false
}

// ReadText reads a length prefixed UTF-8 string. SQL NULL is reported through isNull.
func (r *ValueReader) ReadText() (s string, isNull bool) {
	b, isNull := r.ReadLengthPrefixed()
	if r.err != nil || isNull {
		return "", isNull
	}
	if !utf8.Valid(b) {
		r.Fail(ErrInvalidUTF8, "")
		return "", false
	}
	return string(b), false
}

// ReadCount reads a 32-bit element count and verifies that at least count*minSize bytes remain. This keeps a hostile
// count from driving a large allocation or a long loop.
func (r *ValueReader) ReadCount(minSize int) int {
	n := r.ReadInt32()
	if r.err != nil {
		return 0
	}
	if n < 0 {
		r.Fail(ErrLengthMismatch, fmt.Sprintf("invalid count %d", n))
		return 0
	}
	if int64(n)*int64(minSize) > int64(r.Len()) {
		r.Fail(ErrTruncated, fmt.Sprintf("count %d needs at least %d bytes, have %d", n, int64(n)*int64(minSize), r.Len()))
		return 0
	}
	return int(n)
}
