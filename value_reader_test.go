package pgcodec_test

import (
	"math"
	"testing"

	"github.com/jackc/pgcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueReaderReads(t *testing.T) {
	src := []byte{
		0x01,
		0xff, 0xfe,
		0x00, 0x00, 0x00, 0x2a,
		0x80, 0, 0, 0, 0, 0, 0, 0,
		0x3f, 0xf8, 0, 0, 0, 0, 0, 0,
		'h', 'i', 0,
		0, 0, 0, 2, 'o', 'k',
		0xff, 0xff, 0xff, 0xff,
	}
	r := pgcodec.NewValueReader("test", src)

	assert.Equal(t, uint8(1), r.ReadUint8())
	assert.Equal(t, int16(-2), r.ReadInt16())
	assert.Equal(t, int32(42), r.ReadInt32())
	assert.Equal(t, int64(math.MinInt64), r.ReadInt64())
	assert.Equal(t, 1.5, r.ReadFloat64())
	assert.Equal(t, "hi", r.ReadCString())

	s, isNull := r.ReadText()
	assert.Equal(t, "ok", s)
	assert.False(t, isNull)

	b, isNull := r.ReadLengthPrefixed()
	assert.Nil(t, b)
	assert.True(t, isNull)

	assert.Equal(t, len(src), r.Offset())
	assert.Equal(t, 0, r.Len())
	require.NoError(t, r.Finish())
}

func TestValueReaderErrorIsSticky(t *testing.T) {
	r := pgcodec.NewValueReader("test", []byte{0, 1, 2})

	assert.Equal(t, uint16(1), r.ReadUint16())
	assert.Equal(t, uint32(0), r.ReadUint32())
	require.ErrorIs(t, r.Err(), pgcodec.ErrTruncated)

	// Later reads return zero values without moving or replacing the first error.
	assert.Equal(t, uint8(0), r.ReadUint8())
	assert.Equal(t, 2, r.Offset())
	r.Fail(pgcodec.ErrMalformedTree, "ignored")

	var codecErr *pgcodec.Error
	require.ErrorAs(t, r.Finish(), &codecErr)
	assert.Equal(t, pgcodec.ErrTruncated, codecErr.Kind)
	assert.Equal(t, 2, codecErr.Offset)
	assert.Equal(t, "test", codecErr.TypeName)
}

func TestValueReaderNoErrorIsNilInterface(t *testing.T) {
	r := pgcodec.NewValueReader("test", nil)
	assert.True(t, r.Err() == nil)
	assert.True(t, r.Finish() == nil)
}

func TestValueReaderFinishTrailingBytes(t *testing.T) {
	r := pgcodec.NewValueReader("test", []byte{1, 2})
	r.ReadUint8()
	err := r.Finish()
	require.ErrorIs(t, err, pgcodec.ErrTrailingBytes)
	assert.Equal(t, 1, err.(*pgcodec.Error).Offset)
}

func TestValueReaderReadCount(t *testing.T) {
	r := pgcodec.NewValueReader("test", []byte{0, 0, 0, 2, 1, 2, 3, 4})
	assert.Equal(t, 2, r.ReadCount(2))
	require.NoError(t, r.Err())

	r = pgcodec.NewValueReader("test", []byte{0, 0, 0, 3, 1, 2, 3, 4})
	assert.Equal(t, 0, r.ReadCount(2))
	require.ErrorIs(t, r.Err(), pgcodec.ErrTruncated)

	r = pgcodec.NewValueReader("test", []byte{0x7f, 0xff, 0xff, 0xff})
	assert.Equal(t, 0, r.ReadCount(16))
	require.ErrorIs(t, r.Err(), pgcodec.ErrTruncated)

	r = pgcodec.NewValueReader("test", []byte{0xff, 0xff, 0xff, 0xfe})
	assert.Equal(t, 0, r.ReadCount(1))
	require.ErrorIs(t, r.Err(), pgcodec.ErrLengthMismatch)
}

func TestValueReaderReadLengthPrefixed(t *testing.T) {
	r := pgcodec.NewValueReader("test", []byte{0xff, 0xff, 0xff, 0xfe})
	_, isNull := r.ReadLengthPrefixed()
	assert.False(t, isNull)
	require.ErrorIs(t, r.Err(), pgcodec.ErrLengthMismatch)

	r = pgcodec.NewValueReader("test", []byte{0, 0, 0, 5, 1})
	r.ReadLengthPrefixed()
	require.ErrorIs(t, r.Err(), pgcodec.ErrTruncated)

	r = pgcodec.NewValueReader("test", []byte{0, 0, 0, 1, 0xff})
	r.ReadText()
	require.ErrorIs(t, r.Err(), pgcodec.ErrInvalidUTF8)
}

func TestValueReaderReadCString(t *testing.T) {
	r := pgcodec.NewValueReader("test", []byte{'a', 'b'})
	assert.Equal(t, "", r.ReadCString())
	require.ErrorIs(t, r.Err(), pgcodec.ErrTruncated)

	r = pgcodec.NewValueReader("test", []byte{0xc3, 0x28, 0})
	assert.Equal(t, "", r.ReadCString())
	require.ErrorIs(t, r.Err(), pgcodec.ErrInvalidUTF8)

	r = pgcodec.NewValueReader("test", []byte{0, 'x', 0})
	assert.Equal(t, "", r.ReadCString())
	assert.Equal(t, "x", r.ReadCString())
	require.NoError(t, r.Finish())
}

func TestValueReaderFailWrap(t *testing.T) {
	inner := pgcodec.NewValueReader("int4", nil)
	inner.ReadInt32()

	r := pgcodec.NewValueReader("int4range", []byte{0})
	r.ReadUint8()
	r.FailWrap(inner.Err(), "lower bound")

	err := r.Err()
	require.ErrorIs(t, err, pgcodec.ErrElementDecodeFailed)
	require.ErrorIs(t, err, pgcodec.ErrTruncated)
	assert.Equal(t, pgcodec.ErrElementDecodeFailed, pgcodec.KindOf(err))
}
