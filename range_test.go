package pgcodec_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgcodec"
	"github.com/jackc/pgcodec/internal/codectest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int4RangeCodec() pgcodec.RangeCodec[int32] {
	return pgcodec.RangeCodec[int32]{TypeName: "int4range", Element: pgcodec.Int4Codec{}}
}

func TestRangeCodecInt4(t *testing.T) {
	codectest.RunAll[pgcodec.Range[int32]](t, int4RangeCodec(), []codectest.RoundTripTest[pgcodec.Range[int32]]{
		{
			Value:   pgcodec.Range[int32]{Lower: 1, Upper: 10, LowerType: pgcodec.Inclusive, UpperType: pgcodec.Exclusive},
			Encoded: []byte{0x02, 0, 0, 0, 4, 0, 0, 0, 1, 0, 0, 0, 4, 0, 0, 0, 10},
		},
		{
			Value:   pgcodec.EmptyRange[int32](),
			Encoded: []byte{0x01},
		},
		{
			Value:   pgcodec.Range[int32]{LowerType: pgcodec.Unbounded, UpperType: pgcodec.Unbounded},
			Encoded: []byte{0x18},
		},
		{
			Value:   pgcodec.Range[int32]{Upper: 5, LowerType: pgcodec.Unbounded, UpperType: pgcodec.Inclusive},
			Encoded: []byte{0x0c, 0, 0, 0, 4, 0, 0, 0, 5},
		},
		{Value: pgcodec.Range[int32]{Lower: -42, LowerType: pgcodec.Exclusive, UpperType: pgcodec.Unbounded}},
		{Value: pgcodec.Range[int32]{Lower: -42, Upper: -42, LowerType: pgcodec.Inclusive, UpperType: pgcodec.Inclusive}},
	})
}

func TestRangeCodecInt8(t *testing.T) {
	codec := pgcodec.RangeCodec[int64]{TypeName: "int8range", Element: pgcodec.Int8Codec{}}
	codectest.RunAll[pgcodec.Range[int64]](t, codec, []codectest.RoundTripTest[pgcodec.Range[int64]]{
		{Value: pgcodec.Range[int64]{Lower: 1, Upper: 1 << 40, LowerType: pgcodec.Inclusive, UpperType: pgcodec.Exclusive}},
		{Value: pgcodec.EmptyRange[int64]()},
	})
}

func TestRangeCodecDate(t *testing.T) {
	codec := pgcodec.RangeCodec[pgcodec.Date]{TypeName: "daterange", Element: pgcodec.DateCodec{}}
	codectest.RunAll[pgcodec.Range[pgcodec.Date]](t, codec, []codectest.RoundTripTest[pgcodec.Range[pgcodec.Date]]{
		{
			Value: pgcodec.Range[pgcodec.Date]{
				Lower:     pgcodec.Date{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
				Upper:     pgcodec.Date{InfinityModifier: pgcodec.Infinity},
				LowerType: pgcodec.Inclusive,
				UpperType: pgcodec.Exclusive,
			},
		},
	})
}

func TestRangeCodecNumeric(t *testing.T) {
	codec := pgcodec.RangeCodec[pgcodec.Numeric]{TypeName: "numrange", Element: pgcodec.NumericCodec{}}
	rng := pgcodec.Range[pgcodec.Numeric]{
		Lower:     pgcodec.Numeric{Int: big.NewInt(15), Exp: -1},
		Upper:     pgcodec.Numeric{Int: big.NewInt(25), Exp: -1},
		LowerType: pgcodec.Inclusive,
		UpperType: pgcodec.Inclusive,
	}

	buf, err := codec.AppendBinary(nil, rng)
	require.NoError(t, err)

	decoded, err := codec.DecodeBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, pgcodec.Inclusive, decoded.LowerType)
	assert.Equal(t, pgcodec.Inclusive, decoded.UpperType)
	assert.Equal(t, 0, rng.Lower.Cmp(decoded.Lower))
	assert.Equal(t, 0, rng.Upper.Cmp(decoded.Upper))
}

func TestRangeCodecEmptyFlagWins(t *testing.T) {
	for _, flags := range []byte{0x01, 0x03, 0x07, 0x1f} {
		rng, err := int4RangeCodec().DecodeBinary([]byte{flags})
		require.NoErrorf(t, err, "%#x", flags)
		assert.Equalf(t, pgcodec.EmptyRange[int32](), rng, "%#x", flags)
	}

	// An empty range with any other fields set still encodes to the empty flag alone.
	buf, err := int4RangeCodec().AppendBinary(nil, pgcodec.Range[int32]{Lower: 1, Upper: 2, LowerType: pgcodec.Inclusive, UpperType: pgcodec.Inclusive, Empty: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, buf)
}

func TestRangeCodecDecodeErrors(t *testing.T) {
	t.Run("element decode failed", func(t *testing.T) {
		_, err := int4RangeCodec().DecodeBinary([]byte{0x12, 0, 0, 0, 3, 0, 0, 1})
		require.ErrorIs(t, err, pgcodec.ErrElementDecodeFailed)
		require.ErrorIs(t, err, pgcodec.ErrTruncated)
		assert.Equal(t, pgcodec.ErrElementDecodeFailed, pgcodec.KindOf(err))

		var codecErr *pgcodec.Error
		require.True(t, errors.As(err, &codecErr))
		assert.Equal(t, "int4range", codecErr.TypeName)

		var inner *pgcodec.Error
		require.True(t, errors.As(codecErr.Err, &inner))
		assert.Equal(t, "int4", inner.TypeName)
	})

	t.Run("null bound", func(t *testing.T) {
		_, err := int4RangeCodec().DecodeBinary([]byte{0x12, 0xff, 0xff, 0xff, 0xff})
		require.ErrorIs(t, err, pgcodec.ErrLengthMismatch)
	})

	t.Run("bound longer than value", func(t *testing.T) {
		_, err := int4RangeCodec().DecodeBinary([]byte{0x12, 0, 0, 0, 8, 0, 0, 0, 1})
		require.ErrorIs(t, err, pgcodec.ErrTruncated)
	})

	t.Run("trailing bytes after empty", func(t *testing.T) {
		_, err := int4RangeCodec().DecodeBinary([]byte{0x01, 0})
		require.ErrorIs(t, err, pgcodec.ErrTrailingBytes)
	})
}

func TestRangeCodecDefaultTypeName(t *testing.T) {
	_, err := pgcodec.RangeCodec[int32]{Element: pgcodec.Int4Codec{}}.DecodeBinary(nil)
	require.ErrorIs(t, err, pgcodec.ErrTruncated)
	assert.Equal(t, "range", err.(*pgcodec.Error).TypeName)
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		rng      pgcodec.Range[int32]
		expected string
	}{
		{pgcodec.Range[int32]{Lower: 1, Upper: 10, LowerType: pgcodec.Inclusive, UpperType: pgcodec.Exclusive}, "[1,10)"},
		{pgcodec.Range[int32]{Lower: 1, Upper: 10, LowerType: pgcodec.Exclusive, UpperType: pgcodec.Inclusive}, "(1,10]"},
		{pgcodec.Range[int32]{LowerType: pgcodec.Unbounded, UpperType: pgcodec.Unbounded}, "(,)"},
		{pgcodec.EmptyRange[int32](), "empty"},
	}

	for i, tt := range tests {
		assert.Equalf(t, tt.expected, tt.rng.String(), "%d", i)
	}
}
