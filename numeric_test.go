package pgcodec_test

import (
	"math/big"
	"testing"

	"github.com/jackc/pgcodec"
	"github.com/jackc/pgcodec/internal/codectest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseBigInt(t testing.TB, src string) *big.Int {
	i := &big.Int{}
	_, ok := i.SetString(src, 10)
	require.True(t, ok)
	return i
}

func isExpectedEqNumeric(a, b pgcodec.Numeric) bool {
	if a.NaN || b.NaN {
		return a.NaN == b.NaN
	}
	if a.InfinityModifier != pgcodec.None || b.InfinityModifier != pgcodec.None {
		return a.InfinityModifier == b.InfinityModifier
	}
	return a.Cmp(b) == 0
}

func TestNumericCodec(t *testing.T) {
	nines := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
	nines.Sub(nines, big.NewInt(1))

	tests := []codectest.RoundTripTest[pgcodec.Numeric]{
		{
			Value:   pgcodec.Numeric{Int: big.NewInt(15), Exp: -1},
			Encoded: []byte{0, 2, 0, 0, 0, 0, 0, 1, 0, 1, 0x13, 0x88},
		},
		{
			Value:   pgcodec.Numeric{NaN: true},
			Encoded: []byte{0, 0, 0, 0, 0xc0, 0, 0, 0},
		},
		{
			Value:   pgcodec.Numeric{InfinityModifier: pgcodec.Infinity},
			Encoded: []byte{0, 0, 0, 0, 0xd0, 0, 0, 0},
		},
		{
			Value:   pgcodec.Numeric{InfinityModifier: pgcodec.NegativeInfinity},
			Encoded: []byte{0, 0, 0, 0, 0xf0, 0, 0, 0},
		},
		{
			Value:   pgcodec.Numeric{Int: big.NewInt(0)},
			Encoded: []byte{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			Value:   pgcodec.Numeric{Int: big.NewInt(0), Exp: -2},
			Encoded: []byte{0, 0, 0, 0, 0, 0, 0, 2},
		},
		{Value: pgcodec.Numeric{Int: big.NewInt(1)}},
		{Value: pgcodec.Numeric{Int: big.NewInt(-1)}},
		{Value: pgcodec.Numeric{Int: big.NewInt(1), Exp: 4}},
		{Value: pgcodec.Numeric{Int: big.NewInt(1000), Exp: 0}},
		{Value: pgcodec.Numeric{Int: big.NewInt(123), Exp: -3}},
		{Value: pgcodec.Numeric{Int: big.NewInt(-123), Exp: -7}},
		{Value: pgcodec.Numeric{Int: big.NewInt(1), Exp: -20}},
		{Value: pgcodec.Numeric{Int: big.NewInt(0), Exp: -5}},
		{Value: pgcodec.Numeric{Int: mustParseBigInt(t, "243723409723490243842378942378901237502734019231380123"), Exp: 23}},
		{Value: pgcodec.Numeric{Int: mustParseBigInt(t, "-243723409723490243842378942378901237502734019231380123"), Exp: -41}},
		{Value: pgcodec.Numeric{Int: mustParseBigInt(t, "1234567890123456789"), Exp: -9}},
		{Value: pgcodec.Numeric{Int: nines}},
		{Value: pgcodec.Numeric{Int: nines, Exp: -401}},
	}

	codectest.RunRoundTripEqFunc[pgcodec.Numeric](t, pgcodec.NumericCodec{}, tests, isExpectedEqNumeric)

	values := make([]pgcodec.Numeric, len(tests))
	for i := range tests {
		values[i] = tests[i].Value
	}
	codectest.RunTruncation[pgcodec.Numeric](t, pgcodec.NumericCodec{}, values)
	codectest.RunTrailingBytes[pgcodec.Numeric](t, pgcodec.NumericCodec{}, values)
}

func TestNumericCodecDecodeNormalizes(t *testing.T) {
	n, err := pgcodec.NumericCodec{}.DecodeBinary([]byte{0, 2, 0, 0, 0, 0, 0, 1, 0, 1, 0x13, 0x88})
	require.NoError(t, err)
	assert.Equal(t, "15e-1", n.String())

	buf, err := pgcodec.NumericCodec{}.AppendBinary(nil, pgcodec.Numeric{Int: big.NewInt(1000)})
	require.NoError(t, err)
	n, err = pgcodec.NumericCodec{}.DecodeBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, "1e3", n.String())
}

func TestNumericCodecZeroKeepsScale(t *testing.T) {
	src := []byte{0, 0, 0, 0, 0, 0, 0, 2}

	n, err := pgcodec.NumericCodec{}.DecodeBinary(src)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), n.Exp)
	assert.Equal(t, 0, n.Int.Sign())

	buf, err := pgcodec.NumericCodec{}.AppendBinary(nil, n)
	require.NoError(t, err)
	assert.Equal(t, src, buf)

	m := pgcodec.NewMap()
	v, err := m.DecodeName("numrange", []byte{0x06, 0, 0, 0, 8, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 8, 0, 0, 0, 0, 0, 0, 0, 2})
	require.NoError(t, err)
	buf, err = m.EncodeName("numrange", v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0, 0, 0, 8, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 8, 0, 0, 0, 0, 0, 0, 0, 2}, buf)
}

func TestNumericCodecDecodeErrors(t *testing.T) {
	_, err := pgcodec.NumericCodec{}.DecodeBinary([]byte{0, 0, 0, 0, 0x12, 0x34, 0, 0})
	require.ErrorIs(t, err, pgcodec.ErrOutOfRange)

	_, err = pgcodec.NumericCodec{}.DecodeBinary([]byte{0xff, 0xff, 0, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, pgcodec.ErrLengthMismatch)

	_, err = pgcodec.NumericCodec{}.DecodeBinary([]byte{0, 2, 0, 0, 0, 0, 0, 0, 0, 1})
	require.ErrorIs(t, err, pgcodec.ErrTruncated)
}

func TestNumericString(t *testing.T) {
	assert.Equal(t, "NaN", pgcodec.Numeric{NaN: true}.String())
	assert.Equal(t, "Infinity", pgcodec.Numeric{InfinityModifier: pgcodec.Infinity}.String())
	assert.Equal(t, "-Infinity", pgcodec.Numeric{InfinityModifier: pgcodec.NegativeInfinity}.String())
	assert.Equal(t, "0", pgcodec.Numeric{}.String())
	assert.Equal(t, "-42e2", pgcodec.Numeric{Int: big.NewInt(-42), Exp: 2}.String())
}

func TestNumericCmp(t *testing.T) {
	assert.Equal(t, 0, pgcodec.Numeric{Int: big.NewInt(15), Exp: -1}.Cmp(pgcodec.Numeric{Int: big.NewInt(150), Exp: -2}))
	assert.Equal(t, -1, pgcodec.Numeric{Int: big.NewInt(1)}.Cmp(pgcodec.Numeric{Int: big.NewInt(2)}))
	assert.Equal(t, 1, pgcodec.Numeric{Int: big.NewInt(1), Exp: 1}.Cmp(pgcodec.Numeric{Int: big.NewInt(9)}))
	assert.Equal(t, 0, pgcodec.Numeric{}.Cmp(pgcodec.Numeric{Int: big.NewInt(0), Exp: -3}))
}
