// Package codectest runs the checks every pgcodec.Codec must pass.
package codectest

import (
	"testing"

	"github.com/jackc/pgcodec"
	"github.com/stretchr/testify/require"
)

// RoundTripTest is a single value for RunRoundTrip. If Encoded is not nil, Value must encode to exactly those bytes.
type RoundTripTest[T any] struct {
	Value   T
	Encoded []byte
}

// RunRoundTrip encodes and decodes every test value and requires the result to equal the original.
func RunRoundTrip[T any](t testing.TB, codec pgcodec.Codec[T], tests []RoundTripTest[T]) {
	RunRoundTripEqFunc(t, codec, tests, nil)
}

// RunRoundTripEqFunc is RunRoundTrip with a custom equality function. A nil eqFunc uses require.Equal.
func RunRoundTripEqFunc[T any](t testing.TB, codec pgcodec.Codec[T], tests []RoundTripTest[T], eqFunc func(a, b T) bool) {
	t.Helper()

	for i, tt := range tests {
		buf, err := pgcodec.Encode(codec, tt.Value)
		require.NoErrorf(t, err, "%d: %v", i, tt.Value)

		if tt.Encoded != nil {
			require.Equalf(t, tt.Encoded, buf, "%d: %v", i, tt.Value)
		}

		// Encoding must append to, not replace, an existing buffer.
		prefixed, err := codec.AppendBinary([]byte{0xde, 0xad}, tt.Value)
		require.NoErrorf(t, err, "%d: %v", i, tt.Value)
		require.Equalf(t, append([]byte{0xde, 0xad}, buf...), prefixed, "%d: %v", i, tt.Value)

		result, err := pgcodec.Decode(codec, buf)
		require.NoErrorf(t, err, "%d: %v", i, tt.Value)

		if eqFunc != nil {
			require.Truef(t, eqFunc(tt.Value, result), "%d: expected %v, got %v", i, tt.Value, result)
		} else {
			require.Equalf(t, tt.Value, result, "%d", i)
		}
	}
}

// RunTruncation requires that decoding every strict prefix of the encoding of every value fails with
// pgcodec.ErrTruncated.
func RunTruncation[T any](t testing.TB, codec pgcodec.Codec[T], values []T) {
	t.Helper()

	for i, v := range values {
		buf, err := pgcodec.Encode(codec, v)
		require.NoErrorf(t, err, "%d: %v", i, v)

		for n := 0; n < len(buf); n++ {
			_, err := codec.DecodeBinary(buf[:n])
			require.ErrorIsf(t, err, pgcodec.ErrTruncated, "%d: %v prefix %d of %d", i, v, n, len(buf))
		}
	}
}

// RunTrailingBytes requires that decoding the encoding of every value followed by an extra byte fails with
// pgcodec.ErrTrailingBytes.
func RunTrailingBytes[T any](t testing.TB, codec pgcodec.Codec[T], values []T) {
	t.Helper()

	for i, v := range values {
		buf, err := pgcodec.Encode(codec, v)
		require.NoErrorf(t, err, "%d: %v", i, v)

		_, err = codec.DecodeBinary(append(buf, 0))
		require.ErrorIsf(t, err, pgcodec.ErrTrailingBytes, "%d: %v", i, v)
	}
}

// RunAll runs RunRoundTrip, RunTruncation, and RunTrailingBytes as subtests.
func RunAll[T any](t *testing.T, codec pgcodec.Codec[T], tests []RoundTripTest[T]) {
	values := make([]T, len(tests))
	for i := range tests {
		values[i] = tests[i].Value
	}

	t.Run("RoundTrip", func(t *testing.T) { RunRoundTrip(t, codec, tests) })
	t.Run("Truncation", func(t *testing.T) { RunTruncation(t, codec, values) })
	t.Run("TrailingBytes", func(t *testing.T) { RunTrailingBytes(t, codec, values) })
}
