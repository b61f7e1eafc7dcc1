package pgcodec_test

import (
	"testing"

	"github.com/jackc/pgcodec"
	"github.com/jackc/pgcodec/internal/codectest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestHstoreCodec(t *testing.T) {
	codectest.RunAll[pgcodec.Hstore](t, pgcodec.HstoreCodec{}, []codectest.RoundTripTest[pgcodec.Hstore]{
		{
			Value: pgcodec.Hstore{{Key: "a", Value: stringPtr("1")}, {Key: "b", Value: nil}},
			Encoded: []byte{
				0, 0, 0, 2,
				0, 0, 0, 1, 'a', 0, 0, 0, 1, '1',
				0, 0, 0, 1, 'b', 0xff, 0xff, 0xff, 0xff,
			},
		},
		{Value: nil, Encoded: []byte{0, 0, 0, 0}},
		{Value: pgcodec.Hstore{{Key: "", Value: stringPtr("")}}},
		{Value: pgcodec.Hstore{{Key: "dup", Value: stringPtr("first")}, {Key: "dup", Value: stringPtr("second")}}},
		{Value: pgcodec.Hstore{{Key: `quote "and" \slash`, Value: stringPtr("ünïcödé")}, {Key: "null", Value: nil}}},
	})
}

func TestHstoreCodecDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		kind pgcodec.ErrorKind
	}{
		{
			name: "null key",
			src:  []byte{0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0},
			kind: pgcodec.ErrLengthMismatch,
		},
		{
			name: "negative value length",
			src:  []byte{0, 0, 0, 1, 0, 0, 0, 1, 'a', 0xff, 0xff, 0xff, 0xfe},
			kind: pgcodec.ErrLengthMismatch,
		},
		{
			name: "invalid utf8 key",
			src:  []byte{0, 0, 0, 1, 0, 0, 0, 1, 0xff, 0, 0, 0, 0},
			kind: pgcodec.ErrInvalidUTF8,
		},
		{
			name: "count exceeds data",
			src:  []byte{0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0},
			kind: pgcodec.ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pgcodec.HstoreCodec{}.DecodeBinary(tt.src)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestHstoreCodecEncodeInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		value pgcodec.Hstore
	}{
		{name: "key", value: pgcodec.Hstore{{Key: "\xff", Value: stringPtr("v")}}},
		{name: "value", value: pgcodec.Hstore{{Key: "k", Value: stringPtr("a\xc3")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pgcodec.HstoreCodec{}.AppendBinary(nil, tt.value)
			require.ErrorIs(t, err, pgcodec.ErrInvalidUTF8)
		})
	}
}

func TestHstoreMap(t *testing.T) {
	h := pgcodec.Hstore{{Key: "a", Value: stringPtr("1")}, {Key: "a", Value: stringPtr("2")}, {Key: "b"}}
	m := h.Map()
	require.Len(t, m, 2)
	assert.Equal(t, "2", *m["a"])
	assert.Nil(t, m["b"])
}

func TestHstoreString(t *testing.T) {
	h := pgcodec.Hstore{{Key: "a", Value: stringPtr(`x"y`)}, {Key: `b\`, Value: nil}}
	assert.Equal(t, `"a"=>"x\"y", "b\\"=>NULL`, h.String())
}
