package pgcodec_test

import (
	"math"
	"testing"

	"github.com/jackc/pgcodec"
	"github.com/jackc/pgcodec/internal/codectest"
	"github.com/stretchr/testify/assert"
)

func TestXidCodec(t *testing.T) {
	codectest.RunAll[pgcodec.Xid](t, pgcodec.XidCodec{}, []codectest.RoundTripTest[pgcodec.Xid]{
		{Value: pgcodec.Xid(42), Encoded: []byte{0, 0, 0, 42}},
		{Value: pgcodec.Xid(0)},
		{Value: pgcodec.Xid(math.MaxUint32), Encoded: []byte{0xff, 0xff, 0xff, 0xff}},
	})

	assert.Equal(t, "4294967295", pgcodec.Xid(math.MaxUint32).String())
}

func TestXid8Codec(t *testing.T) {
	codectest.RunAll[pgcodec.Xid8](t, pgcodec.Xid8Codec{}, []codectest.RoundTripTest[pgcodec.Xid8]{
		{Value: pgcodec.Xid8(42), Encoded: []byte{0, 0, 0, 0, 0, 0, 0, 42}},
		{Value: pgcodec.Xid8(math.MaxUint64)},
		{Value: pgcodec.Xid8(1 << 32)},
	})

	assert.Equal(t, "18446744073709551615", pgcodec.Xid8(math.MaxUint64).String())
}
