package pgcodec

import (
	"math"
	"time"

	"github.com/jackc/pgio"
)

const microsecFromUnixEpochToY2K = 946684800 * 1000000

const (
	negativeInfinityMicrosecondOffset = math.MinInt64
	infinityMicrosecondOffset         = math.MaxInt64
)

// Timestamp is a PostgreSQL timestamp without time zone. The wall clock of Time is used and its location ignored.
// Decoded values are in UTC.
type Timestamp struct {
	Time             time.Time
	InfinityModifier InfinityModifier
}

func (ts Timestamp) String() string {
	if ts.InfinityModifier != None {
		return ts.InfinityModifier.String()
	}
	return ts.Time.Format("2006-01-02 15:04:05.999999")
}

// Timestamptz is a PostgreSQL timestamp with time zone. Decoded values are in UTC.
type Timestamptz struct {
	Time             time.Time
	InfinityModifier InfinityModifier
}

func (ts Timestamptz) String() string {
	if ts.InfinityModifier != None {
		return ts.InfinityModifier.String()
	}
	return ts.Time.UTC().Format("2006-01-02 15:04:05.999999-07")
}

func discardTimeZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func appendMicrosecSinceY2K(buf []byte, t time.Time, im InfinityModifier) []byte {
	var microsecSinceY2K int64
	switch im {
	case Infinity:
		microsecSinceY2K = infinityMicrosecondOffset
	case NegativeInfinity:
		microsecSinceY2K = negativeInfinityMicrosecondOffset
	default:
		microsecSinceUnixEpoch := t.Unix()*1000000 + int64(t.Nanosecond())/1000
		microsecSinceY2K = microsecSinceUnixEpoch - microsecFromUnixEpochToY2K
	}
	return pgio.AppendInt64(buf, microsecSinceY2K)
}

func readMicrosecSinceY2K(r *ValueReader) (time.Time, InfinityModifier) {
	microsecSinceY2K := r.ReadInt64()
	switch microsecSinceY2K {
	case infinityMicrosecondOffset:
		return time.Time{}, Infinity
	case negativeInfinityMicrosecondOffset:
		return time.Time{}, NegativeInfinity
	}
	return time.Unix(
		microsecFromUnixEpochToY2K/1000000+microsecSinceY2K/1000000,
		(microsecFromUnixEpochToY2K%1000000*1000)+(microsecSinceY2K%1000000*1000),
	).UTC(), None
}

// TimestampCodec encodes and decodes timestamp as microseconds since 2000-01-01. It is the element codec of tsrange.
type TimestampCodec struct{}

func (TimestampCodec) AppendBinary(buf []byte, v Timestamp) ([]byte, error) {
	return appendMicrosecSinceY2K(buf, discardTimeZone(v.Time), v.InfinityModifier), nil
}

func (TimestampCodec) DecodeBinary(src []byte) (Timestamp, error) {
	r := NewValueReader("timestamp", src)
	t, im := readMicrosecSinceY2K(r)
	if err := r.Finish(); err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Time: t, InfinityModifier: im}, nil
}

// TimestamptzCodec encodes and decodes timestamptz. It is the element codec of tstzrange.
type TimestamptzCodec struct{}

func (TimestamptzCodec) AppendBinary(buf []byte, v Timestamptz) ([]byte, error) {
	return appendMicrosecSinceY2K(buf, v.Time, v.InfinityModifier), nil
}

func (TimestamptzCodec) DecodeBinary(src []byte) (Timestamptz, error) {
	r := NewValueReader("timestamptz", src)
	t, im := readMicrosecSinceY2K(r)
	if err := r.Finish(); err != nil {
		return Timestamptz{}, err
	}
	return Timestamptz{Time: t, InfinityModifier: im}, nil
}
