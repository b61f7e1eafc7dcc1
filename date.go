package pgcodec

import (
	"math"
	"time"

	"github.com/jackc/pgio"
)

type InfinityModifier int8

const (
	Infinity         InfinityModifier = 1
	None             InfinityModifier = 0
	NegativeInfinity InfinityModifier = -Infinity
)

func (im InfinityModifier) String() string {
	switch im {
	case None:
		return "none"
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	default:
		return "invalid"
	}
}

const (
	infinityDayOffset         = math.MaxInt32
	negativeInfinityDayOffset = math.MinInt32
)

// Date is a PostgreSQL date. Only the year, month, and day of Time are used.
type Date struct {
	Time             time.Time
	InfinityModifier InfinityModifier
}

func (d Date) String() string {
	if d.InfinityModifier != None {
		return d.InfinityModifier.String()
	}
	return d.Time.Format("2006-01-02")
}

var dateEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// DateCodec encodes and decodes date as days since 2000-01-01. It is the element codec of daterange.
type DateCodec struct{}

func (DateCodec) AppendBinary(buf []byte, v Date) ([]byte, error) {
	var days int32
	switch v.InfinityModifier {
	case Infinity:
		days = infinityDayOffset
	case NegativeInfinity:
		days = negativeInfinityDayOffset
	default:
		t := time.Date(v.Time.Year(), v.Time.Month(), v.Time.Day(), 0, 0, 0, 0, time.UTC)
		days = int32((t.Unix() - dateEpoch.Unix()) / 86400)
	}
	return pgio.AppendInt32(buf, days), nil
}

func (DateCodec) DecodeBinary(src []byte) (Date, error) {
	r := NewValueReader("date", src)
	days := r.ReadInt32()
	if err := r.Finish(); err != nil {
		return Date{}, err
	}

	switch days {
	case infinityDayOffset:
		return Date{InfinityModifier: Infinity}, nil
	case negativeInfinityDayOffset:
		return Date{InfinityModifier: NegativeInfinity}, nil
	}
	return Date{Time: dateEpoch.AddDate(0, 0, int(days))}, nil
}
