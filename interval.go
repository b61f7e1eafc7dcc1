package pgcodec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgio"
)

const (
	microsecondsPerSecond = 1000000
	microsecondsPerMinute = 60 * microsecondsPerSecond
	microsecondsPerHour   = 60 * microsecondsPerMinute
	microsecondsPerDay    = 24 * microsecondsPerHour
)

// Interval is a PostgreSQL interval. The three components are independent; 25 hours is not folded into a day and 31
// days are not folded into a month.
type Interval struct {
	Microseconds int64
	Days         int32
	Months       int32
}

// IntervalFromDuration returns an Interval with only the Microseconds component set.
func IntervalFromDuration(d time.Duration) Interval {
	return Interval{Microseconds: int64(d / time.Microsecond)}
}

func (src Interval) String() string {
	var sb strings.Builder
	if src.Months != 0 {
		sb.WriteString(strconv.FormatInt(int64(src.Months), 10))
		sb.WriteString(" mon ")
	}
	if src.Days != 0 {
		sb.WriteString(strconv.FormatInt(int64(src.Days), 10))
		sb.WriteString(" day ")
	}

	absMicroseconds := uint64(src.Microseconds)
	if src.Microseconds < 0 {
		absMicroseconds = uint64(-(src.Microseconds + 1)) + 1
		sb.WriteByte('-')
	}

	hours := absMicroseconds / microsecondsPerHour
	minutes := (absMicroseconds % microsecondsPerHour) / microsecondsPerMinute
	seconds := (absMicroseconds % microsecondsPerMinute) / microsecondsPerSecond
	microseconds := absMicroseconds % microsecondsPerSecond

	fmt.Fprintf(&sb, "%02d:%02d:%02d.%06d", hours, minutes, seconds, microseconds)
	return sb.String()
}

// IntervalCodec encodes and decodes interval: microseconds, days, months.
type IntervalCodec struct{}

func (IntervalCodec) AppendBinary(buf []byte, v Interval) ([]byte, error) {
	buf = pgio.AppendInt64(buf, v.Microseconds)
	buf = pgio.AppendInt32(buf, v.Days)
	return pgio.AppendInt32(buf, v.Months), nil
}

func (IntervalCodec) DecodeBinary(src []byte) (Interval, error) {
	r := NewValueReader("interval", src)
	microseconds := r.ReadInt64()
	days := r.ReadInt32()
	months := r.ReadInt32()
	if err := r.Finish(); err != nil {
		return Interval{}, err
	}
	return Interval{Microseconds: microseconds, Days: days, Months: months}, nil
}
