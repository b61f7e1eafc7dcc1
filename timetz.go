package pgcodec

import (
	"fmt"
	"strings"

	"github.com/jackc/pgio"
)

// Timetz is a PostgreSQL time with time zone.
type Timetz struct {
	// Microseconds since midnight. The codec does not check that it is below 24 hours.
	Microseconds int64

	// Zone is the offset in seconds west of UTC, the sign convention PostgreSQL uses on the wire. UTC+02:00 is -7200.
	Zone int32
}

func (t Timetz) String() string {
	var sb strings.Builder

	us := t.Microseconds
	if us < 0 {
		sb.WriteByte('-')
		us = -us
	}
	hours := us / microsecondsPerHour
	minutes := (us % microsecondsPerHour) / microsecondsPerMinute
	seconds := (us % microsecondsPerMinute) / microsecondsPerSecond
	frac := us % microsecondsPerSecond
	fmt.Fprintf(&sb, "%02d:%02d:%02d", hours, minutes, seconds)
	if frac != 0 {
		sb.WriteString(strings.TrimRight(fmt.Sprintf(".%06d", frac), "0"))
	}

	// PostgreSQL prints the offset east of UTC.
	east := -int64(t.Zone)
	sign := byte('+')
	if east < 0 {
		sign = '-'
		east = -east
	}
	sb.WriteByte(sign)
	fmt.Fprintf(&sb, "%02d", east/3600)
	if east%3600 != 0 {
		fmt.Fprintf(&sb, ":%02d", (east%3600)/60)
		if east%60 != 0 {
			fmt.Fprintf(&sb, ":%02d", east%60)
		}
	}
	return sb.String()
}

// TimetzCodec encodes and decodes timetz: microseconds since midnight followed by the zone offset.
type TimetzCodec struct{}

func (TimetzCodec) AppendBinary(buf []byte, v Timetz) ([]byte, error) {
	buf = pgio.AppendInt64(buf, v.Microseconds)
	return pgio.AppendInt32(buf, v.Zone), nil
}

func (TimetzCodec) DecodeBinary(src []byte) (Timetz, error) {
	r := NewValueReader("timetz", src)
	us := r.ReadInt64()
	zone := r.ReadInt32()
	if err := r.Finish(); err != nil {
		return Timetz{}, err
	}
	return Timetz{Microseconds: us, Zone: zone}, nil
}
