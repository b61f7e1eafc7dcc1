package pgcodec_test

import (
	"math"
	"testing"
	"time"

	"github.com/jackc/pgcodec"
	"github.com/jackc/pgcodec/internal/codectest"
	"github.com/stretchr/testify/assert"
)

func TestIntervalCodec(t *testing.T) {
	codectest.RunAll[pgcodec.Interval](t, pgcodec.IntervalCodec{}, []codectest.RoundTripTest[pgcodec.Interval]{
		{
			Value:   pgcodec.Interval{Microseconds: 1, Days: 2, Months: 3},
			Encoded: []byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3},
		},
		{Value: pgcodec.Interval{Microseconds: 25 * 3600 * 1000000}},
		{Value: pgcodec.Interval{Days: 31}},
		{Value: pgcodec.Interval{Microseconds: -1, Days: -2, Months: -3}},
		{Value: pgcodec.Interval{Microseconds: math.MaxInt64, Days: math.MaxInt32, Months: math.MinInt32}},
		{Value: pgcodec.Interval{}},
	})
}

func TestIntervalFromDuration(t *testing.T) {
	assert.Equal(t, pgcodec.Interval{Microseconds: 90061000001}, pgcodec.IntervalFromDuration(25*time.Hour+61*time.Second+time.Microsecond))
}

func TestIntervalString(t *testing.T) {
	tests := []struct {
		interval pgcodec.Interval
		expected string
	}{
		{pgcodec.Interval{}, "00:00:00.000000"},
		{pgcodec.Interval{Microseconds: 3723000004, Days: 2, Months: 14}, "14 mon 2 day 01:02:03.000004"},
		{pgcodec.Interval{Microseconds: -1}, "-00:00:00.000001"},
		{pgcodec.Interval{Microseconds: math.MinInt64}, "-2562047788:00:54.775808"},
	}

	for i, tt := range tests {
		assert.Equalf(t, tt.expected, tt.interval.String(), "%d", i)
	}
}

func TestTimetzCodec(t *testing.T) {
	codectest.RunAll[pgcodec.Timetz](t, pgcodec.TimetzCodec{}, []codectest.RoundTripTest[pgcodec.Timetz]{
		{
			Value:   pgcodec.Timetz{Microseconds: 1, Zone: -7200},
			Encoded: []byte{0, 0, 0, 0, 0, 0, 0, 1, 0xff, 0xff, 0xe3, 0xe0},
		},
		{Value: pgcodec.Timetz{Microseconds: 86399999999, Zone: 0}},
		{Value: pgcodec.Timetz{Microseconds: 0, Zone: 50400}},
	})
}

func TestTimetzString(t *testing.T) {
	tests := []struct {
		timetz   pgcodec.Timetz
		expected string
	}{
		{pgcodec.Timetz{Microseconds: (13*3600 + 14*60 + 15) * 1000000, Zone: -7200}, "13:14:15+02"},
		{pgcodec.Timetz{Microseconds: 500000, Zone: 18000}, "00:00:00.5-05"},
		{pgcodec.Timetz{Microseconds: 0, Zone: -19800}, "00:00:00+05:30"},
		{pgcodec.Timetz{Microseconds: 0, Zone: 0}, "00:00:00+00"},
	}

	for i, tt := range tests {
		assert.Equalf(t, tt.expected, tt.timetz.String(), "%d", i)
	}
}
