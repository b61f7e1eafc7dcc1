package pgcodec

import (
	"math"
	"strconv"
)

// Point is a PostgreSQL point.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
}

// PointCodec encodes and decodes point.
type PointCodec struct{}

func (PointCodec) AppendBinary(buf []byte, v Point) ([]byte, error) {
	return appendPoint(buf, v), nil
}

func (PointCodec) DecodeBinary(src []byte) (Point, error) {
	r := NewValueReader("point", src)
	p := readPoint(r)
	if err := r.Finish(); err != nil {
		return Point{}, err
	}
	return p, nil
}

const pointSize = 16

func appendPoint(buf []byte, p Point) []byte {
	buf = appendFloat64(buf, p.X)
	return appendFloat64(buf, p.Y)
}

func readPoint(r *ValueReader) Point {
	x := r.ReadFloat64()
	y := r.ReadFloat64()
	return Point{X: x, Y: y}
}

// formatFloat formats f the way PostgreSQL's float8out does with extra_float_digits at its default.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
