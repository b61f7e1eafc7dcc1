package pgcodec

import "math"

// Box is a PostgreSQL box. PostgreSQL always stores the upper right corner first.
type Box struct {
	High Point
	Low  Point
}

func (b Box) String() string {
	return b.High.String() + "," + b.Low.String()
}

// BoxCodec encodes and decodes box. The encoder writes the corners in canonical order: High is the component-wise
// maximum of the two corners and Low the minimum.
type BoxCodec struct{}

func (BoxCodec) AppendBinary(buf []byte, v Box) ([]byte, error) {
	high := Point{X: math.Max(v.High.X, v.Low.X), Y: math.Max(v.High.Y, v.Low.Y)}
	low := Point{X: math.Min(v.High.X, v.Low.X), Y: math.Min(v.High.Y, v.Low.Y)}
	buf = appendPoint(buf, high)
	return appendPoint(buf, low), nil
}

func (BoxCodec) DecodeBinary(src []byte) (Box, error) {
	r := NewValueReader("box", src)
	high := readPoint(r)
	low := readPoint(r)
	if err := r.Finish(); err != nil {
		return Box{}, err
	}
	return Box{High: high, Low: low}, nil
}
