package pgcodec

// Circle is a PostgreSQL circle. A negative Radius is passed through unchanged.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) String() string {
	return "<" + c.Center.String() + "," + formatFloat(c.Radius) + ">"
}

type CircleCodec struct{}

func (CircleCodec) AppendBinary(buf []byte, v Circle) ([]byte, error) {
	buf = appendPoint(buf, v.Center)
	return appendFloat64(buf, v.Radius), nil
}

func (CircleCodec) DecodeBinary(src []byte) (Circle, error) {
	r := NewValueReader("circle", src)
	center := readPoint(r)
	radius := r.ReadFloat64()
	if err := r.Finish(); err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: radius}, nil
}
