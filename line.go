package pgcodec

// Line is a PostgreSQL line represented by the coefficients of Ax + By + C = 0.
type Line struct {
	A, B, C float64
}

func (l Line) String() string {
	return "{" + formatFloat(l.A) + "," + formatFloat(l.B) + "," + formatFloat(l.C) + "}"
}

type LineCodec struct{}

func (LineCodec) AppendBinary(buf []byte, v Line) ([]byte, error) {
	buf = appendFloat64(buf, v.A)
	buf = appendFloat64(buf, v.B)
	return appendFloat64(buf, v.C), nil
}

func (LineCodec) DecodeBinary(src []byte) (Line, error) {
	r := NewValueReader("line", src)
	a := r.ReadFloat64()
	b := r.ReadFloat64()
	c := r.ReadFloat64()
	if err := r.Finish(); err != nil {
		return Line{}, err
	}
	return Line{A: a, B: b, C: c}, nil
}
