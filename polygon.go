package pgcodec

// Polygon is a PostgreSQL polygon.
type Polygon struct {
	Points []Point
}

func (p Polygon) String() string {
	return "(" + joinPoints(p.Points) + ")"
}

// PolygonCodec encodes and decodes polygon: a 32-bit point count and the points.
type PolygonCodec struct{}

func (PolygonCodec) AppendBinary(buf []byte, v Polygon) ([]byte, error) {
	return appendArray(buf, v.Points, appendPoint), nil
}

func (PolygonCodec) DecodeBinary(src []byte) (Polygon, error) {
	r := NewValueReader("polygon", src)
	points := readArray(r, pointSize, readPoint)
	if err := r.Finish(); err != nil {
		return Polygon{}, err
	}
	return Polygon{Points: points}, nil
}
