package pgcodec

import "strings"

// Path is a PostgreSQL path. An open path renders with square brackets and a closed path with parentheses.
type Path struct {
	Points []Point
	Closed bool
}

func (p Path) String() string {
	if p.Closed {
		return "(" + joinPoints(p.Points) + ")"
	}
	return "[" + joinPoints(p.Points) + "]"
}

// PathCodec encodes and decodes path: a closed flag byte, a 32-bit point count, and the points.
type PathCodec struct{}

func (PathCodec) AppendBinary(buf []byte, v Path) ([]byte, error) {
	buf = appendBool(buf, v.Closed)
	return appendArray(buf, v.Points, appendPoint), nil
}

func (PathCodec) DecodeBinary(src []byte) (Path, error) {
	r := NewValueReader("path", src)
	closed := r.ReadUint8() != 0
	points := readArray(r, pointSize, readPoint)
	if err := r.Finish(); err != nil {
		return Path{}, err
	}
	return Path{Points: points, Closed: closed}, nil
}

func joinPoints(points []Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}
