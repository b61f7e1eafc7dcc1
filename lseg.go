package pgcodec

// Lseg is a PostgreSQL line segment.
type Lseg struct {
	P [2]Point
}

func (l Lseg) String() string {
	return "[" + l.P[0].String() + "," + l.P[1].String() + "]"
}

type LsegCodec struct{}

func (LsegCodec) AppendBinary(buf []byte, v Lseg) ([]byte, error) {
	buf = appendPoint(buf, v.P[0])
	return appendPoint(buf, v.P[1]), nil
}

func (LsegCodec) DecodeBinary(src []byte) (Lseg, error) {
	r := NewValueReader("lseg", src)
	var l Lseg
	l.P[0] = readPoint(r)
	l.P[1] = readPoint(r)
	if err := r.Finish(); err != nil {
		return Lseg{}, err
	}
	return l, nil
}
