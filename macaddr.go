package pgcodec

import "fmt"

// Macaddr is a PostgreSQL macaddr.
type Macaddr [6]byte

func (m Macaddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

type MacaddrCodec struct{}

func (MacaddrCodec) AppendBinary(buf []byte, v Macaddr) ([]byte, error) {
	return append(buf, v[:]...), nil
}

func (MacaddrCodec) DecodeBinary(src []byte) (Macaddr, error) {
	r := NewValueReader("macaddr", src)
	var m Macaddr
	copy(m[:], r.ReadBytes(len(m)))
	if err := r.Finish(); err != nil {
		return Macaddr{}, err
	}
	return m, nil
}

// Macaddr8 is a PostgreSQL macaddr8 (EUI-64).
type Macaddr8 [8]byte

func (m Macaddr8) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7])
}

type Macaddr8Codec struct{}

func (Macaddr8Codec) AppendBinary(buf []byte, v Macaddr8) ([]byte, error) {
	return append(buf, v[:]...), nil
}

func (Macaddr8Codec) DecodeBinary(src []byte) (Macaddr8, error) {
	r := NewValueReader("macaddr8", src)
	var m Macaddr8
	copy(m[:], r.ReadBytes(len(m)))
	if err := r.Finish(); err != nil {
		return Macaddr8{}, err
	}
	return m, nil
}
