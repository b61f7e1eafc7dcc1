package pgcodec

import (
	"strconv"

	"github.com/jackc/pgio"
)

// Xid is a PostgreSQL 32-bit transaction ID. Values wrap around and are not validated.
type Xid uint32

func (x Xid) String() string {
	return strconv.FormatUint(uint64(x), 10)
}

type XidCodec struct{}

func (XidCodec) AppendBinary(buf []byte, v Xid) ([]byte, error) {
	return pgio.AppendUint32(buf, uint32(v)), nil
}

func (XidCodec) DecodeBinary(src []byte) (Xid, error) {
	r := NewValueReader("xid", src)
	n := r.ReadUint32()
	if err := r.Finish(); err != nil {
		return 0, err
	}
	return Xid(n), nil
}

// Xid8 is a PostgreSQL 64-bit full transaction ID.
type Xid8 uint64

func (x Xid8) String() string {
	return strconv.FormatUint(uint64(x), 10)
}

type Xid8Codec struct{}

func (Xid8Codec) AppendBinary(buf []byte, v Xid8) ([]byte, error) {
	return pgio.AppendUint64(buf, uint64(v)), nil
}

func (Xid8Codec) DecodeBinary(src []byte) (Xid8, error) {
	r := NewValueReader("xid8", src)
	n := r.ReadUint64()
	if err := r.Finish(); err != nil {
		return 0, err
	}
	return Xid8(n), nil
}
