// Package uuid encodes uuid as github.com/gofrs/uuid values. It is mostly useful as the element codec of user
// defined ranges over uuid.
package uuid

import (
	"github.com/gofrs/uuid"
	"github.com/jackc/pgcodec"
)

// UUIDOID is the PostgreSQL oid of uuid.
const UUIDOID = 2950

type UUIDCodec struct{}

func (UUIDCodec) AppendBinary(buf []byte, v uuid.UUID) ([]byte, error) {
	return append(buf, v[:]...), nil
}

func (UUIDCodec) DecodeBinary(src []byte) (uuid.UUID, error) {
	r := pgcodec.NewValueReader("uuid", src)
	b := r.ReadBytes(uuid.Size)
	if err := r.Finish(); err != nil {
		return uuid.Nil, err
	}

	var u uuid.UUID
	copy(u[:], b)
	return u, nil
}

// RangeCodec returns a codec for a range type named typeName with uuid bounds.
func RangeCodec(typeName string) pgcodec.RangeCodec[uuid.UUID] {
	return pgcodec.RangeCodec[uuid.UUID]{TypeName: typeName, Element: UUIDCodec{}}
}

// Register registers uuid in m.
func Register(m *pgcodec.Map) {
	m.RegisterType(pgcodec.NewType[uuid.UUID]("uuid", UUIDOID, UUIDCodec{}))
}
