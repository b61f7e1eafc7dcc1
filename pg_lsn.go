package pgcodec

import (
	"fmt"

	"github.com/jackc/pgio"
)

// LSN is a PostgreSQL write-ahead log location (pg_lsn).
type LSN uint64

// String renders the LSN as two hexadecimal 32-bit halves, e.g. 16/B374D848.
func (lsn LSN) String() string {
	return fmt.Sprintf("%X/%X", uint32(lsn>>32), uint32(lsn))
}

// ParseLSN parses the HI/LO form produced by String.
func ParseLSN(s string) (LSN, error) {
	var hi, lo uint32
	if _, err := fmt.Sscanf(s, "%X/%X", &hi, &lo); err != nil {
		return 0, fmt.Errorf("invalid pg_lsn %q: %w", s, err)
	}
	return LSN(uint64(hi)<<32 | uint64(lo)), nil
}

type LSNCodec struct{}

func (LSNCodec) AppendBinary(buf []byte, v LSN) ([]byte, error) {
	return pgio.AppendUint64(buf, uint64(v)), nil
}

func (LSNCodec) DecodeBinary(src []byte) (LSN, error) {
	r := NewValueReader("pg_lsn", src)
	n := r.ReadUint64()
	if err := r.Finish(); err != nil {
		return 0, err
	}
	return LSN(n), nil
}
