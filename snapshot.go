package pgcodec

import (
	"strconv"
	"strings"

	"github.com/jackc/pgio"
)

// Snapshot is a PostgreSQL pg_snapshot (and txid_snapshot). Xip holds the transaction IDs in progress at the time of
// the snapshot in the order given; the codec does not sort them.
type Snapshot struct {
	Xmin uint64
	Xmax uint64
	Xip  []uint64
}

// String renders the snapshot as xmin:xmax:xip1,xip2,...
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(s.Xmin, 10))
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(s.Xmax, 10))
	sb.WriteByte(':')
	for i, xip := range s.Xip {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(xip, 10))
	}
	return sb.String()
}

// SnapshotCodec encodes and decodes pg_snapshot: the in-progress count, xmin, xmax, and then the in-progress IDs.
type SnapshotCodec struct{}

func (SnapshotCodec) AppendBinary(buf []byte, v Snapshot) ([]byte, error) {
	buf = pgio.AppendInt32(buf, int32(len(v.Xip)))
	buf = pgio.AppendUint64(buf, v.Xmin)
	buf = pgio.AppendUint64(buf, v.Xmax)
	for _, xip := range v.Xip {
		buf = pgio.AppendUint64(buf, xip)
	}
	return buf, nil
}

func (SnapshotCodec) DecodeBinary(src []byte) (Snapshot, error) {
	r := NewValueReader("pg_snapshot", src)

	// The count precedes xmin and xmax, so the bounds check must include them.
	nxip := r.ReadCount(0)
	xmin := r.ReadUint64()
	xmax := r.ReadUint64()
	if r.Err() == nil && int64(nxip)*8 > int64(r.Len()) {
		r.Fail(ErrTruncated, "in-progress count exceeds remaining bytes")
	}
	if r.Err() != nil {
		return Snapshot{}, r.Err()
	}

	var xip []uint64
	if nxip > 0 {
		xip = make([]uint64, nxip)
		for i := range xip {
			xip[i] = r.ReadUint64()
		}
	}
	if err := r.Finish(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Xmin: xmin, Xmax: xmax, Xip: xip}, nil
}
