package pgcodec

import (
	"github.com/jackc/pgio"
)

// appendArray appends a 32-bit count followed by each element of items.
func appendArray[T any](buf []byte, items []T, appendItem func([]byte, T) []byte) []byte {
	buf = pgio.AppendInt32(buf, int32(len(items)))
	for _, item := range items {
		buf = appendItem(buf, item)
	}
	return buf
}

// readArray reads a 32-bit count followed by that many fixed size records of recordSize bytes. An empty array is
// returned as a nil slice.
func readArray[T any](r *ValueReader, recordSize int, readItem func(*ValueReader) T) []T {
	n := r.ReadCount(recordSize)
	if n == 0 {
		return nil
	}

	items := make([]T, n)
	for i := range items {
		items[i] = readItem(r)
	}
	if r.Err() != nil {
		return nil
	}
	return items
}

// appendLengthPrefixedString appends a 32-bit length followed by s.
func appendLengthPrefixedString(buf []byte, s string) []byte {
	buf = pgio.AppendInt32(buf, int32(len(s)))
	return append(buf, s...)
}

// appendLengthPrefixedFunc reserves a 32-bit length, calls appendValue, and then sets the length to the number of
// bytes appendValue wrote.
func appendLengthPrefixedFunc(buf []byte, appendValue func([]byte) ([]byte, error)) ([]byte, error) {
	sp := len(buf)
	buf = pgio.AppendInt32(buf, -1)
	buf, err := appendValue(buf)
	if err != nil {
		return nil, err
	}
	pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
	return buf, nil
}
