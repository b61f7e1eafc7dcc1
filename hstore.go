package pgcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgio"
)

// HstorePair is a single key/value pair of an hstore. A nil Value is SQL NULL, which is distinct from the empty string.
type HstorePair struct {
	Key   string
	Value *string
}

// Hstore is a PostgreSQL hstore as an ordered sequence of pairs. Duplicate keys are preserved.
type Hstore []HstorePair

// Map returns h as a map. When a key is repeated the last pair wins.
func (h Hstore) Map() map[string]*string {
	m := make(map[string]*string, len(h))
	for _, p := range h {
		m[p.Key] = p.Value
	}
	return m
}

func (h Hstore) String() string {
	var sb strings.Builder
	for i, p := range h {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteHstoreElement(p.Key))
		sb.WriteString("=>")
		if p.Value == nil {
			sb.WriteString("NULL")
		} else {
			sb.WriteString(quoteHstoreElement(*p.Value))
		}
	}
	return sb.String()
}

var quoteHstoreReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoteHstoreElement(src string) string {
	return `"` + quoteHstoreReplacer.Replace(src) + `"`
}

// HstoreCodec encodes and decodes hstore: a 32-bit pair count, then for each pair a length prefixed key and a length
// prefixed value. A value length of -1 is NULL.
type HstoreCodec struct{}

// AppendBinary encodes v. Keys and values must be valid UTF-8, as DecodeBinary requires.
func (HstoreCodec) AppendBinary(buf []byte, v Hstore) ([]byte, error) {
	buf = pgio.AppendInt32(buf, int32(len(v)))
	for i, p := range v {
		if !utf8.ValidString(p.Key) || (p.Value != nil && !utf8.ValidString(*p.Value)) {
			return nil, newEncodeError("hstore", ErrInvalidUTF8, fmt.Sprintf("pair %d", i))
		}
		buf = appendLengthPrefixedString(buf, p.Key)
		if p.Value == nil {
			buf = pgio.AppendInt32(buf, -1)
		} else {
			buf = appendLengthPrefixedString(buf, *p.Value)
		}
	}
	return buf, nil
}

func (HstoreCodec) DecodeBinary(src []byte) (Hstore, error) {
	r := NewValueReader("hstore", src)

	// Each pair has at least a key length and a value length.
	n := r.ReadCount(8)

	var h Hstore
	if n > 0 {
		h = make(Hstore, 0, n)
	}
	for i := 0; i < n && r.Err() == nil; i++ {
		key, isNull := r.ReadLengthPrefixed()
		if isNull {
			r.Fail(ErrLengthMismatch, "null hstore key")
			break
		}
		value, valueIsNull := r.ReadLengthPrefixed()
		if r.Err() != nil {
			break
		}
		if !utf8.Valid(key) || (!valueIsNull && !utf8.Valid(value)) {
			r.Fail(ErrInvalidUTF8, "")
			break
		}

		pair := HstorePair{Key: string(key)}
		if !valueIsNull {
			s := string(value)
			pair.Value = &s
		}
		h = append(h, pair)
	}

	if err := r.Finish(); err != nil {
		return nil, err
	}
	return h, nil
}
