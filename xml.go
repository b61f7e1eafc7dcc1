package pgcodec

import "unicode/utf8"

// XML is a PostgreSQL xml value. It is opaque text; only UTF-8 validity is checked.
type XML string

// XMLCodec encodes and decodes xml. The value has no length or terminator of its own, so a truncated value decodes
// as shorter text, or fails with ErrInvalidUTF8 if cut inside a multi-byte character.
type XMLCodec struct{}

func (XMLCodec) AppendBinary(buf []byte, v XML) ([]byte, error) {
	return append(buf, v...), nil
}

func (XMLCodec) DecodeBinary(src []byte) (XML, error) {
	if !utf8.Valid(src) {
		r := NewValueReader("xml", src)
		r.Fail(ErrInvalidUTF8, "")
		return "", r.Err()
	}
	return XML(src), nil
}
