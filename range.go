package pgcodec

import (
	"fmt"
	"strings"
)

// BoundType describes one side of a Range.
type BoundType byte

const (
	Inclusive = BoundType('i')
	Exclusive = BoundType('e')
	Unbounded = BoundType('U')
)

func (bt BoundType) String() string {
	return string(bt)
}

// Range flag bits from src/include/utils/rangetypes.h.
const (
	emptyMask          = 0x01
	lowerInclusiveMask = 0x02
	upperInclusiveMask = 0x04
	lowerUnboundedMask = 0x08
	upperUnboundedMask = 0x10
)

// Range is a PostgreSQL range over elements of type T. Lower and Upper are only meaningful when the corresponding
// bound type is Inclusive or Exclusive. When Empty is true all other fields are ignored.
type Range[T any] struct {
	Lower     T
	Upper     T
	LowerType BoundType
	UpperType BoundType
	Empty     bool
}

// EmptyRange returns the canonical empty range: both sides unbounded and zero valued.
func EmptyRange[T any]() Range[T] {
	return Range[T]{LowerType: Unbounded, UpperType: Unbounded, Empty: true}
}

func (r Range[T]) String() string {
	if r.Empty {
		return "empty"
	}

	var sb strings.Builder
	switch r.LowerType {
	case Inclusive:
		sb.WriteByte('[')
		fmt.Fprint(&sb, r.Lower)
	case Unbounded:
		sb.WriteByte('(')
	default:
		sb.WriteByte('(')
		fmt.Fprint(&sb, r.Lower)
	}
	sb.WriteByte(',')
	switch r.UpperType {
	case Inclusive:
		fmt.Fprint(&sb, r.Upper)
		sb.WriteByte(']')
	case Unbounded:
		sb.WriteByte(')')
	default:
		fmt.Fprint(&sb, r.Upper)
		sb.WriteByte(')')
	}
	return sb.String()
}

// RangeCodec encodes and decodes a range whose elements are handled by Element.
type RangeCodec[T any] struct {
	// TypeName is used in errors. It defaults to "range".
	TypeName string
	Element  Codec[T]
}

func (c RangeCodec[T]) typeName() string {
	if c.TypeName == "" {
		return "range"
	}
	return c.TypeName
}

// AppendBinary encodes v. An empty range is written as the empty flag alone. Bound types other than Inclusive,
// Exclusive, and Unbounded are treated as Exclusive.
func (c RangeCodec[T]) AppendBinary(buf []byte, v Range[T]) ([]byte, error) {
	if v.Empty {
		return append(buf, emptyMask), nil
	}

	var flags byte
	switch v.LowerType {
	case Inclusive:
		flags |= lowerInclusiveMask
	case Unbounded:
		flags |= lowerUnboundedMask
	}
	switch v.UpperType {
	case Inclusive:
		flags |= upperInclusiveMask
	case Unbounded:
		flags |= upperUnboundedMask
	}
	buf = append(buf, flags)

	var err error
	if v.LowerType != Unbounded {
		buf, err = appendLengthPrefixedFunc(buf, func(buf []byte) ([]byte, error) {
			return c.Element.AppendBinary(buf, v.Lower)
		})
		if err != nil {
			return nil, fmt.Errorf("%s lower bound: %w", c.typeName(), err)
		}
	}
	if v.UpperType != Unbounded {
		buf, err = appendLengthPrefixedFunc(buf, func(buf []byte) ([]byte, error) {
			return c.Element.AppendBinary(buf, v.Upper)
		})
		if err != nil {
			return nil, fmt.Errorf("%s upper bound: %w", c.typeName(), err)
		}
	}

	return buf, nil
}

// DecodeBinary decodes src. If the empty flag is set the canonical empty range is returned and all other flags are
// ignored.
func (c RangeCodec[T]) DecodeBinary(src []byte) (Range[T], error) {
	r := NewValueReader(c.typeName(), src)
	flags := r.ReadUint8()
	if r.Err() != nil {
		return Range[T]{}, r.Err()
	}

	if flags&emptyMask != 0 {
		if err := r.Finish(); err != nil {
			return Range[T]{}, err
		}
		return EmptyRange[T](), nil
	}

	var rng Range[T]
	rng.LowerType = c.readBound(r, &rng.Lower, flags&lowerUnboundedMask != 0, flags&lowerInclusiveMask != 0, "lower")
	rng.UpperType = c.readBound(r, &rng.Upper, flags&upperUnboundedMask != 0, flags&upperInclusiveMask != 0, "upper")

	if err := r.Finish(); err != nil {
		return Range[T]{}, err
	}
	return rng, nil
}

func (c RangeCodec[T]) readBound(r *ValueReader, dst *T, unbounded, inclusive bool, side string) BoundType {
	if unbounded {
		return Unbounded
	}

	b, isNull := r.ReadLengthPrefixed()
	if isNull {
		r.Fail(ErrLengthMismatch, side+" bound is NULL")
	}
	if r.Err() != nil {
		return Unbounded
	}

	v, err := c.Element.DecodeBinary(b)
	if err != nil {
		r.FailWrap(err, side+" bound")
		return Unbounded
	}
	*dst = v

	if inclusive {
		return Inclusive
	}
	return Exclusive
}
