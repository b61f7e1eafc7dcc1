package pgcodec

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownType is returned by Map when no type is registered for an OID or name.
var ErrUnknownType = errors.New("pgcodec: unknown type")

// Type associates a PostgreSQL type name and OID with a codec. Values cross the Type boundary as any, so a Type can
// be used when the Go type is only known at run time.
type Type struct {
	Name string
	OID  uint32

	codec anyCodec
}

// NewType returns a Type for codec. An oid of 0 means the type has no fixed OID, as with extension types such as
// hstore, and the type can only be found by name.
func NewType[T any](name string, oid uint32, codec Codec[T]) *Type {
	return &Type{Name: name, OID: oid, codec: typedCodec[T]{codec: codec}}
}

// AppendBinary encodes v, which must be a value of or pointer to the codec's Go type.
func (t *Type) AppendBinary(buf []byte, v any) ([]byte, error) {
	return t.codec.appendBinary(buf, v)
}

// DecodeBinary decodes src and returns the value as the codec's Go type.
func (t *Type) DecodeBinary(src []byte) (any, error) {
	return t.codec.decodeBinary(src)
}

// GoType returns the name of the Go type the codec produces, e.g. "pgcodec.Point".
func (t *Type) GoType() string {
	return t.codec.goType()
}

type anyCodec interface {
	appendBinary(buf []byte, v any) ([]byte, error)
	decodeBinary(src []byte) (any, error)
	goType() string
}

type typedCodec[T any] struct {
	codec Codec[T]
}

func (c typedCodec[T]) appendBinary(buf []byte, v any) ([]byte, error) {
	switch v := v.(type) {
	case T:
		return c.codec.AppendBinary(buf, v)
	case *T:
		if v != nil {
			return c.codec.AppendBinary(buf, *v)
		}
	}
	return nil, fmt.Errorf("pgcodec: cannot encode %T as %s", v, c.goType())
}

func (c typedCodec[T]) decodeBinary(src []byte) (any, error) {
	v, err := c.codec.DecodeBinary(src)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c typedCodec[T]) goType() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Map is the set of types known to a program. A Map is safe for concurrent use once all types are registered.
type Map struct {
	oidToType  map[uint32]*Type
	nameToType map[string]*Type

	// Tracer is called around every Decode and, if it also implements EncodeTracer, every Encode. It may be nil.
	Tracer DecodeTracer
}

// NewMap returns a Map with every built-in type registered.
func NewMap() *Map {
	m := &Map{
		oidToType:  make(map[uint32]*Type, 64),
		nameToType: make(map[string]*Type, 64),
	}

	m.RegisterType(NewType[Point]("point", PointOID, PointCodec{}))
	m.RegisterType(NewType[Lseg]("lseg", LsegOID, LsegCodec{}))
	m.RegisterType(NewType[Path]("path", PathOID, PathCodec{}))
	m.RegisterType(NewType[Box]("box", BoxOID, BoxCodec{}))
	m.RegisterType(NewType[Polygon]("polygon", PolygonOID, PolygonCodec{}))
	m.RegisterType(NewType[Line]("line", LineOID, LineCodec{}))
	m.RegisterType(NewType[Circle]("circle", CircleOID, CircleCodec{}))
	m.RegisterType(NewType[Cidr]("cidr", CIDROID, CidrCodec{}))
	m.RegisterType(NewType[Cidr]("inet", InetOID, CidrCodec{}))
	m.RegisterType(NewType[Macaddr]("macaddr", MacaddrOID, MacaddrCodec{}))
	m.RegisterType(NewType[Macaddr8]("macaddr8", Macaddr8OID, Macaddr8Codec{}))
	m.RegisterType(NewType[Interval]("interval", IntervalOID, IntervalCodec{}))
	m.RegisterType(NewType[Timetz]("timetz", TimetzOID, TimetzCodec{}))
	m.RegisterType(NewType[Xid]("xid", XIDOID, XidCodec{}))
	m.RegisterType(NewType[Xid8]("xid8", XID8OID, Xid8Codec{}))
	m.RegisterType(NewType[LSN]("pg_lsn", PgLSNOID, LSNCodec{}))
	m.RegisterType(NewType[Snapshot]("pg_snapshot", PgSnapshotOID, SnapshotCodec{}))
	m.RegisterType(NewType[Snapshot]("txid_snapshot", TxidSnapshotOID, SnapshotCodec{}))
	m.RegisterType(NewType[TSVector]("tsvector", TSVectorOID, TSVectorCodec{}))
	m.RegisterType(NewType[TSQuery]("tsquery", TSQueryOID, TSQueryCodec{}))
	m.RegisterType(NewType[XML]("xml", XMLOID, XMLCodec{}))
	m.RegisterType(NewType[Hstore]("hstore", 0, HstoreCodec{}))

	m.RegisterType(NewType[int32]("int4", Int4OID, Int4Codec{}))
	m.RegisterType(NewType[int64]("int8", Int8OID, Int8Codec{}))
	m.RegisterType(NewType[Numeric]("numeric", NumericOID, NumericCodec{}))
	m.RegisterType(NewType[Date]("date", DateOID, DateCodec{}))
	m.RegisterType(NewType[Timestamp]("timestamp", TimestampOID, TimestampCodec{}))
	m.RegisterType(NewType[Timestamptz]("timestamptz", TimestamptzOID, TimestamptzCodec{}))

	m.RegisterType(NewType[Range[int32]]("int4range", Int4rangeOID, RangeCodec[int32]{TypeName: "int4range", Element: Int4Codec{}}))
	m.RegisterType(NewType[Range[int64]]("int8range", Int8rangeOID, RangeCodec[int64]{TypeName: "int8range", Element: Int8Codec{}}))
	m.RegisterType(NewType[Range[Numeric]]("numrange", NumrangeOID, RangeCodec[Numeric]{TypeName: "numrange", Element: NumericCodec{}}))
	m.RegisterType(NewType[Range[Date]]("daterange", DaterangeOID, RangeCodec[Date]{TypeName: "daterange", Element: DateCodec{}}))
	m.RegisterType(NewType[Range[Timestamp]]("tsrange", TsrangeOID, RangeCodec[Timestamp]{TypeName: "tsrange", Element: TimestampCodec{}}))
	m.RegisterType(NewType[Range[Timestamptz]]("tstzrange", TstzrangeOID, RangeCodec[Timestamptz]{TypeName: "tstzrange", Element: TimestamptzCodec{}}))

	return m
}

// RegisterType registers t, replacing any type with the same name or OID. A type with OID 0 is registered by name
// only.
func (m *Map) RegisterType(t *Type) {
	m.nameToType[t.Name] = t
	if t.OID != 0 {
		m.oidToType[t.OID] = t
	}
}

func (m *Map) TypeForOID(oid uint32) (*Type, bool) {
	t, ok := m.oidToType[oid]
	return t, ok
}

func (m *Map) TypeForName(name string) (*Type, bool) {
	t, ok := m.nameToType[name]
	return t, ok
}

// Types returns the registered types sorted by name.
func (m *Map) Types() []*Type {
	types := make([]*Type, 0, len(m.nameToType))
	for _, t := range m.nameToType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types
}

// Decode decodes src as the type registered for oid.
func (m *Map) Decode(oid uint32, src []byte) (any, error) {
	t, ok := m.TypeForOID(oid)
	if !ok {
		return nil, fmt.Errorf("%w: oid %d", ErrUnknownType, oid)
	}
	return m.decode(t, src)
}

// DecodeName decodes src as the type registered for name.
func (m *Map) DecodeName(name string, src []byte) (any, error) {
	t, ok := m.TypeForName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return m.decode(t, src)
}

// Encode encodes v as the type registered for oid.
func (m *Map) Encode(oid uint32, v any) ([]byte, error) {
	t, ok := m.TypeForOID(oid)
	if !ok {
		return nil, fmt.Errorf("%w: oid %d", ErrUnknownType, oid)
	}
	return m.encode(t, v)
}

// EncodeName encodes v as the type registered for name.
func (m *Map) EncodeName(name string, v any) ([]byte, error) {
	t, ok := m.TypeForName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return m.encode(t, v)
}

func (m *Map) decode(t *Type, src []byte) (any, error) {
	if m.Tracer == nil {
		return t.DecodeBinary(src)
	}

	// Map has no context of its own.
	ctx := m.Tracer.TraceDecodeStart(context.Background(), m, TraceDecodeStartData{Type: t, Src: src})
	v, err := t.DecodeBinary(src)
	m.Tracer.TraceDecodeEnd(ctx, m, TraceDecodeEndData{Value: v, Err: err})
	return v, err
}

func (m *Map) encode(t *Type, v any) ([]byte, error) {
	tracer, ok := m.Tracer.(EncodeTracer)
	if !ok {
		return t.AppendBinary(nil, v)
	}

	ctx := tracer.TraceEncodeStart(context.Background(), m, TraceEncodeStartData{Type: t, Value: v})
	buf, err := t.AppendBinary(nil, v)
	tracer.TraceEncodeEnd(ctx, m, TraceEncodeEndData{Buf: buf, Err: err})
	return buf, err
}
