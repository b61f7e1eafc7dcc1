// Package pgcodec converts between Go values and the PostgreSQL binary wire format for PostgreSQL's extended types.
/*
Every supported type has a Codec. A Codec is a pair of pure functions: AppendBinary appends the wire encoding of a Go
value to a buffer and DecodeBinary turns wire bytes back into a Go value. Codecs hold no state and are safe for
concurrent use.

	buf, err := pgcodec.Encode(pgcodec.PointCodec{}, pgcodec.Point{X: 1.5, Y: -2})
	p, err := pgcodec.Decode(pgcodec.PointCodec{}, buf)

Supported Types

Geometric: point, line, lseg, box, path, polygon, circle. Network: cidr, inet, macaddr, macaddr8. Time: interval,
timetz. Transaction and WAL: xid, xid8, pg_snapshot, pg_lsn. Text search: tsvector, tsquery. Other: hstore, xml.

Ranges

RangeCodec is generic over an element Codec. Int4Codec, Int8Codec, NumericCodec, DateCodec, TimestampCodec, and
TimestamptzCodec cover the built-in range types. Any other Codec can be used for user-defined range types. See the ext
directory for element codecs backed by github.com/shopspring/decimal, github.com/cockroachdb/apd, and
github.com/gofrs/uuid.

Errors

Decoders never panic on malformed input. They return an *Error whose Kind classifies the problem. The kinds are
themselves errors so errors.Is can be used:

	if errors.Is(err, pgcodec.ErrTruncated) {
		...
	}

Map

Map associates PostgreSQL type OIDs and names with codecs for callers that only know a type at run time. NewMap
returns a Map with all built-in types registered.

Tracing

Map.Tracer is called around Map decode and encode calls. The tracelog package provides a tracer that logs through an
adapter for one of several logging libraries (see the log directory) and the multitracer package combines tracers.
*/
package pgcodec
