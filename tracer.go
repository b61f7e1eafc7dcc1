package pgcodec

import (
	"context"
)

// DecodeTracer traces Map.Decode and Map.DecodeName.
type DecodeTracer interface {
	// TraceDecodeStart is called before the value is decoded. The returned context is passed to TraceDecodeEnd.
	TraceDecodeStart(ctx context.Context, m *Map, data TraceDecodeStartData) context.Context

	TraceDecodeEnd(ctx context.Context, m *Map, data TraceDecodeEndData)
}

type TraceDecodeStartData struct {
	Type *Type
	Src  []byte
}

type TraceDecodeEndData struct {
	Value any
	Err   error
}

// EncodeTracer traces Map.Encode and Map.EncodeName.
type EncodeTracer interface {
	// TraceEncodeStart is called before the value is encoded. The returned context is passed to TraceEncodeEnd.
	TraceEncodeStart(ctx context.Context, m *Map, data TraceEncodeStartData) context.Context

	TraceEncodeEnd(ctx context.Context, m *Map, data TraceEncodeEndData)
}

type TraceEncodeStartData struct {
	Type  *Type
	Value any
}

type TraceEncodeEndData struct {
	Buf []byte
	Err error
}
