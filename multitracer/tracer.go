// Package multitracer provides a Tracer that can combine several tracers into one.
package multitracer

import (
	"context"

	"github.com/jackc/pgcodec"
)

// Tracer can combine several tracers into one.
// You can use New to automatically split tracers by interface.
type Tracer struct {
	DecodeTracers []pgcodec.DecodeTracer
	EncodeTracers []pgcodec.EncodeTracer
}

// New returns new Tracer from tracers with automatically split tracers by interface.
func New(tracers ...pgcodec.DecodeTracer) *Tracer {
	var t Tracer

	for i := range tracers {
		t.DecodeTracers = append(t.DecodeTracers, tracers[i])

		if encodeTracer, ok := tracers[i].(pgcodec.EncodeTracer); ok {
			t.EncodeTracers = append(t.EncodeTracers, encodeTracer)
		}
	}

	return &t
}

func (t *Tracer) TraceDecodeStart(ctx context.Context, m *pgcodec.Map, data pgcodec.TraceDecodeStartData) context.Context {
	for i := range t.DecodeTracers {
		ctx = t.DecodeTracers[i].TraceDecodeStart(ctx, m, data)
	}

	return ctx
}

func (t *Tracer) TraceDecodeEnd(ctx context.Context, m *pgcodec.Map, data pgcodec.TraceDecodeEndData) {
	for i := range t.DecodeTracers {
		t.DecodeTracers[i].TraceDecodeEnd(ctx, m, data)
	}
}

func (t *Tracer) TraceEncodeStart(ctx context.Context, m *pgcodec.Map, data pgcodec.TraceEncodeStartData) context.Context {
	for i := range t.EncodeTracers {
		ctx = t.EncodeTracers[i].TraceEncodeStart(ctx, m, data)
	}

	return ctx
}

func (t *Tracer) TraceEncodeEnd(ctx context.Context, m *pgcodec.Map, data pgcodec.TraceEncodeEndData) {
	for i := range t.EncodeTracers {
		t.EncodeTracers[i].TraceEncodeEnd(ctx, m, data)
	}
}
