package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/eagroute/internal/adapters/telemetry"
	"go.trai.ch/eagroute/internal/core/ports"
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "GET /api/v1/map/grid",
		ports.WithAttribute("url.path", "/api/v1/map/grid"),
		ports.WithAttribute("attempt", 2),
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/map/grid", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "/api/v1/map/grid", attrs["url.path"].AsString())
	assert.Equal(t, int64(2), attrs["attempt"].AsInt64())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "span")
	span.SetAttribute("str", "value")
	span.SetAttribute("int", 7)
	span.SetAttribute("int64", int64(8))
	span.SetAttribute("seq", uint64(9))
	span.SetAttribute("float", 1.5)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("duration", 2*time.Second)
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := attrMap(spans[0].Attributes())

	assert.Equal(t, "value", attrs["str"].AsString())
	assert.Equal(t, int64(7), attrs["int"].AsInt64())
	assert.Equal(t, int64(8), attrs["int64"].AsInt64())
	assert.Equal(t, int64(9), attrs["seq"].AsInt64())
	assert.InDelta(t, 1.5, attrs["float"].AsFloat64(), 0.0001)
	assert.True(t, attrs["bool"].AsBool())
	assert.Equal(t, []string{"a", "b"}, attrs["slice"].AsStringSlice())
	assert.Equal(t, "2s", attrs["duration"].AsString())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "span")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
}
