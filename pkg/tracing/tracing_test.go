package tracing

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
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans installs an in-memory tracer provider for the duration of t.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ServiceName != "skateplan" {
		t.Errorf("expected service name 'skateplan', got '%s'", cfg.ServiceName)
	}
	if cfg.JaegerURL != "http://localhost:14268/api/traces" {
		t.Errorf("unexpected Jaeger URL: %s", cfg.JaegerURL)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %f", cfg.SampleRate)
	}
}

func TestInit_Disabled(t *testing.T) {
	tp, err := Init(DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestStartSpan_NoProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.operation")
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	AddSpanAttributes(ctx, attribute.String("test.key", "test.value"))
	RecordError(ctx, errors.New("ignored"))
	span.End()
}

func TestTraceAPIRequest_RecordsError(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := TraceAPIRequest(context.Background(), "GET", "/skaters/7/")
	RecordError(ctx, errors.New("Not found"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "api.GET", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "Not found", ended[0].Status().Description)
	assert.Contains(t, ended[0].Attributes(), EndpointKey.String("/skaters/7/"))
}

func TestTraceAccessLookup(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := TraceAccessLookup(context.Background(), "teams", 12)
	AddSpanAttributes(ctx, AccessRoleKey.String("MANAGER"))
	MeasureDuration(ctx, time.Now().Add(-5*time.Millisecond), "access.lookup")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	attrs := ended[0].Attributes()
	assert.Contains(t, attrs, EntityKindKey.String("teams"))
	assert.Contains(t, attrs, EntityIDKey.Int64(12))
	assert.Contains(t, attrs, AccessRoleKey.String("MANAGER"))
}

func TestTraceHTTPAndTokenStoreSpans(t *testing.T) {
	rec := recordSpans(t)

	_, s1 := TraceHTTPRequest(context.Background(), "POST", "/api/v1/access/derive")
	s1.End()
	_, s2 := TraceTokenStore(context.Background(), "load", "redis")
	s2.End()

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "http.POST", ended[0].Name())
	assert.Equal(t, "token_store.load", ended[1].Name())
}
