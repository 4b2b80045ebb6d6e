package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" || cfg.Interval != 15*time.Second {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.SampleRate != nil || cfg.Rate() != 1.0 {
		t.Errorf("expected unset sample rate to mean 1.0, got %v", cfg.Rate())
	}
}

func TestConfigRate_ExplicitZeroKept(t *testing.T) {
	zero := 0.0
	cfg := Config{SampleRate: &zero}
	cfg.ApplyDefaults()
	if cfg.Rate() != 0 {
		t.Fatalf("expected explicit 0 to survive defaults, got %v", cfg.Rate())
	}
	if samplerFor(cfg.Rate()).Description() != sdktrace.NeverSample().Description() {
		t.Error("expected NeverSample for an explicit 0 rate")
	}
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{}, "svc", "dev", "development")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSamplerFor(t *testing.T) {
	if samplerFor(1).Description() != sdktrace.AlwaysSample().Description() {
		t.Error("expected AlwaysSample for rate 1")
	}
	if samplerFor(0).Description() != sdktrace.NeverSample().Description() {
		t.Error("expected NeverSample for rate 0")
	}
}

func TestStartSpan_Recorded(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	ctx, span := StartSpan(context.Background(), SpanInspect)
	SetSpanAttribute(ctx, AttrInspector, "counter")
	SetSpanAttribute(ctx, "items", 3)
	SetSpanError(ctx, errors.New("boom"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != SpanInspect {
		t.Errorf("expected span %q, got %q", SpanInspect, spans[0].Name)
	}
	if len(spans[0].Attributes) != 2 {
		t.Errorf("expected 2 attributes, got %d", len(spans[0].Attributes))
	}
	if len(spans[0].Events) != 1 {
		t.Errorf("expected the error event, got %d events", len(spans[0].Events))
	}
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	// Must not panic without a recording span.
	SetSpanAttribute(context.Background(), "k", "v")
	SetSpanError(context.Background(), errors.New("x"))
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	m.RecordInspect(ctx, "counter", "ok", time.Millisecond)
	m.RecordInspect(ctx, "counter", "ok", time.Millisecond)
	m.RecordFinish(ctx, "counter", "ok")
	m.RecordError(ctx, "inspect", "counter")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					got[md.Name] += dp.Value
				}
			}
		}
	}
	if got["inspector.items.total"] != 2 {
		t.Errorf("expected 2 items, got %d", got["inspector.items.total"])
	}
	if got["inspector.finish.total"] != 1 {
		t.Errorf("expected 1 finish, got %d", got["inspector.finish.total"])
	}
	if got["inspector.error.total"] != 1 {
		t.Errorf("expected 1 error, got %d", got["inspector.error.total"])
	}
}
