package inspector

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/inspectree/logger"
	"github.com/kbukum/inspectree/observability"
)

func TestWithTracing_SpansPerCall(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	b := newBuilder()
	in := Input[int](b)
	c := NewCollector[int]()
	Inspect(in).With(WithTracing[int](c, "scorer", "counts"))

	feed := MustOpen(b.Build(), in)
	ctx := context.Background()
	_ = feed.InspectAll(ctx, 1, 2)
	_ = feed.Finish(ctx)

	var names []string
	for _, s := range exporter.GetSpans() {
		names = append(names, s.Name)
	}
	want := "scorer.counts.inspect,scorer.counts.inspect,scorer.counts.finish"
	if strings.Join(names, ",") != want {
		t.Fatalf("expected %s, got %v", want, names)
	}
	if len(c.Items()) != 2 || !c.Finished() {
		t.Fatal("inner inspector should receive every call")
	}
}

func TestWithTracing_PropagatesError(t *testing.T) {
	boom := stderrors.New("fail")
	traced := WithTracing(Func(func(context.Context, int) error { return boom }), "scorer", "bad")
	if err := traced.Inspect(context.Background(), 1); !stderrors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
}

func TestWithMetrics_Records(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()
	metrics, err := observability.NewMetrics(mp.Meter("inspector-test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := stderrors.New("odd")
	inner := Func(func(_ context.Context, x int) error {
		if x%2 == 1 {
			return boom
		}
		return nil
	})
	m := WithMetrics(inner, metrics, "evens")
	ctx := context.Background()
	_ = m.Inspect(ctx, 2)
	if err := m.Inspect(ctx, 3); !stderrors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
	_ = m.Finish(ctx)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[md.Name] += dp.Value
				}
			}
		}
	}
	if totals["inspector.items.total"] != 2 || totals["inspector.error.total"] != 1 || totals["inspector.finish.total"] != 1 {
		t.Fatalf("unexpected totals %v", totals)
	}
}

func TestWithLogging_WritesSummary(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	c := NewCollector[string]()
	logged := WithLogging[string](c, log, "labels")
	ctx := context.Background()
	_ = logged.Inspect(ctx, "PER")
	_ = logged.Finish(ctx)

	out := buf.String()
	if !strings.Contains(out, `"inspector":"labels"`) {
		t.Errorf("expected inspector field, got %s", out)
	}
	if !strings.Contains(out, "inspector finished") || !strings.Contains(out, `"items":1`) {
		t.Errorf("expected finish summary, got %s", out)
	}
	if len(c.Items()) != 1 || !c.Finished() {
		t.Fatal("inner inspector should receive every call")
	}
}

func TestWithLogging_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, "test", &buf)

	boom := stderrors.New("log-fail")
	logged := WithLogging(Func(func(context.Context, int) error { return boom }), log, "bad")
	if err := logged.Inspect(context.Background(), 1); !stderrors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if !strings.Contains(buf.String(), "log-fail") {
		t.Errorf("expected error to be logged, got %s", buf.String())
	}
}
