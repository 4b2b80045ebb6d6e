package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/inspectree/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by instrumented inspectors.
type Metrics struct {
	itemsTotal      metric.Int64Counter
	inspectDuration metric.Float64Histogram
	finishTotal     metric.Int64Counter
	errorTotal      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	itemsTotal, err := meter.Int64Counter("inspector.items.total",
		metric.WithDescription("Total number of items delivered to inspectors"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inspector.items.total counter: %w", err)
	}

	inspectDuration, err := meter.Float64Histogram("inspector.inspect.duration",
		metric.WithDescription("Duration of a single inspect call in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inspector.inspect.duration histogram: %w", err)
	}

	finishTotal, err := meter.Int64Counter("inspector.finish.total",
		metric.WithDescription("Total number of finish signals delivered to inspectors"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inspector.finish.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("inspector.error.total",
		metric.WithDescription("Total inspector errors by operation and inspector"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inspector.error.total counter: %w", err)
	}

	return &Metrics{
		itemsTotal:      itemsTotal,
		inspectDuration: inspectDuration,
		finishTotal:     finishTotal,
		errorTotal:      errorTotal,
	}, nil
}

// RecordInspect records one inspect call.
func (m *Metrics) RecordInspect(ctx context.Context, inspector, status string, duration time.Duration) {
	m.itemsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrInspector, inspector),
		attribute.String(AttrStatus, status),
	))
	m.inspectDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrInspector, inspector),
	))
}

// RecordFinish records one finish signal.
func (m *Metrics) RecordFinish(ctx context.Context, inspector, status string) {
	m.finishTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrInspector, inspector),
		attribute.String(AttrStatus, status),
	))
}

// RecordError records an error by operation and inspector.
func (m *Metrics) RecordError(ctx context.Context, operation, inspector string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String(AttrInspector, inspector),
	))
}
