// Package observability provides OpenTelemetry tracing and metrics for
// inspector trees.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("scorer"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "inspector.inspect")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("scorer"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("scorer"))
//	metrics.RecordInspect(ctx, "coref-counts", "ok", duration)
package observability
