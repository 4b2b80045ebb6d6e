package inspector

import (
	"context"
	"time"

	"github.com/kbukum/inspectree/logger"
	"github.com/kbukum/inspectree/observability"
)

// WithTracing wraps an Inspector with OpenTelemetry span creation. Each
// call creates a span named "{prefix}.{name}.inspect" or
// "{prefix}.{name}.finish"; the span context is passed to the inner
// inspector.
func WithTracing[T any](insp Inspector[T], prefix, name string) Inspector[T] {
	return &tracingInspector[T]{inner: insp, base: prefix + "." + name, name: name}
}

type tracingInspector[T any] struct {
	inner Inspector[T]
	base  string
	name  string
}

func (t *tracingInspector[T]) Inspect(ctx context.Context, item T) error {
	ctx, span := observability.StartSpan(ctx, t.base+"."+observability.SpanInspect)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrInspector, t.name)

	err := t.inner.Inspect(ctx, item)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}

func (t *tracingInspector[T]) Finish(ctx context.Context) error {
	ctx, span := observability.StartSpan(ctx, t.base+"."+observability.SpanFinish)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrInspector, t.name)

	err := t.inner.Finish(ctx)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}

// WithMetrics wraps an Inspector with metric recording: item count, inspect
// duration, finish count and errors, all labelled with name.
func WithMetrics[T any](insp Inspector[T], metrics *observability.Metrics, name string) Inspector[T] {
	return &metricsInspector[T]{inner: insp, metrics: metrics, name: name}
}

type metricsInspector[T any] struct {
	inner   Inspector[T]
	metrics *observability.Metrics
	name    string
}

func (m *metricsInspector[T]) Inspect(ctx context.Context, item T) error {
	start := time.Now()
	err := m.inner.Inspect(ctx, item)

	status := "ok"
	if err != nil {
		status = "error"
		m.metrics.RecordError(ctx, observability.SpanInspect, m.name)
	}
	m.metrics.RecordInspect(ctx, m.name, status, time.Since(start))
	return err
}

func (m *metricsInspector[T]) Finish(ctx context.Context) error {
	err := m.inner.Finish(ctx)

	status := "ok"
	if err != nil {
		status = "error"
		m.metrics.RecordError(ctx, observability.SpanFinish, m.name)
	}
	m.metrics.RecordFinish(ctx, m.name, status)
	return err
}

// WithLogging wraps an Inspector with logging: each item at debug level,
// failures at error level, and a summary with the item count on finish.
func WithLogging[T any](insp Inspector[T], log *logger.Logger, name string) Inspector[T] {
	return &loggingInspector[T]{inner: insp, log: log.WithFields(logger.Fields(logger.FieldInspector, name))}
}

type loggingInspector[T any] struct {
	inner Inspector[T]
	log   *logger.Logger
	items int
	start time.Time
}

func (l *loggingInspector[T]) Inspect(ctx context.Context, item T) error {
	if l.items == 0 {
		l.start = time.Now()
	}
	l.items++

	err := l.inner.Inspect(ctx, item)
	if err != nil {
		l.log.WithContext(ctx).Error("inspector failed", logger.Fields(
			logger.FieldOperation, observability.SpanInspect,
			logger.FieldItems, l.items,
			logger.FieldError, err.Error(),
		))
		return err
	}
	l.log.WithContext(ctx).Debug("item inspected", logger.Fields("item", item))
	return nil
}

func (l *loggingInspector[T]) Finish(ctx context.Context) error {
	err := l.inner.Finish(ctx)
	fields := logger.Fields(logger.FieldItems, l.items)
	if !l.start.IsZero() {
		fields[logger.FieldDuration] = time.Since(l.start).Milliseconds()
	}
	if err != nil {
		fields[logger.FieldOperation] = observability.SpanFinish
		fields[logger.FieldError] = err.Error()
		l.log.WithContext(ctx).Error("inspector failed", fields)
		return err
	}
	l.log.WithContext(ctx).Info("inspector finished", fields)
	return nil
}
