package observe

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricRuns        = "pipeline.runs"
	MetricErrors      = "pipeline.errors"
	MetricRunDuration = "pipeline.run.duration"
	MetricValues      = "pipeline.values"
)

// Attribute keys.
const (
	AttrPipeline = "pipeline"
	AttrStage    = "stage"
	AttrStatus   = "status"
	AttrRunID    = "run.id"
)

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the pipeline instruments.
type Metrics struct {
	runs        metric.Int64Counter
	errors      metric.Int64Counter
	runDuration metric.Float64Histogram
	values      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runs, err := meter.Int64Counter(MetricRuns,
		metric.WithDescription("Total number of pipeline runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRuns, err)
	}

	errs, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Total number of failed pipeline runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	runDuration, err := meter.Float64Histogram(MetricRunDuration,
		metric.WithDescription("Duration of pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRunDuration, err)
	}

	values, err := meter.Int64Counter(MetricValues,
		metric.WithDescription("Values delivered per pipeline stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricValues, err)
	}

	return &Metrics{
		runs:        runs,
		errors:      errs,
		runDuration: runDuration,
		values:      values,
	}, nil
}

// RecordRun records a completed run.
func (m *Metrics) RecordRun(ctx context.Context, pipeline, status string, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrPipeline, pipeline),
		attribute.String(AttrStatus, status),
	)
	m.runs.Add(ctx, 1, attrs)
	if status == StatusError {
		m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrPipeline, pipeline)))
	}
	m.runDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordValue counts one value delivered by a stage.
func (m *Metrics) RecordValue(ctx context.Context, pipeline, stage string) {
	m.values.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPipeline, pipeline),
		attribute.String(AttrStage, stage),
	))
}
