package observe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/pushflow/logger"
	"github.com/kbukum/pushflow/pipeline"
)

// SpanRun names the span around one pipeline run.
const SpanRun = "pipeline.run"

// Observer traces, measures and logs the runs of one named pipeline.
type Observer struct {
	name      string
	log       *logger.Logger
	tracer    trace.Tracer
	metrics   *Metrics
	logValues bool
	newRunID  func() string
}

// Option configures an Observer.
type Option func(*options)

type options struct {
	log        *logger.Logger
	tracerName string
	tp         trace.TracerProvider
	mp         metric.MeterProvider
	logValues  bool
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracerProvider sets the tracer provider. The default is a no-op.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tp = tp }
}

// WithMeterProvider sets the meter provider. The default is a no-op.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.mp = mp }
}

// WithTracerName names the tracer and meter.
func WithTracerName(name string) Option {
	return func(o *options) { o.tracerName = name }
}

// WithValueLogging logs every value passing a stage wrapper at debug level.
func WithValueLogging(enabled bool) Option {
	return func(o *options) { o.logValues = enabled }
}

// New creates an Observer for the pipeline called name.
func New(name string, opts ...Option) (*Observer, error) {
	o := options{tracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.tp == nil {
		o.tp = tracenoop.NewTracerProvider()
	}
	if o.mp == nil {
		o.mp = metricnoop.NewMeterProvider()
	}

	m, err := NewMetrics(o.mp.Meter(o.tracerName))
	if err != nil {
		return nil, err
	}
	return &Observer{
		name:      name,
		log:       o.log.WithPipeline(name),
		tracer:    o.tp.Tracer(o.tracerName),
		metrics:   m,
		logValues: o.logValues,
		newRunID:  uuid.NewString,
	}, nil
}

// FromConfig creates an Observer using the global OpenTelemetry providers
// for the signals cfg enables.
func FromConfig(name string, cfg Config, log *logger.Logger) (*Observer, error) {
	cfg.ApplyDefaults()
	opts := []Option{
		WithLogger(log),
		WithTracerName(cfg.TracerName),
		WithValueLogging(cfg.LogValues),
	}
	if cfg.Tracing {
		opts = append(opts, WithTracerProvider(otel.GetTracerProvider()))
	}
	if cfg.Metrics {
		opts = append(opts, WithMeterProvider(otel.GetMeterProvider()))
	}
	return New(name, opts...)
}

// Name returns the pipeline name.
func (o *Observer) Name() string { return o.name }

// Run runs effect once inside a span and records the outcome. The effect's
// error is returned unchanged.
func (o *Observer) Run(ctx context.Context, effect pipeline.Effect) error {
	runID := o.newRunID()
	ctx, span := o.tracer.Start(ctx, SpanRun, trace.WithAttributes(
		attribute.String(AttrPipeline, o.name),
		attribute.String(AttrRunID, runID),
	))
	defer span.End()

	log := o.log.WithFields(runFields(runID, span.SpanContext()))
	log.Info("pipeline run started")

	start := time.Now()
	err := effect.Run()
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.metrics.RecordRun(ctx, o.name, StatusError, elapsed)
		log.WithError(err).Error("pipeline run failed", logger.WithDuration(nil, elapsed))
		return err
	}

	span.SetStatus(codes.Ok, "")
	o.metrics.RecordRun(ctx, o.name, StatusOK, elapsed)
	log.Info("pipeline run completed", logger.WithDuration(nil, elapsed))
	return nil
}

func runFields(runID string, sc trace.SpanContext) map[string]any {
	fields := logger.Fields(logger.FieldRunID, runID)
	if sc.IsValid() {
		fields[logger.FieldTraceID] = sc.TraceID().String()
		fields[logger.FieldSpanID] = sc.SpanID().String()
	}
	return fields
}
