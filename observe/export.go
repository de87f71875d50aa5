package observe

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/kbukum/pushflow/errors"
	"github.com/kbukum/pushflow/logger"
)

const (
	defaultExportInterval = 15 * time.Second
	defaultSampleRate     = 1.0
)

// Hooks for tests.
var (
	buildTracerProvider = newTracerProvider
	buildMeterProvider  = newMeterProvider
)

// ExportConfig configures OTLP/HTTP export. An empty Endpoint disables it.
type ExportConfig struct {
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0). Unset means 1.0.
	SampleRate *float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	// ServiceVersion is reported on the resource.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
}

// Enabled reports whether an endpoint is configured.
func (c ExportConfig) Enabled() bool { return c.Endpoint != "" }

// ApplyDefaults applies default values to the export configuration.
func (c *ExportConfig) ApplyDefaults() {
	if c.Interval <= 0 {
		c.Interval = defaultExportInterval
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "dev"
	}
	if c.SampleRate == nil {
		rate := defaultSampleRate
		c.SampleRate = &rate
	}
}

// Shutdown flushes and stops the providers installed by Install.
type Shutdown func(context.Context) error

// Install sets the global tracer and meter providers to export through
// OTLP/HTTP for the signals cfg enables. Observers built by FromConfig
// pick them up. When export is disabled it installs nothing and returns a
// no-op Shutdown.
func Install(ctx context.Context, service, environment string, cfg Config, log *logger.Logger) (Shutdown, error) {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.Nop()
	}
	if !cfg.Export.Enabled() || (!cfg.Tracing && !cfg.Metrics) {
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(service, cfg.Export.ServiceVersion, environment)
	if err != nil {
		return nil, errors.InvalidConfig("cannot build telemetry resource").WithCause(err)
	}

	// Build everything before touching the globals.
	var (
		tp        *sdktrace.TracerProvider
		mp        *sdkmetric.MeterProvider
		shutdowns []Shutdown
	)
	if cfg.Tracing {
		if tp, err = buildTracerProvider(ctx, cfg.Export, res); err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, tp.Shutdown)
	}
	if cfg.Metrics {
		if mp, err = buildMeterProvider(ctx, cfg.Export, res); err != nil {
			if tp != nil {
				_ = tp.Shutdown(ctx)
			}
			return nil, err
		}
		shutdowns = append(shutdowns, mp.Shutdown)
	}

	if tp != nil {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}
	if mp != nil {
		otel.SetMeterProvider(mp)
	}

	log.Info("telemetry export installed", logger.Fields(
		"service", service,
		"endpoint", cfg.Export.Endpoint,
		"tracing", cfg.Tracing,
		"metrics", cfg.Metrics,
	))

	return func(ctx context.Context) error {
		var errs []error
		for _, s := range shutdowns {
			errs = append(errs, s(ctx))
		}
		return stderrors.Join(errs...)
	}, nil
}

func newTracerProvider(ctx context.Context, cfg ExportConfig, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("exporter", "trace")
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(sampleRate(cfg.SampleRate))),
	), nil
}

func newMeterProvider(ctx context.Context, cfg ExportConfig, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("exporter", "metric")
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval))),
		sdkmetric.WithResource(res),
	), nil
}

func sampleRate(rate *float64) float64 {
	if rate == nil {
		return defaultSampleRate
	}
	return *rate
}

// sampler maps a rate onto always, never or ratio-based sampling.
func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

func newResource(service, version, environment string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(service),
			semconv.ServiceVersion(version),
			attribute.String("environment", environment),
		),
	)
}
