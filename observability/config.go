package observability

import (
	"context"
	stderrors "errors"
	"time"
)

// Config is the telemetry section of a program's configuration.
type Config struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate *float64      `yaml:"sample_rate" mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// Rate returns the configured sample rate, or 1 when sample_rate is unset.
// An explicit 0 disables sampling.
func (c Config) Rate() float64 {
	if c.SampleRate == nil {
		return 1.0
	}
	return *c.SampleRate
}

// Init starts tracing and metrics export when cfg.Enabled is set. The
// returned shutdown function flushes both providers; it is never nil.
func Init(ctx context.Context, cfg Config, serviceName, serviceVersion, environment string) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	tc := DefaultTracerConfig(serviceName)
	tc.ServiceVersion = serviceVersion
	tc.Environment = environment
	tc.Endpoint = cfg.Endpoint
	tc.Insecure = cfg.Insecure
	tc.SampleRate = cfg.Rate()
	tp, err := InitTracer(ctx, tc)
	if err != nil {
		return nil, err
	}

	mc := DefaultMeterConfig(serviceName)
	mc.ServiceVersion = serviceVersion
	mc.Environment = environment
	mc.Endpoint = cfg.Endpoint
	mc.Insecure = cfg.Insecure
	mc.Interval = cfg.Interval
	mp, err := InitMeter(ctx, mc)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		return stderrors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
