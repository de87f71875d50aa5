package config

import (
	"context"
	"slices"

	"github.com/kbukum/pushflow/errors"
	"github.com/kbukum/pushflow/logger"
	"github.com/kbukum/pushflow/observe"
	"github.com/kbukum/pushflow/validation"
)

// Environments accepted by Validate.
var environments = []string{"development", "staging", "production"}

// Config is the top-level configuration of a pushflow program.
type Config struct {
	Name        string         `yaml:"name" mapstructure:"name" validate:"required,identifier"`
	Environment string         `yaml:"environment" mapstructure:"environment"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Observe     observe.Config `yaml:"observe" mapstructure:"observe"`
}

// ApplyDefaults fills unset fields. Development turns on debug logging.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Logging.Level == "" && c.Environment == "development" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Observe.ApplyDefaults()
}

// Validate checks the configuration. It reports the first failing section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if !slices.Contains(environments, c.Environment) {
		return errors.InvalidConfig("environment must be one of development, staging, production").
			WithDetail("environment", c.Environment)
	}
	return c.Logging.Validate()
}

// NewLogger builds a logger from the logging section and registers it
// under the configured name.
func (c *Config) NewLogger() *logger.Logger {
	l := logger.New(&c.Logging, c.Name)
	logger.Register(c.Name, l)
	return l
}

// NewObserver builds an Observer for the named pipeline from the observe
// section, logging through the configured logger.
func (c *Config) NewObserver(pipeline string) (*observe.Observer, error) {
	return observe.FromConfig(pipeline, c.Observe, logger.Get(c.Name))
}

// InstallTelemetry installs OTLP export for the observe section. Call the
// returned Shutdown before exit.
func (c *Config) InstallTelemetry(ctx context.Context) (observe.Shutdown, error) {
	return observe.Install(ctx, c.Name, c.Environment, c.Observe, logger.Get(c.Name))
}
