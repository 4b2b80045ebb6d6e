package main

import (
	"fmt"
	"strings"

	"github.com/kbukum/inspectree/config"
	"github.com/kbukum/inspectree/observability"
	"github.com/kbukum/inspectree/validation"
)

// ReportConfig controls how scores are printed.
type ReportConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=text json"`
	// Lowercase adds a second score computed on lower-cased labels.
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
}

// AppConfig is the configuration of the inspectree command.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Input       string               `yaml:"input" mapstructure:"input" validate:"required"`
	LabelFilter []string             `yaml:"label_filter" mapstructure:"label_filter"`
	Report      ReportConfig         `yaml:"report" mapstructure:"report"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills unset fields.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Report.Format == "" {
		c.Report.Format = "text"
	}
	c.Report.Format = strings.ToLower(c.Report.Format)
	c.Telemetry.ApplyDefaults()
}

// Validate checks the service section and then the struct tags.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(path, input, format string) (*AppConfig, error) {
	// Defaults make the keys visible to environment overrides.
	opts := []config.LoaderOption{
		config.WithDefault("input", ""),
		config.WithDefault("report.format", "text"),
	}
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg := &AppConfig{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if input != "" {
		cfg.Input = input
	}
	if format != "" {
		cfg.Report.Format = format
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}
