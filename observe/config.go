package observe

const defaultTracerName = "github.com/kbukum/pushflow/observe"

// Config selects which signals an Observer built by FromConfig emits.
type Config struct {
	// Tracing enables spans through the global tracer provider.
	Tracing bool `yaml:"tracing" mapstructure:"tracing"`
	// Metrics enables instruments through the global meter provider.
	Metrics bool `yaml:"metrics" mapstructure:"metrics"`
	// LogValues logs every value passing a stage wrapper at debug level.
	LogValues bool `yaml:"log_values" mapstructure:"log_values"`
	// TracerName names the tracer and meter.
	TracerName string `yaml:"tracer_name" mapstructure:"tracer_name"`
	// Export configures OTLP export for Install.
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.TracerName == "" {
		c.TracerName = defaultTracerName
	}
	c.Export.ApplyDefaults()
}
