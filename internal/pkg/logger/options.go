package logger

// Option mutates a Config before construction.
type Option func(*Config)

// WithLevel sets the log level.
func WithLevel(level string) Option {
	return func(c *Config) { c.Level = level }
}

// WithFormat sets the encoding, json or console.
func WithFormat(format string) Option {
	return func(c *Config) { c.Format = format }
}

// WithOutput sets the destination, console, file or both.
func WithOutput(output string) Option {
	return func(c *Config) { c.Output = output }
}

// WithFilename sets the log file path.
func WithFilename(filename string) Option {
	return func(c *Config) { c.File.Filename = filename }
}

// WithCaller toggles caller annotation.
func WithCaller(enabled bool) Option {
	return func(c *Config) { c.EnableCaller = enabled }
}

// WithStacktrace toggles stacktraces on error-level entries.
func WithStacktrace(enabled bool) Option {
	return func(c *Config) { c.EnableStacktrace = enabled }
}

// NewWithOptions builds a logger from DefaultConfig plus the given options.
func NewWithOptions(opts ...Option) (*Logger, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return New(cfg)
}
