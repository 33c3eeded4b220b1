package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/HOKORISAMA/Triangle-Engine-Tools/telemetry"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config is a struct type that holds all config options
type Config struct {
	// continueOnError decides if the extraction should be continued even if an error occurred
	continueOnError bool

	// create destination directory if it does not exist
	createDestination bool

	// logger stream for open and extraction
	logger *slog.Logger

	// maxEntries is the maximum number of entries accepted in an archive
	// directory. Set value to -1 to disable the check.
	maxEntries int64

	// overwrite defines if files should be overwritten in the destination
	overwrite bool

	// telemetryHook is a function pointer to consume telemetry data after a
	// finished extraction
	telemetryHook telemetry.TelemetryHook
}

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style
func NewConfig(opts ...ConfigOption) *Config {
	const (
		continueOnError   = false
		createDestination = false
		maxEntries        = -1
		overwrite         = false
	)

	// disable logging by default
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	// setup default values
	config := &Config{
		continueOnError:   continueOnError,
		createDestination: createDestination,
		logger:            logger,
		maxEntries:        maxEntries,
		overwrite:         overwrite,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithContinueOnError options pattern function to continue on extraction error
func WithContinueOnError(yes bool) ConfigOption {
	return func(c *Config) {
		c.continueOnError = yes
	}
}

// WithCreateDestination options pattern function to create destination directory if it does not exist
func WithCreateDestination(create bool) ConfigOption {
	return func(c *Config) {
		c.createDestination = create
	}
}

// WithLogger options pattern function to set a custom logger
func WithLogger(logger *slog.Logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxEntries options pattern function to set maxEntries in the config (-1 to disable check)
func WithMaxEntries(maxEntries int64) ConfigOption {
	return func(c *Config) {
		c.maxEntries = maxEntries
	}
}

// WithOverwrite options pattern function to set overwrite in the config
func WithOverwrite(enable bool) ConfigOption {
	return func(c *Config) {
		c.overwrite = enable
	}
}

// WithTelemetryHook options pattern function to set a telemetry hook
func WithTelemetryHook(hook telemetry.TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// ContinueOnError returns true if the extraction should continue on error
func (c *Config) ContinueOnError() bool {
	return c.continueOnError
}

// CreateDestination returns true if the destination directory should be created if it does not exist
func (c *Config) CreateDestination() bool {
	return c.createDestination
}

// Logger returns the logger
func (c *Config) Logger() *slog.Logger {
	return c.logger
}

// MaxEntries returns the maximum number of entries accepted in an archive directory
func (c *Config) MaxEntries() int64 {
	return c.maxEntries
}

// Overwrite returns true if files should be overwritten in the destination
func (c *Config) Overwrite() bool {
	return c.overwrite
}

// TelemetryHook returns the telemetry hook or a noop hook if none is set
func (c *Config) TelemetryHook() telemetry.TelemetryHook {
	if c.telemetryHook == nil {
		return telemetry.NoopTelemetryHook
	}
	return c.telemetryHook
}

// CheckMaxEntries checks if counter exceeds the configured maxEntries
func (c *Config) CheckMaxEntries(counter int64) error {

	// check if disabled
	if c.MaxEntries() == -1 {
		return nil
	}

	// check value
	if counter > c.MaxEntries() {
		return fmt.Errorf("entry count %d exceeds configured maximum %d", counter, c.MaxEntries())
	}

	return nil
}
