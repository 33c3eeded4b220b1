package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/HOKORISAMA/Triangle-Engine-Tools/telemetry"
)

// TestCheckMaxEntries implements test cases
func TestCheckMaxEntries(t *testing.T) {
	// prepare test cases
	cases := []struct {
		name        string
		input       int64
		config      *Config
		expectError bool
	}{
		{
			name:        "less entries then maximum",
			input:       5,                             // within limit
			config:      NewConfig(WithMaxEntries(10)), // 10
			expectError: false,
		},
		{
			name:        "more entries then maximum",
			input:       15,                            // over limit
			config:      NewConfig(WithMaxEntries(10)), // 10
			expectError: true,
		},
		{
			name:        "disabled entry check",
			input:       5000,                          // ignored
			config:      NewConfig(WithMaxEntries(-1)), // disable
			expectError: false,
		},
		{
			name:        "default config has no cap",
			input:       90000,
			config:      NewConfig(),
			expectError: false,
		},
	}

	// run cases
	for i, tc := range cases {
		t.Run(fmt.Sprintf("tc %d", i), func(t *testing.T) {
			want := tc.expectError
			got := tc.config.CheckMaxEntries(tc.input) != nil
			if got != want {
				t.Errorf("test case %d failed: %s", i, tc.name)
			}
		})
	}
}

// TestConfigDefaults checks the default configuration values
func TestConfigDefaults(t *testing.T) {
	c := NewConfig()

	if c.ContinueOnError() {
		t.Error("continue on error should be disabled by default")
	}
	if c.CreateDestination() {
		t.Error("create destination should be disabled by default")
	}
	if c.Overwrite() {
		t.Error("overwrite should be disabled by default")
	}
	if c.MaxEntries() != -1 {
		t.Errorf("expected disabled entry cap, got %d", c.MaxEntries())
	}
	if c.Logger() == nil {
		t.Error("expected a default logger")
	}
	if c.TelemetryHook() == nil {
		t.Error("expected a noop telemetry hook")
	}
}

// TestConfigOptions checks that options adjust the configuration
func TestConfigOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	hooked := false
	hook := func(ctx context.Context, td *telemetry.Data) {
		hooked = true
	}

	c := NewConfig(
		WithContinueOnError(true),
		WithCreateDestination(true),
		WithLogger(logger),
		WithMaxEntries(42),
		WithOverwrite(true),
		WithTelemetryHook(hook),
	)

	if !c.ContinueOnError() {
		t.Error("continue on error not set")
	}
	if !c.CreateDestination() {
		t.Error("create destination not set")
	}
	if c.Logger() != logger {
		t.Error("logger not set")
	}
	if c.MaxEntries() != 42 {
		t.Error("max entries not set")
	}
	if !c.Overwrite() {
		t.Error("overwrite not set")
	}
	c.TelemetryHook()(context.Background(), nil)
	if !hooked {
		t.Error("telemetry hook not set")
	}
}
