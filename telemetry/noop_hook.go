package telemetry

import "context"

// NoopTelemetryHook discards the telemetry data. It is the hook used when no
// other hook is configured.
func NoopTelemetryHook(ctx context.Context, d *Data) {
	// noop
}
