package telemetry

import (
	"context"
	"encoding/json"
	"time"
)

// Data is a struct type that holds all telemetry data of an extraction
type Data struct {
	// ArchiveEntries is the number of entries in the opened archive directory
	ArchiveEntries int64

	// ExtractedEntries is the number of extracted entries
	ExtractedEntries int64

	// ExtractionDuration is the time it took to extract
	ExtractionDuration time.Duration

	// ExtractionErrors is the number of errors during extraction
	ExtractionErrors int64

	// ExtractionSize is the size of the extracted files
	ExtractionSize int64

	// LastExtractionError is the last error during extraction
	LastExtractionError error
}

// String returns a string representation of [Data].
func (d Data) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (d Data) MarshalJSON() ([]byte, error) {
	var lastError string
	if d.LastExtractionError != nil {
		lastError = d.LastExtractionError.Error()
	}

	type Alias Data
	return json.Marshal(&struct {
		LastExtractionError string `json:"LastExtractionError"`
		*Alias
	}{
		LastExtractionError: lastError,
		Alias:               (*Alias)(&d),
	})
}

// TelemetryHook is a function type that performs operations on [Data] after
// an extraction has finished which can be used to submit the [Data] to a
// telemetry service, for example.
type TelemetryHook func(context.Context, *Data)
