// Package cgf reads CGF archives, the asset container format of the Triangle
// game engine, and extracts individual entries to a destination.
//
// An archive is opened with [Open], which sniffs the index layout, decodes the
// full entry directory and validates it. Entries are then extracted with
// [Archive.Extract], which can write to the underlying OS, in-memory, or a
// custom filesystem target.
//
// Configuration is done using the [config.Config], which can be used to set
// the logger, the telemetry hook and the destination handling. Telemetry data
// is captured during extraction using the telemetry package.
package cgf
