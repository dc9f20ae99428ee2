// Package observability provides OpenTelemetry tracing helpers for spykit.
//
// The package never installs providers or exporters: it only emits spans
// into whatever tracer provider the surrounding test process configured.
// A proxy with tracing enabled records one span per recorded call.
package observability
