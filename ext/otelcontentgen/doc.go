// Package otelcontentgen decorates a contentgen.Model with OpenTelemetry tracing.
// Each remote call gets one client span; errors are recorded on the span and returned unchanged.
package otelcontentgen
