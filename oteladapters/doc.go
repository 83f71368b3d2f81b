// Package oteladapters provides OpenTelemetry implementations of the observability interfaces
// of circulation, circulation/shell and eventstore/memengine.
//
// MetricsCollector maps the metric calls to OpenTelemetry instruments, and NewSlogBridgeLogger
// creates a logger which emits through the OpenTelemetry log bridge.
package oteladapters
