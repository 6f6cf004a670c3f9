// Package metrics defines the observability contracts of the maintenance
// engine. Sinks receive closure records and availability snapshots; the
// engine itself never depends on a concrete backend.
package metrics

import (
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// ClosureResult represents one completed service order to be recorded.
type ClosureResult struct {
	OrderID        string
	VehicleID      string
	Type           model.OrderType
	DowntimeDays   int
	DowntimeCost   float64
	TotalCost      float64
	CompletionTime time.Time
}

// MaintenanceSink records order closures for observability purposes.
type MaintenanceSink interface {
	RecordClosure(results []ClosureResult) error
}

// AvailabilityRecorder is implemented by sinks that can track per-vehicle
// availability percentages.
type AvailabilityRecorder interface {
	RecordAvailability(vehicleID string, pct float64) error
}

// NopSink implements MaintenanceSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordClosure([]ClosureResult) error { return nil }
