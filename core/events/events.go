// Package events defines the domain events published on the internal bus.
package events

import "github.com/fleetdecolombia/FleetMantenimiento/core/model"

// OrderClosed is published when a service order transitions to Cerrada and
// its maintenance log is materialized.
type OrderClosed struct {
	Order        model.ServiceOrder
	Log          model.MaintenanceLog
	DowntimeDays int
}

// VehicleDeleted is published after a vehicle and its dependents are removed.
type VehicleDeleted struct {
	VehicleID     string
	OrdersRemoved int
	LogsRemoved   int
}

// BatchImported is published after a bulk insert completes.
type BatchImported struct {
	Kind     string
	Accepted int
	Dropped  int
}
