package model

import "time"

// OrderType distinguishes scheduled from unscheduled maintenance.
type OrderType string

const (
	// OrderPreventive is planned maintenance, usually instantiated from a routine.
	OrderPreventive OrderType = "Preventivo"
	// OrderCorrective is unplanned maintenance. Only corrective work
	// accrues downtime cost.
	OrderCorrective OrderType = "Correctivo"
)

func (t OrderType) String() string { return string(t) }

// OrderStatus is the lifecycle state of a service order.
type OrderStatus string

const (
	StatusOpen       OrderStatus = "Abierta"
	StatusInProgress OrderStatus = "En Progreso"
	StatusClosed     OrderStatus = "Cerrada"
)

func (s OrderStatus) String() string { return string(s) }

// ServiceOrder is a work request against a single vehicle. Status only moves
// forward; a closed order is frozen and never produces a second log.
type ServiceOrder struct {
	ID              string            `json:"id"`
	VehicleID       string            `json:"vehicleId"`
	CreationDate    time.Time         `json:"creationDate"`
	PlannedExitDate time.Time         `json:"plannedExitDate"`
	Type            OrderType         `json:"type"`
	Status          OrderStatus       `json:"status"`
	Description     string            `json:"description"`
	Parts           []MaintenancePart `json:"parts"`
	LaborHours      float64           `json:"laborHours"`
	LaborCost       float64           `json:"laborCost"`
}

// NewOrderFromRoutine builds a preventive order from a routine template.
// The routine's parts are deep-copied so later edits to either side stay
// independent.
func NewOrderFromRoutine(r MaintenanceRoutine, vehicleID string, creation, plannedExit time.Time) ServiceOrder {
	return ServiceOrder{
		VehicleID:       vehicleID,
		CreationDate:    creation,
		PlannedExitDate: plannedExit,
		Type:            OrderPreventive,
		Status:          StatusOpen,
		Description:     r.Name,
		Parts:           CloneParts(r.Parts),
		LaborHours:      r.LaborHours,
		LaborCost:       r.LaborCost,
	}
}
