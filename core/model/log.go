package model

import "time"

// MaintenanceLog is the immutable record produced when a service order closes
// or when history is bulk-imported. CreationDate, Type and Description are
// copied from the originating order; DowntimeCost and TotalCost are derived
// once at creation and never recomputed.
type MaintenanceLog struct {
	ID             string            `json:"id"`
	VehicleID      string            `json:"vehicleId"`
	ServiceOrderID string            `json:"serviceOrderId"`
	CreationDate   time.Time         `json:"creationDate"`
	CompletionDate time.Time         `json:"completionDate"`
	Mileage        int               `json:"mileage"`
	Type           OrderType         `json:"type"`
	Description    string            `json:"description"`
	Parts          []MaintenancePart `json:"parts"`
	LaborCost      float64           `json:"laborCost"`
	DowntimeCost   float64           `json:"downtimeCost"`
	TotalCost      float64           `json:"totalCost"`
}
