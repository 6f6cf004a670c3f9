package model

// MaintenanceRoutine is a reusable preventive-maintenance template: interval,
// bill of materials and labor. Routines never accrue cost themselves; orders
// copy their data at creation time and keep no reference back.
type MaintenanceRoutine struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	FrequencyMileage int               `json:"frequencyMileage"`
	Parts            []MaintenancePart `json:"parts"`
	LaborHours       float64           `json:"laborHours"`
	LaborCost        float64           `json:"laborCost"`
}
