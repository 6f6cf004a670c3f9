// Package cost holds the pure maintenance-cost and availability formulas.
// Every function operates on passed-in data only; callers are responsible for
// validating inputs. Negative part costs or quantities propagate unchanged.
package cost

import (
	"math"
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// PartsCost sums cost*quantity over a parts list.
func PartsCost(parts []model.MaintenancePart) float64 {
	var total float64
	for _, p := range parts {
		total += p.Cost * float64(p.Quantity)
	}
	return total
}

// OrderTotal is the cost of an order's materials plus labor.
func OrderTotal(parts []model.MaintenancePart, laborCost float64) float64 {
	return PartsCost(parts) + laborCost
}

// DowntimeDays converts a maintenance interval into billable downtime days:
// the day count is rounded up and floored at one, even when completion
// precedes creation.
func DowntimeDays(creation, completion time.Time) int {
	days := int(math.Ceil(completion.Sub(creation).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// DowntimeCost charges the vehicle's daily operation cost per downtime day.
// Preventive work is planned and charges nothing.
func DowntimeCost(t model.OrderType, creation, completion time.Time, dailyOperationCost float64) float64 {
	if t != model.OrderCorrective {
		return 0
	}
	return float64(DowntimeDays(creation, completion)) * dailyOperationCost
}

// LogTotal is the full cost snapshot frozen into a maintenance log.
func LogTotal(parts []model.MaintenancePart, laborCost, downtimeCost float64) float64 {
	return PartsCost(parts) + laborCost + downtimeCost
}
