package fleet

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// VehicleAvailability pairs a vehicle with its availability over the summary
// window.
type VehicleAvailability struct {
	VehicleID    string  `json:"vehicleId"`
	Name         string  `json:"name"`
	Availability float64 `json:"availability"`
}

// Summary aggregates the fleet view: active units, open work, historical
// spend and availability over a trailing window.
type Summary struct {
	WindowDays       int                   `json:"windowDays"`
	ActiveVehicles   int                   `json:"activeVehicles"`
	OpenOrders       int                   `json:"openOrders"`
	TotalCost        float64               `json:"totalCost"`
	MeanAvailability float64               `json:"meanAvailability"`
	Vehicles         []VehicleAvailability `json:"vehicles"`
}

// Summary computes fleet aggregates over the trailing window of days.
// Availability is reported per active vehicle; the mean is taken across
// those vehicles and is 0 for an empty fleet.
func (s *Store) Summary(days int) Summary {
	s.mu.RLock()
	vehicles := make([]model.Vehicle, len(s.vehicles))
	copy(vehicles, s.vehicles)
	var totalCost float64
	for _, lg := range s.logs {
		totalCost += lg.TotalCost
	}
	openOrders := 0
	for _, o := range s.orders {
		if o.Status != model.StatusClosed {
			openOrders++
		}
	}
	s.mu.RUnlock()

	out := Summary{WindowDays: days, OpenOrders: openOrders, TotalCost: totalCost}
	var values []float64
	for _, v := range vehicles {
		if !v.IsActive {
			continue
		}
		out.ActiveVehicles++
		a := s.Availability(v.ID, days)
		values = append(values, a)
		out.Vehicles = append(out.Vehicles, VehicleAvailability{VehicleID: v.ID, Name: v.Name, Availability: a})
	}
	if len(values) > 0 {
		out.MeanAvailability = stat.Mean(values, nil)
	}
	return out
}
