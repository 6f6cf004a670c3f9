package fleet

import (
	"fmt"
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/cost"
	"github.com/fleetdecolombia/FleetMantenimiento/core/events"
	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// Closure carries the data recorded when a service order is completed.
type Closure struct {
	CompletionDate time.Time
	Mileage        int
	LaborCost      float64
	Parts          []model.MaintenancePart
}

// Advance moves an order one step forward on the lifecycle path. The only
// transition accepted here is Abierta to En Progreso; reaching Cerrada goes
// through Close so that the maintenance log is always materialized.
func (s *Store) Advance(orderID string, next model.OrderStatus) (model.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndexLocked(orderID)
	if idx < 0 {
		return model.ServiceOrder{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	o := &s.orders[idx]

	if o.Status == model.StatusClosed {
		return model.ServiceOrder{}, fmt.Errorf("order %s: %w", orderID, ErrOrderClosed)
	}
	if o.Status != model.StatusOpen || next != model.StatusInProgress {
		return model.ServiceOrder{}, fmt.Errorf("order %s: %s -> %s: %w", orderID, o.Status, next, ErrInvalidTransition)
	}

	o.Status = next
	s.log.Infof("order %s advanced to %s", orderID, next)
	out := *o
	out.Parts = model.CloneParts(out.Parts)
	return out, nil
}

// Close completes an order: it freezes one maintenance log with the derived
// downtime and total costs, marks the order Cerrada and records the closure
// mileage on the vehicle. The three mutations happen under one lock, so the
// caller never observes a partial closure. Closing an already closed order
// fails and produces no second log.
func (s *Store) Close(orderID string, c Closure) (model.MaintenanceLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndexLocked(orderID)
	if idx < 0 {
		return model.MaintenanceLog{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	o := &s.orders[idx]
	if o.Status == model.StatusClosed {
		return model.MaintenanceLog{}, fmt.Errorf("order %s: %w", orderID, ErrOrderClosed)
	}

	vi := -1
	for i := range s.vehicles {
		if s.vehicles[i].ID == o.VehicleID {
			vi = i
			break
		}
	}
	if vi < 0 {
		return model.MaintenanceLog{}, fmt.Errorf("vehicle %s: %w", o.VehicleID, ErrNotFound)
	}
	vehicle := &s.vehicles[vi]

	downtimeDays := cost.DowntimeDays(o.CreationDate, c.CompletionDate)
	downtimeCost := cost.DowntimeCost(o.Type, o.CreationDate, c.CompletionDate, vehicle.DailyOperationCost)
	lg := model.MaintenanceLog{
		ID:             s.newID(),
		VehicleID:      o.VehicleID,
		ServiceOrderID: o.ID,
		CreationDate:   o.CreationDate,
		CompletionDate: c.CompletionDate,
		Mileage:        c.Mileage,
		Type:           o.Type,
		Description:    o.Description,
		Parts:          model.CloneParts(c.Parts),
		LaborCost:      c.LaborCost,
		DowntimeCost:   downtimeCost,
		TotalCost:      cost.LogTotal(c.Parts, c.LaborCost, downtimeCost),
	}

	s.logs = append(s.logs, lg)
	o.Status = model.StatusClosed
	// Closure mileage may be lower than the current reading; it is recorded
	// as reported.
	vehicle.Mileage = c.Mileage

	s.log.Infof("order %s closed for vehicle %s, total cost %.2f", o.ID, o.VehicleID, lg.TotalCost)
	s.publish(events.OrderClosed{Order: *o, Log: lg, DowntimeDays: downtimeDays})

	out := lg
	out.Parts = model.CloneParts(out.Parts)
	return out, nil
}

func (s *Store) orderIndexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
