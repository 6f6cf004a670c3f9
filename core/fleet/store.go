// Package fleet implements the authoritative in-memory store for vehicles,
// maintenance routines, service orders and maintenance logs, together with
// the order lifecycle. All mutations run to completion under a single writer
// lock, so callers never observe partially applied cascades or closures.
package fleet

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdecolombia/FleetMantenimiento/core/cost"
	"github.com/fleetdecolombia/FleetMantenimiento/core/events"
	"github.com/fleetdecolombia/FleetMantenimiento/core/logger"
	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
	"github.com/fleetdecolombia/FleetMantenimiento/internal/eventbus"
)

// Store owns the four entity collections. Insertion order is preserved, as
// callers list entities in the order they were created or imported.
type Store struct {
	mu       sync.RWMutex
	vehicles []model.Vehicle
	routines []model.MaintenanceRoutine
	orders   []model.ServiceOrder
	logs     []model.MaintenanceLog

	bus   eventbus.EventBus
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// New creates an empty Store. Both the logger and the event bus may be nil;
// events are then simply not published.
func New(log logger.Logger, bus eventbus.EventBus) *Store {
	if log == nil {
		log = nopLogger{}
	}
	return &Store{
		bus:   bus,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Store) publish(e eventbus.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// --- vehicles ---

// AddVehicle assigns a fresh id, activates the vehicle and stores it. Plate
// uniqueness is not checked.
func (s *Store) AddVehicle(v model.Vehicle) model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.newID()
	v.IsActive = true
	s.vehicles = append(s.vehicles, v)
	return v
}

// Vehicle returns the vehicle with the given id.
func (s *Store) Vehicle(id string) (model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
}

// Vehicles lists all vehicles in insertion order.
func (s *Store) Vehicles() []model.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// UpdateVehicle replaces the vehicle matching the id.
func (s *Store) UpdateVehicle(v model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == v.ID {
			s.vehicles[i] = v
			return nil
		}
	}
	return fmt.Errorf("vehicle %s: %w", v.ID, ErrNotFound)
}

// DeleteVehicle removes the vehicle and cascades to its service orders and
// logs. The cascade is atomic: no reader sees the vehicle gone while its
// orders remain.
func (s *Store) DeleteVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deleteVehicleLocked(id) {
		return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	return nil
}

// BulkDeleteVehicles removes every listed vehicle with the same cascade and
// returns how many were found and deleted. Unknown ids are skipped.
func (s *Store) BulkDeleteVehicles(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, id := range ids {
		if s.deleteVehicleLocked(id) {
			removed++
		}
	}
	return removed
}

func (s *Store) deleteVehicleLocked(id string) bool {
	found := false
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	ordersRemoved := 0
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.VehicleID == id {
			ordersRemoved++
			continue
		}
		kept = append(kept, o)
	}
	s.orders = kept

	logsRemoved := 0
	keptLogs := s.logs[:0]
	for _, lg := range s.logs {
		if lg.VehicleID == id {
			logsRemoved++
			continue
		}
		keptLogs = append(keptLogs, lg)
	}
	s.logs = keptLogs

	s.log.Infof("vehicle %s deleted, cascade removed %d orders and %d logs", id, ordersRemoved, logsRemoved)
	s.publish(events.VehicleDeleted{VehicleID: id, OrdersRemoved: ordersRemoved, LogsRemoved: logsRemoved})
	return true
}

// ToggleVehicleStatus flips the active flag. Existing orders and logs are
// untouched.
func (s *Store) ToggleVehicleStatus(id string) (model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles[i].IsActive = !s.vehicles[i].IsActive
			return s.vehicles[i], nil
		}
	}
	return model.Vehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
}

// --- routines ---

// AddRoutine assigns a fresh id and stores the template.
func (s *Store) AddRoutine(r model.MaintenanceRoutine) model.MaintenanceRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.newID()
	r.Parts = model.CloneParts(r.Parts)
	s.routines = append(s.routines, r)
	return r
}

// Routine returns the routine with the given id.
func (s *Store) Routine(id string) (model.MaintenanceRoutine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.routines {
		if r.ID == id {
			r.Parts = model.CloneParts(r.Parts)
			return r, nil
		}
	}
	return model.MaintenanceRoutine{}, fmt.Errorf("routine %s: %w", id, ErrNotFound)
}

// Routines lists all routines in insertion order.
func (s *Store) Routines() []model.MaintenanceRoutine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MaintenanceRoutine, len(s.routines))
	for i, r := range s.routines {
		r.Parts = model.CloneParts(r.Parts)
		out[i] = r
	}
	return out
}

// UpdateRoutine replaces the routine matching the id. Orders created from the
// previous version keep their copied data.
func (s *Store) UpdateRoutine(r model.MaintenanceRoutine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.routines {
		if s.routines[i].ID == r.ID {
			r.Parts = model.CloneParts(r.Parts)
			s.routines[i] = r
			return nil
		}
	}
	return fmt.Errorf("routine %s: %w", r.ID, ErrNotFound)
}

// DeleteRoutine removes the template. No cascade: orders never reference
// routines by id.
func (s *Store) DeleteRoutine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.routines {
		if s.routines[i].ID == id {
			s.routines = append(s.routines[:i], s.routines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("routine %s: %w", id, ErrNotFound)
}

// --- service orders ---

// AddOrder stores a new order in Abierta for an existing vehicle.
func (s *Store) AddOrder(o model.ServiceOrder) (model.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.vehicleExistsLocked(o.VehicleID) {
		return model.ServiceOrder{}, fmt.Errorf("vehicle %s: %w", o.VehicleID, ErrNotFound)
	}
	o.ID = s.newID()
	o.Status = model.StatusOpen
	o.Parts = model.CloneParts(o.Parts)
	s.orders = append(s.orders, o)
	return o, nil
}

// AddOrderFromRoutine instantiates a preventive order from a routine
// template, copying its description, parts, labor hours and labor cost.
func (s *Store) AddOrderFromRoutine(routineID, vehicleID string, creation, plannedExit time.Time) (model.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.vehicleExistsLocked(vehicleID) {
		return model.ServiceOrder{}, fmt.Errorf("vehicle %s: %w", vehicleID, ErrNotFound)
	}
	for _, r := range s.routines {
		if r.ID == routineID {
			o := model.NewOrderFromRoutine(r, vehicleID, creation, plannedExit)
			o.ID = s.newID()
			s.orders = append(s.orders, o)
			return o, nil
		}
	}
	return model.ServiceOrder{}, fmt.Errorf("routine %s: %w", routineID, ErrNotFound)
}

// Order returns the order with the given id.
func (s *Store) Order(id string) (model.ServiceOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			o.Parts = model.CloneParts(o.Parts)
			return o, nil
		}
	}
	return model.ServiceOrder{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// Orders lists all service orders in insertion order.
func (s *Store) Orders() []model.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ServiceOrder, len(s.orders))
	for i, o := range s.orders {
		o.Parts = model.CloneParts(o.Parts)
		out[i] = o
	}
	return out
}

// OrdersForVehicle lists the vehicle's orders in insertion order.
func (s *Store) OrdersForVehicle(vehicleID string) []model.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.ServiceOrder
	for _, o := range s.orders {
		if o.VehicleID == vehicleID {
			o.Parts = model.CloneParts(o.Parts)
			out = append(out, o)
		}
	}
	return out
}

// --- logs ---

// Logs lists all maintenance logs in insertion order.
func (s *Store) Logs() []model.MaintenanceLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MaintenanceLog, len(s.logs))
	for i, lg := range s.logs {
		lg.Parts = model.CloneParts(lg.Parts)
		out[i] = lg
	}
	return out
}

// LogsForVehicle lists the vehicle's maintenance history.
func (s *Store) LogsForVehicle(vehicleID string) []model.MaintenanceLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.MaintenanceLog
	for _, lg := range s.logs {
		if lg.VehicleID == vehicleID {
			lg.Parts = model.CloneParts(lg.Parts)
			out = append(out, lg)
		}
	}
	return out
}

// Availability returns the OEE availability percentage of a vehicle over the
// trailing window of days. A vehicle with no logs in the window scores 100.
func (s *Store) Availability(vehicleID string, days int) float64 {
	logs := s.LogsForVehicle(vehicleID)
	return cost.Availability(logs, s.now(), days)
}

func (s *Store) vehicleExistsLocked(id string) bool {
	for _, v := range s.vehicles {
		if v.ID == id {
			return true
		}
	}
	return false
}
