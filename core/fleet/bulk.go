package fleet

import (
	"github.com/fleetdecolombia/FleetMantenimiento/core/cost"
	"github.com/fleetdecolombia/FleetMantenimiento/core/events"
	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// BulkAddVehicles inserts a pre-validated vehicle batch, assigning a fresh id
// to each record. Records are independent; there is no rollback.
func (s *Store) BulkAddVehicles(batch []model.Vehicle) []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Vehicle, 0, len(batch))
	for _, v := range batch {
		v.ID = s.newID()
		s.vehicles = append(s.vehicles, v)
		out = append(out, v)
	}
	s.publish(events.BatchImported{Kind: "vehicles", Accepted: len(out)})
	return out
}

// BulkAddRoutines inserts a routine batch with fresh ids.
func (s *Store) BulkAddRoutines(batch []model.MaintenanceRoutine) []model.MaintenanceRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.MaintenanceRoutine, 0, len(batch))
	for _, r := range batch {
		r.ID = s.newID()
		r.Parts = model.CloneParts(r.Parts)
		s.routines = append(s.routines, r)
		out = append(out, r)
	}
	s.publish(events.BatchImported{Kind: "routines", Accepted: len(out)})
	return out
}

// BulkAddLogs inserts imported history records. The parser leaves derived
// costs empty, so each record is equipped here with downtime and total cost
// from its own vehicle, dates and type. Records referencing an unknown
// vehicle are dropped; the rest of the batch still imports.
func (s *Store) BulkAddLogs(batch []model.MaintenanceLog) []model.MaintenanceLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.MaintenanceLog, 0, len(batch))
	dropped := 0
	for _, lg := range batch {
		var vehicle *model.Vehicle
		for i := range s.vehicles {
			if s.vehicles[i].ID == lg.VehicleID {
				vehicle = &s.vehicles[i]
				break
			}
		}
		if vehicle == nil {
			dropped++
			s.log.Warnf("log import: unknown vehicle %s, record dropped", lg.VehicleID)
			continue
		}
		lg.ID = s.newID()
		lg.Parts = model.CloneParts(lg.Parts)
		lg.DowntimeCost = cost.DowntimeCost(lg.Type, lg.CreationDate, lg.CompletionDate, vehicle.DailyOperationCost)
		lg.TotalCost = cost.LogTotal(lg.Parts, lg.LaborCost, lg.DowntimeCost)
		s.logs = append(s.logs, lg)
		out = append(out, lg)
	}
	s.publish(events.BatchImported{Kind: "logs", Accepted: len(out), Dropped: dropped})
	return out
}
