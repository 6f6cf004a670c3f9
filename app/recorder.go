package app

import (
	"context"

	"github.com/fleetdecolombia/FleetMantenimiento/core/events"
	coremetrics "github.com/fleetdecolombia/FleetMantenimiento/core/metrics"
)

// recordEvents consumes domain events from the bus and forwards them to the
// configured metric sink until the context is cancelled.
func (s *Service) recordEvents(ctx context.Context) {
	sub := s.bus.Subscribe()
	defer s.bus.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case events.OrderClosed:
				res := coremetrics.ClosureResult{
					OrderID:        e.Order.ID,
					VehicleID:      e.Order.VehicleID,
					Type:           e.Order.Type,
					DowntimeDays:   e.DowntimeDays,
					DowntimeCost:   e.Log.DowntimeCost,
					TotalCost:      e.Log.TotalCost,
					CompletionTime: e.Log.CompletionDate,
				}
				if err := s.sink.RecordClosure([]coremetrics.ClosureResult{res}); err != nil {
					s.log.Errorf("record closure: %v", err)
				}
				if rec, ok := s.sink.(coremetrics.AvailabilityRecorder); ok {
					pct := s.Store.Availability(e.Order.VehicleID, s.cfg.Fleet.OEEWindowDays)
					if err := rec.RecordAvailability(e.Order.VehicleID, pct); err != nil {
						s.log.Errorf("record availability: %v", err)
					}
				}
			case events.BatchImported:
				s.log.Debugw("batch imported", map[string]any{"kind": e.Kind, "accepted": e.Accepted, "dropped": e.Dropped})
			}
		}
	}
}
