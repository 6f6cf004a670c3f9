package metrics

import coremetrics "github.com/fleetdecolombia/FleetMantenimiento/core/metrics"

// MultiSink fans maintenance records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MaintenanceSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MaintenanceSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordClosure forwards the records to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordClosure(res []coremetrics.ClosureResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordClosure(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordAvailability forwards availability snapshots to sinks that support
// them.
func (m *MultiSink) RecordAvailability(vehicleID string, pct float64) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.AvailabilityRecorder); ok {
			if err := rec.RecordAvailability(vehicleID, pct); err != nil {
				return err
			}
		}
	}
	return nil
}
