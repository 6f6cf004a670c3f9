package cost

import (
	"math"
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// Availability computes the OEE availability percentage for one vehicle's
// logs over the trailing window of days ending at now. A log counts when its
// creation date falls inside the window; its full duration is charged even if
// the work started near the window boundary. The result is floored at 0 but
// deliberately not capped at 100: summed durations can be negative when a log
// completes before it was created, and capping would hide that in the output.
func Availability(logs []model.MaintenanceLog, now time.Time, days int) float64 {
	since := now.AddDate(0, 0, -days)

	var totalDowntimeDays float64
	for _, lg := range logs {
		if lg.CreationDate.Before(since) {
			continue
		}
		totalDowntimeDays += lg.CompletionDate.Sub(lg.CreationDate).Hours() / 24
	}

	availability := (float64(days) - totalDowntimeDays) / float64(days) * 100
	return math.Max(0, availability)
}
