// Package fleet exposes read-only HTTP handlers over the maintenance engine.
// The engine itself stays transport-agnostic; these handlers are one optional
// caller among others.
package fleet

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	corefleet "github.com/fleetdecolombia/FleetMantenimiento/core/fleet"
)

// NewAvailabilityHandler exposes per-vehicle availability via
// GET /api/fleet/vehicles/{id}/availability?days=N.
func NewAvailabilityHandler(store *corefleet.Store, defaultDays int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		path := strings.TrimPrefix(r.URL.Path, "/api/fleet/vehicles/")
		parts := strings.Split(path, "/")
		if len(parts) < 2 || parts[1] != "availability" {
			http.NotFound(w, r)
			return
		}
		id := parts[0]
		if _, err := store.Vehicle(id); err != nil {
			http.NotFound(w, r)
			return
		}
		days := defaultDays
		if q := r.URL.Query().Get("days"); q != "" {
			if n, err := strconv.Atoi(q); err == nil && n > 0 {
				days = n
			}
		}
		out := struct {
			VehicleID    string  `json:"vehicleId"`
			WindowDays   int     `json:"windowDays"`
			Availability float64 `json:"availability"`
		}{
			VehicleID:    id,
			WindowDays:   days,
			Availability: store.Availability(id, days),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewSummaryHandler exposes fleet aggregates via GET /api/fleet/summary?days=N.
func NewSummaryHandler(store *corefleet.Store, defaultDays int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		days := defaultDays
		if q := r.URL.Query().Get("days"); q != "" {
			if n, err := strconv.Atoi(q); err == nil && n > 0 {
				days = n
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(store.Summary(days)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
