package config

import "fmt"

// SeedConfig points at optional CSV files imported on startup.
type SeedConfig struct {
	Vehicles string `json:"vehicles"`
	Logs     string `json:"logs"`
	Routines string `json:"routines"`
}

// FleetConfig holds engine-level settings.
type FleetConfig struct {
	// OEEWindowDays is the trailing window used for availability reporting.
	OEEWindowDays int        `json:"oee_window_days"`
	Seed          SeedConfig `json:"seed"`
}

// SetDefaults applies sane defaults.
func (c *FleetConfig) SetDefaults() {
	if c.OEEWindowDays == 0 {
		c.OEEWindowDays = 90
	}
}

// Validate checks mandatory fields.
func (c FleetConfig) Validate() error {
	if c.OEEWindowDays <= 0 {
		return fmt.Errorf("oee_window_days must be positive")
	}
	return nil
}
