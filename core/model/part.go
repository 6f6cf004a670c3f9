package model

// MaintenancePart is a consumable used by a routine, order or log. Parts are
// value data owned by exactly one parent; they are never shared across
// entities.
type MaintenancePart struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

// CloneParts returns an independent copy of a parts list. Every boundary where
// a list crosses from a template into an instance must copy.
func CloneParts(parts []MaintenancePart) []MaintenancePart {
	if parts == nil {
		return nil
	}
	out := make([]MaintenancePart, len(parts))
	copy(out, parts)
	return out
}
