package importer

import (
	"encoding/json"
	"strings"

	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

// partPayload is the wire shape of one entry in the routine parts sub-field.
type partPayload struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// decodePartsField unwraps the quoted JSON parts list of a routine row. The
// field uses CSV quote escaping: one pair of outer quotes, and every literal
// quote inside doubled. A decode failure is logged and yields an empty list
// so the row still imports. Quantity is not part of the wire format and
// defaults to 1.
func (imp *Importer) decodePartsField(raw string) []model.MaintenancePart {
	if raw == "" {
		return []model.MaintenancePart{}
	}
	cleaned := strings.TrimPrefix(raw, `"`)
	cleaned = strings.TrimSuffix(cleaned, `"`)
	cleaned = strings.ReplaceAll(cleaned, `""`, `"`)

	var payload []partPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		imp.log.Warnf("routine import: could not decode parts field %q: %v", raw, err)
		return []model.MaintenancePart{}
	}
	parts := make([]model.MaintenancePart, len(payload))
	for i, p := range payload {
		parts[i] = model.MaintenancePart{Name: p.Name, Cost: p.Cost, Quantity: 1}
	}
	return parts
}
