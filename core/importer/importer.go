// Package importer parses delimited text into entity batches for bulk
// insertion. Parsing is lenient by contract: the header row is always
// discarded, a bad row is dropped without aborting the batch, and numeric
// fields degrade to NaN (floats) or 0 (integers) instead of failing.
package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/logger"
	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

const delimiter = ","

// Importer parses the three bulk-import flavors. Diagnostics for dropped
// fields go through the logger; they never escalate to batch failures.
type Importer struct {
	log logger.Logger
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// New creates an Importer. A nil logger silences diagnostics.
func New(log logger.Logger) *Importer {
	if log == nil {
		log = nopLogger{}
	}
	return &Importer{log: log}
}

// ParseVehicles reads rows of name,make,model,year,mileage,dailyOperationCost.
// Rows missing the name are dropped; columns beyond the sixth are ignored.
// Imported vehicles start active.
func (imp *Importer) ParseVehicles(data string) []model.Vehicle {
	var out []model.Vehicle
	for _, line := range dataRows(data) {
		fields := strings.Split(line, delimiter)
		name := field(fields, 0)
		if name == "" {
			continue
		}
		out = append(out, model.Vehicle{
			Name:               name,
			Make:               field(fields, 1),
			Model:              field(fields, 2),
			Year:               atoiOrZero(field(fields, 3)),
			Mileage:            atoiOrZero(field(fields, 4)),
			DailyOperationCost: floatOrNaN(field(fields, 5)),
			IsActive:           true,
		})
	}
	return out
}

// ParseLogs reads rows of vehicleId,creationDate,completionDate,mileage,type,
// description,parts,laborCost. The parts column is deliberately ignored and
// imported as an empty list; derived costs are left for the store's bulk
// insert to compute. Rows missing the vehicle id or carrying unparseable
// dates are dropped.
func (imp *Importer) ParseLogs(data string) []model.MaintenanceLog {
	var out []model.MaintenanceLog
	for _, line := range dataRows(data) {
		fields := strings.Split(line, delimiter)
		vehicleID := field(fields, 0)
		if vehicleID == "" {
			continue
		}
		creation, err := parseDate(field(fields, 1))
		if err != nil {
			imp.log.Warnf("log import: bad creation date %q, row dropped", field(fields, 1))
			continue
		}
		completion, err := parseDate(field(fields, 2))
		if err != nil {
			imp.log.Warnf("log import: bad completion date %q, row dropped", field(fields, 2))
			continue
		}
		out = append(out, model.MaintenanceLog{
			VehicleID:      vehicleID,
			CreationDate:   creation,
			CompletionDate: completion,
			Mileage:        atoiOrZero(field(fields, 3)),
			Type:           model.OrderType(field(fields, 4)),
			Description:    field(fields, 5),
			Parts:          []model.MaintenancePart{},
			LaborCost:      floatOrNaN(field(fields, 7)),
		})
	}
	return out
}

// ParseRoutines reads rows of name,frequencyMileage,laborCost,parts. The
// trailing parts field is a quoted JSON array using doubled-quote escaping;
// it may itself contain the delimiter, so the remainder of the row is
// re-joined before decoding. Rows are dropped when the name is empty or the
// frequency or labor cost do not parse.
func (imp *Importer) ParseRoutines(data string) []model.MaintenanceRoutine {
	var out []model.MaintenanceRoutine
	for _, line := range dataRows(data) {
		fields := strings.Split(line, delimiter)
		if len(fields) < 3 {
			continue
		}
		name := field(fields, 0)
		frequency, errFreq := strconv.Atoi(strings.TrimSpace(field(fields, 1)))
		laborCost, errCost := strconv.ParseFloat(strings.TrimSpace(field(fields, 2)), 64)
		if name == "" || errFreq != nil || errCost != nil {
			continue
		}
		out = append(out, model.MaintenanceRoutine{
			Name:             name,
			FrequencyMileage: frequency,
			LaborCost:        laborCost,
			Parts:            imp.decodePartsField(strings.Join(fields[3:], delimiter)),
		})
	}
	return out
}

// dataRows splits the input into lines and discards the header row
// unconditionally.
func dataRows(data string) []string {
	lines := strings.Split(data, "\n")
	if len(lines) <= 1 {
		return nil
	}
	rows := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.TrimSuffix(line, "\r"))
	}
	return rows
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func floatOrNaN(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
