package fleet

import (
	"errors"
	"testing"
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
)

func testStore() *Store {
	return New(nil, nil)
}

func addVehicle(s *Store, name string, dailyCost float64) model.Vehicle {
	return s.AddVehicle(model.Vehicle{
		Name:               name,
		Make:               "Freightliner",
		Model:              "Cascadia",
		Year:               2021,
		Mileage:            150000,
		DailyOperationCost: dailyCost,
	})
}

func TestAddVehicleAssignsIDAndActivates(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	if v.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if !v.IsActive {
		t.Fatal("new vehicles must start active")
	}
	got, err := s.Vehicle(v.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Name != "TRK-001" {
		t.Fatalf("unexpected vehicle %+v", got)
	}
}

func TestUpdateVehicleUnknownID(t *testing.T) {
	s := testStore()
	err := s.UpdateVehicle(model.Vehicle{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteVehicleCascades(t *testing.T) {
	s := testStore()
	v1 := addVehicle(s, "TRK-001", 300)
	v2 := addVehicle(s, "TRK-002", 320)

	creation := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o1, err := s.AddOrder(model.ServiceOrder{VehicleID: v1.ID, CreationDate: creation, Type: model.OrderCorrective, Description: "inyección"})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	if _, err := s.AddOrder(model.ServiceOrder{VehicleID: v2.ID, CreationDate: creation, Type: model.OrderPreventive, Description: "frenos"}); err != nil {
		t.Fatalf("add order: %v", err)
	}
	if _, err := s.Close(o1.ID, Closure{CompletionDate: creation.AddDate(0, 0, 2), Mileage: 151000}); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := s.DeleteVehicle(v1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.Vehicle(v1.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("vehicle should be gone")
	}
	if got := len(s.OrdersForVehicle(v1.ID)); got != 0 {
		t.Fatalf("orders for deleted vehicle remain: %d", got)
	}
	if got := len(s.LogsForVehicle(v1.ID)); got != 0 {
		t.Fatalf("logs for deleted vehicle remain: %d", got)
	}
	// Other vehicles keep their records.
	if got := len(s.OrdersForVehicle(v2.ID)); got != 1 {
		t.Fatalf("unrelated orders lost: %d", got)
	}
}

func TestBulkDeleteVehicles(t *testing.T) {
	s := testStore()
	v1 := addVehicle(s, "TRK-001", 300)
	v2 := addVehicle(s, "TRK-002", 320)
	v3 := addVehicle(s, "TRK-003", 350)

	removed := s.BulkDeleteVehicles([]string{v1.ID, v3.ID, "missing"})
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	left := s.Vehicles()
	if len(left) != 1 || left[0].ID != v2.ID {
		t.Fatalf("unexpected remaining fleet: %+v", left)
	}
}

func TestToggleVehicleStatus(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	got, err := s.ToggleVehicleStatus(v.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got.IsActive {
		t.Fatal("expected inactive after toggle")
	}
	if _, err := s.ToggleVehicleStatus("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoutineCRUD(t *testing.T) {
	s := testStore()
	r := s.AddRoutine(model.MaintenanceRoutine{
		Name:             "Cambio de Aceite",
		FrequencyMileage: 25000,
		LaborHours:       3,
		LaborCost:        150,
		Parts:            []model.MaintenancePart{{Name: "Filtro", Cost: 40, Quantity: 1}},
	})
	if r.ID == "" {
		t.Fatal("expected an assigned id")
	}

	r.LaborCost = 175
	if err := s.UpdateRoutine(r); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.Routine(r.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.LaborCost != 175 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := s.DeleteRoutine(r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteRoutine(r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoutinePartsDoNotAlias(t *testing.T) {
	s := testStore()
	parts := []model.MaintenancePart{{Name: "Filtro", Cost: 40, Quantity: 1}}
	r := s.AddRoutine(model.MaintenanceRoutine{Name: "Aceite", FrequencyMileage: 25000, Parts: parts})

	parts[0].Cost = 999
	got, _ := s.Routine(r.ID)
	if got.Parts[0].Cost != 40 {
		t.Fatal("store shares the caller's parts slice")
	}

	got.Parts[0].Cost = 1
	again, _ := s.Routine(r.ID)
	if again.Parts[0].Cost != 40 {
		t.Fatal("reader mutation leaked into the store")
	}
}

func TestAddOrderRequiresVehicle(t *testing.T) {
	s := testStore()
	_, err := s.AddOrder(model.ServiceOrder{VehicleID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddOrderForcesOpenStatus(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	o, err := s.AddOrder(model.ServiceOrder{VehicleID: v.ID, Status: model.StatusClosed})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	if o.Status != model.StatusOpen {
		t.Fatalf("orders must start in Abierta, got %s", o.Status)
	}
}

func TestBulkAddLogsComputesCostsAndDropsUnknownVehicles(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)

	creation := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	batch := []model.MaintenanceLog{
		{
			VehicleID:      v.ID,
			CreationDate:   creation,
			CompletionDate: creation.AddDate(0, 0, 3),
			Mileage:        152000,
			Type:           model.OrderCorrective,
			LaborCost:      500,
		},
		{
			VehicleID:      "ghost",
			CreationDate:   creation,
			CompletionDate: creation.AddDate(0, 0, 1),
			Type:           model.OrderCorrective,
		},
		{
			VehicleID:      v.ID,
			CreationDate:   creation,
			CompletionDate: creation.AddDate(0, 0, 2),
			Type:           model.OrderPreventive,
			LaborCost:      150,
		},
	}

	added := s.BulkAddLogs(batch)
	if len(added) != 2 {
		t.Fatalf("expected 2 imported records, got %d", len(added))
	}
	if added[0].DowntimeCost != 900 {
		t.Fatalf("corrective downtime: expected 900, got %v", added[0].DowntimeCost)
	}
	if added[0].TotalCost != 1400 {
		t.Fatalf("expected total 1400, got %v", added[0].TotalCost)
	}
	if added[1].DowntimeCost != 0 {
		t.Fatalf("preventive downtime must be 0, got %v", added[1].DowntimeCost)
	}
	if added[1].TotalCost != 150 {
		t.Fatalf("expected total 150, got %v", added[1].TotalCost)
	}
}

func TestBulkAddVehicles(t *testing.T) {
	s := testStore()
	batch := []model.Vehicle{
		{Name: "TRK-010", IsActive: true},
		{Name: "TRK-011", IsActive: true},
	}
	added := s.BulkAddVehicles(batch)
	if len(added) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(added))
	}
	if added[0].ID == added[1].ID || added[0].ID == "" {
		t.Fatalf("ids must be fresh and unique: %q %q", added[0].ID, added[1].ID)
	}
}
