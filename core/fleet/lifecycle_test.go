package fleet

import (
	"errors"
	"testing"
	"time"

	"github.com/fleetdecolombia/FleetMantenimiento/core/events"
	"github.com/fleetdecolombia/FleetMantenimiento/core/model"
	"github.com/fleetdecolombia/FleetMantenimiento/internal/eventbus"
)

func openOrder(t *testing.T, s *Store, vehicleID string, typ model.OrderType, creation time.Time) model.ServiceOrder {
	t.Helper()
	o, err := s.AddOrder(model.ServiceOrder{
		VehicleID:       vehicleID,
		CreationDate:    creation,
		PlannedExitDate: creation.AddDate(0, 0, 1),
		Type:            typ,
		Description:     "Fallo en sistema de inyección",
		LaborHours:      8,
	})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	return o
}

func TestAdvanceForward(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	o := openOrder(t, s, v.ID, model.OrderCorrective, time.Now())

	got, err := s.Advance(o.ID, model.StatusInProgress)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got.Status != model.StatusInProgress {
		t.Fatalf("expected En Progreso, got %s", got.Status)
	}
}

func TestAdvanceRejectsInvalidTransitions(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)

	cases := []struct {
		name string
		prep func(o model.ServiceOrder)
		next model.OrderStatus
		want error
	}{
		{"open to closed skips a state", func(model.ServiceOrder) {}, model.StatusClosed, ErrInvalidTransition},
		{"open to open", func(model.ServiceOrder) {}, model.StatusOpen, ErrInvalidTransition},
		{"in progress back to open", func(o model.ServiceOrder) {
			if _, err := s.Advance(o.ID, model.StatusInProgress); err != nil {
				t.Fatalf("setup advance: %v", err)
			}
		}, model.StatusOpen, ErrInvalidTransition},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := openOrder(t, s, v.ID, model.OrderCorrective, time.Now())
			c.prep(o)
			if _, err := s.Advance(o.ID, c.next); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}

	if _, err := s.Advance("missing", model.StatusInProgress); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCloseCorrectiveOrder(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	creation := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := openOrder(t, s, v.ID, model.OrderCorrective, creation)

	lg, err := s.Close(o.ID, Closure{
		CompletionDate: creation.AddDate(0, 0, 3),
		Mileage:        152000,
		LaborCost:      500,
		Parts:          []model.MaintenancePart{{Name: "Correa", Cost: 50, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	if lg.DowntimeCost != 900 {
		t.Fatalf("expected downtime 900, got %v", lg.DowntimeCost)
	}
	if lg.TotalCost != 1500 {
		t.Fatalf("expected total 1500, got %v", lg.TotalCost)
	}
	if lg.Type != model.OrderCorrective || lg.Description != o.Description {
		t.Fatalf("log must copy order type and description: %+v", lg)
	}
	if !lg.CreationDate.Equal(creation) {
		t.Fatalf("log creation date must come from the order, got %v", lg.CreationDate)
	}

	closed, err := s.Order(o.ID)
	if err != nil {
		t.Fatalf("lookup order: %v", err)
	}
	if closed.Status != model.StatusClosed {
		t.Fatalf("order not closed: %s", closed.Status)
	}

	updated, _ := s.Vehicle(v.ID)
	if updated.Mileage != 152000 {
		t.Fatalf("vehicle mileage not updated: %d", updated.Mileage)
	}
}

func TestClosePreventiveOrderHasNoDowntimeCost(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	creation := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := openOrder(t, s, v.ID, model.OrderPreventive, creation)

	lg, err := s.Close(o.ID, Closure{CompletionDate: creation.AddDate(0, 0, 5), Mileage: 151000, LaborCost: 150})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if lg.DowntimeCost != 0 {
		t.Fatalf("preventive downtime must be 0, got %v", lg.DowntimeCost)
	}
	if lg.TotalCost != 150 {
		t.Fatalf("expected total 150, got %v", lg.TotalCost)
	}
}

func TestCloseIsTerminal(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	creation := time.Now()
	o := openOrder(t, s, v.ID, model.OrderCorrective, creation)

	if _, err := s.Close(o.ID, Closure{CompletionDate: creation.AddDate(0, 0, 1), Mileage: 151000}); err != nil {
		t.Fatalf("first close: %v", err)
	}

	if _, err := s.Close(o.ID, Closure{CompletionDate: creation.AddDate(0, 0, 2), Mileage: 151500}); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("second close must fail with ErrOrderClosed, got %v", err)
	}
	if _, err := s.Advance(o.ID, model.StatusInProgress); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("advance after close must fail with ErrOrderClosed, got %v", err)
	}
	if got := len(s.LogsForVehicle(v.ID)); got != 1 {
		t.Fatalf("exactly one log expected, got %d", got)
	}
}

func TestCloseUnknownOrder(t *testing.T) {
	s := testStore()
	if _, err := s.Close("missing", Closure{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClosePublishesOrderClosed(t *testing.T) {
	bus := eventbus.New()
	s := New(nil, bus)
	sub := bus.Subscribe()
	defer bus.Unsubscribe(sub)

	v := addVehicle(s, "TRK-001", 300)
	creation := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := openOrder(t, s, v.ID, model.OrderCorrective, creation)
	if _, err := s.Close(o.ID, Closure{CompletionDate: creation.AddDate(0, 0, 3), Mileage: 152000, LaborCost: 500}); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case ev := <-sub:
		closed, ok := ev.(events.OrderClosed)
		if !ok {
			t.Fatalf("unexpected event %T", ev)
		}
		if closed.Order.ID != o.ID || closed.DowntimeDays != 3 {
			t.Fatalf("unexpected event payload: %+v", closed)
		}
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestAddOrderFromRoutineDeepCopies(t *testing.T) {
	s := testStore()
	v := addVehicle(s, "TRK-001", 300)
	r := s.AddRoutine(model.MaintenanceRoutine{
		Name:             "Inspección de Frenos",
		FrequencyMileage: 50000,
		LaborHours:       4,
		LaborCost:        200,
		Parts:            []model.MaintenancePart{{Name: "Pastillas", Cost: 80, Quantity: 4}},
	})

	creation := time.Now()
	o, err := s.AddOrderFromRoutine(r.ID, v.ID, creation, creation.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("add from routine: %v", err)
	}
	if o.Type != model.OrderPreventive || o.Description != r.Name || o.LaborCost != 200 || o.LaborHours != 4 {
		t.Fatalf("routine data not copied: %+v", o)
	}

	// Editing the routine afterwards must not touch the order.
	r.Parts[0].Cost = 1
	r.LaborCost = 999
	if err := s.UpdateRoutine(r); err != nil {
		t.Fatalf("update routine: %v", err)
	}
	got, _ := s.Order(o.ID)
	if got.LaborCost != 200 || got.Parts[0].Cost != 80 {
		t.Fatalf("order mutated by routine edit: %+v", got)
	}

	if _, err := s.AddOrderFromRoutine("missing", v.ID, creation, creation); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
