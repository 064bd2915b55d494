package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

func newCheckoutFixture(now time.Time, reservations []*model.Reservation, contracts []*model.ServiceContract, users map[uint64]model.User, templates map[string]string) (*CheckoutEngine, *fakeReservationStore, *fakeContractStore, *fakeSink) {
	rs := &fakeReservationStore{list: reservations}
	cs := &fakeContractStore{list: contracts}
	sink := &fakeSink{}
	notifier := NewNotifier(&fakeConfig{values: templates}, sink, fakeClock{t: now})
	engine := NewCheckoutEngine(rs, cs, &fakeCustomers{users: users}, notifier)
	return engine, rs, cs, sink
}

func TestCheckoutEngineFinalizesOverdueReservations(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     string
		endsAt     time.Time
		wantStatus string
		wantSent   int
	}{
		{"confirmed past end", model.ReservationConfirmed, end, model.ReservationFinalized, 1},
		{"checked-in past end", model.ReservationCheckIn, end, model.ReservationFinalized, 1},
		{"confirmed not yet ended", model.ReservationConfirmed, now.Add(time.Hour), model.ReservationConfirmed, 0},
		{"ending exactly now is not overdue", model.ReservationConfirmed, now, model.ReservationConfirmed, 0},
		{"pending is never auto-finalized", model.ReservationPending, end, model.ReservationPending, 0},
		{"cancelled stays cancelled", model.ReservationCancelled, end, model.ReservationCancelled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rv := &model.Reservation{ID: 7, CustomerID: 1, StartsAt: end.AddDate(0, 0, -2), EndsAt: tt.endsAt, Status: tt.status}
			users := map[uint64]model.User{1: {ID: 1, Email: "guest@example.com", FirstName: strptr("Ana")}}
			engine, rs, _, sink := newCheckoutFixture(now, []*model.Reservation{rv}, nil, users, nil)

			if err := engine.Run(context.Background(), now); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := rs.get(7).Status; got != tt.wantStatus {
				t.Errorf("status = %s, want %s", got, tt.wantStatus)
			}
			if len(sink.sent) != tt.wantSent {
				t.Errorf("sent %d notifications, want %d", len(sink.sent), tt.wantSent)
			}
			if tt.wantSent == 1 {
				msg := sink.sent[0]
				if msg.Recipient != "guest@example.com" {
					t.Errorf("recipient = %s, want guest@example.com", msg.Recipient)
				}
				if msg.Sender != model.MessageSenderSystem {
					t.Errorf("sender = %s, want SYSTEM", msg.Sender)
				}
				if msg.ReservationID == nil || *msg.ReservationID != 7 {
					t.Errorf("reservation ref = %v, want 7", msg.ReservationID)
				}
			}
		})
	}
}

func TestCheckoutEngineCascadesToContracts(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	rv := &model.Reservation{ID: 3, CustomerID: 5, EndsAt: now.Add(-time.Hour), Status: model.ReservationConfirmed}
	contracts := []*model.ServiceContract{
		{ID: 1, ServiceID: 1, CustomerID: 5, ReservationID: u64ptr(3), Status: model.ContractConfirmed},
		{ID: 2, ServiceID: 1, CustomerID: 5, ReservationID: u64ptr(3), Status: model.ContractPending},
		{ID: 3, ServiceID: 1, CustomerID: 5, ReservationID: u64ptr(3), Status: model.ContractCompleted},
		{ID: 4, ServiceID: 1, CustomerID: 5, ReservationID: u64ptr(3), Status: model.ContractCancelled},
		{ID: 5, ServiceID: 1, CustomerID: 5, ReservationID: u64ptr(99), Status: model.ContractConfirmed},
	}
	users := map[uint64]model.User{5: {ID: 5, Email: "c@example.com"}}
	engine, _, cs, _ := newCheckoutFixture(now, []*model.Reservation{rv}, contracts, users, nil)

	if err := engine.Run(context.Background(), now); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := map[uint64]string{
		1: model.ContractCompleted, // CONFIRMED -> COMPLETED
		2: model.ContractCancelled, // PENDING -> CANCELLED
		3: model.ContractCompleted, // terminal, untouched
		4: model.ContractCancelled, // terminal, untouched
		5: model.ContractConfirmed, // different reservation, untouched
	}
	for id, status := range want {
		if got := cs.get(id).Status; got != status {
			t.Errorf("contract %d status = %s, want %s", id, got, status)
		}
	}
}

func TestCheckoutEngineIsIdempotent(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rv := &model.Reservation{ID: 7, CustomerID: 1, EndsAt: now.Add(-24 * time.Hour), Status: model.ReservationConfirmed}
	users := map[uint64]model.User{1: {ID: 1, Email: "guest@example.com"}}
	engine, rs, _, sink := newCheckoutFixture(now, []*model.Reservation{rv}, nil, users, nil)

	if err := engine.Run(context.Background(), now); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	savesAfterFirst := rs.saveCalls
	if err := engine.Run(context.Background(), now); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if rs.get(7).Status != model.ReservationFinalized {
		t.Errorf("status = %s, want FINALIZED", rs.get(7).Status)
	}
	if rs.saveCalls != savesAfterFirst {
		t.Errorf("second run saved %d more times, want 0", rs.saveCalls-savesAfterFirst)
	}
	if len(sink.sent) != 1 {
		t.Errorf("sent %d notifications across both runs, want 1", len(sink.sent))
	}
}

func TestCheckoutEngineMissingCustomerSkipsNotification(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		customerID uint64
	}{
		{"no customer reference", 0},
		{"customer row gone", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rv := &model.Reservation{ID: 1, CustomerID: tt.customerID, EndsAt: now.Add(-time.Hour), Status: model.ReservationConfirmed}
			engine, rs, _, sink := newCheckoutFixture(now, []*model.Reservation{rv}, nil, map[uint64]model.User{}, nil)

			if err := engine.Run(context.Background(), now); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if rs.get(1).Status != model.ReservationFinalized {
				t.Errorf("status transition must not depend on the notification")
			}
			if len(sink.sent) != 0 {
				t.Errorf("sent %d notifications, want 0", len(sink.sent))
			}
		})
	}
}

func TestCheckoutEngineNotificationFailureDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	reservations := []*model.Reservation{
		{ID: 1, CustomerID: 1, EndsAt: now.Add(-time.Hour), Status: model.ReservationConfirmed},
		{ID: 2, CustomerID: 1, EndsAt: now.Add(-time.Hour), Status: model.ReservationCheckIn},
	}
	users := map[uint64]model.User{1: {ID: 1, Email: "g@example.com"}}
	engine, rs, _, sink := newCheckoutFixture(now, reservations, nil, users, nil)
	sink.err = errors.New("mailbox down")

	if err := engine.Run(context.Background(), now); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, id := range []uint64{1, 2} {
		if rs.get(id).Status != model.ReservationFinalized {
			t.Errorf("reservation %d status = %s, want FINALIZED", id, rs.get(id).Status)
		}
	}
}

func TestCheckoutEngineStoreErrorIsFatal(t *testing.T) {
	now := time.Now().UTC()
	rs := &fakeReservationStore{findErr: errors.New("db gone")}
	notifier := NewNotifier(&fakeConfig{}, &fakeSink{}, fakeClock{t: now})
	engine := NewCheckoutEngine(rs, &fakeContractStore{}, &fakeCustomers{}, notifier)

	if err := engine.Run(context.Background(), now); err == nil {
		t.Fatal("Run() = nil, want error when the reservation query fails")
	}
}
