package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

func newCompletionFixture(now time.Time, contracts []*model.ServiceContract, users map[uint64]model.User, templates map[string]string) (*CompletionEngine, *fakeContractStore, *fakeSink) {
	cs := &fakeContractStore{list: contracts}
	sink := &fakeSink{}
	notifier := NewNotifier(&fakeConfig{values: templates}, sink, fakeClock{t: now})
	services := &fakeServices{names: map[uint64]string{1: "Spa"}}
	engine := NewCompletionEngine(cs, services, &fakeCustomers{users: users}, notifier)
	return engine, cs, sink
}

func TestCompletionEngineCompletesOverdueConfirmed(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      string
		scheduledAt time.Time
		wantStatus  string
		wantSent    int
	}{
		{"confirmed past schedule", model.ContractConfirmed, now.Add(-time.Hour), model.ContractCompleted, 1},
		{"confirmed before schedule", model.ContractConfirmed, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), model.ContractConfirmed, 0},
		{"scheduled exactly now is not overdue", model.ContractConfirmed, now, model.ContractConfirmed, 0},
		{"overdue pending is left alone", model.ContractPending, now.Add(-time.Hour), model.ContractPending, 0},
		{"completed stays completed", model.ContractCompleted, now.Add(-time.Hour), model.ContractCompleted, 0},
		{"cancelled stays cancelled", model.ContractCancelled, now.Add(-time.Hour), model.ContractCancelled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &model.ServiceContract{ID: 9, ServiceID: 1, CustomerID: 2, ScheduledAt: tt.scheduledAt, Status: tt.status}
			users := map[uint64]model.User{2: {ID: 2, Email: "guest@example.com"}}
			engine, cs, sink := newCompletionFixture(now, []*model.ServiceContract{c}, users, nil)

			if err := engine.Run(context.Background(), now); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := cs.get(9).Status; got != tt.wantStatus {
				t.Errorf("status = %s, want %s", got, tt.wantStatus)
			}
			if len(sink.sent) != tt.wantSent {
				t.Errorf("sent %d notifications, want %d", len(sink.sent), tt.wantSent)
			}
		})
	}
}

func TestCompletionEngineRendersServiceTemplate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	scheduled := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	c := &model.ServiceContract{ID: 4, ServiceID: 1, CustomerID: 2, ScheduledAt: scheduled, Status: model.ContractConfirmed}
	users := map[uint64]model.User{2: {ID: 2, Email: "guest@example.com", FirstName: strptr("Luis")}}
	templates := map[string]string{
		model.SettingServiceCompletedTemplate: "Hola {clienteNombre}, su servicio {servicioNombre} del {fechaServicio} fue completado.",
	}
	engine, _, sink := newCompletionFixture(now, []*model.ServiceContract{c}, users, templates)

	if err := engine.Run(context.Background(), now); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(sink.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(sink.sent))
	}
	body := sink.sent[0].Body
	for _, want := range []string{"Luis", "Spa", scheduled.Format(time.RFC3339)} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q does not contain %q", body, want)
		}
	}
}

func TestCompletionEngineSinkFailureDoesNotBlockTransitions(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	contracts := []*model.ServiceContract{
		{ID: 1, ServiceID: 1, CustomerID: 2, ScheduledAt: now.Add(-time.Hour), Status: model.ContractConfirmed},
		{ID: 2, ServiceID: 1, CustomerID: 2, ScheduledAt: now.Add(-2 * time.Hour), Status: model.ContractConfirmed},
	}
	users := map[uint64]model.User{2: {ID: 2, Email: "guest@example.com"}}
	engine, cs, sink := newCompletionFixture(now, contracts, users, nil)
	sink.err = errors.New("mailbox down")

	if err := engine.Run(context.Background(), now); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, id := range []uint64{1, 2} {
		if cs.get(id).Status != model.ContractCompleted {
			t.Errorf("contract %d status = %s, want COMPLETED", id, cs.get(id).Status)
		}
	}
}

func TestCompletionEngineStoreErrorIsFatal(t *testing.T) {
	now := time.Now().UTC()
	cs := &fakeContractStore{findErr: errors.New("db gone")}
	notifier := NewNotifier(&fakeConfig{}, &fakeSink{}, fakeClock{t: now})
	engine := NewCompletionEngine(cs, &fakeServices{}, &fakeCustomers{}, notifier)

	if err := engine.Run(context.Background(), now); err == nil {
		t.Fatal("Run() = nil, want error when the contract query fails")
	}
}
