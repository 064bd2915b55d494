package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// fakeClock returns a frozen instant.
type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

// fakeReservationStore keeps reservations in a slice so iteration
// order is deterministic.
type fakeReservationStore struct {
	list      []*model.Reservation
	findErr   error
	saveErr   error
	findCalls int
	saveCalls int
}

func (f *fakeReservationStore) FindOverdueActive(_ context.Context, before time.Time) ([]model.Reservation, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.Reservation, 0)
	for _, rv := range f.list {
		active := rv.Status == model.ReservationConfirmed || rv.Status == model.ReservationCheckIn
		if active && rv.EndsAt.Before(before) {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) Save(_ context.Context, rv *model.Reservation) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, cur := range f.list {
		if cur.ID == rv.ID {
			cur.Status = rv.Status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeReservationStore) get(id uint64) *model.Reservation {
	for _, rv := range f.list {
		if rv.ID == id {
			return rv
		}
	}
	return nil
}

// fakeContractStore mirrors fakeReservationStore for service contracts.
type fakeContractStore struct {
	list      []*model.ServiceContract
	findErr   error
	saveErr   error
	findCalls int
	saveCalls int
}

func (f *fakeContractStore) FindByReservation(_ context.Context, reservationID uint64) ([]model.ServiceContract, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.ServiceContract, 0)
	for _, c := range f.list {
		if c.ReservationID != nil && *c.ReservationID == reservationID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) FindOverdueConfirmed(_ context.Context, before time.Time) ([]model.ServiceContract, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.ServiceContract, 0)
	for _, c := range f.list {
		if c.Status == model.ContractConfirmed && c.ScheduledAt.Before(before) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) Save(_ context.Context, c *model.ServiceContract) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, cur := range f.list {
		if cur.ID == c.ID {
			cur.Status = c.Status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeContractStore) get(id uint64) *model.ServiceContract {
	for _, c := range f.list {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// fakeCustomers returns sql.ErrNoRows for unknown IDs, like the real
// user repository.
type fakeCustomers struct {
	users map[uint64]model.User
}

func (f *fakeCustomers) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

// fakeServices resolves service names from a map.
type fakeServices struct {
	names map[uint64]string
	err   error
}

func (f *fakeServices) GetNameByID(_ context.Context, id uint64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.names[id], nil
}

// fakeConfig serves templates from a map.
type fakeConfig struct {
	values map[string]string
	err    error
}

func (f *fakeConfig) FindByKey(_ context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// fakeSink records delivered messages and can be forced to fail.
type fakeSink struct {
	sent []model.SupportMessage
	err  error
}

func (f *fakeSink) Send(_ context.Context, msg model.SupportMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func strptr(s string) *string { return &s }

func u64ptr(v uint64) *uint64 { return &v }
