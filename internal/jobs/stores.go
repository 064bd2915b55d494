package jobs

import (
	"context"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// ReservationStore is the slice of reservation persistence the
// auto-checkout job needs.  *repository.ReservationRepo satisfies it.
type ReservationStore interface {
	// FindOverdueActive returns CONFIRMED and CHECK_IN reservations
	// whose end instant is strictly before the cutoff.
	FindOverdueActive(ctx context.Context, before time.Time) ([]model.Reservation, error)
	// Save persists the reservation's current status.
	Save(ctx context.Context, rv *model.Reservation) error
}

// ContractStore is the slice of service-contract persistence the jobs
// need.  *repository.ContractRepo satisfies it.
type ContractStore interface {
	// FindByReservation returns every contract tied to a reservation.
	FindByReservation(ctx context.Context, reservationID uint64) ([]model.ServiceContract, error)
	// FindOverdueConfirmed returns CONFIRMED contracts scheduled
	// strictly before the cutoff.
	FindOverdueConfirmed(ctx context.Context, before time.Time) ([]model.ServiceContract, error)
	// Save persists the contract's current status.
	Save(ctx context.Context, c *model.ServiceContract) error
}

// CustomerDirectory resolves customer records for notification
// addressing.  *repository.UserRepo satisfies it.
type CustomerDirectory interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// ServiceDirectory resolves service names for notification templates.
// *repository.ServiceRepo satisfies it.
type ServiceDirectory interface {
	GetNameByID(ctx context.Context, id uint64) (string, error)
}

// ConfigLookup reads message templates from configuration.
// *repository.SettingRepo satisfies it.  A missing key is reported
// via the boolean, not an error, so callers can fall back to
// defaults.
type ConfigLookup interface {
	FindByKey(ctx context.Context, key string) (value string, found bool, err error)
}

// NotificationSink accepts a constructed support message.  Delivery
// is fire-and-forget from the jobs' perspective: the notifier logs
// and swallows sink errors.
type NotificationSink interface {
	Send(ctx context.Context, msg model.SupportMessage) error
}
