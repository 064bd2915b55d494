package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// CheckoutEngine finalizes reservations whose stay has ended.  Each
// run queries the overdue set, moves every hit to FINALIZED, cascades
// the change to the reservation's service contracts and notifies the
// customer.  Runs are idempotent: rows already FINALIZED no longer
// match the query predicate.
type CheckoutEngine struct {
	Reservations ReservationStore
	Contracts    ContractStore
	Customers    CustomerDirectory
	Notifier     *Notifier
}

// NewCheckoutEngine wires a checkout engine from its collaborators.
func NewCheckoutEngine(rs ReservationStore, cs ContractStore, cd CustomerDirectory, n *Notifier) *CheckoutEngine {
	return &CheckoutEngine{Reservations: rs, Contracts: cs, Customers: cd, Notifier: n}
}

// Run processes every reservation that is still CONFIRMED or
// CHECK_IN with an end instant before now.  A failing store query is
// fatal for the run; failures while processing an individual
// reservation are logged and do not block the remaining ones.
func (e *CheckoutEngine) Run(ctx context.Context, now time.Time) error {
	overdue, err := e.Reservations.FindOverdueActive(ctx, now)
	if err != nil {
		return fmt.Errorf("query overdue reservations: %w", err)
	}
	if len(overdue) > 0 {
		log.Printf("autocheckout: found %d overdue reservations", len(overdue))
	}
	for i := range overdue {
		e.finalize(ctx, &overdue[i])
	}
	return nil
}

// finalize persists the FINALIZED status first, then runs the
// best-effort cascade and notification steps.  A crash between the
// save and the side effects leaves a consistent "finalized but not
// yet notified" state that the next run skips.
func (e *CheckoutEngine) finalize(ctx context.Context, rv *model.Reservation) {
	rv.Status = model.ReservationFinalized
	if err := e.Reservations.Save(ctx, rv); err != nil {
		log.Printf("autocheckout: finalize reservation %d failed: %v", rv.ID, err)
		return
	}

	e.cascade(ctx, rv.ID)

	if rv.CustomerID == 0 {
		// Reservation without a customer reference: nothing to notify.
		return
	}
	customer, err := e.Customers.GetByID(ctx, rv.CustomerID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("autocheckout: load customer %d failed: %v", rv.CustomerID, err)
		}
		return
	}
	e.Notifier.NotifyCheckout(ctx, *rv, customer)
}

// cascade applies the dependent transitions to the reservation's
// contracts: CONFIRMED becomes COMPLETED, PENDING becomes CANCELLED,
// terminal contracts are left untouched.
func (e *CheckoutEngine) cascade(ctx context.Context, reservationID uint64) {
	contracts, err := e.Contracts.FindByReservation(ctx, reservationID)
	if err != nil {
		log.Printf("autocheckout: load contracts of reservation %d failed: %v", reservationID, err)
		return
	}
	for i := range contracts {
		c := &contracts[i]
		switch c.Status {
		case model.ContractConfirmed:
			c.Status = model.ContractCompleted
		case model.ContractPending:
			c.Status = model.ContractCancelled
		default:
			continue
		}
		if err := e.Contracts.Save(ctx, c); err != nil {
			log.Printf("autocheckout: update contract %d failed: %v", c.ID, err)
		}
	}
}
