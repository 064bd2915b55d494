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

// CompletionEngine completes confirmed service contracts whose
// scheduled time has passed.  Overdue PENDING contracts are
// deliberately left alone: only the checkout cascade of their parent
// reservation cancels those, an unattached pending contract needs
// manual resolution.
type CompletionEngine struct {
	Contracts ContractStore
	Services  ServiceDirectory
	Customers CustomerDirectory
	Notifier  *Notifier
}

// NewCompletionEngine wires a completion engine from its collaborators.
func NewCompletionEngine(cs ContractStore, sd ServiceDirectory, cd CustomerDirectory, n *Notifier) *CompletionEngine {
	return &CompletionEngine{Contracts: cs, Services: sd, Customers: cd, Notifier: n}
}

// Run processes every CONFIRMED contract scheduled before now.  A
// failing store query is fatal for the run; failures on an
// individual contract are logged and do not block the remaining
// ones.  Runs are idempotent: completed rows no longer match the
// query predicate.
func (e *CompletionEngine) Run(ctx context.Context, now time.Time) error {
	due, err := e.Contracts.FindOverdueConfirmed(ctx, now)
	if err != nil {
		return fmt.Errorf("query overdue contracts: %w", err)
	}
	if len(due) > 0 {
		log.Printf("autocomplete: found %d overdue contracts", len(due))
	}
	for i := range due {
		e.complete(ctx, &due[i])
	}
	return nil
}

// complete persists the COMPLETED status first, then attempts the
// best-effort notification.
func (e *CompletionEngine) complete(ctx context.Context, c *model.ServiceContract) {
	c.Status = model.ContractCompleted
	if err := e.Contracts.Save(ctx, c); err != nil {
		log.Printf("autocomplete: complete contract %d failed: %v", c.ID, err)
		return
	}

	if c.CustomerID == 0 {
		return
	}
	customer, err := e.Customers.GetByID(ctx, c.CustomerID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("autocomplete: load customer %d failed: %v", c.CustomerID, err)
		}
		return
	}

	serviceName, err := e.Services.GetNameByID(ctx, c.ServiceID)
	if err != nil {
		// Not fatal for the notification: the template token stays
		// unresolved, which is visible but harmless.
		log.Printf("autocomplete: load service %d failed: %v", c.ServiceID, err)
		serviceName = ""
	}
	e.Notifier.NotifyCompletion(ctx, *c, serviceName, customer)
}
