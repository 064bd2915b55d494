package jobs

import (
	"context"
	"log"
	"time"
)

// Scheduler fires both engines at minute 0 of every hour.  Runs are
// independent and idempotent, so no coordination between consecutive
// runs is needed; a run that overlaps a manual invocation simply
// finds fewer overdue rows.
type Scheduler struct {
	Checkout   *CheckoutEngine
	Completion *CompletionEngine
	Clock      Clock
}

// NewScheduler wires a scheduler from the two engines.
func NewScheduler(checkout *CheckoutEngine, completion *CompletionEngine, clk Clock) *Scheduler {
	return &Scheduler{Checkout: checkout, Completion: completion, Clock: clk}
}

// Run blocks until the context is cancelled, triggering both engines
// at the top of every hour.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		wait := time.Until(nextHour(s.Clock.Now()))
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		s.RunOnce(ctx)
	}
}

// RunOnce triggers both engines with the current time.  Engine
// failures are logged; the next scheduled run retries from scratch
// because the overdue queries are stateless.
func (s *Scheduler) RunOnce(ctx context.Context) {
	now := s.Clock.Now()
	if err := s.Checkout.Run(ctx, now); err != nil {
		log.Printf("scheduler: auto-checkout run failed: %v", err)
	}
	if err := s.Completion.Run(ctx, now); err != nil {
		log.Printf("scheduler: auto-completion run failed: %v", err)
	}
}

// nextHour returns the next top-of-hour instant strictly after t.
func nextHour(t time.Time) time.Time {
	return t.Truncate(time.Hour).Add(time.Hour)
}
