// Package jobs contains the background lifecycle jobs of the back
// office: auto-checkout of expired reservations and auto-completion
// of elapsed service contracts, plus the hourly scheduler that drives
// them.  The jobs depend only on small store interfaces so they can
// be exercised in tests without a database.
package jobs

import "time"

// Clock supplies the current time.  The engines take `now` as an
// argument and the scheduler obtains it from a Clock, so tests can
// freeze time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock { return systemClock{} }
