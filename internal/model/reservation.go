package model

import "time"

// Reservation status values.  A reservation starts as PENDING, is
// confirmed by an administrator or a successful payment, moves to
// CHECK_IN when the guest arrives and ends in one of the terminal
// states FINALIZED or CANCELLED.  The auto-checkout job moves
// CONFIRMED and CHECK_IN reservations to FINALIZED once their end
// date has passed; terminal states are never left.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCheckIn   = "CHECK_IN"
	ReservationFinalized = "FINALIZED"
	ReservationCancelled = "CANCELLED"
)

// Reservation records a customer's booked stay for a date range.
// StartsAt and EndsAt are stored in UTC; EndsAt must be after
// StartsAt, which is validated at creation time by the handler.
//
// Fields:
//  ID         – primary key identifier.
//  RoomID     – room being reserved.
//  CustomerID – user who owns the reservation.
//  StartsAt   – first night of the stay.
//  EndsAt     – checkout instant; the room is free from this point.
//  Status     – state of the reservation (see constants above).
//  TotalCents – total price in cents for the whole stay.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Reservation struct {
	ID         uint64    `json:"id"`          // reservations.id
	RoomID     uint64    `json:"room_id"`     // reservations.room_id
	CustomerID uint64    `json:"customer_id"` // reservations.customer_id
	StartsAt   time.Time `json:"starts_at"`   // reservations.starts_at
	EndsAt     time.Time `json:"ends_at"`     // reservations.ends_at
	Status     string    `json:"status"`      // reservations.status
	TotalCents uint32    `json:"total_cents"` // reservations.total_cents
	CreatedAt  time.Time `json:"created_at"`  // reservations.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // reservations.updated_at
}
