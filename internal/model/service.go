package model

import "time"

// Service contract status values.  Contracts start as PENDING, are
// CONFIRMED once payment or staff approval lands, and end as
// COMPLETED or CANCELLED.  COMPLETED and CANCELLED are terminal: the
// background jobs never mutate a contract that already reached one of
// them.  The auto-completion job moves CONFIRMED contracts to
// COMPLETED once their scheduled time has passed; a finalized
// reservation additionally cancels its still-PENDING contracts.
const (
	ContractPending   = "PENDING"
	ContractConfirmed = "CONFIRMED"
	ContractCompleted = "COMPLETED"
	ContractCancelled = "CANCELLED"
)

// Service describes an ancillary service offered by the hotel (spa,
// dining, airport transfer...).  Services are managed by
// administrators and booked by customers through service contracts.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – unique service name.
//  Description – free-form description shown to customers.
//  PriceCents  – price in cents per booking.
//  IsActive    – whether the service can currently be booked.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Service struct {
	ID          uint64    `json:"id"`          // services.id
	Name        string    `json:"name"`        // services.name
	Description string    `json:"description"` // services.description
	PriceCents  uint32    `json:"price_cents"` // services.price_cents
	IsActive    bool      `json:"is_active"`   // services.is_active
	CreatedAt   time.Time `json:"created_at"`  // services.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // services.updated_at
}

// ServiceContract is a customer's booking of a service for a specific
// time, optionally tied to a reservation and to the payment that
// settled it.  ReservationID and PaymentID are nullable because a
// guest may book a service without an active stay and before paying.
//
// Fields:
//  ID            – primary key identifier.
//  ServiceID     – service being booked.
//  CustomerID    – user who owns the contract.
//  ReservationID – reservation the contract is tied to (nullable).
//  PaymentID     – payment that settled the contract (nullable).
//  ScheduledAt   – when the service is to be delivered.
//  Status        – state of the contract (see constants above).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type ServiceContract struct {
	ID            uint64    `json:"id"`                       // service_contracts.id
	ServiceID     uint64    `json:"service_id"`               // service_contracts.service_id
	CustomerID    uint64    `json:"customer_id"`              // service_contracts.customer_id
	ReservationID *uint64   `json:"reservation_id,omitempty"` // service_contracts.reservation_id (nullable)
	PaymentID     *uint64   `json:"payment_id,omitempty"`     // service_contracts.payment_id (nullable)
	ScheduledAt   time.Time `json:"scheduled_at"`             // service_contracts.scheduled_at
	Status        string    `json:"status"`                   // service_contracts.status
	CreatedAt     time.Time `json:"created_at"`               // service_contracts.created_at
	UpdatedAt     time.Time `json:"updated_at"`               // service_contracts.updated_at
}
