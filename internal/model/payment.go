package model

import "time"

// Payment status values as recorded by staff or the payment gateway.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentRefunded = "REFUNDED"
)

// Payment records money received for a reservation or a service
// contract.  Exactly one of ReservationID and ContractID is usually
// set, but both are nullable so a payment can be registered before it
// is linked.
//
// Fields:
//  ID            – primary key identifier.
//  CustomerID    – user the payment belongs to.
//  ReservationID – reservation the payment settles (nullable).
//  ContractID    – service contract the payment settles (nullable).
//  AmountCents   – amount in cents.
//  Method        – free-form method label (e.g. "CARD", "CASH").
//  Status        – PENDING, PAID or REFUNDED.
//  PaidAt        – when the payment was completed (nullable).
//  CreatedAt     – creation timestamp.
type Payment struct {
	ID            uint64     `json:"id"`                       // payments.id
	CustomerID    uint64     `json:"customer_id"`              // payments.customer_id
	ReservationID *uint64    `json:"reservation_id,omitempty"` // payments.reservation_id (nullable)
	ContractID    *uint64    `json:"contract_id,omitempty"`    // payments.contract_id (nullable)
	AmountCents   uint32     `json:"amount_cents"`             // payments.amount_cents
	Method        string     `json:"method"`                   // payments.method
	Status        string     `json:"status"`                   // payments.status
	PaidAt        *time.Time `json:"paid_at,omitempty"`        // payments.paid_at (nullable)
	CreatedAt     time.Time  `json:"created_at"`               // payments.created_at
}
