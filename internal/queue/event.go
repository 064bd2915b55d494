// Package queue defines message payloads exchanged over the message broker.
package queue

// NotificationCreatedEvent is published whenever the notification
// sink stores a system message.  It carries enough information for
// downstream consumers to log, forward by email, or feed analytics
// without querying the primary database.
type NotificationCreatedEvent struct {
	MessageID     uint64  `json:"message_id"`
	Recipient     string  `json:"recipient"`
	RecipientName string  `json:"recipient_name"`
	Sender        string  `json:"sender"`
	ReservationID *uint64 `json:"reservation_id,omitempty"`
	Body          string  `json:"body"`
	SentAt        string  `json:"sent_at"`
}
