package model

import "time"

// MessageSenderSystem tags messages generated by background jobs as
// opposed to messages written by staff.
const MessageSenderSystem = "SYSTEM"

// SupportMessage is a message delivered to a customer's in-app inbox.
// System messages are created by the notification sink on behalf of
// the background jobs and are never mutated afterwards except for the
// read flag, which the customer toggles.
//
// Fields:
//  ID            – primary key identifier.
//  Recipient     – external identity of the recipient ("unknown" when
//                  the customer reference was absent).
//  RecipientName – display name shown in the inbox.
//  Body          – message text.
//  Sender        – "SYSTEM" for job-generated messages, otherwise the
//                  staff member's identity.
//  ReservationID – reservation the message refers to (nullable).
//  IsRead        – whether the customer has opened the message.
//  IsActive      – soft-delete flag; inactive messages are hidden.
//  SentAt        – when the message was created.
type SupportMessage struct {
	ID            uint64    `json:"id"`                       // support_messages.id
	Recipient     string    `json:"recipient"`                // support_messages.recipient
	RecipientName string    `json:"recipient_name"`           // support_messages.recipient_name
	Body          string    `json:"body"`                     // support_messages.body
	Sender        string    `json:"sender"`                   // support_messages.sender
	ReservationID *uint64   `json:"reservation_id,omitempty"` // support_messages.reservation_id (nullable)
	IsRead        bool      `json:"is_read"`                  // support_messages.is_read
	IsActive      bool      `json:"is_active"`                // support_messages.is_active
	SentAt        time.Time `json:"sent_at"`                  // support_messages.sent_at
}
