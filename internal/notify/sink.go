// Package notify implements the notification sink consumed by the
// background jobs: messages are stored in the support inbox and a
// notification.created event is published for downstream consumers.
package notify

import (
	"context"
	"time"

	"github.com/solhotel/backoffice/internal/model"
	"github.com/solhotel/backoffice/internal/queue"
	"github.com/solhotel/backoffice/internal/repository"
	queue_publisher "github.com/solhotel/backoffice/internal/service"
)

// MessageSink persists support messages and announces them on the
// broker.  The broker publish is fire-and-forget: a broker outage
// must not make a stored notification count as failed.
type MessageSink struct {
	Messages *repository.MessageRepo
}

// NewMessageSink returns a sink writing to the given message repository.
func NewMessageSink(messages *repository.MessageRepo) *MessageSink {
	return &MessageSink{Messages: messages}
}

// Send stores the message and publishes a notification.created event.
// Only the database write can fail the call; publish errors are
// already logged inside the publisher and are ignored here.
func (s *MessageSink) Send(ctx context.Context, msg model.SupportMessage) error {
	if err := s.Messages.Create(ctx, &msg); err != nil {
		return err
	}
	_ = queue_publisher.PublishNotificationCreated(ctx, queue.NotificationCreatedEvent{
		MessageID:     msg.ID,
		Recipient:     msg.Recipient,
		RecipientName: msg.RecipientName,
		Sender:        msg.Sender,
		ReservationID: msg.ReservationID,
		Body:          msg.Body,
		SentAt:        msg.SentAt.UTC().Format(time.RFC3339),
	})
	return nil
}
