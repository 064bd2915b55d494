package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrMessageNotFound is returned when a support message lookup
// matches no row.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepo provides persistence for support messages.  The
// notification sink appends system messages here; customers read
// their inbox and toggle the read flag.
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo returns a new MessageRepo bound to the given database.
func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

const messageColumns = "id, recipient, recipient_name, body, sender, reservation_id, is_read, is_active, sent_at"

func scanMessage(sc interface{ Scan(...any) error }) (model.SupportMessage, error) {
	var m model.SupportMessage
	var resID sql.NullInt64
	err := sc.Scan(&m.ID, &m.Recipient, &m.RecipientName, &m.Body, &m.Sender,
		&resID, &m.IsRead, &m.IsActive, &m.SentAt)
	if err != nil {
		return m, err
	}
	if resID.Valid {
		v := uint64(resID.Int64)
		m.ReservationID = &v
	}
	return m, nil
}

// Create inserts a support message and populates the generated ID on
// the provided record.
func (r *MessageRepo) Create(ctx context.Context, m *model.SupportMessage) error {
	const q = `INSERT INTO support_messages (recipient, recipient_name, body, sender, reservation_id, is_read, is_active, sent_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Recipient, m.RecipientName, m.Body, m.Sender,
		m.ReservationID, m.IsRead, m.IsActive, m.SentAt.UTC())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// ListByRecipient returns the active messages addressed to an
// identity, newest first.
func (r *MessageRepo) ListByRecipient(ctx context.Context, recipient string) ([]model.SupportMessage, error) {
	const q = `SELECT ` + messageColumns + ` FROM support_messages WHERE recipient = ? AND is_active = 1 ORDER BY sent_at DESC`
	rows, err := r.db.QueryContext(ctx, q, recipient)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.SupportMessage, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flags a message as read.  The recipient is part of the
// predicate so a customer cannot mark someone else's message.
func (r *MessageRepo) MarkRead(ctx context.Context, id uint64, recipient string) error {
	const q = `UPDATE support_messages SET is_read=1 WHERE id=? AND recipient=? AND is_active=1`
	res, err := r.db.ExecContext(ctx, q, id, recipient)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMessageNotFound
	}
	return nil
}
