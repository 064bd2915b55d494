package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrPaymentNotFound is returned when a payment lookup matches no row.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepo provides persistence for payments.  Payments are
// append-only from the handlers' perspective; only the status and
// paid_at fields are ever updated.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentColumns = "id, customer_id, reservation_id, contract_id, amount_cents, method, status, paid_at, created_at"

func scanPayment(sc interface{ Scan(...any) error }) (model.Payment, error) {
	var p model.Payment
	var resID, cID sql.NullInt64
	var paidAt sql.NullTime
	err := sc.Scan(&p.ID, &p.CustomerID, &resID, &cID, &p.AmountCents, &p.Method, &p.Status, &paidAt, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	if resID.Valid {
		v := uint64(resID.Int64)
		p.ReservationID = &v
	}
	if cID.Valid {
		v := uint64(cID.Int64)
		p.ContractID = &v
	}
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	return p, nil
}

// Create inserts a new payment and populates the generated ID on the
// provided record.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	const q = `INSERT INTO payments (customer_id, reservation_id, contract_id, amount_cents, method, status, paid_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.CustomerID, p.ReservationID, p.ContractID, p.AmountCents, p.Method, p.Status, p.PaidAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const sel = `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`
	got, err := scanPayment(r.db.QueryRowContext(ctx, sel, p.ID))
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// GetByID returns a single payment or ErrPaymentNotFound.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`
	p, err := scanPayment(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCustomer returns all payments of a customer, newest first.
func (r *PaymentRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = ? ORDER BY created_at DESC`
	return r.queryList(ctx, q, customerID)
}

// List returns all payments, newest first.  Used by the admin surface.
func (r *PaymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
	return r.queryList(ctx, q)
}

// UpdateStatus sets the payment status and, when the new status is
// PAID, stamps paid_at.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = `UPDATE payments SET status=?, paid_at=CASE WHEN ?='PAID' THEN NOW() ELSE paid_at END WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, status, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
