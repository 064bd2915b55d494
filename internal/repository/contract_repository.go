package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrContractNotFound is returned when a service contract lookup
// matches no row.
var ErrContractNotFound = errors.New("service contract not found")

// ContractRepo provides persistence for service contracts.  Besides
// the CRUD operations used by the REST layer it exposes the two
// queries consumed by the background jobs: contracts of a reservation
// (checkout cascade) and overdue confirmed contracts
// (auto-completion).
type ContractRepo struct {
	db *sql.DB
}

// NewContractRepo returns a new ContractRepo bound to the given database.
func NewContractRepo(db *sql.DB) *ContractRepo { return &ContractRepo{db: db} }

const contractColumns = "id, service_id, customer_id, reservation_id, payment_id, scheduled_at, status, created_at, updated_at"

func scanContract(sc interface{ Scan(...any) error }) (model.ServiceContract, error) {
	var c model.ServiceContract
	var resID, payID sql.NullInt64
	err := sc.Scan(&c.ID, &c.ServiceID, &c.CustomerID, &resID, &payID,
		&c.ScheduledAt, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if resID.Valid {
		v := uint64(resID.Int64)
		c.ReservationID = &v
	}
	if payID.Valid {
		v := uint64(payID.Int64)
		c.PaymentID = &v
	}
	return c, nil
}

// Create inserts a new contract and populates the generated ID and
// timestamps on the provided record.
func (r *ContractRepo) Create(ctx context.Context, c *model.ServiceContract) error {
	const q = `INSERT INTO service_contracts (service_id, customer_id, reservation_id, payment_id, scheduled_at, status) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.ServiceID, c.CustomerID, c.ReservationID, c.PaymentID, c.ScheduledAt.UTC(), c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	const sel = `SELECT ` + contractColumns + ` FROM service_contracts WHERE id = ?`
	got, err := scanContract(r.db.QueryRowContext(ctx, sel, c.ID))
	if err != nil {
		return err
	}
	*c = got
	return nil
}

// GetByID returns a single contract or ErrContractNotFound.
func (r *ContractRepo) GetByID(ctx context.Context, id uint64) (*model.ServiceContract, error) {
	const q = `SELECT ` + contractColumns + ` FROM service_contracts WHERE id = ?`
	c, err := scanContract(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByCustomer returns all contracts owned by a customer, newest first.
func (r *ContractRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.ServiceContract, error) {
	const q = `SELECT ` + contractColumns + ` FROM service_contracts WHERE customer_id = ? ORDER BY created_at DESC`
	return r.queryList(ctx, q, customerID)
}

// List returns all contracts, optionally filtered by status, newest
// first.  Used by the admin surface.
func (r *ContractRepo) List(ctx context.Context, status string) ([]model.ServiceContract, error) {
	q := `SELECT ` + contractColumns + ` FROM service_contracts`
	args := []any{}
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`
	return r.queryList(ctx, q, args...)
}

// FindByReservation returns every contract tied to a reservation,
// regardless of status.  The auto-checkout cascade inspects the
// status of each returned contract itself.
func (r *ContractRepo) FindByReservation(ctx context.Context, reservationID uint64) ([]model.ServiceContract, error) {
	const q = `SELECT ` + contractColumns + ` FROM service_contracts WHERE reservation_id = ? ORDER BY id`
	return r.queryList(ctx, q, reservationID)
}

// FindOverdueConfirmed returns CONFIRMED contracts whose scheduled
// instant is strictly before the given cutoff.  This is the
// auto-completion predicate; rows already COMPLETED or CANCELLED are
// excluded, which makes repeated runs idempotent.  PENDING contracts
// are deliberately not returned: an overdue contract that was never
// confirmed is only resolved manually or by its reservation's
// checkout cascade.
func (r *ContractRepo) FindOverdueConfirmed(ctx context.Context, before time.Time) ([]model.ServiceContract, error) {
	const q = `SELECT ` + contractColumns + ` FROM service_contracts
	           WHERE status = 'CONFIRMED' AND scheduled_at < ?
	           ORDER BY scheduled_at`
	return r.queryList(ctx, q, before.UTC())
}

// Save persists the current status of a contract.  Only the status
// column is written.
func (r *ContractRepo) Save(ctx context.Context, c *model.ServiceContract) error {
	const q = `UPDATE service_contracts SET status=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, c.Status, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContractNotFound
	}
	return nil
}

// SetPayment links a payment to a contract.
func (r *ContractRepo) SetPayment(ctx context.Context, contractID, paymentID uint64) error {
	const q = `UPDATE service_contracts SET payment_id=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, paymentID, contractID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContractNotFound
	}
	return nil
}

func (r *ContractRepo) queryList(ctx context.Context, q string, args ...any) ([]model.ServiceContract, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ServiceContract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
