package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrReservationNotFound is returned when a reservation lookup
// matches no row.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrRoomUnavailable is returned when a reservation cannot be created
// because the room is occupied during the requested range.
var ErrRoomUnavailable = errors.New("room unavailable for the requested dates")

// ReservationRepo provides persistence for reservations.  All
// timestamp fields are stored in UTC.  Besides the CRUD operations
// used by the REST layer it exposes the overdue query consumed by the
// auto-checkout job.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = "id, room_id, customer_id, starts_at, ends_at, status, total_cents, created_at, updated_at"

func scanReservation(sc interface{ Scan(...any) error }) (model.Reservation, error) {
	var rv model.Reservation
	err := sc.Scan(&rv.ID, &rv.RoomID, &rv.CustomerID, &rv.StartsAt, &rv.EndsAt,
		&rv.Status, &rv.TotalCents, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

// Create inserts a new reservation after re-checking that the room is
// free for the requested range.  The availability check and the
// insert run in one transaction so two concurrent bookings cannot
// both succeed for the same room and range.
func (r *ReservationRepo) Create(ctx context.Context, rv *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const overlapQ = `SELECT COUNT(*) FROM reservations
	                  WHERE room_id = ?
	                    AND status IN ('PENDING','CONFIRMED','CHECK_IN')
	                    AND starts_at < ? AND ends_at > ?
	                  FOR UPDATE`
	var overlapping int
	if err := tx.QueryRowContext(ctx, overlapQ, rv.RoomID, rv.EndsAt.UTC(), rv.StartsAt.UTC()).Scan(&overlapping); err != nil {
		return err
	}
	if overlapping > 0 {
		return ErrRoomUnavailable
	}

	const ins = `INSERT INTO reservations (room_id, customer_id, starts_at, ends_at, status, total_cents) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, ins, rv.RoomID, rv.CustomerID, rv.StartsAt.UTC(), rv.EndsAt.UTC(), rv.Status, rv.TotalCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	got, err := scanReservation(tx.QueryRowContext(ctx, sel, rv.ID))
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	*rv = got
	return nil
}

// GetByID returns a single reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	rv, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// ListByCustomer returns all reservations owned by a customer,
// newest first.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE customer_id = ? ORDER BY created_at DESC`
	return r.queryList(ctx, q, customerID)
}

// List returns all reservations, optionally filtered by status,
// newest first.  Used by the admin surface.
func (r *ReservationRepo) List(ctx context.Context, status string) ([]model.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []any{}
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`
	return r.queryList(ctx, q, args...)
}

// FindOverdueActive returns reservations that are still occupying
// their room (CONFIRMED or CHECK_IN) whose end instant is strictly
// before the given cutoff.  This is the auto-checkout predicate:
// rows already FINALIZED or CANCELLED are excluded, which makes
// repeated runs idempotent.
func (r *ReservationRepo) FindOverdueActive(ctx context.Context, before time.Time) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE status IN ('CONFIRMED','CHECK_IN') AND ends_at < ?
	           ORDER BY ends_at`
	return r.queryList(ctx, q, before.UTC())
}

// Save persists the current status of a reservation.  Only the
// status column is written; the jobs and handlers never mutate the
// date range of an existing reservation.
func (r *ReservationRepo) Save(ctx context.Context, rv *model.Reservation) error {
	const q = `UPDATE reservations SET status=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, rv.Status, rv.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
