package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrRoomNotFound is returned when a room lookup matches no row.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides CRUD operations for rooms plus the availability
// query used by the public booking flow.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = "id, category_id, number, floor, notes, is_active, created_at, updated_at"

func scanRoom(sc interface{ Scan(...any) error }) (model.Room, error) {
	var rm model.Room
	err := sc.Scan(&rm.ID, &rm.CategoryID, &rm.Number, &rm.Floor, &rm.Notes,
		&rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

// Create inserts a new room and populates the generated ID and
// timestamps on the provided record.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = `INSERT INTO rooms (category_id, number, floor, notes, is_active) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rm.CategoryID, rm.Number, rm.Floor, rm.Notes, rm.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	const sel = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	got, err := scanRoom(r.db.QueryRowContext(ctx, sel, rm.ID))
	if err != nil {
		return err
	}
	*rm = got
	return nil
}

// GetByID returns a single room or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	rm, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

// List returns rooms ordered by number, optionally filtered to a
// category and to active rooms only.
func (r *RoomRepo) List(ctx context.Context, categoryID uint64, activeOnly bool) ([]model.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	args := []any{}
	if categoryID != 0 {
		q += ` AND category_id = ?`
		args = append(args, categoryID)
	}
	if activeOnly {
		q += ` AND is_active = 1`
	}
	q += ` ORDER BY number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// FindAvailable returns active rooms with no occupying reservation
// overlapping [from, to).  A reservation occupies its room while its
// status is PENDING, CONFIRMED or CHECK_IN; FINALIZED and CANCELLED
// stays do not block new bookings.  Two ranges overlap when
// starts_at < to AND ends_at > from.
func (r *RoomRepo) FindAvailable(ctx context.Context, from, to time.Time) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms rm
	           WHERE rm.is_active = 1
	             AND NOT EXISTS (
	                   SELECT 1 FROM reservations rv
	                   WHERE rv.room_id = rm.id
	                     AND rv.status IN ('PENDING','CONFIRMED','CHECK_IN')
	                     AND rv.starts_at < ?
	                     AND rv.ends_at > ?
	             )
	           ORDER BY rm.number`
	rows, err := r.db.QueryContext(ctx, q, to.UTC(), from.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a room.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	const q = `UPDATE rooms SET category_id=?, number=?, floor=?, notes=?, is_active=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, rm.CategoryID, rm.Number, rm.Floor, rm.Notes, rm.IsActive, rm.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes a room.  ErrConflict is returned when reservations
// still reference it.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE room_id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
