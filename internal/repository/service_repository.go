package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrServiceNotFound is returned when a service lookup matches no row.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepo provides CRUD operations for the service catalog (spa,
// dining, transfers...).
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo returns a new ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = "id, name, description, price_cents, is_active, created_at, updated_at"

func scanService(sc interface{ Scan(...any) error }) (model.Service, error) {
	var s model.Service
	err := sc.Scan(&s.ID, &s.Name, &s.Description, &s.PriceCents, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a new service and populates the generated ID and
// timestamps on the provided record.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	const q = `INSERT INTO services (name, description, price_cents, is_active) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Description, s.PriceCents, s.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	const sel = `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
	got, err := scanService(r.db.QueryRowContext(ctx, sel, s.ID))
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// GetByID returns a single service or ErrServiceNotFound.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
	const q = `SELECT ` + serviceColumns + ` FROM services WHERE id = ?`
	s, err := scanService(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetNameByID returns just the service name.  The notification jobs
// use it to fill the {servicioNombre} template token without loading
// the full record.
func (r *ServiceRepo) GetNameByID(ctx context.Context, id uint64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM services WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrServiceNotFound
	}
	return name, err
}

// List returns services ordered by name, optionally active only.
func (r *ServiceRepo) List(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	q := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a service.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	const q = `UPDATE services SET name=?, description=?, price_cents=?, is_active=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Description, s.PriceCents, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Delete removes a service.  ErrConflict is returned when contracts
// still reference it.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM service_contracts WHERE service_id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrServiceNotFound
	}
	return nil
}
