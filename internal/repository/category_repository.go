package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrCategoryNotFound is returned when a category lookup matches no
// row.  Handlers translate it into an HTTP 404 response.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepo provides CRUD operations for room categories.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo returns a new CategoryRepo bound to the given database.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryColumns = "id, name, description, capacity, price_cents, is_active, created_at, updated_at"

// Create inserts a new category and populates the generated ID and
// timestamps on the provided record.
func (r *CategoryRepo) Create(ctx context.Context, cat *model.RoomCategory) error {
	const q = `INSERT INTO room_categories (name, description, capacity, price_cents, is_active) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, cat.Name, cat.Description, cat.Capacity, cat.PriceCents, cat.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cat.ID = uint64(id)
	const sel = `SELECT ` + categoryColumns + ` FROM room_categories WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, cat.ID).Scan(
		&cat.ID, &cat.Name, &cat.Description, &cat.Capacity, &cat.PriceCents,
		&cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt,
	)
}

// GetByID returns a single category or ErrCategoryNotFound.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*model.RoomCategory, error) {
	const q = `SELECT ` + categoryColumns + ` FROM room_categories WHERE id = ?`
	var cat model.RoomCategory
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&cat.ID, &cat.Name, &cat.Description, &cat.Capacity, &cat.PriceCents,
		&cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// List returns all categories ordered by name.  When activeOnly is
// true, inactive categories are filtered out (public browse).
func (r *CategoryRepo) List(ctx context.Context, activeOnly bool) ([]model.RoomCategory, error) {
	q := `SELECT ` + categoryColumns + ` FROM room_categories`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.RoomCategory, 0)
	for rows.Next() {
		var cat model.RoomCategory
		if err := rows.Scan(
			&cat.ID, &cat.Name, &cat.Description, &cat.Capacity, &cat.PriceCents,
			&cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of a category.  Returns
// ErrCategoryNotFound when no row was affected.
func (r *CategoryRepo) Update(ctx context.Context, cat *model.RoomCategory) error {
	const q = `UPDATE room_categories SET name=?, description=?, capacity=?, price_cents=?, is_active=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, cat.Name, cat.Description, cat.Capacity, cat.PriceCents, cat.IsActive, cat.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category.  ErrConflict is returned when rooms
// still reference it, ErrCategoryNotFound when it does not exist.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	var count int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rooms WHERE category_id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM room_categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
