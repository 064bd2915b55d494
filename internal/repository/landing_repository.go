package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/solhotel/backoffice/internal/model"
)

// ErrSectionNotFound is returned when a landing section lookup
// matches no row.
var ErrSectionNotFound = errors.New("landing section not found")

// LandingRepo provides persistence for the CMS-style landing page
// sections.
type LandingRepo struct {
	db *sql.DB
}

// NewLandingRepo returns a new LandingRepo bound to the given database.
func NewLandingRepo(db *sql.DB) *LandingRepo { return &LandingRepo{db: db} }

const sectionColumns = "id, slug, title, body, image_url, position, is_active, updated_at"

func scanSection(sc interface{ Scan(...any) error }) (model.LandingSection, error) {
	var s model.LandingSection
	err := sc.Scan(&s.ID, &s.Slug, &s.Title, &s.Body, &s.ImageURL, &s.Position, &s.IsActive, &s.UpdatedAt)
	return s, err
}

// List returns landing sections ordered by position.  When activeOnly
// is true, unpublished sections are filtered out (public page).
func (r *LandingRepo) List(ctx context.Context, activeOnly bool) ([]model.LandingSection, error) {
	q := `SELECT ` + sectionColumns + ` FROM landing_sections`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.LandingSection, 0)
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a new section and populates the generated ID on the
// provided record.
func (r *LandingRepo) Create(ctx context.Context, s *model.LandingSection) error {
	const q = `INSERT INTO landing_sections (slug, title, body, image_url, position, is_active) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Slug, s.Title, s.Body, s.ImageURL, s.Position, s.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update replaces the mutable fields of a section.
func (r *LandingRepo) Update(ctx context.Context, s *model.LandingSection) error {
	const q = `UPDATE landing_sections SET slug=?, title=?, body=?, image_url=?, position=?, is_active=?, updated_at=NOW() WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, s.Slug, s.Title, s.Body, s.ImageURL, s.Position, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// Delete removes a section.
func (r *LandingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM landing_sections WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSectionNotFound
	}
	return nil
}
