package repository

import (
	"context"
	"database/sql"

	"github.com/solhotel/backoffice/internal/model"
)

// SettingRepo provides access to the key/value settings table.
// Administrators edit settings through the REST surface; the
// notification jobs only ever read them.
type SettingRepo struct {
	db *sql.DB
}

// NewSettingRepo returns a new SettingRepo bound to the given database.
func NewSettingRepo(db *sql.DB) *SettingRepo { return &SettingRepo{db: db} }

// FindByKey returns the value stored under key.  The boolean reports
// whether the key exists; an absent key is not an error so callers
// can fall back to defaults.
func (r *SettingRepo) FindByKey(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT v FROM settings WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Get returns the full setting row.  sql.ErrNoRows is passed through
// for absent keys.
func (r *SettingRepo) Get(ctx context.Context, key string) (*model.Setting, error) {
	var s model.Setting
	err := r.db.QueryRowContext(ctx,
		`SELECT k, v, updated_at FROM settings WHERE k = ?`, key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert stores a value under key, inserting or replacing as needed.
func (r *SettingRepo) Upsert(ctx context.Context, key, value string) error {
	const q = `INSERT INTO settings (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = NOW()`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

// List returns all settings ordered by key.
func (r *SettingRepo) List(ctx context.Context) ([]model.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT k, v, updated_at FROM settings ORDER BY k`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Setting, 0)
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
