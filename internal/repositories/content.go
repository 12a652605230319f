package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

// ContentRepository stores site content as key-value pairs grouped by section.
type ContentRepository struct {
	repository
}

func NewContentRepository(db *sqlx.DB, txGetter TxGetter) *ContentRepository {
	return &ContentRepository{repository: newRepository(db, txGetter)}
}

// GetAll returns every entry of every section.
func (r *ContentRepository) GetAll(ctx context.Context) ([]models.ContentEntry, error) {
	const query = `
		SELECT section, key, value, type, updated_at
		FROM site_content
		ORDER BY section, id
	`

	entries := []models.ContentEntry{}
	if err := r.selectAll(ctx, &entries, query); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetSection returns the entries of one section; an unknown section yields none.
func (r *ContentRepository) GetSection(ctx context.Context, section string) ([]models.ContentEntry, error) {
	const query = `
		SELECT section, key, value, type, updated_at
		FROM site_content
		WHERE section = ?
		ORDER BY id
	`

	entries := []models.ContentEntry{}
	if err := r.selectAll(ctx, &entries, query, section); err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts the entry with type "text", or updates value and updated_at
// of the existing (section, key) row.
func (r *ContentRepository) Upsert(ctx context.Context, section, key, value string) error {
	const query = `
		INSERT INTO site_content (section, key, value, type, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (section, key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	return r.exec(ctx, query, section, key, value, models.DefaultContentType, time.Now().UTC())
}
