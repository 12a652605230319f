package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type ContactRepository struct {
	repository
}

func NewContactRepository(db *sqlx.DB, txGetter TxGetter) *ContactRepository {
	return &ContactRepository{repository: newRepository(db, txGetter)}
}

// Create stores an unread message and returns it with id and created_at set.
func (r *ContactRepository) Create(ctx context.Context, m models.ContactMessage) (*models.ContactMessage, error) {
	const query = `
		INSERT INTO contact_messages (name, email, phone, message, is_read, created_at)
		VALUES (?, ?, ?, ?, FALSE, ?)
		RETURNING id
	`

	m.IsRead = false
	m.CreatedAt = time.Now().UTC()
	id, err := r.insert(ctx, query, m.Name, m.Email, m.Phone, m.Message, m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return &m, nil
}

// List returns every message, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	const query = `
		SELECT id, name, email, phone, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`

	items := []models.ContactMessage{}
	if err := r.selectAll(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead sets is_read; marking an already read message succeeds.
func (r *ContactRepository) MarkRead(ctx context.Context, id int64) error {
	return r.exec(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE id = ?`, id)
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
}
