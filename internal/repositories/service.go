package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type ServiceRepository struct {
	repository
}

func NewServiceRepository(db *sqlx.DB, txGetter TxGetter) *ServiceRepository {
	return &ServiceRepository{repository: newRepository(db, txGetter)}
}

const serviceColumns = `id, title, description, icon, color, order_num, is_active, created_at`

// List returns active services by ascending order_num.
func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE is_active = TRUE ORDER BY order_num, id`

	items := []models.Service{}
	if err := r.selectAll(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns one active service.
func (r *ServiceRepository) Get(ctx context.Context, id int64) (*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ? AND is_active = TRUE`

	var item models.Service
	if err := r.get(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s models.Service) (int64, error) {
	const query = `
		INSERT INTO services (title, description, icon, color, order_num, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.insert(ctx, query, s.Title, s.Description, s.Icon, s.Color, s.OrderNum, s.IsActive, time.Now().UTC())
}

// Update replaces every mutable field of the service.
func (r *ServiceRepository) Update(ctx context.Context, id int64, s models.Service) error {
	const query = `
		UPDATE services
		SET title = ?, description = ?, icon = ?, color = ?, order_num = ?, is_active = ?
		WHERE id = ?
	`
	return r.exec(ctx, query, s.Title, s.Description, s.Icon, s.Color, s.OrderNum, s.IsActive, id)
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM services WHERE id = ?`, id)
}
