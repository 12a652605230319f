package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type TestimonialRepository struct {
	repository
}

func NewTestimonialRepository(db *sqlx.DB, txGetter TxGetter) *TestimonialRepository {
	return &TestimonialRepository{repository: newRepository(db, txGetter)}
}

const testimonialColumns = `id, name, position, content, image, rating, order_num, is_active, created_at`

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_active = TRUE ORDER BY order_num, id`

	items := []models.Testimonial{}
	if err := r.selectAll(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TestimonialRepository) Get(ctx context.Context, id int64) (*models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = ? AND is_active = TRUE`

	var item models.Testimonial
	if err := r.get(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t models.Testimonial) (int64, error) {
	const query = `
		INSERT INTO testimonials (name, position, content, image, rating, order_num, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.insert(ctx, query, t.Name, t.Position, t.Content, t.Image, t.Rating, t.OrderNum, t.IsActive, time.Now().UTC())
}

func (r *TestimonialRepository) Update(ctx context.Context, id int64, t models.Testimonial) error {
	const query = `
		UPDATE testimonials
		SET name = ?, position = ?, content = ?, image = ?, rating = ?, order_num = ?, is_active = ?
		WHERE id = ?
	`
	return r.exec(ctx, query, t.Name, t.Position, t.Content, t.Image, t.Rating, t.OrderNum, t.IsActive, id)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
}
