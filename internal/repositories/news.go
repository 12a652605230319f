package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type NewsRepository struct {
	repository
}

func NewNewsRepository(db *sqlx.DB, txGetter TxGetter) *NewsRepository {
	return &NewsRepository{repository: newRepository(db, txGetter)}
}

const newsColumns = `id, title, excerpt, content, image, category, author, date, is_featured, is_active, created_at`

// List returns active articles, newest first.
func (r *NewsRepository) List(ctx context.Context) ([]models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE is_active = TRUE ORDER BY created_at DESC, id DESC`

	items := []models.News{}
	if err := r.selectAll(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NewsRepository) Get(ctx context.Context, id int64) (*models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = ? AND is_active = TRUE`

	var item models.News
	if err := r.get(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *NewsRepository) Create(ctx context.Context, n models.News) (int64, error) {
	const query = `
		INSERT INTO news (title, excerpt, content, image, category, author, date, is_featured, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.insert(ctx, query, n.Title, n.Excerpt, n.Content, n.Image, n.Category, n.Author, n.Date, n.IsFeatured, n.IsActive, time.Now().UTC())
}

func (r *NewsRepository) Update(ctx context.Context, id int64, n models.News) error {
	const query = `
		UPDATE news
		SET title = ?, excerpt = ?, content = ?, image = ?, category = ?, author = ?, date = ?, is_featured = ?, is_active = ?
		WHERE id = ?
	`
	return r.exec(ctx, query, n.Title, n.Excerpt, n.Content, n.Image, n.Category, n.Author, n.Date, n.IsFeatured, n.IsActive, id)
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM news WHERE id = ?`, id)
}
