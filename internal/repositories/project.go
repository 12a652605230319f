package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type ProjectRepository struct {
	repository
}

func NewProjectRepository(db *sqlx.DB, txGetter TxGetter) *ProjectRepository {
	return &ProjectRepository{repository: newRepository(db, txGetter)}
}

const projectColumns = `id, title, description, image, location, date, weight, order_num, is_active, created_at`

// List returns active projects by ascending order_num.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE is_active = TRUE ORDER BY order_num, id`

	items := []models.Project{}
	if err := r.selectAll(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ? AND is_active = TRUE`

	var item models.Project
	if err := r.get(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p models.Project) (int64, error) {
	const query = `
		INSERT INTO projects (title, description, image, location, date, weight, order_num, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.insert(ctx, query, p.Title, p.Description, p.Image, p.Location, p.Date, p.Weight, p.OrderNum, p.IsActive, time.Now().UTC())
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, p models.Project) error {
	const query = `
		UPDATE projects
		SET title = ?, description = ?, image = ?, location = ?, date = ?, weight = ?, order_num = ?, is_active = ?
		WHERE id = ?
	`
	return r.exec(ctx, query, p.Title, p.Description, p.Image, p.Location, p.Date, p.Weight, p.OrderNum, p.IsActive, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
}
