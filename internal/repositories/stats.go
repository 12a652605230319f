package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type StatsRepository struct {
	repository
}

func NewStatsRepository(db *sqlx.DB, txGetter TxGetter) *StatsRepository {
	return &StatsRepository{repository: newRepository(db, txGetter)}
}

// Get counts active collection rows and contact messages in one statement.
func (r *StatsRepository) Get(ctx context.Context) (*models.Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM services WHERE is_active = TRUE) AS services,
			(SELECT COUNT(*) FROM projects WHERE is_active = TRUE) AS projects,
			(SELECT COUNT(*) FROM testimonials WHERE is_active = TRUE) AS testimonials,
			(SELECT COUNT(*) FROM news WHERE is_active = TRUE) AS news,
			(SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE) AS unread_messages,
			(SELECT COUNT(*) FROM contact_messages) AS total_messages
	`

	var stats models.Stats
	if err := r.get(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}
