package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/models"
)

type UserRepository struct {
	repository
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{repository: newRepository(db, txGetter)}
}

// GetByUsername looks a user up by exact username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE username = ?
	`

	var user models.User
	if err := r.get(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}
