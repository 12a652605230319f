package handlers

import (
	"context"

	"github.com/sbilibin2017/site-content-api/internal/models"
)

//go:generate mockgen -source=stores.go -destination=stores_mock.go -package=handlers

// ServiceStore is CollectionStore[models.Service].
type ServiceStore interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, item models.Service) (int64, error)
	Update(ctx context.Context, id int64, item models.Service) error
	Delete(ctx context.Context, id int64) error
}

// ProjectStore is CollectionStore[models.Project].
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, item models.Project) (int64, error)
	Update(ctx context.Context, id int64, item models.Project) error
	Delete(ctx context.Context, id int64) error
}

// TestimonialStore is CollectionStore[models.Testimonial].
type TestimonialStore interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Get(ctx context.Context, id int64) (*models.Testimonial, error)
	Create(ctx context.Context, item models.Testimonial) (int64, error)
	Update(ctx context.Context, id int64, item models.Testimonial) error
	Delete(ctx context.Context, id int64) error
}

// NewsStore is CollectionStore[models.News].
type NewsStore interface {
	List(ctx context.Context) ([]models.News, error)
	Get(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, item models.News) (int64, error)
	Update(ctx context.Context, id int64, item models.News) error
	Delete(ctx context.Context, id int64) error
}
