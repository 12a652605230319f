package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/repositories"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

// CollectionStore is the storage contract shared by the landing page collections.
type CollectionStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item T) (int64, error)
	Update(ctx context.Context, id int64, item T) error
	Delete(ctx context.Context, id int64) error
}

// Input is a request body that validates itself and builds a row.
type Input[T any] interface {
	Validate() error
	Build() T
}

var (
	_ Input[models.Service]     = models.ServiceInput{}
	_ Input[models.Project]     = models.ProjectInput{}
	_ Input[models.Testimonial] = models.TestimonialInput{}
	_ Input[models.News]        = models.NewsInput{}
)

// Collection binds a store to the label used in its response messages.
type Collection[T any, I Input[T]] struct {
	store CollectionStore[T]
	label string
}

// NewCollection returns handlers for one collection. label is the
// singular name used in messages, e.g. "Service".
func NewCollection[T any, I Input[T]](store CollectionStore[T], label string) *Collection[T, I] {
	return &Collection[T, I]{store: store, label: label}
}

// List returns an HTTP handler for the active rows of the collection.
// @Summary List active items
// @Description Services and projects are ordered by order_num, news newest first
// @Tags collections
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /api/services [get]
// @Router /api/projects [get]
// @Router /api/testimonials [get]
// @Router /api/news [get]
func (c *Collection[T, I]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := c.store.List(r.Context())
		if err != nil {
			respond.Internal(w, err)
			return
		}
		if items == nil {
			items = []T{}
		}

		respond.JSON(w, http.StatusOK, items)
	}
}

// Get returns an HTTP handler for a single active row.
// @Summary Get one active item
// @Tags collections
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} respond.ErrorResponse "Not found"
// @Router /api/services/{id} [get]
// @Router /api/projects/{id} [get]
// @Router /api/testimonials/{id} [get]
// @Router /api/news/{id} [get]
func (c *Collection[T, I]) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.idParam(w, r)
		if !ok {
			return
		}

		item, err := c.store.Get(r.Context(), id)
		if err != nil {
			c.storeError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, item)
	}
}

// Create returns an HTTP handler that inserts a row.
// @Summary Create item
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ServiceInput true "Item"
// @Success 201 {object} respond.CreatedResponse "Service created successfully"
// @Failure 400 {object} respond.ErrorResponse "title is required"
// @Failure 401 {object} respond.ErrorResponse "Missing or invalid token"
// @Router /api/services [post]
// @Router /api/projects [post]
// @Router /api/testimonials [post]
// @Router /api/news [post]
func (c *Collection[T, I]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput[T, I](w, r)
		if !ok {
			return
		}

		id, err := c.store.Create(r.Context(), in.Build())
		if err != nil {
			respond.Internal(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, respond.CreatedResponse{
			ID:      id,
			Message: c.label + " created successfully",
		})
	}
}

// Update returns an HTTP handler that replaces every field of a row.
// @Summary Replace item
// @Description Omitted fields are reset to their create defaults
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body models.ServiceInput true "Item"
// @Success 200 {object} respond.MessageResponse "Service updated successfully"
// @Failure 400 {object} respond.ErrorResponse "title is required"
// @Failure 404 {object} respond.ErrorResponse "Service not found"
// @Router /api/services/{id} [put]
// @Router /api/projects/{id} [put]
// @Router /api/testimonials/{id} [put]
// @Router /api/news/{id} [put]
func (c *Collection[T, I]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.idParam(w, r)
		if !ok {
			return
		}
		in, ok := decodeInput[T, I](w, r)
		if !ok {
			return
		}

		if err := c.store.Update(r.Context(), id, in.Build()); err != nil {
			c.storeError(w, err)
			return
		}

		respond.Message(w, http.StatusOK, c.label+" updated successfully")
	}
}

// Delete returns an HTTP handler that removes a row.
// @Summary Delete item
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} respond.MessageResponse "Service deleted successfully"
// @Failure 404 {object} respond.ErrorResponse "Service not found"
// @Router /api/services/{id} [delete]
// @Router /api/projects/{id} [delete]
// @Router /api/testimonials/{id} [delete]
// @Router /api/news/{id} [delete]
func (c *Collection[T, I]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := c.idParam(w, r)
		if !ok {
			return
		}

		if err := c.store.Delete(r.Context(), id); err != nil {
			c.storeError(w, err)
			return
		}

		respond.Message(w, http.StatusOK, c.label+" deleted successfully")
	}
}

func (c *Collection[T, I]) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return parseID(w, r, c.label)
}

func (c *Collection[T, I]) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, c.label+" not found")
		return
	}
	respond.Internal(w, err)
}

// parseID reads the {id} URL parameter. Ids that do not fit in int64 cannot
// name a row, so they are answered with 404.
func parseID(w http.ResponseWriter, r *http.Request, label string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusNotFound, label+" not found")
		return 0, false
	}
	return id, true
}

func decodeInput[T any, I Input[T]](w http.ResponseWriter, r *http.Request) (I, bool) {
	var in I
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidBody)
		return in, false
	}
	if err := in.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return in, false
	}
	return in, true
}
