package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

//go:generate mockgen -source=content.go -destination=content_mock.go -package=handlers

// ContentReader reads site content rows.
type ContentReader interface {
	GetAll(ctx context.Context) ([]models.ContentEntry, error)
	GetSection(ctx context.Context, section string) ([]models.ContentEntry, error)
}

// ContentWriter creates or replaces a single content entry.
type ContentWriter interface {
	Upsert(ctx context.Context, section, key, value string) error
}

// NewGetContentHandler returns an HTTP handler for all site content.
// @Summary All site content
// @Description Content grouped by section, then key
// @Tags content
// @Produce json
// @Success 200 {object} map[string]map[string]models.ContentValue
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /api/content [get]
func NewGetContentHandler(reader ContentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := reader.GetAll(r.Context())
		if err != nil {
			respond.Internal(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.GroupContent(entries))
	}
}

// NewGetContentSectionHandler returns an HTTP handler for one content section.
// An unknown section yields an empty object.
// @Summary Content section
// @Tags content
// @Produce json
// @Param section path string true "Section name" example(hero)
// @Success 200 {object} map[string]models.ContentValue
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /api/content/{section} [get]
func NewGetContentSectionHandler(reader ContentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")

		entries, err := reader.GetSection(r.Context(), section)
		if err != nil {
			respond.Internal(w, err)
			return
		}

		out := make(models.ContentSection, len(entries))
		if grouped, ok := models.GroupContent(entries)[section]; ok {
			out = grouped
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// NewUpdateContentHandler returns an HTTP handler that upserts one content entry.
// @Summary Update content entry
// @Description Create or replace the value stored under section and key
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section name"
// @Param key path string true "Entry key"
// @Param request body models.ContentUpdate true "New value"
// @Success 200 {object} respond.MessageResponse "Content updated successfully"
// @Failure 400 {object} respond.ErrorResponse "value is required"
// @Failure 401 {object} respond.ErrorResponse "Missing or invalid token"
// @Router /api/content/{section}/{key} [put]
func NewUpdateContentHandler(writer ContentWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContentUpdate

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		section, key := chi.URLParam(r, "section"), chi.URLParam(r, "key")
		if err := writer.Upsert(r.Context(), section, key, *req.Value); err != nil {
			respond.Internal(w, err)
			return
		}

		respond.Message(w, http.StatusOK, "Content updated successfully")
	}
}
