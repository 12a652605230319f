package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/repositories"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=handlers

const contactLabel = "Message"

// ContactSubmitter accepts a public contact form submission.
type ContactSubmitter interface {
	Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error)
}

// ContactInbox gives the admin access to received messages.
type ContactInbox interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// NewSubmitContactHandler returns an HTTP handler for the public contact form.
// @Summary Send contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.ContactInput true "Message"
// @Success 201 {object} respond.CreatedResponse "Message sent successfully"
// @Failure 400 {object} respond.ErrorResponse "email is required"
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /api/contact [post]
func NewSubmitContactHandler(svc ContactSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ContactInput

		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respond.Error(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		msg, err := svc.Submit(r.Context(), in)
		if err != nil {
			if errors.Is(err, models.ErrValidation) {
				respond.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			respond.Internal(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, respond.CreatedResponse{
			ID:      msg.ID,
			Message: "Message sent successfully",
		})
	}
}

// NewListContactHandler returns an HTTP handler listing messages, newest first.
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactMessage
// @Failure 401 {object} respond.ErrorResponse "Missing or invalid token"
// @Router /api/contact [get]
func NewListContactHandler(inbox ContactInbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := inbox.List(r.Context())
		if err != nil {
			respond.Internal(w, err)
			return
		}
		if msgs == nil {
			msgs = []models.ContactMessage{}
		}

		respond.JSON(w, http.StatusOK, msgs)
	}
}

// NewMarkContactReadHandler returns an HTTP handler flagging a message as read.
// Marking an already read message succeeds.
// @Summary Mark message read
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} respond.MessageResponse "Message marked as read"
// @Failure 404 {object} respond.ErrorResponse "Message not found"
// @Router /api/contact/{id}/read [put]
func NewMarkContactReadHandler(inbox ContactInbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, contactLabel)
		if !ok {
			return
		}

		if err := inbox.MarkRead(r.Context(), id); err != nil {
			contactStoreError(w, err)
			return
		}

		respond.Message(w, http.StatusOK, "Message marked as read")
	}
}

// NewDeleteContactHandler returns an HTTP handler removing a message.
// @Summary Delete message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} respond.MessageResponse "Message deleted successfully"
// @Failure 404 {object} respond.ErrorResponse "Message not found"
// @Router /api/contact/{id} [delete]
func NewDeleteContactHandler(inbox ContactInbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, contactLabel)
		if !ok {
			return
		}

		if err := inbox.Delete(r.Context(), id); err != nil {
			contactStoreError(w, err)
			return
		}

		respond.Message(w, http.StatusOK, "Message deleted successfully")
	}
}

func contactStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, contactLabel+" not found")
		return
	}
	respond.Internal(w, err)
}
