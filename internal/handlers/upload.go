package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/respond"
	"github.com/sbilibin2017/site-content-api/internal/services"
)

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

// UploadFormField is the multipart field carrying the image.
const UploadFormField = "file"

// Uploader stores an uploaded file under a generated name.
type Uploader interface {
	Save(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error)
}

// NewUploadHandler returns an HTTP handler that stores an image and returns its public URL.
// The multipart body is streamed; only the first "file" part is read.
// @Summary Upload image
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 200 {object} models.UploadResult
// @Failure 400 {object} respond.ErrorResponse "No file provided"
// @Failure 413 {object} respond.ErrorResponse "File too large"
// @Router /api/upload [post]
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mr, err := r.MultipartReader()
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "No file provided")
			return
		}

		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				respond.Error(w, http.StatusBadRequest, "No file provided")
				return
			}
			if err != nil {
				uploadError(w, err)
				return
			}
			if part.FormName() != UploadFormField {
				_ = part.Close()
				continue
			}

			res, err := svc.Save(r.Context(), part.FileName(), part)
			_ = part.Close()
			if err != nil {
				uploadError(w, err)
				return
			}

			respond.JSON(w, http.StatusOK, res)
			return
		}
	}
}

func uploadError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		respond.Error(w, http.StatusRequestEntityTooLarge, respond.MsgTooLarge)
	case errors.Is(err, services.ErrEmptyFilename):
		respond.Error(w, http.StatusBadRequest, "No file selected")
	case errors.Is(err, services.ErrNoFile):
		respond.Error(w, http.StatusBadRequest, "No file provided")
	case errors.Is(err, services.ErrUnsafePath):
		respond.Error(w, http.StatusBadRequest, "Invalid filename")
	default:
		respond.Internal(w, err)
	}
}
