package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockStatsReader(ctrl)

	t.Run("counts", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any()).Return(&models.Stats{
			Services: 6, Projects: 3, Testimonials: 3, News: 3, UnreadMessages: 1, TotalMessages: 2,
		}, nil)

		w := httptest.NewRecorder()
		NewStatsHandler(mockReader).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"unread_messages":1`)
	})

	t.Run("store failure", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		NewStatsHandler(mockReader).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := NewMockPinger(ctrl)

	t.Run("ok", func(t *testing.T) {
		mockDB.EXPECT().PingContext(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		NewHealthHandler(mockDB).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		mockDB.EXPECT().PingContext(gomock.Any()).Return(errors.New("closed"))

		w := httptest.NewRecorder()
		NewHealthHandler(mockDB).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
