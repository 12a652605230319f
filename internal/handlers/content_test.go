package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParams attaches chi route parameters to req.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetContentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockContentReader(ctrl)
	updated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("grouped by section", func(t *testing.T) {
		mockReader.EXPECT().GetAll(gomock.Any()).Return([]models.ContentEntry{
			{Section: "hero", Key: "title", Value: "Quality food", Type: "text", UpdatedAt: updated},
			{Section: "hero", Key: "subtitle", Value: "Since 1990", Type: "text", UpdatedAt: updated},
			{Section: "contact", Key: "phone", Value: "+218", Type: "text", UpdatedAt: updated},
		}, nil)

		w := httptest.NewRecorder()
		NewGetContentHandler(mockReader).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var got models.SiteContent
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "Quality food", got["hero"]["title"].Value)
		assert.Equal(t, "Since 1990", got["hero"]["subtitle"].Value)
		assert.Equal(t, "text", got["contact"]["phone"].Type)
		assert.True(t, updated.Equal(got["contact"]["phone"].UpdatedAt))
	})

	t.Run("store failure", func(t *testing.T) {
		mockReader.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		NewGetContentHandler(mockReader).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestGetContentSectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockContentReader(ctrl)

	t.Run("known section", func(t *testing.T) {
		mockReader.EXPECT().GetSection(gomock.Any(), "hero").Return([]models.ContentEntry{
			{Section: "hero", Key: "title", Value: "Quality food", Type: "text"},
		}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/content/hero", nil), "section", "hero")
		w := httptest.NewRecorder()
		NewGetContentSectionHandler(mockReader).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got models.ContentSection
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Quality food", got["title"].Value)
	})

	t.Run("unknown section is empty", func(t *testing.T) {
		mockReader.EXPECT().GetSection(gomock.Any(), "nope").Return([]models.ContentEntry{}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/content/nope", nil), "section", "nope")
		w := httptest.NewRecorder()
		NewGetContentSectionHandler(mockReader).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})
}

func TestUpdateContentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockContentWriter(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"value":"New title"}`,
			mockSetup: func() {
				mockWriter.EXPECT().Upsert(gomock.Any(), "hero", "title", "New title").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Content updated successfully"}`,
		},
		{
			name: "empty value is stored",
			body: `{"value":""}`,
			mockSetup: func() {
				mockWriter.EXPECT().Upsert(gomock.Any(), "hero", "title", "").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Content updated successfully"}`,
		},
		{
			name:         "missing value",
			body:         `{}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"value is required"}`,
		},
		{
			name:         "invalid JSON",
			body:         `{"value":`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name: "store failure",
			body: `{"value":"x"}`,
			mockSetup: func() {
				mockWriter.EXPECT().Upsert(gomock.Any(), "hero", "title", "x").Return(errors.New("locked"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/api/content/hero/title", strings.NewReader(tt.body))
			req = withURLParams(req, "section", "hero", "key", "title")
			w := httptest.NewRecorder()

			NewUpdateContentHandler(mockWriter).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
