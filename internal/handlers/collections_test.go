package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockServiceStore(ctrl)
	services := NewCollection[models.Service, models.ServiceInput](mockStore, "Service")

	t.Run("active items", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any()).Return([]models.Service{
			{ID: 1, Title: "Import", OrderNum: 1, IsActive: true},
			{ID: 2, Title: "Logistics", OrderNum: 2, IsActive: true},
		}, nil)

		w := httptest.NewRecorder()
		services.List().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var got []models.Service
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Import", got[0].Title)
		assert.Equal(t, "Logistics", got[1].Title)
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		services.List().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		mockStore.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		services.List().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestCollection_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockNewsStore(ctrl)
	news := NewCollection[models.News, models.NewsInput](mockStore, "News")

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			id:   "3",
			mockSetup: func() {
				mockStore.EXPECT().Get(gomock.Any(), int64(3)).
					Return(&models.News{ID: 3, Title: "Expansion", IsActive: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing or inactive",
			id:   "9",
			mockSetup: func() {
				mockStore.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, repositories.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"News not found"}`,
		},
		{
			name:         "id out of range",
			id:           "99999999999999999999",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"News not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/news/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()
			news.Get().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestCollection_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockServiceStore(ctrl)
	services := NewCollection[models.Service, models.ServiceInput](mockStore, "Service")

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "defaults applied",
			body: `{"title":"Import"}`,
			mockSetup: func() {
				mockStore.EXPECT().
					Create(gomock.Any(), models.Service{Title: "Import", OrderNum: 0, IsActive: true}).
					Return(int64(7), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":7,"message":"Service created successfully"}`,
		},
		{
			name: "explicit inactive",
			body: `{"title":"Import","order_num":4,"is_active":false}`,
			mockSetup: func() {
				mockStore.EXPECT().
					Create(gomock.Any(), models.Service{Title: "Import", OrderNum: 4, IsActive: false}).
					Return(int64(8), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":8,"message":"Service created successfully"}`,
		},
		{
			name:         "missing title",
			body:         `{"description":"x"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"title is required"}`,
		},
		{
			name:         "invalid JSON",
			body:         `not json`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name: "store failure",
			body: `{"title":"Import"}`,
			mockSetup: func() {
				mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			services.Create().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCollection_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockTestimonialStore(ctrl)
	testimonials := NewCollection[models.Testimonial, models.TestimonialInput](mockStore, "Testimonial")

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "full replace resets omitted fields",
			body: `{"name":"Aisha"}`,
			mockSetup: func() {
				mockStore.EXPECT().
					Update(gomock.Any(), int64(2), models.Testimonial{Name: "Aisha", Rating: models.DefaultRating, IsActive: true}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Testimonial updated successfully"}`,
		},
		{
			name: "missing id",
			body: `{"name":"Aisha"}`,
			mockSetup: func() {
				mockStore.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(repositories.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Testimonial not found"}`,
		},
		{
			name:         "missing name",
			body:         `{"content":"Great"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"name is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/api/testimonials/2", strings.NewReader(tt.body))
			req = withURLParams(req, "id", "2")
			w := httptest.NewRecorder()
			testimonials.Update().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCollection_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockProjectStore(ctrl)
	projects := NewCollection[models.Project, models.ProjectInput](mockStore, "Project")

	t.Run("deleted", func(t *testing.T) {
		mockStore.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/projects/5", nil), "id", "5")
		w := httptest.NewRecorder()
		projects.Delete().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Project deleted successfully"}`, w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		mockStore.EXPECT().Delete(gomock.Any(), int64(5)).Return(repositories.ErrNotFound)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/projects/5", nil), "id", "5")
		w := httptest.NewRecorder()
		projects.Delete().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
	})
}
