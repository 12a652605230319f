package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRecoverMiddleware(t *testing.T) {
	t.Run("Panic", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			RecoverMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "boom")
	})

	t.Run("NoPanic", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})

		rr := httptest.NewRecorder()
		RecoverMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("AbortHandler", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		assert.Panics(t, func() {
			RecoverMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("LogsRequestID", func(t *testing.T) {
		logs := observeLogs(t)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rr := httptest.NewRecorder()
		LoggingMiddleware(RecoverMiddleware(next)).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/news/1", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		panics := logs.FilterMessage("panic recovered").All()
		require.Len(t, panics, 1)
		assert.Equal(t, zapcore.ErrorLevel, panics[0].Level)

		fields := panics[0].ContextMap()
		assert.Equal(t, rr.Header().Get(RequestIDHeader), fields["request_id"])
		assert.Equal(t, "boom", fields["panic"])
		assert.Equal(t, "/api/news/1", fields["uri"])
		assert.Contains(t, fields["stack"], "runtime/debug.Stack")
	})
}
