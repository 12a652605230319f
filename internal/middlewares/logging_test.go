package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/site-content-api/internal/logger"
)

// observeLogs swaps the global logger for an in-memory one for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestLoggingMiddleware(t *testing.T) {
	incoming := uuid.NewString()

	tests := []struct {
		name          string
		incomingID    string
		handlerStatus int
		handlerBody   string
		expectedLevel zapcore.Level
		keepsIncoming bool
	}{
		{
			name:          "OK",
			handlerStatus: http.StatusOK,
			handlerBody:   `{"status":"ok"}`,
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "ClientError",
			handlerStatus: http.StatusNotFound,
			handlerBody:   `{"error":"Not found"}`,
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "ServerError",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   `{"error":"Internal server error"}`,
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "KeepsIncomingID",
			incomingID:    incoming,
			handlerStatus: http.StatusOK,
			expectedLevel: zapcore.InfoLevel,
			keepsIncoming: true,
		},
		{
			name:          "ReplacesMalformedID",
			incomingID:    "not-a-uuid",
			handlerStatus: http.StatusOK,
			expectedLevel: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			rr := httptest.NewRecorder()

			LoggingMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.handlerBody, rr.Body.String())

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			assert.Equal(t, reqID, seenID)
			if tt.keepsIncoming {
				assert.Equal(t, tt.incomingID, reqID)
			} else {
				assert.NotEqual(t, tt.incomingID, reqID)
			}

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, http.MethodPost, fields["method"])
			assert.Equal(t, "/api/contact", fields["path"])
			assert.EqualValues(t, tt.handlerStatus, fields["status"])
			assert.EqualValues(t, len(tt.handlerBody), fields["bytes"])
		})
	}
}

func TestLoggingMiddleware_FirstStatusWins(t *testing.T) {
	logs := observeLogs(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
	})

	LoggingMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, http.StatusCreated, logs.All()[0].ContextMap()["status"])
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
