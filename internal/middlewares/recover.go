package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

// RecoverMiddleware turns a handler panic into a logged, generic 500 response.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Log.Errorw("panic recovered",
				"panic", rec,
				"method", r.Method,
				"uri", r.RequestURI,
				"request_id", RequestIDFromContext(r.Context()),
				"stack", string(debug.Stack()),
			)
			respond.Error(w, http.StatusInternalServerError, respond.MsgInternal)
		}()

		next.ServeHTTP(w, r)
	})
}
