package middlewares

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

// BodyLimitMiddleware answers 413 when the declared Content-Length exceeds limit
// and caps the readable body of every other request at limit bytes.
func BodyLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := chimiddleware.RequestSize(limit)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				respond.Error(w, http.StatusRequestEntityTooLarge, respond.MsgTooLarge)
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}
