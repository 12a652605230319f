package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/site-content-api/internal/jwt"
	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/respond"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports tokens revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and stores
// its claims in the request context. revoked may be nil.
func AuthMiddleware(tokener Tokener, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				respond.Error(w, http.StatusUnauthorized, "Missing or malformed authorization header")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				respond.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
				if err != nil {
					respond.Internal(w, err)
					return
				}
				if isRevoked {
					logger.Log.Warnw("authorization failed", "err", "token revoked", "jti", claims.ID)
					respond.Error(w, http.StatusUnauthorized, "Token has been revoked")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}
