package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/site-content-api/internal/jwt"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/sbilibin2017/site-content-api/internal/respond"
	"github.com/sbilibin2017/site-content-api/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

const msgInvalidBody = "Invalid request body"

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

// ProfileReader returns the public profile of a user.
type ProfileReader interface {
	Profile(ctx context.Context, username string) (*models.UserProfile, error)
}

// Logouter ends the session a token belongs to.
type Logouter interface {
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// NewLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Verify credentials and return a bearer token with the user profile
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Token issued"
// @Failure 400 {object} respond.ErrorResponse "Username and password are required"
// @Failure 401 {object} respond.ErrorResponse "Invalid credentials"
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if err := req.Validate(); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		resp, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				respond.Internal(w, err)
			}
			return
		}

		respond.JSON(w, http.StatusOK, resp)
	}
}

// NewMeHandler returns an HTTP handler for the profile of the authenticated user.
// @Summary Current user
// @Description Return the profile of the token subject
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} respond.ErrorResponse "User not found"
// @Router /api/auth/me [get]
func NewMeHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			respond.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := svc.Profile(r.Context(), claims.Username())
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				respond.Error(w, http.StatusNotFound, "User not found")
				return
			}
			respond.Internal(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, profile)
	}
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Logout
// @Description Revoke the bearer token until it expires
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} respond.MessageResponse "Successfully logged out"
// @Failure 401 {object} respond.ErrorResponse "Missing or invalid token"
// @Router /api/auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			respond.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(r.Context(), claims); err != nil {
			respond.Internal(w, err)
			return
		}

		respond.Message(w, http.StatusOK, "Successfully logged out")
	}
}
